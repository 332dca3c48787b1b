package server

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/mdouchement/todolist/internal/server/params"
	"github.com/mdouchement/todolist/internal/server/serializer"
	"github.com/mdouchement/todolist/internal/server/service"
	"github.com/mdouchement/todolist/internal/todoerr"
)

// todo contains all todo items handlers.
type todo struct {
	service *service.Todo
}

///// List
////
//

// List returns all the items ordered by position.
func (h *todo) List(c echo.Context) error {
	items, err := h.service.List()
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, serializer.Success("All Todos List").
		With("todos", serializer.Todos(items)))
}

///// Create
////
//

// Create appends a new item to the list.
func (h *todo) Create(c echo.Context) error {
	var p params.CreateParams
	if err := c.Bind(&p); err != nil {
		return todoerr.Malformed("Invalid request")
	}

	item, err := h.service.Create(p.Description)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, serializer.Success("Item added successfully").
		With("todo", serializer.Todo(item)))
}

///// Update
////
//

// Update replaces the description of an item.
func (h *todo) Update(c echo.Context) error {
	var p params.DescriptionParams
	if err := c.Bind(&p); err != nil {
		return todoerr.Malformed("Invalid request")
	}

	item, err := h.service.UpdateDescription(params.ID(c.Param("id")), p.Description)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, serializer.Success("Item updated successfully").
		With("todo", serializer.Todo(item)))
}

///// MarkDone
////
//

// MarkDone flags an item as done.
func (h *todo) MarkDone(c echo.Context) error {
	if err := h.service.MarkDone(params.ID(c.Param("id"))); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, serializer.Success("Item marked as done"))
}

///// UpdateColor
////
//

// UpdateColor replaces the color of an item.
func (h *todo) UpdateColor(c echo.Context) error {
	id := params.ID(c.Param("id"))
	if id <= 0 {
		return todoerr.Validation("Id cannot be empty")
	}

	var p params.ColorParams
	if err := c.Bind(&p); err != nil {
		return todoerr.Malformed("Invalid request")
	}

	if err := h.service.UpdateColor(id, p.Color); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, serializer.Success("Color updated successfully"))
}

///// UpdatePositions
////
//

// UpdatePositions applies the order submitted after a drag and drop.
func (h *todo) UpdatePositions(c echo.Context) error {
	payload, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return todoerr.Malformed("Invalid request")
	}

	moves, err := params.Order(payload)
	if err != nil {
		return err
	}

	if err = h.service.Reorder(moves); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, serializer.Success("Positions updated"))
}

///// Delete
////
//

// Delete removes an item and compacts the positions.
func (h *todo) Delete(c echo.Context) error {
	if err := h.service.Delete(params.ID(c.Param("id"))); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, serializer.Success("Task deleted and positions updated"))
}
