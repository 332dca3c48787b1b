package client

import (
	"strconv"
	"strings"

	"github.com/mdouchement/todolist/pkg/todoapi"
	"github.com/pkg/errors"
)

// List prints all the items ordered by position.
func (c *Client) List() error {
	todos, err := c.API.List()
	if err != nil {
		return errors.Wrap(err, "could not list todos")
	}

	if len(todos) == 0 {
		c.printf("Nothing to do\n")
		return nil
	}

	for _, todo := range todos {
		c.print(todo)
	}
	return nil
}

// Add creates a new item, prompting for its description when none is given.
func (c *Client) Add(description string) error {
	if strings.TrimSpace(description) == "" {
		var err error
		description, err = c.Prompt("Description: ")
		if err != nil {
			return errors.Wrap(err, "could not read description from stdin")
		}
	}

	todo, err := c.API.Create(description)
	if err != nil {
		return errors.Wrap(err, "could not add todo")
	}

	c.print(todo)
	return nil
}

// Edit replaces the description of an item.
func (c *Client) Edit(id int, description string) error {
	todo, err := c.API.UpdateDescription(id, description)
	if err != nil {
		return errors.Wrap(err, "could not edit todo")
	}

	c.print(todo)
	return nil
}

// Done flags an item as done.
func (c *Client) Done(id int) error {
	return errors.Wrap(c.API.MarkDone(id), "could not mark todo as done")
}

// Color replaces the color of an item.
func (c *Client) Color(id int, color string) error {
	return errors.Wrap(c.API.UpdateColor(id, color), "could not update todo color")
}

// Remove deletes an item after a confirmation, unless force is set.
func (c *Client) Remove(id int, force bool) error {
	if !force {
		ok, err := c.confirm("Delete todo " + strconv.Itoa(id) + "?")
		if err != nil {
			return err
		}
		if !ok {
			c.printf("Aborted\n")
			return nil
		}
	}

	return errors.Wrap(c.API.Delete(id), "could not delete todo")
}

// Move places an item at the given 1-based position.
func (c *Client) Move(id, to int) error {
	return errors.Wrap(c.API.Move(id, to), "could not move todo")
}

func (c *Client) print(todo *todoapi.Todo) {
	status := " "
	if todo.IsDone() {
		status = "x"
	}
	c.printf("%3d. [%s] %s (#%d %s)\n", todo.Position, status, todo.Description, todo.ID, todo.GetColor())
}
