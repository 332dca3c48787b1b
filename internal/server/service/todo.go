package service

import (
	"strings"

	"github.com/mdouchement/todolist/internal/database"
	"github.com/mdouchement/todolist/internal/model"
	"github.com/mdouchement/todolist/internal/position"
	"github.com/mdouchement/todolist/internal/todoerr"
	"github.com/sirupsen/logrus"
)

// A Todo orchestrates all the operations performed on the todo items.
// It holds no state between calls.
type Todo struct {
	db  database.Client
	opt Options
}

// NewTodo instantiates a new Todo service.
func NewTodo(db database.Client, opt Options) *Todo {
	return &Todo{
		db:  db,
		opt: opt.withDefaults(),
	}
}

// List returns all the items ordered by position.
func (s *Todo) List() ([]*model.Item, error) {
	items, err := s.db.FindItems()
	if err != nil {
		return nil, s.storage(err, "list", 0, "Could not fetch todos")
	}
	return items, nil
}

// Create appends a new item with the given description to the list.
func (s *Todo) Create(description string) (*model.Item, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, todoerr.Validation("Description cannot be empty")
	}

	item := model.NewItem(description, s.opt.DefaultColor)
	err := s.db.Transaction(func(tx database.ItemInteraction) (err error) {
		// Reading the max position in the write transaction serializes concurrent creations.
		item.Position, err = position.Next(tx)
		if err != nil {
			return err
		}
		return tx.Save(item)
	})
	if err != nil {
		return nil, s.storage(err, "create", 0, "Failed to add item")
	}

	s.log("create", item.ID).Debug("todo created")
	return item, nil
}

// UpdateDescription replaces the description of the item.
func (s *Todo) UpdateDescription(id int, description string) (*model.Item, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, todoerr.Validation("Description cannot be empty")
	}
	if id <= 0 {
		return nil, todoerr.Validation("Id cannot be empty")
	}

	item, err := s.find("update", id)
	if err != nil {
		return nil, err
	}

	item.Description = description
	if err = s.db.Save(item); err != nil {
		return nil, s.storage(err, "update", id, "Failed to update item")
	}
	return item, nil
}

// MarkDone flags the item as done.
func (s *Todo) MarkDone(id int) error {
	if id <= 0 {
		return todoerr.Validation("Id cannot be empty")
	}

	item, err := s.find("done", id)
	if err != nil {
		return err
	}

	item.Done = true
	if err = s.db.Save(item); err != nil {
		return s.storage(err, "done", id, "Failed to update")
	}
	return nil
}

// UpdateColor replaces the color of the item.
func (s *Todo) UpdateColor(id int, color string) error {
	if id <= 0 {
		return todoerr.Validation("Id cannot be empty")
	}

	color = strings.TrimSpace(color)
	if color == "" {
		return todoerr.Validation("Color cannot be empty")
	}

	item, err := s.find("color", id)
	if err != nil {
		return err
	}

	item.Color = color
	if err = s.db.Save(item); err != nil {
		return s.storage(err, "color", id, "Failed to update color")
	}
	return nil
}

// Reorder applies the given moves as a whole.
// Unknown ids are ignored.
func (s *Todo) Reorder(moves []position.Move) error {
	s.log("reorder", 0).WithField("moves", len(moves)).Info("Updating positions of todo items")

	err := s.db.Transaction(func(tx database.ItemInteraction) error {
		return position.Reorder(tx, moves, s.opt.BatchSize, s.opt.Policy)
	})
	if err == position.ErrNotContiguous {
		s.log("reorder", 0).Warn("Rejected non-contiguous positions")
		return todoerr.Validation("Positions must cover every item from 1 to N")
	}
	if err != nil {
		return s.storage(err, "reorder", 0, "Could not update positions")
	}
	return nil
}

// Delete removes the item and shifts down the items placed after it.
func (s *Todo) Delete(id int) error {
	if id <= 0 {
		return todoerr.Validation("Id cannot be empty")
	}

	err := s.db.Transaction(func(tx database.ItemInteraction) error {
		item, err := tx.FindItem(id)
		if err != nil {
			if tx.IsNotFound(err) {
				return todoerr.NotFound("Item not found")
			}
			return err
		}

		if err = tx.Delete(item); err != nil {
			return err
		}

		_, err = position.Compact(tx, item.Position)
		return err
	})
	if todoerr.KindOf(err) == todoerr.KindNotFound {
		s.log("delete", id).Warn("todo not found")
		return err
	}
	if err != nil {
		return s.storage(err, "delete", id, "Could not delete item")
	}
	return nil
}

// Repair renumbers all the items from 1 to N and returns the number of moved items.
func (s *Todo) Repair() (n int, err error) {
	err = s.db.Transaction(func(tx database.ItemInteraction) error {
		n, err = position.Repair(tx)
		return err
	})
	if err != nil {
		return 0, s.storage(err, "repair", 0, "Could not repair positions")
	}
	return n, nil
}

func (s *Todo) find(operation string, id int) (*model.Item, error) {
	item, err := s.db.FindItem(id)
	if err != nil {
		if s.db.IsNotFound(err) {
			s.log(operation, id).Warn("todo not found")
			return nil, todoerr.NotFound("Todo not found")
		}
		return nil, s.storage(err, operation, id, "Could not fetch todo")
	}
	return item, nil
}

func (s *Todo) storage(err error, operation string, id int, message string) error {
	s.log(operation, id).WithError(err).Error(message)
	return todoerr.Storage(err, message)
}

func (s *Todo) log(operation string, id int) logrus.FieldLogger {
	fields := logrus.Fields{"operation": operation}
	if id > 0 {
		fields["id"] = id
	}
	return s.opt.Logger.WithFields(fields)
}
