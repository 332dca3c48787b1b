package database

import (
	"github.com/mdouchement/todolist/internal/model"
)

type (
	// A Client can interacts with the database.
	Client interface {
		ItemInteraction

		// Transaction runs fn inside one read-write transaction.
		// The transaction is committed when fn returns nil and rolled back otherwise,
		// the error returned by fn is returned as is.
		// Calling Transaction from a transaction-bound client joins the running transaction.
		Transaction(fn func(tx ItemInteraction) error) error
		// Close the database.
		Close() error
	}

	// An ItemInteraction defines all the methods used to interact with item records.
	// All of them can be used inside a transaction.
	ItemInteraction interface {
		// Save inserts or updates the entry in database with the given model.
		// An ID is assigned to the model on insertion.
		Save(m model.Model) error
		// Delete deletes the entry in database with the given model.
		Delete(m model.Model) error
		// IsNotFound returns true if err is a not found error.
		IsNotFound(err error) bool

		// FindItem returns the item for the given id.
		FindItem(id int) (*model.Item, error)
		// FindItems returns all the items ordered by position.
		FindItems() ([]*model.Item, error)
		// FindItemsAfterPosition returns the items having a position strictly greater than
		// the given one, ordered by position.
		FindItemsAfterPosition(position int) ([]*model.Item, error)
		// FindItemsByIDs returns the items matching the given ids indexed by their id.
		// Unknown ids are absent from the returned map.
		FindItemsByIDs(ids []int) (map[int]*model.Item, error)
		// MaxPosition returns the greatest position in use, 0 when there is no item.
		MaxPosition() (int, error)
		// DeleteItem deletes the item for the given id.
		DeleteItem(id int) error
	}
)
