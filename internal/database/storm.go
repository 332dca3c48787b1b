package database

import (
	"time"

	"github.com/asdine/storm/v3"
	"github.com/asdine/storm/v3/q"
	"github.com/mdouchement/todolist/internal/model"
	"github.com/mdouchement/todolist/pkg/stormcodec"
	"github.com/pkg/errors"
	bolt "go.etcd.io/bbolt"
)

type (
	// Options are the parameters used to open a Storm database.
	Options struct {
		// Codec is the name of the format used to store records (see stormcodec.Names).
		Codec string
		// Timeout is the amount of time to wait to obtain the file lock.
		// Zero means waiting indefinitely.
		Timeout time.Duration
	}

	strm struct {
		db   *storm.DB
		node storm.Node
		tx   bool
	}
)

// StormInit initializes Storm database.
func StormInit(database string, options Options) error {
	db, err := open(database, options)
	if err != nil {
		return err
	}
	defer db.Close()

	err = db.Init(&model.Item{})
	return errors.Wrap(err, "could not init item index")
}

// StormReIndex reindex Storm database.
func StormReIndex(database string, options Options) error {
	db, err := open(database, options)
	if err != nil {
		return err
	}
	defer db.Close()

	err = db.ReIndex(&model.Item{})
	return errors.Wrap(err, "could not ReIndex items")
}

// StormOpen returns a new Storm database connection.
func StormOpen(database string, options Options) (Client, error) {
	db, err := open(database, options)
	if err != nil {
		return nil, err
	}

	return &strm{
		db:   db,
		node: db,
	}, nil
}

func open(database string, options Options) (*storm.DB, error) {
	codec, err := stormcodec.ByName(options.Codec)
	if err != nil {
		return nil, err
	}

	db, err := storm.Open(database,
		storm.Codec(codec),
		storm.BoltOptions(0600, &bolt.Options{Timeout: options.Timeout}),
	)
	return db, errors.Wrap(err, "could not get database connection")
}

// Transaction runs fn inside one read-write transaction.
func (c *strm) Transaction(fn func(tx ItemInteraction) error) error {
	if c.tx {
		return fn(c)
	}

	node, err := c.node.Begin(true)
	if err != nil {
		return errors.Wrap(err, "could not begin transaction")
	}
	defer node.Rollback() // nolint:errcheck // no-op once committed

	if err = fn(&strm{db: c.db, node: node, tx: true}); err != nil {
		return err
	}

	return errors.Wrap(node.Commit(), "could not commit transaction")
}

// Save inserts or updates the entry in database with the given model.
func (c *strm) Save(m model.Model) error {
	t := time.Now().UTC()
	m.SetUpdatedAt(t)

	if m.GetCreatedAt() == nil {
		m.SetCreatedAt(t)
	}

	return errors.Wrap(c.node.Save(m), "could not save the model")
}

// Delete deletes the entry in database with the given model.
func (c *strm) Delete(m model.Model) error {
	return errors.Wrap(c.node.DeleteStruct(m), "could not delete the model")
}

// Close the database.
func (c *strm) Close() error {
	if c.tx {
		return errors.New("could not close the database from a transaction")
	}
	return c.db.Close()
}

// IsNotFound returns true if err is a not found error.
func (c *strm) IsNotFound(err error) bool {
	return errors.Cause(err) == storm.ErrNotFound
}

// FindItem returns the item for the given id.
func (c *strm) FindItem(id int) (*model.Item, error) {
	var item model.Item
	if err := c.node.One("ID", id, &item); err != nil {
		return nil, errors.Wrap(err, "could not find item")
	}
	return &item, nil
}

// FindItems returns all the items ordered by position.
func (c *strm) FindItems() ([]*model.Item, error) {
	items := make([]*model.Item, 0)
	err := c.node.Select().OrderBy("Position", "ID").Find(&items)
	if err != nil && !c.IsNotFound(err) {
		return nil, errors.Wrap(err, "could not find items")
	}
	return items, nil
}

// FindItemsAfterPosition returns the items having a position strictly greater than the given one.
func (c *strm) FindItemsAfterPosition(position int) ([]*model.Item, error) {
	items := make([]*model.Item, 0)
	err := c.node.Select(q.Gt("Position", position)).OrderBy("Position", "ID").Find(&items)
	if err != nil && !c.IsNotFound(err) {
		return nil, errors.Wrap(err, "could not find items by position")
	}
	return items, nil
}

// FindItemsByIDs returns the items matching the given ids indexed by their id.
func (c *strm) FindItemsByIDs(ids []int) (map[int]*model.Item, error) {
	found := make(map[int]*model.Item, len(ids))
	if len(ids) == 0 {
		return found, nil
	}

	items := make([]*model.Item, 0, len(ids))
	err := c.node.Select(q.In("ID", ids)).Find(&items)
	if err != nil && !c.IsNotFound(err) {
		return nil, errors.Wrap(err, "could not find items by ids")
	}

	for _, item := range items {
		found[item.ID] = item
	}
	return found, nil
}

// MaxPosition returns the greatest position in use, 0 when there is no item.
func (c *strm) MaxPosition() (int, error) {
	var item model.Item
	err := c.node.Select().OrderBy("Position").Reverse().First(&item)
	if err != nil {
		if c.IsNotFound(err) {
			return 0, nil
		}
		return 0, errors.Wrap(err, "could not find max position")
	}
	return item.Position, nil
}

// DeleteItem deletes the item for the given id.
func (c *strm) DeleteItem(id int) error {
	item, err := c.FindItem(id)
	if err != nil {
		return err
	}
	return errors.Wrap(c.node.DeleteStruct(item), "could not delete item")
}
