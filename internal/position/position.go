// Package position maintains the dense 1..N ordering of the items.
//
// All the functions expect a transaction-bound database.ItemInteraction so that a failure
// in the middle of a reindex is rolled back with the rest of the transaction.
package position

import (
	"sort"

	"github.com/mdouchement/todolist/internal/database"
	"github.com/mdouchement/todolist/internal/model"
	"github.com/pkg/errors"
)

// DefaultBatchSize is the number of moves processed per chunk by Apply.
const DefaultBatchSize = 100

// ErrNotContiguous is returned by Reorder with PolicyReject when the moves leave gaps or duplicates.
var ErrNotContiguous = errors.New("positions are not contiguous")

// A Move assigns a new position to the item identified by ID.
type Move struct {
	ID       int
	Position int
}

// Next returns the position of an item appended to the list.
func Next(tx database.ItemInteraction) (int, error) {
	max, err := tx.MaxPosition()
	if err != nil {
		return 0, err
	}
	return max + 1, nil
}

// Compact shifts down by one every item placed after the removed position.
// It returns the number of shifted items.
func Compact(tx database.ItemInteraction, removed int) (int, error) {
	items, err := tx.FindItemsAfterPosition(removed)
	if err != nil {
		return 0, err
	}

	for _, item := range items {
		item.Position--
		if err = tx.Save(item); err != nil {
			return 0, errors.Wrapf(err, "could not shift item %d", item.ID)
		}
	}
	return len(items), nil
}

// Apply assigns the requested positions to the referenced items.
// Unknown ids and moves with non-positive id or position are ignored, items not referenced are left untouched.
// Moves are processed by chunks of batchSize items, each chunk is resolved with a single lookup.
// It returns the number of rewritten items.
func Apply(tx database.ItemInteraction, moves []Move, batchSize int) (int, error) {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}

	var n int
	for start := 0; start < len(moves); start += batchSize {
		end := start + batchSize
		if end > len(moves) {
			end = len(moves)
		}

		applied, err := apply(tx, moves[start:end])
		if err != nil {
			return 0, err
		}
		n += applied
	}
	return n, nil
}

func apply(tx database.ItemInteraction, chunk []Move) (int, error) {
	ids := make([]int, 0, len(chunk))
	for _, move := range chunk {
		if move.ID > 0 && move.Position > 0 {
			ids = append(ids, move.ID)
		}
	}

	items, err := tx.FindItemsByIDs(ids)
	if err != nil {
		return 0, err
	}

	var n int
	for _, move := range chunk {
		if move.Position <= 0 {
			continue
		}

		item, ok := items[move.ID]
		if !ok || item.Position == move.Position {
			continue
		}

		item.Position = move.Position
		if err = tx.Save(item); err != nil {
			return 0, errors.Wrapf(err, "could not move item %d", item.ID)
		}
		n++
	}
	return n, nil
}

// Repair renumbers all the items from 1 to N keeping their relative order.
// Items sharing a position are ordered by creation. It returns the number of moved items.
func Repair(tx database.ItemInteraction) (int, error) {
	return repair(tx, nil)
}

// repair renumbers the items and places the moved ones ahead of the others sharing their position.
func repair(tx database.ItemInteraction, moved map[int]bool) (int, error) {
	items, err := tx.FindItems()
	if err != nil {
		return 0, err
	}

	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if a.Position != b.Position {
			return a.Position < b.Position
		}
		if moved[a.ID] != moved[b.ID] {
			return moved[a.ID]
		}
		return a.CreatedBefore(b)
	})

	var n int
	for i, item := range items {
		if item.Position == i+1 {
			continue
		}

		item.Position = i + 1
		if err = tx.Save(item); err != nil {
			return 0, errors.Wrapf(err, "could not repair item %d", item.ID)
		}
		n++
	}
	return n, nil
}

// Contiguous returns true if the given items, ordered by position, are numbered exactly from 1 to N.
func Contiguous(items []*model.Item) bool {
	for i, item := range items {
		if item.Position != i+1 {
			return false
		}
	}
	return true
}

// Reorder applies the moves and enforces the given policy on the resulting ordering.
func Reorder(tx database.ItemInteraction, moves []Move, batchSize int, policy Policy) error {
	if _, err := Apply(tx, moves, batchSize); err != nil {
		return err
	}

	if policy == PolicyKeep {
		return nil
	}

	items, err := tx.FindItems()
	if err != nil {
		return err
	}

	if Contiguous(items) {
		return nil
	}

	if policy == PolicyReject {
		return ErrNotContiguous
	}

	moved := make(map[int]bool, len(moves))
	for _, move := range moves {
		if move.ID > 0 && move.Position > 0 {
			moved[move.ID] = true
		}
	}

	_, err = repair(tx, moved)
	return err
}
