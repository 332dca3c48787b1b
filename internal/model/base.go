package model

import "time"

type (
	// A Model is a record that can be saved in database.
	// The database assigns the id and the timestamps.
	Model interface {
		GetID() int
		GetCreatedAt() *time.Time
		SetCreatedAt(time.Time)
		GetUpdatedAt() *time.Time
		SetUpdatedAt(time.Time)
	}

	// A Base holds the fields managed by the database.
	// ID is assigned on the first save and never changes afterwards.
	Base struct {
		ID        int        `json:"id"         msgpack:"id"         storm:"id,increment"`
		CreatedAt *time.Time `json:"created_at" msgpack:"created_at" storm:"index"`
		UpdatedAt *time.Time `json:"updated_at" msgpack:"updated_at"`
	}
)

// GetID returns the record id, 0 until the first save.
func (m *Base) GetID() int {
	return m.ID
}

// GetCreatedAt returns the date of the first save.
func (m *Base) GetCreatedAt() *time.Time {
	return m.CreatedAt
}

// SetCreatedAt sets the date of the first save.
func (m *Base) SetCreatedAt(t time.Time) {
	m.CreatedAt = &t
}

// GetUpdatedAt returns the date of the last save.
func (m *Base) GetUpdatedAt() *time.Time {
	return m.UpdatedAt
}

// SetUpdatedAt sets the date of the last save.
func (m *Base) SetUpdatedAt(t time.Time) {
	m.UpdatedAt = &t
}

// CreatedBefore returns true if m was created before o.
// Records never saved come last, equal dates are ordered by id.
func (m *Base) CreatedBefore(o Model) bool {
	a, b := m.CreatedAt, o.GetCreatedAt()
	switch {
	case a == nil && b == nil:
	case a == nil:
		return false
	case b == nil:
		return true
	case !a.Equal(*b):
		return a.Before(*b)
	}
	return m.ID < o.GetID()
}
