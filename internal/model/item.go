package model

// DefaultColor is the color given to new items when none is configured.
const DefaultColor = "#73b8bf"

// An Item represents a todo entry stored in database.
// Position is the 1-based rank of the item in the list.
type Item struct {
	Base `msgpack:",inline" storm:"inline"`

	Description string `json:"description" msgpack:"description"`
	Done        bool   `json:"done"        msgpack:"done"        storm:"index"`
	Position    int    `json:"position"    msgpack:"position"    storm:"index"`
	Color       string `json:"color"       msgpack:"color,omitempty"`
}

// NewItem returns a new item with the given description and color.
func NewItem(description, color string) *Item {
	return &Item{
		Description: description,
		Color:       color,
	}
}
