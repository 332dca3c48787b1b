package todoapi

type (
	// A Todo is an item of the list as returned by the server.
	Todo struct {
		ID          int     `json:"id"`
		Description string  `json:"description"`
		Done        int     `json:"is_done"`
		Position    int     `json:"item_position"`
		Color       *string `json:"list_color"`
	}

	// An Order is the target position of an item.
	Order struct {
		ID       int `json:"id"`
		Position int `json:"position"`
	}

	envelope struct {
		Status  string  `json:"status"`
		Message string  `json:"message"`
		Todo    *Todo   `json:"todo,omitempty"`
		Todos   []*Todo `json:"todos,omitempty"`
	}
)

// IsDone returns true if the item is marked as done.
func (t *Todo) IsDone() bool {
	return t.Done != 0
}

// GetColor returns the color of the item or an empty string.
func (t *Todo) GetColor() string {
	if t.Color == nil {
		return ""
	}
	return *t.Color
}

// MoveOrder returns the complete order of todos once the item id is moved to the 1-based slot to.
// The slot is clamped to the list bounds. It returns false when id is not part of todos.
func MoveOrder(todos []*Todo, id, to int) ([]Order, bool) {
	ids := make([]int, 0, len(todos))
	found := false
	for _, t := range todos {
		if t.ID == id {
			found = true
			continue
		}
		ids = append(ids, t.ID)
	}
	if !found {
		return nil, false
	}

	if to < 1 {
		to = 1
	}
	if to > len(ids)+1 {
		to = len(ids) + 1
	}

	ids = append(ids, 0)
	copy(ids[to:], ids[to-1:])
	ids[to-1] = id

	order := make([]Order, len(ids))
	for i, id := range ids {
		order[i] = Order{ID: id, Position: i + 1}
	}
	return order, true
}
