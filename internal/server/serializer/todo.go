package serializer

import "github.com/mdouchement/todolist/internal/model"

// A TodoItem is the rendered form of an item.
type TodoItem struct {
	ID          int     `json:"id"`
	Description string  `json:"description"`
	Done        int     `json:"is_done"`
	Position    int     `json:"item_position"`
	Color       *string `json:"list_color"`
}

// Todo serializes the given item.
func Todo(item *model.Item) TodoItem {
	todo := TodoItem{
		ID:          item.ID,
		Description: item.Description,
		Position:    item.Position,
	}

	if item.Done {
		todo.Done = 1
	}

	if item.Color != "" {
		color := item.Color
		todo.Color = &color
	}

	return todo
}

// Todos serializes the given items.
func Todos(items []*model.Item) []TodoItem {
	todos := make([]TodoItem, 0, len(items))
	for _, item := range items {
		todos = append(todos, Todo(item))
	}
	return todos
}
