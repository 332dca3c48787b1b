package todoapi_test

import (
	"testing"

	"github.com/mdouchement/todolist/pkg/todoapi"
	"github.com/stretchr/testify/assert"
)

func TestMoveOrder(t *testing.T) {
	todos := []*todoapi.Todo{{ID: 1}, {ID: 2}, {ID: 3}, {ID: 4}}

	var tests = []struct {
		id       int
		to       int
		expected []int
	}{
		{id: 1, to: 3, expected: []int{2, 3, 1, 4}},
		{id: 4, to: 1, expected: []int{4, 1, 2, 3}},
		{id: 2, to: 2, expected: []int{1, 2, 3, 4}},
		{id: 2, to: 42, expected: []int{1, 3, 4, 2}},
		{id: 3, to: 0, expected: []int{3, 1, 2, 4}},
	}

	for _, test := range tests {
		order, ok := todoapi.MoveOrder(todos, test.id, test.to)
		assert.True(t, ok)

		var ids []int
		for i, o := range order {
			assert.Equal(t, i+1, o.Position)
			ids = append(ids, o.ID)
		}
		assert.Equal(t, test.expected, ids, "move %d to %d", test.id, test.to)
	}

	_, ok := todoapi.MoveOrder(todos, 42, 1)
	assert.False(t, ok)
}

func TestTodo(t *testing.T) {
	color := "#ffffff"

	todo := &todoapi.Todo{Done: 1, Color: &color}
	assert.True(t, todo.IsDone())
	assert.Equal(t, "#ffffff", todo.GetColor())

	todo = &todoapi.Todo{}
	assert.False(t, todo.IsDone())
	assert.Equal(t, "", todo.GetColor())
}
