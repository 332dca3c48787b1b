package serializer_test

import (
	"encoding/json"
	"testing"

	"github.com/mdouchement/todolist/internal/model"
	"github.com/mdouchement/todolist/internal/server/serializer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTodo(t *testing.T) {
	item := &model.Item{
		Base:        model.Base{ID: 4},
		Description: "buy milk",
		Done:        true,
		Position:    2,
		Color:       "#73b8bf",
	}

	payload, err := json.Marshal(serializer.Todo(item))
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":4,"description":"buy milk","is_done":1,"item_position":2,"list_color":"#73b8bf"}`, string(payload))

	item.Done = false
	item.Color = ""
	payload, err = json.Marshal(serializer.Todo(item))
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":4,"description":"buy milk","is_done":0,"item_position":2,"list_color":null}`, string(payload))
}

func TestEnvelope(t *testing.T) {
	payload, err := json.Marshal(serializer.Success("All Todos List").With("todos", serializer.Todos(nil)))
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"success","message":"All Todos List","todos":[]}`, string(payload))

	payload, err = json.Marshal(serializer.Failure("Todo not found"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"error","message":"Todo not found"}`, string(payload))
}
