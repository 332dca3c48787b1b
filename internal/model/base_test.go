package model_test

import (
	"testing"
	"time"

	"github.com/mdouchement/todolist/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestCreatedBefore(t *testing.T) {
	at := func(id int, t *time.Time) *model.Item {
		item := &model.Item{}
		item.ID = id
		item.CreatedAt = t
		return item
	}
	now := time.Now()
	later := now.Add(time.Second)

	assert.True(t, at(2, &now).CreatedBefore(at(1, &later)))
	assert.False(t, at(1, &later).CreatedBefore(at(2, &now)))
	assert.True(t, at(1, &now).CreatedBefore(at(2, &now)))
	assert.False(t, at(2, &now).CreatedBefore(at(1, &now)))
	assert.True(t, at(5, &now).CreatedBefore(at(1, nil)))
	assert.False(t, at(1, nil).CreatedBefore(at(5, &now)))
	assert.True(t, at(1, nil).CreatedBefore(at(2, nil)))
}
