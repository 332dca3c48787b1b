package todoerr_test

import (
	"net/http"
	"testing"

	"github.com/mdouchement/todolist/internal/todoerr"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestError(t *testing.T) {
	err := todoerr.Validation("Description cannot be empty")
	assert.Equal(t, "Description cannot be empty", err.Error())
	assert.Nil(t, err.Unwrap())

	cause := errors.New("timeout")
	err = todoerr.Storage(cause, "Failed to update item")
	assert.Equal(t, "Failed to update item: timeout", err.Error())
	assert.Equal(t, "Failed to update item", err.Message)
	assert.Equal(t, cause, err.Unwrap())
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, todoerr.KindValidation, todoerr.KindOf(todoerr.Validation("")))
	assert.Equal(t, todoerr.KindMalformed, todoerr.KindOf(todoerr.Malformed("")))
	assert.Equal(t, todoerr.KindNotFound, todoerr.KindOf(todoerr.NotFound("")))
	assert.Equal(t, todoerr.KindStorage, todoerr.KindOf(todoerr.Storage(nil, "")))
	assert.Equal(t, todoerr.KindUnknown, todoerr.KindOf(errors.New("boom")))
	assert.Equal(t, todoerr.KindUnknown, todoerr.KindOf(nil))

	wrapped := errors.Wrap(todoerr.NotFound("Todo not found"), "delete")
	assert.Equal(t, todoerr.KindNotFound, todoerr.KindOf(wrapped))
}

func TestStatusCode(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, todoerr.StatusCode(todoerr.Validation("")))
	assert.Equal(t, http.StatusBadRequest, todoerr.StatusCode(todoerr.Malformed("")))
	assert.Equal(t, http.StatusNotFound, todoerr.StatusCode(todoerr.NotFound("")))
	assert.Equal(t, http.StatusInternalServerError, todoerr.StatusCode(todoerr.Storage(nil, "")))
	assert.Equal(t, http.StatusInternalServerError, todoerr.StatusCode(errors.New("boom")))
}
