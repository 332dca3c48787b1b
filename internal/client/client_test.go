package client_test

import (
	"bytes"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/mdouchement/todolist/internal/client"
	"github.com/mdouchement/todolist/internal/database"
	"github.com/mdouchement/todolist/internal/logger"
	"github.com/mdouchement/todolist/internal/model"
	"github.com/mdouchement/todolist/internal/position"
	"github.com/mdouchement/todolist/internal/server"
	"github.com/mdouchement/todolist/pkg/todoapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient(t *testing.T) {
	c, out, cleanup := setup(t, "")
	defer cleanup()

	require.NoError(t, c.List())
	assert.Equal(t, "Nothing to do\n", out.String())

	out.Reset()
	require.NoError(t, c.Add("milk"))
	require.NoError(t, c.Add("eggs"))
	assert.Equal(t, "  1. [ ] milk (#1 #73b8bf)\n  2. [ ] eggs (#2 #73b8bf)\n", out.String())

	out.Reset()
	require.NoError(t, c.Edit(2, "brown eggs"))
	require.NoError(t, c.Done(2))
	require.NoError(t, c.Color(1, "#000000"))
	require.NoError(t, c.Move(2, 1))
	require.NoError(t, c.List())
	assert.Equal(t, "  2. [ ] brown eggs (#2 #73b8bf)\n  1. [x] brown eggs (#2 #73b8bf)\n  2. [ ] milk (#1 #000000)\n", out.String())
}

func TestClient_AddPrompt(t *testing.T) {
	c, out, cleanup := setup(t, "bread")
	defer cleanup()

	require.NoError(t, c.Add(""))
	assert.Equal(t, "  1. [ ] bread (#1 #73b8bf)\n", out.String())
}

func TestClient_Remove(t *testing.T) {
	c, out, cleanup := setup(t, "n")
	defer cleanup()

	require.NoError(t, c.Add("milk"))
	out.Reset()

	require.NoError(t, c.Remove(1, false))
	assert.Equal(t, "Aborted\n", out.String())

	todos, err := c.API.List()
	require.NoError(t, err)
	assert.Len(t, todos, 1)

	c.Prompt = func(string) (string, error) { return "yes", nil }
	require.NoError(t, c.Remove(1, false))

	todos, err = c.API.List()
	require.NoError(t, err)
	assert.Empty(t, todos)

	err = c.Remove(1, true)
	assert.EqualError(t, err, "could not delete todo: Item not found")
}

func setup(t *testing.T, answer string) (*client.Client, *bytes.Buffer, func()) {
	tmpfile, err := os.CreateTemp("", "todolist.*.db")
	require.NoError(t, err)
	filename := tmpfile.Name()
	tmpfile.Close()

	db, err := database.StormOpen(filename, database.Options{})
	require.NoError(t, err)

	ts := httptest.NewServer(server.EchoEngine(server.IOC{
		Version:       "test",
		Database:      db,
		Logger:        logger.Discard(),
		DefaultColor:  model.DefaultColor,
		BatchSize:     position.DefaultBatchSize,
		ReorderPolicy: position.PolicyRepair,
	}))

	api, err := todoapi.NewClient(ts.Client(), ts.URL)
	require.NoError(t, err)

	out := new(bytes.Buffer)
	c := &client.Client{
		API:    api,
		Out:    out,
		Prompt: func(string) (string, error) { return answer, nil },
	}

	return c, out, func() {
		ts.Close()
		db.Close()
		os.RemoveAll(filename)
	}
}
