package todoapi

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"path"
	"strconv"

	"github.com/pkg/errors"
)

type (
	// A Client defines all interactions that can be performed on a todolist server.
	Client interface {
		// Version returns the version of the server.
		Version() (string, error)
		// List returns all the items ordered by position.
		List() ([]*Todo, error)
		// Create appends a new item to the list.
		Create(description string) (*Todo, error)
		// UpdateDescription replaces the description of an item.
		UpdateDescription(id int, description string) (*Todo, error)
		// MarkDone flags an item as done.
		MarkDone(id int) error
		// UpdateColor replaces the color of an item.
		UpdateColor(id int, color string) error
		// Reorder submits new positions.
		Reorder(order []Order) error
		// Move places the item at the given 1-based slot and renumbers all the others.
		Move(id, to int) error
		// Delete removes an item.
		Delete(id int) error
	}

	p      map[string]any
	client struct {
		http     *http.Client
		endpoint string
	}
)

// NewDefaultClient returns a new Client with default HTTP client.
func NewDefaultClient(endpoint string) (Client, error) {
	return NewClient(http.DefaultClient, endpoint)
}

// NewClient returns a new Client.
func NewClient(c *http.Client, endpoint string) (Client, error) {
	_, err := url.Parse(endpoint)
	return &client{endpoint: endpoint, http: c}, errors.Wrap(err, "could not parse endpoint")
}

func (c *client) Version() (string, error) {
	res, err := c.do(http.MethodGet, "/version", nil)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()

	var version struct {
		Version string `json:"version"`
	}
	dec := json.NewDecoder(res.Body)
	return version.Version, errors.Wrap(dec.Decode(&version), "could not parse response")
}

func (c *client) List() ([]*Todo, error) {
	env, err := c.envelope(http.MethodGet, "/todos", nil)
	if err != nil {
		return nil, err
	}
	if env.Todos == nil {
		env.Todos = []*Todo{}
	}
	return env.Todos, nil
}

func (c *client) Create(description string) (*Todo, error) {
	env, err := c.envelope(http.MethodPost, "/todos", p{"new-list-item-text": description})
	if err != nil {
		return nil, err
	}
	return env.Todo, nil
}

func (c *client) UpdateDescription(id int, description string) (*Todo, error) {
	env, err := c.envelope(http.MethodPut, path.Join("/todos", strconv.Itoa(id)), p{"description": description})
	if err != nil {
		return nil, err
	}
	return env.Todo, nil
}

func (c *client) MarkDone(id int) error {
	_, err := c.envelope(http.MethodPut, path.Join("/todos/done", strconv.Itoa(id)), nil)
	return err
}

func (c *client) UpdateColor(id int, color string) error {
	_, err := c.envelope(http.MethodPut, path.Join("/todos/color", strconv.Itoa(id)), p{"color": color})
	return err
}

func (c *client) Reorder(order []Order) error {
	if order == nil {
		order = []Order{}
	}
	_, err := c.envelope(http.MethodPut, "/todos/update-positions", p{"order": order})
	return err
}

func (c *client) Move(id, to int) error {
	todos, err := c.List()
	if err != nil {
		return errors.Wrap(err, "could not fetch todos")
	}

	order, ok := MoveOrder(todos, id, to)
	if !ok {
		return &Error{StatusCode: http.StatusNotFound, Status: "error", Message: "Todo not found"}
	}
	return c.Reorder(order)
}

func (c *client) Delete(id int) error {
	_, err := c.envelope(http.MethodDelete, path.Join("/todos", strconv.Itoa(id)), nil)
	return err
}

func (c *client) envelope(method, route string, payload p) (*envelope, error) {
	res, err := c.do(method, route, payload)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	//
	// Process response
	var env envelope
	dec := json.NewDecoder(res.Body)
	return &env, errors.Wrap(dec.Decode(&env), "could not parse response")
}

// do performs the request and returns the response when its status is not an error.
func (c *client) do(method, route string, payload p) (*http.Response, error) {
	u, err := url.Parse(c.endpoint)
	if err != nil {
		return nil, errors.Wrap(err, "could not parse endpoint")
	}
	u.Path = path.Join(u.Path, route)

	//
	// Build request
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, errors.Wrap(err, "could not serialize payload")
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, u.String(), body)
	if err != nil {
		return nil, errors.Wrap(err, "could not build request")
	}
	req.Close = true
	req.Header.Add("Content-Type", "application/json")
	req.Header.Add("Accept", "application/json")

	//
	// Perform request
	res, err := c.http.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "could not perform request")
	}

	if res.StatusCode >= 400 {
		defer res.Body.Close()
		return nil, parseError(res.Body, res.StatusCode)
	}
	return res, nil
}
