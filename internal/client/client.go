// Package client implements the todoctl commands on top of the todolist API.
package client

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/mdouchement/todolist/pkg/todoapi"
	"github.com/pkg/errors"
)

// EndpointEnv is the environment variable used when no endpoint is given.
const EndpointEnv = "TODOLIST_ENDPOINT"

// DefaultEndpoint is used when neither the flag nor the environment provide an endpoint.
const DefaultEndpoint = "http://localhost:5000"

// A Client runs the todoctl commands.
type Client struct {
	API    todoapi.Client
	Out    io.Writer
	Prompt func(prompt string) (string, error)
}

// New returns a Client talking to the given endpoint.
// The value of EndpointEnv is used when endpoint is empty.
func New(endpoint string) (*Client, error) {
	if endpoint == "" {
		endpoint = os.Getenv(EndpointEnv)
	}
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}

	api, err := todoapi.NewDefaultClient(endpoint)
	if err != nil {
		return nil, errors.Wrap(err, "could not reach given endpoint")
	}

	return &Client{
		API:    api,
		Out:    os.Stdout,
		Prompt: readline.Line,
	}, nil
}

func (c *Client) printf(format string, a ...any) {
	fmt.Fprintf(c.Out, format, a...)
}

func (c *Client) confirm(question string) (bool, error) {
	answer, err := c.Prompt(question + " [y/N]: ")
	if err != nil {
		return false, errors.Wrap(err, "could not read answer from stdin")
	}

	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
