package todoapi

import (
	"encoding/json"
	"io"
	"net/http"
)

// An Error represents an error envelope returned by the todolist server.
type Error struct {
	StatusCode int    `json:"-"`
	Status     string `json:"status"`
	Message    string `json:"message"`
}

func parseError(r io.Reader, code int) error {
	var terr Error
	dec := json.NewDecoder(r)
	if err := dec.Decode(&terr); err != nil || terr.Message == "" {
		terr.Message = http.StatusText(code)
	}
	terr.StatusCode = code
	return &terr
}

func (e *Error) Error() string {
	return e.Message
}

// IsNotFound returns true if err is an Error with a 404 status code.
func IsNotFound(err error) bool {
	terr, ok := err.(*Error)
	return ok && terr.StatusCode == http.StatusNotFound
}
