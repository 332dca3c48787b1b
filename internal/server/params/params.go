// Package params normalizes the loosely typed values received by the API.
//
// Ids and positions are accepted as numbers, numeric strings or single-element arrays
// (e.g. 5, "5", [5], ["5"]) and are always handed to the services as plain integers.
package params

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/mdouchement/todolist/internal/position"
	"github.com/mdouchement/todolist/internal/todoerr"
	"github.com/valyala/fastjson"
)

type (
	// CreateParams are the fields used to create an item.
	CreateParams struct {
		Description string `json:"new-list-item-text" form:"new-list-item-text"`
	}

	// DescriptionParams are the fields used to update the description of an item.
	DescriptionParams struct {
		Description string `json:"description" form:"description"`
	}

	// ColorParams are the fields used to update the color of an item.
	ColorParams struct {
		Color string `json:"color" form:"color"`
	}
)

// ID returns the integer value of the given raw id, 0 if it can't be parsed.
func ID(raw string) int {
	if unescaped, err := url.PathUnescape(raw); err == nil {
		raw = unescaped
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}

	if id, err := strconv.Atoi(raw); err == nil {
		return id
	}

	v, err := fastjson.Parse(raw)
	if err != nil {
		return 0
	}
	return Int(v)
}

// Int returns the integer value of v.
// Missing or unsupported values are 0, arrays are reduced to their first element.
func Int(v *fastjson.Value) int {
	if v == nil {
		return 0
	}

	switch v.Type() {
	case fastjson.TypeNumber:
		if n, err := v.Int(); err == nil {
			return n
		}
		return int(v.GetFloat64())
	case fastjson.TypeString:
		n, err := strconv.Atoi(strings.TrimSpace(string(v.GetStringBytes())))
		if err != nil {
			return 0
		}
		return n
	case fastjson.TypeArray:
		values := v.GetArray()
		if len(values) == 0 {
			return 0
		}
		return Int(values[0])
	case fastjson.TypeTrue:
		return 1
	default:
		return 0
	}
}

// Order parses a reorder payload `{"order":[{"id":1,"position":2}, ...]}`.
func Order(payload []byte) ([]position.Move, error) {
	v, err := fastjson.ParseBytes(payload)
	if err != nil {
		return nil, todoerr.Malformed("Invalid request")
	}

	order := v.Get("order")
	if order == nil || order.Type() != fastjson.TypeArray {
		return nil, todoerr.Malformed("Invalid request")
	}

	values := order.GetArray()
	moves := make([]position.Move, 0, len(values))
	for _, value := range values {
		moves = append(moves, position.Move{
			ID:       Int(value.Get("id")),
			Position: Int(value.Get("position")),
		})
	}
	return moves, nil
}
