// Package structs reads the fields of structures by their names.
package structs

import (
	"github.com/oleiade/reflections"
	"github.com/pkg/errors"
)

// GetField returns the value of the provided obj field. obj can whether be a structure or pointer to structure.
func GetField(obj any, name string) (any, error) {
	v, err := reflections.GetField(obj, name)
	return v, errors.Wrapf(err, "could not get field %s", name)
}

// Fields returns the names of the fields of obj.
func Fields(obj any) ([]string, error) {
	fields, err := reflections.FieldsDeep(obj)
	return fields, errors.Wrap(err, "could not list fields")
}

// Project returns the values of the given fields of obj, keyed by the field names.
// All the fields are returned when names is empty.
func Project(obj any, names ...string) (map[string]any, error) {
	if len(names) == 0 {
		var err error
		if names, err = Fields(obj); err != nil {
			return nil, err
		}
	}

	m := make(map[string]any, len(names))
	for _, name := range names {
		v, err := GetField(obj, name)
		if err != nil {
			return nil, err
		}
		m[name] = v
	}
	return m, nil
}
