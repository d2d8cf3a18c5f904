package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// JSONColumn stores V as a JSON text column.
type JSONColumn[V any] struct {
	V V
}

// Value implements driver.Valuer.
func (c JSONColumn[V]) Value() (driver.Value, error) {
	data, err := json.Marshal(c.V)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// Scan implements sql.Scanner. NULL, "" and "null" leave the zero value.
func (c *JSONColumn[V]) Scan(value interface{}) error {
	var zero V
	c.V = zero

	var data []byte
	switch v := value.(type) {
	case nil:
		return nil
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("JSONColumn Scan: unsupported type %T", value)
	}
	if len(data) == 0 || string(data) == "null" {
		return nil
	}
	return json.Unmarshal(data, &c.V)
}
