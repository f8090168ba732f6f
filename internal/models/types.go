package models

import (
	"database/sql/driver"
	"encoding/json"
)

// RoomIDList is stored as a JSON array of room ids.
type RoomIDList []uint

// Value implements the driver.Valuer interface
func (r RoomIDList) Value() (driver.Value, error) {
	if r == nil {
		return nil, nil
	}
	return json.Marshal(r)
}

// Scan implements the sql.Scanner interface. Malformed stored data
// degrades to an empty list so reads never fail on a bad row.
func (r *RoomIDList) Scan(value interface{}) error {
	if value == nil {
		*r = nil
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		*r = nil
		return nil
	}

	if len(bytes) == 0 {
		*r = nil
		return nil
	}

	var ids []uint
	if err := json.Unmarshal(bytes, &ids); err != nil {
		*r = nil
		return nil
	}
	*r = ids
	return nil
}
