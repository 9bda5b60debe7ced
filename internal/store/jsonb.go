package store

import "encoding/json"

// marshalStringList encodes a string slice for storage in a JSONB column.
// A nil slice is stored as an empty JSON array, never as SQL NULL.
func marshalStringList(values []string) ([]byte, error) {
	if values == nil {
		values = []string{}
	}
	return json.Marshal(values)
}

// unmarshalStringList decodes a JSONB column value back into a string
// slice. Empty input yields an empty slice.
func unmarshalStringList(data []byte) ([]string, error) {
	if len(data) == 0 {
		return []string{}, nil
	}

	var values []string
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, err
	}
	return values, nil
}
