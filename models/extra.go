package models

import "encoding/json"

// decodeWithExtra decodes data into typed and returns the top-level keys
// that are not in known, or nil when there are none.
func decodeWithExtra(data []byte, typed any, known []string) (map[string]any, error) {
	if err := json.Unmarshal(data, typed); err != nil {
		return nil, err
	}
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	for _, k := range known {
		delete(raw, k)
	}
	if len(raw) == 0 {
		return nil, nil
	}
	return raw, nil
}

// encodeWithExtra encodes typed and merges extra into the resulting object.
// Typed fields win over extras with the same key.
func encodeWithExtra(typed any, extra map[string]any) ([]byte, error) {
	data, err := json.Marshal(typed)
	if err != nil || len(extra) == 0 {
		return data, err
	}
	var out map[string]any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	for k, v := range extra {
		if _, ok := out[k]; !ok {
			out[k] = v
		}
	}
	return json.Marshal(out)
}
