package api

import "encoding/json"

// decodeList accepts either a bare JSON array or an object wrapping the
// array under one of the given keys. Backend envelope shapes vary between
// deployments, so every list endpoint normalizes through here.
func decodeList[T any](raw json.RawMessage, keys ...string) []T {
	if len(raw) == 0 {
		return nil
	}
	var direct []T
	if err := json.Unmarshal(raw, &direct); err == nil {
		return direct
	}
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil
	}
	for _, k := range keys {
		if v, ok := envelope[k]; ok {
			var out []T
			if err := json.Unmarshal(v, &out); err == nil && out != nil {
				return out
			}
		}
	}
	return nil
}
