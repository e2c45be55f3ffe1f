package main

import (
	"encoding/json"
	"fmt"
	"os"

	gridapi "gridscape/pkg/gridscape"
)

// loadEpisodeRequestFromConfig reads episode request fields from a JSON
// file. Command line flags set explicitly override the file values.
func loadEpisodeRequestFromConfig(path string) (gridapi.EpisodeRequest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return gridapi.EpisodeRequest{}, err
	}
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return gridapi.EpisodeRequest{}, fmt.Errorf("parse episode config %s: %w", path, err)
	}

	var req gridapi.EpisodeRequest
	if v, ok := asString(raw["scenario"]); ok {
		req.Scenario = v
	}
	if v, ok := asString(raw["pov"]); ok {
		req.POV = v
	}
	if v, ok := asInt(raw["task"]); ok {
		req.Task = v
	}
	if v, ok := asBool(raw["random"]); ok {
		req.Random = v
	}
	if v, ok := asInt64(raw["seed"]); ok {
		req.Seed = v
	}
	if v, ok := asString(raw["policy"]); ok {
		req.Policy = v
	}
	if v, ok := asIntSlice(raw["script"]); ok {
		req.Script = v
	}
	if v, ok := asBool(raw["record"]); ok {
		req.Record = v
	}
	return req, nil
}

func asString(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

func asBool(v any) (bool, bool) {
	b, ok := v.(bool)
	return b, ok
}

func asInt(v any) (int, bool) {
	switch x := v.(type) {
	case int:
		return x, true
	case float64:
		return int(x), true
	default:
		return 0, false
	}
}

func asInt64(v any) (int64, bool) {
	switch x := v.(type) {
	case int64:
		return x, true
	case int:
		return int64(x), true
	case float64:
		return int64(x), true
	default:
		return 0, false
	}
}

func asIntSlice(v any) ([]int, bool) {
	items, ok := v.([]any)
	if !ok {
		return nil, false
	}
	out := make([]int, 0, len(items))
	for _, item := range items {
		n, ok := asInt(item)
		if !ok {
			return nil, false
		}
		out = append(out, n)
	}
	return out, true
}
