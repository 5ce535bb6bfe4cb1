package config

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/codalotl/unidiff/internal/diff"
	"github.com/ohler55/ojg/oj"
)

// source supplies raw setting values keyed by lowercase setting key.
type source interface {
	origin() Origin

	// values returns the settings this source provides. Values are string, bool, int64, or float64.
	values() (map[string]any, error)
}

type defaultsSource struct{}

func (defaultsSource) origin() Origin { return Origin{SourceType: "default"} }

func (defaultsSource) values() (map[string]any, error) {
	return map[string]any{
		KeyDisable:              false,
		KeyContext:              int64(diff.DefaultContextSize),
		KeyAlgorithm:            diff.Myers.String(),
		KeyMaxCost:              int64(diff.DefaultMaxCost),
		KeyMissingNewlineMarker: false,
	}, nil
}

// jsonFileSource reads a JSON object from path at load time. Empty or whitespace-only files contribute no values.
type jsonFileSource struct {
	path string
}

func (s *jsonFileSource) origin() Origin {
	return Origin{SourceType: "json_file", SourceIdentifier: s.path}
}

func (s *jsonFileSource) values() (map[string]any, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read json file: %w", err)
	}
	if strings.TrimSpace(string(data)) == "" {
		return map[string]any{}, nil
	}

	raw, err := oj.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse json: %w", err)
	}
	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("top-level JSON must be an object")
	}

	out := make(map[string]any, len(obj))
	for k, v := range obj {
		key := strings.ToLower(k)
		if _, dup := out[key]; dup {
			return nil, fmt.Errorf("key conflict: key '%s' was already set", k)
		}
		out[key] = v
	}
	return out, nil
}

// envSource reads settings from environment variables. vars maps a setting key to its variable name.
type envSource struct {
	vars map[string]string
}

func (envSource) origin() Origin { return Origin{SourceType: "env"} }

func (s envSource) values() (map[string]any, error) {
	out := map[string]any{}
	for key, envVar := range s.vars {
		val, ok := os.LookupEnv(envVar)
		if !ok || val == "" {
			continue
		}
		out[key] = val
	}
	return out, nil
}

func coerceBool(raw any) (bool, error) {
	switch v := raw.(type) {
	case bool:
		return v, nil
	case string:
		parsed, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return false, fmt.Errorf("cannot parse bool from %q", v)
		}
		return parsed, nil
	default:
		return false, fmt.Errorf("cannot coerce %T to bool", raw)
	}
}

// coerceInt accepts integers, floats (truncated toward zero), and base-10 strings.
func coerceInt(raw any) (int, error) {
	switch v := raw.(type) {
	case int64:
		return int(v), nil
	case int:
		return v, nil
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, fmt.Errorf("cannot coerce %v to int", v)
		}
		return int(v), nil
	case string:
		parsed, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, fmt.Errorf("cannot parse int from %q", v)
		}
		return parsed, nil
	default:
		return 0, fmt.Errorf("cannot coerce %T to int", raw)
	}
}

func coerceString(raw any) (string, error) {
	switch v := raw.(type) {
	case string:
		return v, nil
	case bool:
		return strconv.FormatBool(v), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	default:
		return "", fmt.Errorf("cannot coerce %T to string", raw)
	}
}
