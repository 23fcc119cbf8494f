package service

import (
	"fmt"
	"maps"
	"strconv"
	"strings"

	"dario.cat/mergo"

	"github.com/MKhiriev/go-supervisor-dump/models"
)

// mergeOptions merges option layers into a new map; keys of later layers
// override earlier ones. Nested maps are merged key by key. The layers
// themselves are never modified.
func mergeOptions(layers ...map[string]any) (map[string]any, error) {
	merged := make(map[string]any)
	for _, layer := range layers {
		if len(layer) == 0 {
			continue
		}
		if err := mergo.Merge(&merged, deepCopy(layer), mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging program options: %w", err)
		}
	}
	return merged, nil
}

func deepCopy(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = deepCopyValue(v)
	}
	return out
}

func deepCopyValue(v any) any {
	switch value := v.(type) {
	case map[string]any:
		return deepCopy(value)
	case map[string]string:
		return maps.Clone(value)
	case []any:
		out := make([]any, len(value))
		for i, item := range value {
			out[i] = deepCopyValue(item)
		}
		return out
	case []string:
		return append([]string(nil), value...)
	default:
		return value
	}
}

// toNumProcs converts an option value overriding numprocs.
func toNumProcs(v any) (int, error) {
	var n int
	switch value := v.(type) {
	case int:
		n = value
	case int64:
		n = int(value)
	case float64:
		if value != float64(int(value)) {
			return 0, fmt.Errorf("%w: numprocs %v is not an integer", ErrInvalidOptionValue, value)
		}
		n = int(value)
	case string:
		parsed, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return 0, fmt.Errorf("%w: numprocs %q: %w", ErrInvalidOptionValue, value, err)
		}
		n = parsed
	default:
		return 0, fmt.Errorf("%w: numprocs of type %T", ErrInvalidOptionValue, v)
	}

	if n < 1 {
		return 0, fmt.Errorf("%w: numprocs must be positive, got %d", ErrInvalidOptionValue, n)
	}
	return n, nil
}

// applyPrecedence resolves collisions between derived fields and options and
// removes the derived keys from entry.Options.
func applyPrecedence(entry *models.ProgramEntry, precedence models.Precedence) ([]string, error) {
	var shadowed []string

	for _, key := range []string{models.KeyName, models.KeyCommand, models.KeyNumProcs} {
		value, ok := entry.Options[key]
		if !ok {
			continue
		}
		delete(entry.Options, key)

		if precedence != models.PrecedenceDefaults || value == nil {
			shadowed = append(shadowed, key)
			continue
		}

		switch key {
		case models.KeyName:
			entry.Name = formatValue(value)
		case models.KeyCommand:
			entry.Command = formatValue(value)
		case models.KeyNumProcs:
			n, err := toNumProcs(value)
			if err != nil {
				return nil, err
			}
			entry.NumProcs = n
		}
	}

	return shadowed, nil
}
