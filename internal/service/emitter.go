package service

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-supervisor-dump/models"
)

type configurationEmitter struct{}

func NewConfigurationEmitter() ConfigurationEmitter {
	return configurationEmitter{}
}

// Emit renders one [program:<name>] section per entry in input order,
// separated by blank lines. The section body starts with command,
// process_name and numprocs followed by the remaining options in key order.
// No entries produce an empty string. A name, key or value containing a line
// break fails with [ErrLineBreak] since it would end the configuration line.
func (configurationEmitter) Emit(entries []models.ProgramEntry) (string, error) {
	if len(entries) == 0 {
		return "", nil
	}

	var sb strings.Builder
	for i, entry := range entries {
		if i > 0 {
			sb.WriteByte('\n')
		}
		if err := writeSection(&sb, entry); err != nil {
			return "", fmt.Errorf("error emitting program %q: %w", entry.Name, err)
		}
	}

	return sb.String(), nil
}

func writeSection(sb *strings.Builder, entry models.ProgramEntry) error {
	if models.HasLineBreak(entry.Name) {
		return fmt.Errorf("%w in program name", ErrLineBreak)
	}
	fmt.Fprintf(sb, "[program:%s]\n", entry.Name)

	processName, ok := entry.Options[models.KeyProcessName]
	if !ok || processName == nil {
		processName = models.DefaultProcessName
	}

	lines := [][2]string{
		{models.KeyCommand, entry.Command},
		{models.KeyProcessName, formatValue(processName)},
		{models.KeyNumProcs, strconv.Itoa(entry.NumProcs)},
	}

	for _, key := range slices.Sorted(maps.Keys(entry.Options)) {
		switch key {
		case models.KeyName, models.KeyCommand, models.KeyNumProcs, models.KeyProcessName:
			continue
		}

		value := entry.Options[key]
		if value == nil {
			continue
		}
		lines = append(lines, [2]string{key, formatValue(value)})
	}

	for _, line := range lines {
		if err := writeLine(sb, line[0], line[1]); err != nil {
			return err
		}
	}

	return nil
}

func writeLine(sb *strings.Builder, key, value string) error {
	if models.HasLineBreak(key) || models.HasLineBreak(value) {
		return fmt.Errorf("%w in %q", ErrLineBreak, key)
	}

	sb.WriteString(key)
	sb.WriteString(" = ")
	sb.WriteString(value)
	sb.WriteByte('\n')

	return nil
}

// formatValue renders an option value the way supervisord reads it: lists
// are comma-separated and maps become KEY="value" pairs, the syntax of the
// environment key.
func formatValue(v any) string {
	switch value := v.(type) {
	case nil:
		return ""
	case string:
		return value
	case bool:
		return strconv.FormatBool(value)
	case int:
		return strconv.Itoa(value)
	case int64:
		return strconv.FormatInt(value, 10)
	case uint64:
		return strconv.FormatUint(value, 10)
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	case []string:
		return strings.Join(value, ",")
	case []any:
		items := make([]string, 0, len(value))
		for _, item := range value {
			items = append(items, formatValue(item))
		}
		return strings.Join(items, ",")
	case map[string]string:
		pairs := make([]string, 0, len(value))
		for _, k := range slices.Sorted(maps.Keys(value)) {
			pairs = append(pairs, k+"="+quote(value[k]))
		}
		return strings.Join(pairs, ",")
	case map[string]any:
		pairs := make([]string, 0, len(value))
		for _, k := range slices.Sorted(maps.Keys(value)) {
			pairs = append(pairs, k+"="+quote(formatValue(value[k])))
		}
		return strings.Join(pairs, ",")
	default:
		return fmt.Sprint(value)
	}
}

// quoteEscaper escapes what supervisord's shell-like KEY="value" parser
// treats specially inside double quotes.
var quoteEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

func quote(s string) string {
	return `"` + quoteEscaper.Replace(s) + `"`
}
