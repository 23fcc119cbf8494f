package discovery

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/MKhiriev/go-supervisor-dump/models"
)

// DirectivePrefix marks a declaration comment on a Go type:
//
//	//supervisor:program commandName:"app:queue:consume" processes:"3" server:"alpha, beta"
//	type QueueConsumer struct{}
//
// The body uses struct tag syntax. options is a YAML flow mapping:
//
//	//supervisor:program commandName:"app:mail" options:"{autorestart: true, environment: {APP_DEBUG: '0'}}"
const DirectivePrefix = "//supervisor:program"

// Directive keys.
const (
	keyCommandName = "commandName"
	keyExecutor    = "executor"
	keyConsole     = "console"
	keyProcesses   = "processes"
	keyParams      = "params"
	keyServer      = "server"
	keyProgramName = "programName"
	keyDelayBefore = "delayBefore"
	keyDelayAfter  = "delayAfter"
	keyOptions     = "options"
)

// isDirective reports whether a raw comment line is a supervisor directive.
func isDirective(comment string) bool {
	rest, ok := strings.CutPrefix(comment, DirectivePrefix)
	return ok && (rest == "" || rest[0] == ' ' || rest[0] == '\t')
}

// parseDirective reads the text of a directive comment into a declaration
// builder. Values are validated when the builder is built.
func parseDirective(comment string) (*models.DeclarationBuilder, error) {
	body := strings.TrimSpace(strings.TrimPrefix(comment, DirectivePrefix))

	tags, err := parseTags(body)
	if err != nil {
		return nil, err
	}

	b := models.NewDeclarationBuilder(tags[keyCommandName])

	for key, value := range tags {
		switch key {
		case keyCommandName:
		case keyExecutor:
			b.WithExecutor(value)
		case keyConsole:
			b.WithConsole(value)
		case keyParams:
			b.WithParams(value)
		case keyServer:
			b.WithServer(value)
		case keyProgramName:
			b.WithProgramName(value)
		case keyProcesses, keyDelayBefore, keyDelayAfter:
			n, err := strconv.Atoi(strings.TrimSpace(value))
			if err != nil {
				return nil, fmt.Errorf("%s: %w", key, err)
			}
			switch key {
			case keyProcesses:
				b.WithProcesses(n)
			case keyDelayBefore:
				b.WithDelayBefore(n)
			case keyDelayAfter:
				b.WithDelayAfter(n)
			}
		case keyOptions:
			options, err := parseOptions(value)
			if err != nil {
				return nil, err
			}
			b.WithOptions(options)
		default:
			return nil, fmt.Errorf("unknown key %q", key)
		}
	}

	return b, nil
}

func parseOptions(value string) (map[string]any, error) {
	var options map[string]any
	if err := yaml.Unmarshal([]byte(value), &options); err != nil {
		return nil, fmt.Errorf("options: %w", err)
	}
	return options, nil
}

// parseTags parses `key:"value" key2:"value2"` pairs. Unlike
// reflect.StructTag.Lookup it rejects malformed input and duplicate keys.
func parseTags(tag string) (map[string]string, error) {
	tags := make(map[string]string)

	for {
		tag = strings.TrimLeft(tag, " \t")
		if tag == "" {
			return tags, nil
		}

		i := 0
		for i < len(tag) && tag[i] > ' ' && tag[i] != ':' && tag[i] != '"' && tag[i] != 0x7f {
			i++
		}
		if i == 0 || i+1 >= len(tag) || tag[i] != ':' || tag[i+1] != '"' {
			return nil, fmt.Errorf("malformed pair at %q", tag)
		}
		name := tag[:i]
		tag = tag[i+1:]

		// scan the quoted string to find its end
		i = 1
		for i < len(tag) && tag[i] != '"' {
			if tag[i] == '\\' {
				i++
			}
			i++
		}
		if i >= len(tag) {
			return nil, fmt.Errorf("unterminated value for %q", name)
		}
		quoted := tag[:i+1]
		tag = tag[i+1:]

		value, err := strconv.Unquote(quoted)
		if err != nil {
			return nil, fmt.Errorf("value of %q: %w", name, err)
		}
		if _, dup := tags[name]; dup {
			return nil, fmt.Errorf("duplicate key %q", name)
		}
		tags[name] = value
	}
}
