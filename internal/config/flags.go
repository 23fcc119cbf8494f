package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

// Flags holds the command-line side of the configuration.
//
// Flags:
//
//	-c/--config         YAML config file path
//	--project-dir       directory source directories are relative to
//	--source-dir        source directory, repeatable
//	-s/--server         target server
//	-e/--env            environment appended as --env=<value>
//	--user              supervisord user for every program
//	--options           program option key=value, repeatable
//	--strict-server     reject declarations without server affiliation
//	--precedence        entry|defaults
//	-v/--verbose        debug diagnostics on stderr
type Flags struct {
	ConfigPath        string
	ProjectDir        string
	SourceDirectories []string
	Server            string
	Environment       string
	User              string
	Options           []string
	StrictServer      bool
	Precedence        string
	Verbose           bool
}

// Register binds the flags onto fs.
func (f *Flags) Register(fs *pflag.FlagSet) {
	fs.StringVarP(&f.ConfigPath, "config", "c", "", "YAML config file path")
	fs.StringVar(&f.ProjectDir, "project-dir", "", "Project directory source directories are relative to")
	fs.StringArrayVar(&f.SourceDirectories, "source-dir", nil, "Source directory to scan (repeatable)")
	fs.StringVarP(&f.Server, "server", "s", "", "Only include programs for the specified server")
	fs.StringVarP(&f.Environment, "env", "e", "", "Environment passed to every command as --env=<value>")
	fs.StringVar(&f.User, "user", "", "The desired user to invoke the commands as")
	fs.StringArrayVar(&f.Options, "options", nil, "Set supervisor program option key=value (repeatable)")
	fs.BoolVar(&f.StrictServer, "strict-server", false, "Fail on declarations without server affiliation")
	fs.StringVar(&f.Precedence, "precedence", "", "Who wins on key collisions: entry or defaults")
	fs.BoolVarP(&f.Verbose, "verbose", "v", false, "Verbose diagnostics on stderr")

	fs.SetNormalizeFunc(normalizeArrayFlag)
}

// normalizeArrayFlag accepts the "--options[]=k=v" spelling.
func normalizeArrayFlag(_ *pflag.FlagSet, name string) pflag.NormalizedName {
	return pflag.NormalizedName(strings.TrimSuffix(name, "[]"))
}

func (f *Flags) yamlPath() string {
	if f == nil {
		return ""
	}
	return f.ConfigPath
}

func (f *Flags) toConfig() *StructuredConfig {
	return &StructuredConfig{
		ProjectDir:        f.ProjectDir,
		SourceDirectories: f.SourceDirectories,
		Exporter: Exporter{
			Server:       f.Server,
			Environment:  f.Environment,
			User:         f.User,
			StrictServer: f.StrictServer,
			Precedence:   f.Precedence,
		},
		Log:          Log{Verbose: f.Verbose},
		YAMLFilePath: f.ConfigPath,
	}
}

// ParseOptions converts repeated key=value pairs into an options map. Later
// pairs override earlier ones. The value is everything after the first '='.
func ParseOptions(pairs []string) (map[string]any, error) {
	options := make(map[string]any, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("%w: %q, want key=value", ErrInvalidOption, pair)
		}
		options[key] = strings.TrimSpace(value)
	}

	return options, nil
}
