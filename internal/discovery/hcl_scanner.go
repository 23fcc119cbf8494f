package discovery

import (
	"context"
	"fmt"
	"strings"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/MKhiriev/go-supervisor-dump/internal/logger"
	"github.com/MKhiriev/go-supervisor-dump/models"
)

// HCLExtension is the suffix of declaration files read by [HCLScanner].
const HCLExtension = ".supervisor.hcl"

// hclFile is the top-level structure of a declaration file:
//
//	program "worker.QueueConsumer" {
//	  command_name = "app:queue:consume"
//	  processes    = 3
//	  server       = "alpha, beta"
//	  options = {
//	    autorestart = true
//	  }
//	}
type hclFile struct {
	Programs []*hclProgram `hcl:"program,block"`
}

type hclProgram struct {
	Class       string    `hcl:"class,label"`
	CommandName string    `hcl:"command_name,optional"`
	Executor    *string   `hcl:"executor,optional"`
	Console     *string   `hcl:"console,optional"`
	Processes   *int      `hcl:"processes,optional"`
	Params      *string   `hcl:"params,optional"`
	Server      *string   `hcl:"server,optional"`
	ProgramName *string   `hcl:"program_name,optional"`
	DelayBefore *int      `hcl:"delay_before,optional"`
	DelayAfter  *int      `hcl:"delay_after,optional"`
	Options     cty.Value `hcl:"options,optional"`
}

// HCLScanner reads program blocks from *.supervisor.hcl files. Every block
// label names the class the declaration belongs to; repeated labels are
// repeated instances of that class.
type HCLScanner struct {
	parser *hclparse.Parser
	logger *logger.Logger
}

func NewHCLScanner(logger *logger.Logger) *HCLScanner {
	return &HCLScanner{
		parser: hclparse.NewParser(),
		logger: logger,
	}
}

func (s *HCLScanner) Accepts(path string) bool {
	return strings.HasSuffix(path, HCLExtension)
}

// Scan decodes path. Syntax or schema errors reject the whole file; a block
// whose options cannot be read drops its class from this file.
func (s *HCLScanner) Scan(ctx context.Context, path string) ([]models.DeclaredClass, error) {
	log := logger.FromContext(ctx, s.logger)

	file, diags := s.parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w %s: %w", ErrParseFile, path, diags)
	}

	var parsed hclFile
	if diags := gohcl.DecodeBody(file.Body, nil, &parsed); diags.HasErrors() {
		return nil, fmt.Errorf("%w %s: %w", ErrParseFile, path, diags)
	}

	var (
		order   []string
		byClass = make(map[string][]*models.DeclarationBuilder)
		broken  = make(map[string]struct{})
	)

	for _, block := range parsed.Programs {
		if _, bad := broken[block.Class]; bad {
			continue
		}

		b, err := block.builder()
		if err != nil {
			log.Warn().
				Err(err).
				Str("class", block.Class).
				Str("file", path).
				Msg("skipping class with invalid program block")
			broken[block.Class] = struct{}{}
			continue
		}

		if _, seen := byClass[block.Class]; !seen {
			order = append(order, block.Class)
		}
		byClass[block.Class] = append(byClass[block.Class], b)
	}

	classes := make([]models.DeclaredClass, 0, len(order))
	for _, name := range order {
		if _, bad := broken[name]; bad {
			continue
		}
		classes = append(classes, models.DeclaredClass{Name: name, Source: path, Builders: byClass[name]})
	}

	return classes, nil
}

func (p *hclProgram) builder() (*models.DeclarationBuilder, error) {
	b := models.NewDeclarationBuilder(p.CommandName)

	if p.Executor != nil {
		b.WithExecutor(*p.Executor)
	}
	if p.Console != nil {
		b.WithConsole(*p.Console)
	}
	if p.Processes != nil {
		b.WithProcesses(*p.Processes)
	}
	if p.Params != nil {
		b.WithParams(*p.Params)
	}
	if p.Server != nil {
		b.WithServer(*p.Server)
	}
	if p.ProgramName != nil {
		b.WithProgramName(*p.ProgramName)
	}
	if p.DelayBefore != nil {
		b.WithDelayBefore(*p.DelayBefore)
	}
	if p.DelayAfter != nil {
		b.WithDelayAfter(*p.DelayAfter)
	}

	if !p.Options.IsNull() {
		if !p.Options.Type().IsObjectType() && !p.Options.Type().IsMapType() {
			return nil, fmt.Errorf("%w: options must be an object, got %s",
				ErrInvalidBlock, p.Options.Type().FriendlyName())
		}
		native, err := ctyToNative(p.Options)
		if err != nil {
			return nil, fmt.Errorf("%w: options: %w", ErrInvalidBlock, err)
		}
		if options, ok := native.(map[string]any); ok {
			b.WithOptions(options)
		}
	}

	return b, nil
}
