package app

import (
	"context"
	"fmt"
	"io"

	"github.com/MKhiriev/go-supervisor-dump/internal/config"
	"github.com/MKhiriev/go-supervisor-dump/internal/discovery"
	"github.com/MKhiriev/go-supervisor-dump/internal/logger"
	"github.com/MKhiriev/go-supervisor-dump/internal/service"
)

// App ties discovery to the export service for one invocation.
type App struct {
	cfg        *config.StructuredConfig
	discoverer discovery.Discoverer
	services   *service.Services
	out        io.Writer
	logger     *logger.Logger
}

// NewApp returns an App writing the generated configuration to out.
func NewApp(cfg *config.StructuredConfig, discoverer discovery.Discoverer, services *service.Services, out io.Writer, logger *logger.Logger) (*App, error) {
	if cfg == nil || discoverer == nil || services == nil || out == nil {
		return nil, ErrIncompleteApp
	}

	return &App{
		cfg:        cfg,
		discoverer: discoverer,
		services:   services,
		out:        out,
		logger:     logger,
	}, nil
}

// Run performs the export. options are the per-invocation program options
// given on the command line. Nothing is written when the run fails or when
// no program matches the target server.
func (a *App) Run(ctx context.Context, options map[string]any) error {
	log := logger.FromContext(ctx, a.logger)

	classes, err := a.discoverer.Discover(ctx, a.cfg.SourcePaths())
	if err != nil {
		return fmt.Errorf("error discovering declarations: %w", err)
	}

	log.Debug().Int("classes", len(classes)).Msg(MsgDiscoveryFinished)

	output, err := a.services.ExportService.Export(ctx, classes, service.ExportRequest{
		Server:      a.cfg.Exporter.Server,
		Environment: a.cfg.Exporter.Environment,
		User:        a.cfg.Exporter.User,
		Options:     options,
	})
	if err != nil {
		return fmt.Errorf("error exporting configuration: %w", err)
	}

	if output == "" {
		log.Info().Str("server", a.cfg.Exporter.Server).Msg(MsgNothingToExport)
		return nil
	}

	if _, err = io.WriteString(a.out, output); err != nil {
		return fmt.Errorf("error writing configuration: %w", err)
	}

	log.Debug().Int("bytes", len(output)).Msg(MsgExportFinished)

	return nil
}
