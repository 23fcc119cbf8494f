package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-supervisor-dump/internal/app"
	"github.com/MKhiriev/go-supervisor-dump/internal/config"
	"github.com/MKhiriev/go-supervisor-dump/internal/discovery"
	"github.com/MKhiriev/go-supervisor-dump/internal/logger"
	"github.com/MKhiriev/go-supervisor-dump/internal/service"
	"github.com/MKhiriev/go-supervisor-dump/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const appName = "supervisor-dump"

// discovererFactory builds the declaration discoverer for a run.
type discovererFactory func(log *logger.Logger) discovery.Discoverer

func defaultDiscoverer(log *logger.Logger) discovery.Discoverer {
	return discovery.New(log)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCommand(defaultDiscoverer).ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func newRootCommand(newDiscoverer discovererFactory) *cobra.Command {
	flags := &config.Flags{}

	root := &cobra.Command{
		Use:   appName,
		Short: "Export supervisord program configuration",
		Long: `Scans the project sources for //supervisor:program directives and
*.supervisor.hcl program blocks, keeps the programs meant for the target
server and prints their supervisord configuration to stdout.`,
		Args:          noArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runExport(cmd.Context(), flags, newDiscoverer, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	flags.Register(root.Flags())
	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return usageError(cmd, err)
	})
	root.AddCommand(newVersionCommand())

	return root
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  noArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprint(cmd.OutOrStdout(), models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))
		},
	}
}

func noArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.NoArgs(cmd, args); err != nil {
		return usageError(cmd, err)
	}
	return nil
}

// usageError reports a command line error on the command's stderr. Cobra
// returns these before RunE, so nothing else would print them.
func usageError(cmd *cobra.Command, err error) error {
	logger.NewLogger(cmd.ErrOrStderr(), appName, false).Error().Err(err).Msg(app.MsgInvalidUsage)
	return err
}

func runExport(ctx context.Context, flags *config.Flags, newDiscoverer discovererFactory, stdout, stderr io.Writer) error {
	log := logger.NewLogger(stderr, appName, flags.Verbose)

	cfg, err := config.GetStructuredConfig(flags)
	if err != nil {
		log.Error().Err(err).Msg("error getting configs")
		return err
	}
	if cfg.Log.Verbose && !flags.Verbose {
		log = logger.NewLogger(stderr, appName, true)
	}

	ctx = log.WithContext(ctx)

	log.Debug().Any("config", cfg).Msg(app.MsgConfigLoaded)

	options, err := config.ParseOptions(flags.Options)
	if err != nil {
		log.Error().Err(err).Msg("error parsing program options")
		return err
	}

	services := service.NewServices(cfg.GlobalConfig(), log)

	a, err := app.NewApp(cfg, newDiscoverer(log), services, stdout, log)
	if err != nil {
		log.Error().Err(err).Msg("error creating app")
		return err
	}

	if err = a.Run(ctx, options); err != nil {
		log.Error().Err(err).Msg(app.MsgExportFailed)
		return err
	}

	return nil
}
