package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	appreport "sleeper-log/internal/app/report"
	"sleeper-log/internal/config"
	"sleeper-log/internal/logging"
	"sleeper-log/internal/metrics"
	"sleeper-log/internal/providers"
	"sleeper-log/internal/providers/sleeper"
	render "sleeper-log/internal/report"
)

// providerFactory builds the league provider for a run; injectable for tests.
type providerFactory func(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) providers.LeagueProvider

// App holds the dependencies for one CLI invocation.
type App struct {
	cfg    config.Config
	logger *slog.Logger
	stdin  io.Reader
	stdout io.Writer
	now    func() time.Time

	newProvider providerFactory
	setup       func(ctx context.Context, cfg metrics.TelemetryConfig) (*metrics.Recorder, func(context.Context) error, error)
}

// NewApp constructs an App wired to the real Sleeper provider.
func NewApp(cfg config.Config, logger *slog.Logger, stdin io.Reader, stdout io.Writer) *App {
	return &App{
		cfg:         cfg,
		logger:      logger,
		stdin:       stdin,
		stdout:      stdout,
		now:         time.Now,
		newProvider: buildSleeperProvider,
		setup:       metrics.Setup,
	}
}

type runOptions struct {
	leagueID string
	username string
	year     string
	out      string
}

// Command builds the root cobra command.
func (a *App) Command() *cobra.Command {
	opts := runOptions{}

	cmd := &cobra.Command{
		Use:   "sleeperlog",
		Short: "Generate a terminal-styled fantasy football report from Sleeper",
		Long: `sleeperlog fetches a Sleeper fantasy football league and renders a season
report: power rankings with a weekly game log, league leaders, nerd stats,
and full rosters. The report is written as a dark-terminal HTML page plus a
plain-text companion, and echoed to stdout.

The league is picked from --league-id, the LEAGUE_ID environment variable,
or by looking up --username's leagues for the season.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.leagueID, "league-id", "l", "", "Sleeper league ID (overrides LEAGUE_ID env var)")
	cmd.Flags().StringVarP(&opts.username, "username", "u", "", "Sleeper username to look up leagues for")
	cmd.Flags().StringVarP(&opts.year, "year", "y", "", "season to look up leagues in (default: current season)")
	cmd.Flags().StringVarP(&opts.out, "out", "o", a.cfg.ReportOut, "HTML report output path")

	return cmd
}

func (a *App) run(ctx context.Context, opts runOptions) error {
	recorder, flush, err := a.setup(ctx, metrics.TelemetryConfig{
		Enabled:      a.cfg.Telemetry.Enabled,
		ServiceName:  a.cfg.Telemetry.ServiceName,
		OtlpEndpoint: a.cfg.Telemetry.OtlpEndpoint,
		OtlpInsecure: a.cfg.Telemetry.OtlpInsecure,
	})
	if err != nil {
		logging.Warn(a.logger, "telemetry setup failed, continuing without export", "error", err)
		recorder = metrics.NewRecorder()
		flush = func(context.Context) error { return nil }
	}
	defer func() {
		if flushErr := flush(context.Background()); flushErr != nil {
			logging.Warn(a.logger, "telemetry flush failed", "error", flushErr)
		}
	}()

	provider := a.newProvider(a.cfg, a.logger, recorder)

	leagueID, err := a.resolveLeagueID(ctx, provider, opts)
	if err != nil {
		return err
	}

	svc := appreport.NewService(provider, a.logger, a.stdout)
	if err := svc.Run(ctx, leagueID, opts.out); err != nil {
		return err
	}

	fmt.Fprintln(a.stdout, "\n🎉 Report generation complete!")
	fmt.Fprintf(a.stdout, "📝 Text version: %s (best in terminal)\n", render.TextPathFor(opts.out))
	fmt.Fprintf(a.stdout, "🌐 HTML version: %s (open in a browser)\n", opts.out)
	return nil
}

func buildSleeperProvider(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) providers.LeagueProvider {
	client := sleeper.NewClient(sleeper.Config{
		BaseURL:    cfg.Sleeper.BaseURL,
		HTTPClient: &http.Client{Timeout: cfg.Sleeper.HTTPTimeout},
		Throttle:   cfg.Sleeper.Throttle,
	})
	return providers.NewRetryingProvider(client, logger, recorder, sleeper.ProviderName, cfg.Sleeper.MaxRetries, 0)
}
