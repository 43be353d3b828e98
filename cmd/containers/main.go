package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/xvzc/containers/internal/config"
	"github.com/xvzc/containers/internal/logging"
	"github.com/xvzc/containers/internal/ptr"
	"github.com/xvzc/containers/internal/render"
	"github.com/xvzc/containers/internal/session"
	"github.com/xvzc/containers/version"
)

func main() {
	cmd := config.CreateCommand(runApp, version.Version())
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		logger := logging.WithScope(logging.NewLogger(os.Stderr, zerolog.InfoLevel), "MAIN")
		logging.ErrorUnwrapped(&logger, "failed to run", err)
		os.Exit(1)
	}
}

func runApp(ctx context.Context, configPath string, cfg *config.Config) error {
	return run(ctx, os.Stdout, os.Stderr, configPath, cfg)
}

// run executes the selected demos in order, writing their output to out and
// logs to logOut.
func run(
	ctx context.Context,
	out io.Writer,
	logOut io.Writer,
	configPath string,
	cfg *config.Config,
) error {
	ctx = session.WithNewTraceID(ctx)

	baseLogger := logging.NewLogger(
		logOut,
		ptr.FromPtrOr(cfg.General.LogLevel, zerolog.InfoLevel),
	)
	logger := logging.WithScope(logging.WithContext(baseLogger, ctx), "MAIN")

	if !ptr.FromPtr(cfg.General.Silent) {
		if err := printBanner(out, configPath, cfg); err != nil {
			return fmt.Errorf("error printing banner: %w", err)
		}
	}

	if configPath != "" {
		logger.Info().Str("path", configPath).Msg("loaded config file")
	}

	for _, k := range cfg.General.Demos {
		if err := ctx.Err(); err != nil {
			return err
		}

		scope := strings.ToUpper(k.String())
		logger.Info().Msgf("running %s demo", k)

		demoLogger := logging.WithScope(
			logging.WithContext(baseLogger, session.WithDemo(ctx, k.String())),
			scope,
		)

		d := demos[k]
		if err := d(out, demoLogger, cfg); err != nil {
			return fmt.Errorf("%s demo: %w", k, err)
		}
	}

	logger.Info().Int("demos", len(cfg.General.Demos)).Msg("done")

	return nil
}

func printBanner(w io.Writer, configPath string, cfg *config.Config) error {
	if configPath == "" {
		configPath = "none"
	}

	names := make([]string, 0, len(cfg.General.Demos))
	for _, k := range cfg.General.Demos {
		names = append(names, k.String())
	}

	banner, err := render.Banner([]string{
		"VERSION   : " + version.Version(),
		"CONFIG    : " + configPath,
		"LOG_LEVEL : " + ptr.FromPtrOr(cfg.General.LogLevel, zerolog.InfoLevel).String(),
		"DEMOS     : " + render.Join(names),
	})
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, banner)

	return err
}
