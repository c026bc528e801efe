package login

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"syscall"

	"github.com/eduteams/eduteams-cli/internal/config"
	"github.com/eduteams/eduteams-cli/internal/oauth2"
	"github.com/eduteams/eduteams-cli/internal/session"
	"github.com/eduteams/eduteams-cli/internal/ui"
	"github.com/eduteams/eduteams-cli/internal/utils"
	"github.com/eduteams/eduteams-cli/internal/version"
)

const (
	ExitCodeSuccess     = 0
	ExitCodeFailure     = 1
	ExitCodeInterrupted = 130
)

// Execute runs an interactive device login. Instructions and tokens are written to stdout,
// logs and configuration errors to logWriter.
func Execute(args []string, stdout, logWriter io.Writer) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return ExecuteContext(ctx, args, stdout, logWriter)
}

// ExecuteContext is [Execute] with a caller-controlled context. A canceled context is
// reported as interruption.
func ExecuteContext(ctx context.Context, args []string, stdout, logWriter io.Writer) int {
	conf, err := configure(stripSubcommand(args), logWriter)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitCodeSuccess
		}

		if errors.Is(err, config.ErrVersion) {
			printVersion(stdout)

			return ExitCodeSuccess
		}

		_, _ = fmt.Fprintln(logWriter, err.Error())

		return ExitCodeFailure
	}

	logger, err := configureLogger(conf, logWriter)
	if err != nil {
		_, _ = fmt.Fprintln(logWriter, fmt.Errorf("error configure logging: %w", err).Error())

		return ExitCodeFailure
	}

	logger.LogAttrs(ctx, slog.LevelDebug, "config", slog.String("config", conf.String()))

	httpClient, err := utils.NewHTTPClient(conf.HTTP)
	if err != nil {
		logger.Error(err.Error())

		return ExitCodeFailure
	}

	oAuth2Client, err := oauth2.New(logger, conf, httpClient)
	if err != nil {
		logger.Error(err.Error())

		return ExitCodeFailure
	}

	var qrCode session.QRCodeRenderer
	if conf.Output.QRCode {
		qrCode = ui.RenderQRCode
	}

	terminal := ui.NewTerminal(stdout, conf.Output.Color)

	if _, err = session.New(logger, oAuth2Client, terminal, qrCode).Run(ctx); err != nil {
		if ctx.Err() != nil {
			logger.LogAttrs(ctx, slog.LevelInfo, "login interrupted")

			return ExitCodeInterrupted
		}

		logger.LogAttrs(ctx, slog.LevelError, "login failed", slog.Any("err", err))

		return ExitCodeFailure
	}

	return ExitCodeSuccess
}

// stripSubcommand removes the optional login subcommand.
func stripSubcommand(args []string) []string {
	if len(args) > 1 && args[1] == "login" {
		return append([]string{args[0]}, args[2:]...)
	}

	return args
}

// configure parses the command line arguments and loads the configuration.
func configure(args []string, logWriter io.Writer) (config.Config, error) {
	conf, err := config.New(args, logWriter)
	if err != nil {
		return config.Config{}, fmt.Errorf("configuration parse error: %w", err)
	}

	if err = config.Validate(conf); err != nil {
		return config.Config{}, fmt.Errorf("configuration validation error: %w", err)
	}

	return conf, nil
}

func configureLogger(conf config.Config, writer io.Writer) (*slog.Logger, error) {
	opts := &slog.HandlerOptions{
		AddSource: false,
		Level:     conf.Log.Level,
	}

	switch conf.Log.Format {
	case "json":
		return slog.New(slog.NewJSONHandler(writer, opts)), nil
	case "console":
		return slog.New(slog.NewTextHandler(writer, opts)), nil
	default:
		return nil, fmt.Errorf("unknown log format: %s", conf.Log.Format)
	}
}

func printVersion(writer io.Writer) {
	//goland:noinspection GoBoolExpressions
	if version.Version == "dev" {
		if buildInfo, ok := debug.ReadBuildInfo(); ok {
			_, _ = fmt.Fprintf(writer, "version: %s\ngo: %s\n", buildInfo.Main.Version, buildInfo.GoVersion)

			return
		}
	}

	_, _ = fmt.Fprintf(writer, "version: %s\ncommit: %s\ndate: %s\ngo: %s\n", version.Version, version.Commit, version.Date, runtime.Version())
}
