package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/tracker-tv/push-policy-gate/internal/config"
	"github.com/tracker-tv/push-policy-gate/internal/policy"
	"github.com/tracker-tv/push-policy-gate/internal/report"
	"github.com/tracker-tv/push-policy-gate/internal/service"
	"github.com/tracker-tv/push-policy-gate/models"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var errBlocked = errors.New("push blocked by policy")

type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	configPath string
	output     string
	verbose    bool

	env    *config.Config
	format report.Format
	log    *zap.SugaredLogger
}

func newRootCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gate",
		Short: "Inspect a diff and decide whether a push may proceed",
		Long: `Run the push policy inspectors over a unified diff and report the verdict.

Exit status is 0 when every change is allowed, 1 when a push is blocked
and 2 on operational errors.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	cmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "pipeline config file (defaults to $GATE_CONFIG_FILE)")
	cmd.PersistentFlags().StringVarP(&a.output, "output", "o", string(report.FormatText), "output format: text, json or yaml")
	cmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "record passing inspectors too")

	cmd.AddCommand(newScanCmd(a), newLocalCmd(a), newPullsCmd(a))
	return cmd
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	env, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	a.env = env

	format, err := report.ParseFormat(a.output)
	if err != nil {
		return err
	}
	a.format = format

	logger, err := newLogger(env.LogLevel, env.LogFormat, a.stderr)
	if err != nil {
		return err
	}
	a.log = logger.Sugar()

	return nil
}

func (a *app) sync() {
	if a.log != nil {
		_ = a.log.Sync()
	}
}

func (a *app) gate() (service.GateService, error) {
	families, err := policy.Default()
	if err != nil {
		return nil, err
	}

	path := a.configPath
	if path == "" {
		path = a.env.ConfigFile
	}

	pipe, err := config.LoadPipeline(path)
	if err != nil {
		return nil, err
	}
	if a.verbose {
		pipe.Verbose = true
	}

	return service.NewGateServiceFromConfig(a.log, families, pipe)
}

// finish renders the actions and turns a blocked action into errBlocked.
func (a *app) finish(actions ...*models.Action) error {
	if err := report.Write(a.stdout, a.format, actions...); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}

	for _, action := range actions {
		if action.Blocked() {
			return errBlocked
		}
	}
	return nil
}

func newLogger(level, format string, w io.Writer) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	encoderCfg := zap.NewDevelopmentEncoderConfig()
	encoder := zapcore.NewConsoleEncoder(encoderCfg)
	if format == "json" {
		encoderCfg = zap.NewProductionEncoderConfig()
		encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
		encoder = zapcore.NewJSONEncoder(encoderCfg)
	}

	core := zapcore.NewCore(encoder, zapcore.AddSync(w), zap.NewAtomicLevelAt(lvl))
	return zap.New(core), nil
}
