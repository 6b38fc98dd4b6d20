package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dmitrymomot/bycontract"
	"github.com/dmitrymomot/bycontract/pkg/exception"
	"github.com/dmitrymomot/bycontract/pkg/logger"
	"github.com/dmitrymomot/bycontract/pkg/typefile"
)

// Config keys.
const (
	cfgKeyEnable   = "enable"
	cfgKeyTypes    = "types"
	cfgKeyLogLevel = "log_level"
)

// app holds state shared by all commands of one invocation.
type app struct {
	cfg    *viper.Viper
	engine *bycontract.Engine
	out    io.Writer
	errOut io.Writer

	configFile string
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{cfg: viper.New(), out: out, errOut: errOut}

	root := &cobra.Command{
		Use:           "bycontract",
		Short:         "Check values against type contracts",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "version" {
				return nil
			}
			return a.setup()
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)

	flags := root.PersistentFlags()
	flags.StringVar(&a.configFile, "config", "", "config file (default: .bycontract.yaml in the working directory)")
	flags.StringSlice(cfgKeyTypes, nil, "type files (.yaml, .yml, .json) to register")
	flags.Bool(cfgKeyEnable, true, "run checks; false passes every value")
	flags.String("log-level", "warn", "log level: debug, info, warn, error")

	_ = a.cfg.BindPFlag(cfgKeyTypes, flags.Lookup(cfgKeyTypes))
	_ = a.cfg.BindPFlag(cfgKeyEnable, flags.Lookup(cfgKeyEnable))
	_ = a.cfg.BindPFlag(cfgKeyLogLevel, flags.Lookup("log-level"))

	root.AddCommand(
		newCheckCmd(a),
		newComboCmd(a),
		newTypesCmd(a),
		newVersionCmd(a),
	)
	return root
}

// setup reads configuration and builds the engine.
// Precedence: flags > BYCONTRACT_* env > config file > defaults.
func (a *app) setup() error {
	a.cfg.SetEnvPrefix("BYCONTRACT")
	a.cfg.AutomaticEnv()

	if a.configFile != "" {
		a.cfg.SetConfigFile(a.configFile)
	} else {
		a.cfg.SetConfigName(".bycontract")
		a.cfg.SetConfigType("yaml")
		a.cfg.AddConfigPath(".")
	}
	if err := a.cfg.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return usageError(fmt.Errorf("read config: %w", err))
		}
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(a.cfg.GetString(cfgKeyLogLevel))); err != nil {
		return usageError(fmt.Errorf("invalid log level %q", a.cfg.GetString(cfgKeyLogLevel)))
	}

	a.engine = bycontract.New(
		bycontract.WithLogger(logger.New(
			logger.WithOutput(a.errOut),
			logger.WithTextFormatter(),
			logger.WithLevel(level),
			logger.WithAttr(logger.Component("cli")),
		)),
	)
	a.engine.Config(bycontract.WithEnable(a.cfg.GetBool(cfgKeyEnable)))

	for _, path := range a.typeFiles() {
		if err := typefile.LoadInto(a.engine, path); err != nil {
			return usageError(fmt.Errorf("load types %s: %w", path, err))
		}
	}
	return nil
}

// typeFiles accepts a list from flags or the config file, or a comma
// separated string from the environment.
func (a *app) typeFiles() []string {
	var files []string
	for _, f := range a.cfg.GetStringSlice(cfgKeyTypes) {
		for _, part := range strings.Split(f, ",") {
			if part = strings.TrimSpace(part); part != "" {
				files = append(files, part)
			}
		}
	}
	return files
}

// usage marks errors caused by the invocation rather than the checked values.
type usage struct{ err error }

func (u usage) Error() string { return u.err.Error() }
func (u usage) Unwrap() error { return u.err }

func usageError(err error) error { return usage{err: err} }

func exitCode(err error) int {
	var u usage
	if errors.As(err, &u) {
		return exitUsage
	}
	switch exception.CodeOf(err) {
	case exception.CodeInvalidType, exception.CodeMissingArg:
		return exitViolation
	}
	return exitUsage
}
