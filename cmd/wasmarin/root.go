package main

import (
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/wasmarin/errors"
	"github.com/wippyai/wasmarin/features"
	"github.com/wippyai/wasmarin/metering"
	"github.com/wippyai/wasmarin/parser"
	"github.com/wippyai/wasmarin/validate"
)

const envPrefix = "wasmarin"

// app carries state shared by all subcommands of one invocation.
type app struct {
	v   *viper.Viper
	log *zap.Logger
	out io.Writer
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New(), log: zap.NewNop(), out: os.Stdout}

	root := &cobra.Command{
		Use:   "wasmarin",
		Short: "Inspect, meter and run WebAssembly core modules",
		Long: `wasmarin decodes WebAssembly core modules, injects gas metering and
re-encodes them, so hosts can bound how much work untrusted code does.

Examples:
  wasmarin inspect module.wasm               Show sections, imports and exports
  wasmarin instrument module.wasm -o out.wasm Inject metering
  wasmarin run module.wasm add 1 2           Call an export under a budget
  wasmarin run -i module.wasm                Pick exports interactively

Every flag can also be set through WASMARIN_<FLAG> environment variables
or a YAML file passed with --config.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = a.log.Sync()
		},
	}

	pf := root.PersistentFlags()
	pf.String("config", "", "YAML config file")
	pf.StringSlice("features", []string{"all"}, "enabled proposals, e.g. all,-threads")
	pf.String("validator", "wazero", "module validator: "+strings.Join(validate.Names(), ", "))
	pf.BoolP("verbose", "v", false, "debug logging")

	root.AddCommand(
		a.instrumentCmd(),
		a.inspectCmd(),
		a.runCmd(),
		versionCmd(),
	)
	return root
}

// meteringFlags adds the flags shared by commands that meter modules.
func meteringFlags(fs *pflag.FlagSet) {
	fs.String("export", metering.DefaultExportName, "export name of the remaining points global")
	fs.String("cost-table", "", "YAML cost table, unit cost when empty")
}

// nestedKeys binds flags to config keys that live below a section.
var nestedKeys = map[string]string{
	"metering.export":     "export",
	"metering.cost_table": "cost-table",
}

func (a *app) init(cmd *cobra.Command) error {
	a.out = cmd.OutOrStdout()

	a.v.SetEnvPrefix(envPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	a.v.AutomaticEnv()
	if err := a.v.BindPFlags(cmd.Flags()); err != nil {
		return err
	}
	for key, name := range nestedKeys {
		if f := cmd.Flags().Lookup(name); f != nil {
			if err := a.v.BindPFlag(key, f); err != nil {
				return err
			}
		}
	}

	if path := a.v.GetString("config"); path != "" {
		a.v.SetConfigFile(path)
		if err := a.v.ReadInConfig(); err != nil {
			return errors.New(errors.PhaseConfig, errors.KindInvalidInput).
				Path(path).
				Detail("read config").
				Cause(err).
				Build()
		}
	}

	log, err := newLogger(a.v.GetBool("verbose"))
	if err != nil {
		return err
	}
	a.log = log
	a.log.Debug("configured",
		zap.String("command", cmd.Name()),
		zap.String("config", a.v.ConfigFileUsed()))
	return nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	return cfg.Build()
}

// config is the resolved configuration of one invocation.
type config struct {
	Metering  metering.Config
	Validator validate.Validator
	Features  features.Set
}

func (c config) newParser(log *zap.Logger) *parser.Parser {
	return parser.New(c.Features,
		parser.WithValidator(c.Validator),
		parser.WithLogger(log.Named("parser")))
}

func (a *app) config() (config, error) {
	var c config
	fs, err := features.Parse(splitList(a.v.GetStringSlice("features")))
	if err != nil {
		return c, err
	}
	c.Features = fs
	if c.Validator, err = validate.ByName(a.v.GetString("validator")); err != nil {
		return c, err
	}

	c.Metering.ExportName = a.v.GetString("metering.export")
	if path := a.v.GetString("metering.cost_table"); path != "" {
		table, err := metering.LoadCostTableFile(path)
		if err != nil {
			return c, err
		}
		if c.Metering.Cost, err = table.Func(); err != nil {
			return c, err
		}
		a.log.Debug("loaded cost table", zap.String("path", path))
	}
	return c, nil
}

// splitList flattens comma separated entries. Values from the
// environment arrive as one string.
func splitList(in []string) []string {
	var out []string
	for _, s := range in {
		for _, part := range strings.Split(s, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
