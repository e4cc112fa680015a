package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/wippyai/wasmarin/encoder"
	"github.com/wippyai/wasmarin/errors"
)

func (a *app) instrumentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "instrument <module.wasm>",
		Short: "Inject gas metering into a module",
		Long: `Parse a module, charge every straight-line run of code against an
injected i64 global and write the re-encoded module.

The host sets the exported global before each call. A call traps with
unreachable once the balance drops below zero.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, _ := cmd.Flags().GetString("output")
			return a.instrument(args[0], out)
		},
	}
	cmd.Flags().StringP("output", "o", "", "output path (default <input>.metered.wasm)")
	meteringFlags(cmd.Flags())
	return cmd
}

func (a *app) instrument(in, out string) error {
	cfg, err := a.config()
	if err != nil {
		return err
	}
	if out == "" {
		out = strings.TrimSuffix(in, ".wasm") + ".metered.wasm"
	}

	p := cfg.newParser(a.log)
	m, err := p.ParseFile(in)
	if err != nil {
		return err
	}
	if err := cfg.Metering.Check(m); err != nil {
		return err
	}

	enc := encoder.New(encoder.WithMetering(cfg.Metering), encoder.WithLogger(a.log.Named("encoder")))
	bin, info := enc.EncodeInfo(m)
	if err := os.WriteFile(out, bin, 0o644); err != nil {
		return errors.Wrap(errors.PhaseLoad, errors.KindInvalidInput, err, "write "+out)
	}

	a.log.Info("instrumented module",
		zap.String("input", in),
		zap.String("output", out),
		zap.Int("size", info.Size),
		zap.Uint32("global", info.Metering.GlobalIndex))
	fmt.Fprintf(a.out, "wrote %s (%d bytes)\nremaining points: global %d exported as %q\n",
		out, info.Size, info.Metering.GlobalIndex, info.Metering.ExportName)
	return nil
}
