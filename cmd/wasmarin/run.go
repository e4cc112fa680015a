package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func (a *app) runCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <module.wasm> [function] [args...]",
		Short: "Call an exported function under a gas budget",
		Long: `Meter a module, instantiate it with wazero and call one export.

Arguments are parsed by parameter type. Without a function name the
exports are listed, or picked interactively with -i.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, args)
		},
	}
	fs := cmd.Flags()
	fs.Int64("budget", 1_000_000, "points available to each call")
	fs.Bool("no-meter", false, "run the module unmodified")
	fs.Bool("wasi", false, "provide wasi_snapshot_preview1 imports")
	fs.BoolP("interactive", "i", false, "interactive mode with TUI")
	meteringFlags(fs)
	return cmd
}

func (a *app) run(cmd *cobra.Command, args []string) error {
	cfg, err := a.config()
	if err != nil {
		return err
	}
	interactive := a.v.GetBool("interactive")

	sc := sessionConfig{
		config: cfg,
		budget: a.v.GetInt64("budget"),
		meter:  !a.v.GetBool("no-meter"),
		wasi:   a.v.GetBool("wasi"),
	}
	sc.stdout, sc.stderr = stdio(interactive)
	if sc.budget < 0 {
		return fmt.Errorf("budget must not be negative")
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read file: %w", err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	s, err := newSession(ctx, data, sc, a.log)
	if err != nil {
		return err
	}
	defer s.close(ctx)

	if interactive {
		return runInteractive(ctx, s, args[0])
	}

	st := newStyles(isTerminal(a.out))
	if len(args) == 1 {
		fmt.Fprintf(a.out, "%s\n", st.heading.Render("exported functions:"))
		for _, f := range s.funcs {
			fmt.Fprintf(a.out, "  %s\n", st.name.Render(f.String()))
		}
		return nil
	}

	res, err := s.call(ctx, args[1], args[2:])
	if res.metered {
		defer fmt.Fprintf(a.out, "remaining points: %d of %d\n", res.remaining, sc.budget)
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%s %s\n", st.result.Render("result:"), strings.Join(res.values, " "))
	return nil
}
