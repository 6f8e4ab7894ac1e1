package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/baaaaaaaka/skill-eval/internal/evalinfo"
	"github.com/baaaaaaaka/skill-eval/internal/tui"
)

var (
	selectRun       = tui.SelectRun
	selectScenarios = tui.SelectScenarios
	isInteractive   = func() bool { return term.IsTerminal(int(os.Stdin.Fd())) }
)

func newSelectCmd(root *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "select",
		Short: "Interactively pick a run or scenarios and print their paths",
	}
	cmd.AddCommand(
		newSelectRunCmd(root),
		newSelectScenariosCmd(root),
	)
	return cmd
}

func newSelectRunCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "run [runs-dir]",
		Short: "Pick one run directory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, cfg, err := runsDir(root, args)
			if err != nil {
				return err
			}
			paths, err := evalinfo.DiscoverRuns(dir)
			if err != nil {
				return err
			}
			if len(paths) == 0 {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "no runs found in %s\n", dir)
				return nil
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			res, err := selectRun(ctx, paths, tui.Options{
				Title:          cfg.RunTitle,
				Interactive:    isInteractive,
				OnSummaryError: warnFunc(cmd, root),
			})
			if err != nil {
				return selectError(err, "pass a single run directory or use `skill-eval list runs`")
			}
			if res.Path != "" {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), res.Path)
			}
			return nil
		},
	}
}

func newSelectScenariosCmd(root *rootOptions) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "scenarios [scenarios-dir]",
		Short: "Pick any number of scenario directories",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, cfg, err := scenariosDir(root, args)
			if err != nil {
				return err
			}
			paths, err := evalinfo.DiscoverScenarios(dir)
			if err != nil {
				return err
			}
			if len(paths) == 0 {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "no scenarios found in %s\n", dir)
				return nil
			}

			var chosen []string
			if all {
				scenarios, err := evalinfo.SummarizeScenarios(paths)
				reportWarnings(cmd, root, err)
				for _, s := range scenarios {
					chosen = append(chosen, s.Path)
				}
			} else {
				ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
				defer stop()

				res, err := selectScenarios(ctx, paths, tui.Options{
					Title:          cfg.ScenarioTitle,
					Interactive:    isInteractive,
					OnSummaryError: warnFunc(cmd, root),
				})
				if err != nil {
					return selectError(err, "pass --all to select every scenario")
				}
				chosen = res.Paths
			}

			for _, p := range chosen {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), p)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "Select every scenario without opening the picker")
	return cmd
}

// selectError maps selector errors to command errors. An interrupted
// session is a quiet cancel.
func selectError(err error, hint string) error {
	switch {
	case errors.Is(err, context.Canceled):
		return nil
	case errors.Is(err, tui.ErrNotInteractive):
		return fmt.Errorf("%w; %s", err, hint)
	}
	return err
}
