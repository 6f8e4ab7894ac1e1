package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/baaaaaaaka/skill-eval/internal/evalinfo"
	"github.com/baaaaaaaka/skill-eval/internal/pick"
)

type listOptions struct {
	asJSON bool
	pretty bool
}

func newListCmd(root *rootOptions) *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print run or scenario summaries without a terminal UI",
	}
	cmd.PersistentFlags().BoolVar(&opts.asJSON, "json", false, "Print JSON instead of one line per item")
	cmd.PersistentFlags().BoolVar(&opts.pretty, "pretty", false, "Pretty-print JSON (implies --json)")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "runs [runs-dir]",
			Short: "List runs, newest first",
			Args:  cobra.MaximumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				dir, _, err := runsDir(root, args)
				if err != nil {
					return err
				}
				paths, err := evalinfo.DiscoverRuns(dir)
				if err != nil {
					return err
				}
				runs, err := evalinfo.SummarizeRuns(paths)
				reportWarnings(cmd, root, err)
				return printList(cmd, opts, "runs", runs)
			},
		},
		&cobra.Command{
			Use:   "scenarios [scenarios-dir]",
			Short: "List scenarios by name",
			Args:  cobra.MaximumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				dir, _, err := scenariosDir(root, args)
				if err != nil {
					return err
				}
				paths, err := evalinfo.DiscoverScenarios(dir)
				if err != nil {
					return err
				}
				scenarios, err := evalinfo.SummarizeScenarios(paths)
				reportWarnings(cmd, root, err)
				return printList(cmd, opts, "scenarios", scenarios)
			},
		},
	)
	return cmd
}

func printList[T pick.Item](cmd *cobra.Command, opts *listOptions, key string, items []T) error {
	out := cmd.OutOrStdout()
	if !opts.asJSON && !opts.pretty {
		for _, it := range items {
			_, _ = fmt.Fprintln(out, it.DisplayText())
		}
		return nil
	}

	if items == nil {
		items = []T{}
	}
	payload := map[string]any{key: items}
	var (
		b   []byte
		err error
	)
	if opts.pretty {
		b, err = json.MarshalIndent(payload, "", "  ")
	} else {
		b, err = json.Marshal(payload)
	}
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintln(out, string(b))
	return nil
}
