package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/baaaaaaaka/skill-eval/internal/config"
	"github.com/baaaaaaaka/skill-eval/internal/evalinfo"
)

func loadConfig(root *rootOptions) (config.Config, error) {
	store, err := config.NewStore(root.configPath)
	if err != nil {
		return config.Config{}, err
	}
	return store.Load()
}

func dirArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

func runsDir(root *rootOptions, args []string) (string, config.Config, error) {
	cfg, err := loadConfig(root)
	if err != nil {
		return "", cfg, err
	}
	return evalinfo.ResolveRunsDir(dirArg(args), cfg.RunsDir), cfg, nil
}

func scenariosDir(root *rootOptions, args []string) (string, config.Config, error) {
	cfg, err := loadConfig(root)
	if err != nil {
		return "", cfg, err
	}
	return evalinfo.ResolveScenariosDir(dirArg(args), cfg.ScenariosDir), cfg, nil
}

// warnFunc returns the sink for recovered summarizer problems. Without
// --verbose they are dropped.
func warnFunc(cmd *cobra.Command, root *rootOptions) func(error) {
	if !root.verbose {
		return nil
	}
	out := cmd.ErrOrStderr()
	return func(err error) { printWarnings(out, err) }
}

func printWarnings(out io.Writer, err error) {
	if err == nil {
		return
	}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		for _, e := range joined.Unwrap() {
			printWarnings(out, e)
		}
		return
	}
	_, _ = fmt.Fprintf(out, "warning: %v\n", err)
}

func reportWarnings(cmd *cobra.Command, root *rootOptions, err error) {
	if fn := warnFunc(cmd, root); fn != nil && err != nil {
		fn(err)
	}
}
