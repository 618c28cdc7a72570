// Command kyanite lints and parses JavaScript and TypeScript
// sources.
package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/kyanite-dev/kyanite/internal/cli"
	"github.com/kyanite-dev/kyanite/internal/config"
	"github.com/kyanite-dev/kyanite/internal/diagnostics"
	"github.com/kyanite-dev/kyanite/internal/linter/rules"
)

// errFindings marks a run that worked but found lint errors, so main
// can exit 1 instead of the usage-error code.
var errFindings = errors.New("lint errors found")

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		if errors.Is(err, errFindings) {
			os.Exit(1)
		}
		os.Exit(2)
	}
}

func newRootCmd() *cobra.Command {
	log := logrus.New()
	var verbose bool

	root := &cobra.Command{
		Use:           "kyanite",
		Short:         "A JavaScript and TypeScript linter",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				log.SetLevel(logrus.DebugLevel)
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newLintCmd(log))
	root.AddCommand(newParseCmd())
	root.AddCommand(newVersionCmd())
	return root
}

func newLintCmd(log *logrus.Logger) *cobra.Command {
	var (
		format     string
		watch      bool
		workers    int
		configPath string
	)
	cmd := &cobra.Command{
		Use:   "lint [paths...]",
		Short: "Lint JavaScript and TypeScript files",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath, args)
			if err != nil {
				return err
			}
			runner := &cli.Runner{
				Config:   cfg,
				Registry: rules.DefaultRegistry(),
				Workers:  workers,
				Log:      log,
			}
			jsonOut := format == "json"
			if format != "json" && format != "text" {
				return errors.Errorf("unknown format %q (want text or json)", format)
			}

			if watch {
				ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
				defer stop()
				err := runner.Watch(ctx, args, cmd.OutOrStdout(), jsonOut)
				if errors.Is(err, context.Canceled) {
					return nil
				}
				return err
			}

			summary, err := runner.LintPaths(args)
			if err != nil {
				return err
			}
			if jsonOut {
				err = cli.WriteJSON(cmd.OutOrStdout(), summary)
			} else {
				err = cli.WriteText(cmd.OutOrStdout(), summary)
			}
			if err != nil {
				return err
			}
			if summary.Failed() {
				return errFindings
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", "text", "output format (text or json)")
	cmd.Flags().BoolVar(&watch, "watch", false, "re-lint files as they change")
	cmd.Flags().IntVar(&workers, "workers", 0, "lint parallelism (0 = number of CPUs)")
	cmd.Flags().StringVar(&configPath, "config", "", "path to .kyaniterc file")
	return cmd
}

// loadConfig loads an explicit config path, or searches upward from
// the first lint target.
func loadConfig(path string, args []string) (*config.Config, error) {
	if path != "" {
		return config.Load(path)
	}
	dir := "."
	if len(args) > 0 {
		if info, err := os.Stat(args[0]); err == nil && !info.IsDir() {
			dir = filepath.Dir(args[0])
		} else {
			dir = args[0]
		}
	}
	return config.Search(dir)
}

func newParseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse a file and dump its syntax tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, program, diags, err := cli.ParseFile(args[0])
			if err != nil {
				return err
			}
			cli.DumpAST(cmd.OutOrStdout(), file, program)
			if len(diags) > 0 {
				diagnostics.RenderAll(cmd.ErrOrStderr(), file, diags)
				for _, d := range diags {
					if d.Severity == diagnostics.SeverityError {
						return errFindings
					}
				}
			}
			return nil
		},
	}
	return cmd
}

func newVersionCmd() *cobra.Command {
	var jsonOutput bool
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.PrintVersion(cmd.OutOrStdout(), jsonOutput)
		},
	}
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "output as JSON")
	return cmd
}
