// Package main implements a CLI tool to report and bump the version of a
// Cargo workspace and all of its members.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	cargobump "github.com/bcomnes/cargobump/pkg"
)

const longUsage = `Reports or bumps the version declared in the [package] section of Cargo.toml.

A bump is applied to the root manifest and to every workspace member listed
in its members array. Every new version is previewed first and nothing is
written until the bump is confirmed.

Examples:
  cargobump current
  cargobump bump
  cargobump bump minor
  cargobump bump --dry-run major
  cargobump bump --yes --commit --tag patch`

// app holds the streams and settings shared by the command tree.
type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	v       *viper.Viper
	cfgFile string
	verbose bool
	current bool

	cfg *cargobump.Config
	log *cargobump.Logger
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes the CLI and returns the process exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	a := &app{stdin: stdin, stdout: stdout, stderr: stderr, v: viper.New()}
	root := a.rootCmd()

	if len(args) == 0 {
		root.SetOut(stderr)
		_ = root.Help()
		return 1
	}

	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return 1
	}
	return 0
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:               "cargobump",
		Short:             "Report or bump the version of a Cargo workspace",
		Long:              longUsage,
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.report()
		},
	}
	root.SetIn(a.stdin)
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (default is <root>/.cargobump.toml)")
	pf.String("root", ".", "Project directory holding the root manifest")
	pf.String("manifest", cargobump.DefaultManifest, "Manifest file name in every member directory")
	pf.String("log-format", "pretty", "Diagnostic log format (pretty or json)")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "Verbose diagnostics")
	pf.BoolVarP(&a.current, "current", "c", false, "Print the current version number")

	_ = a.v.BindPFlag("root", pf.Lookup("root"))
	_ = a.v.BindPFlag("manifest", pf.Lookup("manifest"))
	_ = a.v.BindPFlag("log.format", pf.Lookup("log-format"))

	root.AddCommand(a.currentCmd(), a.bumpCmd(), a.versionCmd())
	return root
}

// setup loads the configuration and the logger before any command runs.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := cargobump.LoadConfig(a.v, a.cfgFile)
	if err != nil {
		return err
	}
	if a.verbose {
		cfg.Log.Level = "debug"
	}
	a.cfg = cfg
	a.log = cargobump.NewLogger(cargobump.LoggerOptions{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: a.stderr,
	})
	a.log.Debug().Str("root", cfg.Root).Str("manifest", cfg.Manifest).Msg("configuration loaded")
	return nil
}

func (a *app) runner() *cargobump.Runner {
	var prompter cargobump.Prompter = cargobump.LinePrompter{In: a.stdin, Out: a.stdout}
	if a.cfg.Yes {
		prompter = cargobump.StaticPrompter(true)
	}
	return &cargobump.Runner{
		Workspace: a.cfg.Workspace(),
		Out:       a.stdout,
		Prompter:  prompter,
		Log:       a.log,
		DryRun:    a.cfg.DryRun,
		Git:       a.cfg.Git,
	}
}

func (a *app) report() error {
	return a.runner().Report()
}

func (a *app) currentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "current",
		Short: "Print the current version and the workspace members",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.report()
		},
	}
}

func (a *app) bumpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bump [major|minor|patch]",
		Short: "Bump the version of the root and every member (default: patch)",
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.MaximumNArgs(1)(cmd, args); err != nil {
				return err
			}
			if len(args) == 1 {
				_, err := cargobump.ParseKind(args[0])
				return err
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.current {
				return a.report()
			}
			kind := cargobump.Patch
			if len(args) == 1 {
				kind, _ = cargobump.ParseKind(args[0])
			}
			_, err := a.runner().Bump(kind)
			return err
		},
	}

	f := cmd.Flags()
	f.BoolP("yes", "y", false, "Skip the confirmation and bump right away")
	f.Bool("dry-run", false, "Preview the new versions without modifying any file")
	f.Bool("commit", false, "Commit the rewritten manifests with git")
	f.Bool("tag", false, "Tag the commit with v<version> (requires --commit)")

	_ = a.v.BindPFlag("yes", f.Lookup("yes"))
	_ = a.v.BindPFlag("dry_run", f.Lookup("dry-run"))
	_ = a.v.BindPFlag("git.commit", f.Lookup("commit"))
	_ = a.v.BindPFlag("git.tag", f.Lookup("tag"))
	return cmd
}

func (a *app) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show CLI version and exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(a.stdout, "cargobump CLI version", Version)
			return nil
		},
	}
}
