package renamer

import (
	"fmt"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

// CLIConfig collects flag values before they are folded into a Config.
type CLIConfig struct {
	CaseSensitive bool
	DryRun        bool
	IncludeDirs   bool
	Verbose       bool
	Backup        bool
	JSONLog       bool
	Regex         bool
	FindOnly      bool
	NoProgress    bool
	Extensions    []string
	ConfigFile    string
	Completion    string
}

var cliCfg = &CLIConfig{}

var rootCmd = &cobra.Command{
	Use:   "renamer [location] [find] [replace]",
	Short: "Recursively find and rename files (and optionally directories).",
	Long: `Recursively find files (and optionally directories) under a root whose
names match a find term, and rename them by substituting the term with a
replacement. Omit the replacement to remove the term.

Omitted positionals are prompted for interactively, followed by a
confirm/approve/change/abort flow (y/n/a/c).

Examples:
  renamer /data "demo" ""            remove "demo" from all names under /data
  renamer ./projects foo bar         replace foo with bar
  renamer foo --cs                   find term only; prompts for the location
  renamer --dry-run --ext .pdf,.txt  interactive prompts, preview only`,
	Args:          cobra.MaximumNArgs(3),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cliCfg.Completion != "" {
			return handleCompletion(cmd)
		}
		return run(cmd, args)
	},
}

func init() {
	rootCmd.Flags().StringVar(&cliCfg.Completion, "completion", "", "Generate completion script (bash|zsh|fish|powershell)")
	rootCmd.Flags().BoolVar(&cliCfg.CaseSensitive, "cs", false, "Case-sensitive match (default is case-insensitive)")
	rootCmd.Flags().BoolVar(&cliCfg.DryRun, "dry-run", false, "Preview changes without renaming")
	rootCmd.Flags().BoolVar(&cliCfg.IncludeDirs, "include-dirs", false, "Also rename directories (in addition to files)")
	rootCmd.Flags().StringSliceVar(&cliCfg.Extensions, "ext", []string{}, "Comma-separated file extensions to include, e.g. \".pdf,.txt\"")
	rootCmd.Flags().BoolVar(&cliCfg.Verbose, "v", false, "Verbose logging to a dated log file")
	rootCmd.Flags().BoolVar(&cliCfg.Backup, "backup", false, "Create backup copy of original files (.bak) before renaming")
	rootCmd.Flags().BoolVar(&cliCfg.JSONLog, "json-log", false, "Write structured JSONL log (renamed.mm.dd.yyyy.jsonl)")
	rootCmd.Flags().BoolVar(&cliCfg.Regex, "regex", false, "Treat find term as a regular expression; replacement supports \\1 backreferences (escape a literal $ as \\$)")
	rootCmd.Flags().BoolVar(&cliCfg.FindOnly, "find-only", false, "Search only: list and log matches without renaming")
	rootCmd.Flags().BoolVar(&cliCfg.NoProgress, "no-progress", false, "Disable the progress indicator")
	rootCmd.Flags().StringVar(&cliCfg.ConfigFile, "config", "", "Path to a YAML defaults file (default .renamer.yaml)")

	rootCmd.SetHelpCommand(&cobra.Command{Hidden: true})
}

func handleCompletion(cmd *cobra.Command) error {
	switch cliCfg.Completion {
	case "bash":
		return cmd.Root().GenBashCompletion(os.Stdout)
	case "zsh":
		return cmd.Root().GenZshCompletion(os.Stdout)
	case "fish":
		return cmd.Root().GenFishCompletion(os.Stdout, true)
	case "powershell":
		return cmd.Root().GenPowerShellCompletionWithDesc(os.Stdout)
	default:
		return fmt.Errorf("unsupported shell for completion: %s", cliCfg.Completion)
	}
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func run(cmd *cobra.Command, args []string) error {
	if err := applyFileDefaults(cmd); err != nil {
		return err
	}

	v := splitPositionals(args)
	planFor := func(v inputValues) string {
		return RenderPlan(v.Location, v.Find, v.Replace, cliCfg)
	}

	pr := newPrompter(os.Stdin)
	approveEach := false

	switch {
	case v.Location == "" || v.Find == "":
		var ans string
		v, ans = pr.gather(v, planFor)
		if ans == "n" {
			fmt.Println("Aborted by user.")
			return nil
		}
		approveEach = ans == "a" && !cliCfg.FindOnly
	case cliCfg.FindOnly:
		fmt.Print(planFor(v))
	default:
		ans := pr.confirm(planFor(v))
		if ans == "c" {
			v, ans = pr.gather(v, planFor)
		}
		if ans == "n" {
			fmt.Println("Aborted by user.")
			return nil
		}
		approveEach = ans == "a"
	}

	cfg := &Config{
		Rule: MatchRule{
			Pattern:       v.Find,
			Replacement:   v.Replace,
			Regex:         cliCfg.Regex,
			CaseSensitive: cliCfg.CaseSensitive,
		},
		Traversal: TraversalConfig{
			Root:        v.Location,
			IncludeDirs: cliCfg.IncludeDirs,
			Extensions:  cliCfg.Extensions,
			DryRun:      cliCfg.DryRun,
			Backup:      cliCfg.Backup,
			FindOnly:    cliCfg.FindOnly,
		},
		Verbose: cliCfg.Verbose,
		JSONLog: cliCfg.JSONLog,
	}

	app, err := NewApp(cfg)
	if err != nil {
		return err
	}

	var bar *progressbar.ProgressBar
	if approveEach {
		app.SetConfirmFunc(pr.entryConfirm(cfg.Traversal.Root))
	} else if !cliCfg.NoProgress && !cliCfg.FindOnly {
		bar = newProgressBar()
		app.SetProgressFunc(func(int) { _ = bar.Add(1) })
	}

	fmt.Println("\nScanning...")
	s, err := app.Execute()
	if bar != nil {
		_ = bar.Finish()
		fmt.Println()
	}
	if err != nil {
		return err
	}

	fmt.Print(FormatSummary(s))
	return nil
}

// splitPositionals maps the optional positionals onto location/find/replace.
// A single positional is the location when it names an existing path,
// otherwise it is taken as the find term (the location gets prompted for).
func splitPositionals(args []string) inputValues {
	var v inputValues
	switch len(args) {
	case 0:
	case 1:
		if _, err := os.Stat(args[0]); err == nil {
			v.Location = args[0]
		} else {
			v.Find = stripQuotes(args[0])
		}
	case 2:
		v.Location, v.Find = args[0], stripQuotes(args[1])
	default:
		v.Location, v.Find, v.Replace = args[0], stripQuotes(args[1]), stripQuotes(args[2])
	}
	return v
}

func applyFileDefaults(cmd *cobra.Command) error {
	d, err := LoadDefaults(cliCfg.ConfigFile)
	if err != nil || d == nil {
		return err
	}
	set := func(flag string, apply func()) {
		if !cmd.Flags().Changed(flag) {
			apply()
		}
	}
	set("cs", func() { cliCfg.CaseSensitive = d.CaseSensitive })
	set("include-dirs", func() { cliCfg.IncludeDirs = d.IncludeDirs })
	set("backup", func() { cliCfg.Backup = d.Backup })
	set("v", func() { cliCfg.Verbose = d.Verbose })
	set("json-log", func() { cliCfg.JSONLog = d.JSONLog })
	set("no-progress", func() { cliCfg.NoProgress = d.NoProgress })
	set("ext", func() {
		if len(d.Extensions) > 0 {
			cliCfg.Extensions = d.Extensions
		}
	})
	return nil
}
