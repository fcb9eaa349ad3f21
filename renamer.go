package renamer

import (
	"fmt"
	"os"
	"path/filepath"
)

// Config is the fully validated input for one run.
type Config struct {
	Rule      MatchRule
	Traversal TraversalConfig

	// Verbose enables the human-readable text log; JSONLog the structured
	// one. LogDir defaults to the current working directory.
	Verbose bool
	JSONLog bool
	LogDir  string
}

// ConfigError is a fatal pre-traversal configuration failure: invalid regex,
// missing root, empty find term. It aborts before anything is touched.
type ConfigError struct {
	Reason string
	Err    error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Reason, e.Err)
	}
	return e.Reason
}

func (e *ConfigError) Unwrap() error { return e.Err }

// App orchestrates one run: validation up front, then traversal, logging and
// summary assembly.
type App struct {
	cfg     *Config
	matcher *Matcher

	confirm  ConfirmFunc
	progress func(processed int)
}

// NewApp validates cfg and compiles the match rule. All configuration errors
// surface here, before any traversal starts.
func NewApp(cfg *Config) (*App, error) {
	if cfg.Rule.Pattern == "" {
		return nil, &ConfigError{Reason: "a find term is required"}
	}
	if cfg.Traversal.Root == "" {
		return nil, &ConfigError{Reason: "a location (drive or folder) is required"}
	}

	root, err := filepath.Abs(cfg.Traversal.Root)
	if err != nil {
		return nil, &ConfigError{Reason: "could not resolve location", Err: err}
	}
	if _, err := os.Stat(root); err != nil {
		return nil, &ConfigError{Reason: fmt.Sprintf("path does not exist: %s", root), Err: err}
	}
	cfg.Traversal.Root = root
	cfg.Traversal.Extensions = NormalizeExtensions(cfg.Traversal.Extensions)

	m, err := NewMatcher(cfg.Rule)
	if err != nil {
		return nil, err
	}

	if cfg.LogDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, &ConfigError{Reason: "could not determine working directory", Err: err}
		}
		cfg.LogDir = wd
	}

	return &App{cfg: cfg, matcher: m}, nil
}

// SetConfirmFunc installs the per-entry approve-each hook.
func (a *App) SetConfirmFunc(fn ConfirmFunc) { a.confirm = fn }

// SetProgressFunc installs a per-entry progress callback.
func (a *App) SetProgressFunc(fn func(processed int)) { a.progress = fn }

// Execute runs the traversal and returns the display summary. Per-entry
// errors are folded into the summary; only log-creation failures are
// returned as errors.
func (a *App) Execute() (Summary, error) {
	log, err := OpenRunLog(a.cfg.LogDir, a.cfg.Verbose, a.cfg.JSONLog, RunFlags{
		CaseSensitive: a.cfg.Rule.CaseSensitive,
		IncludeDirs:   a.cfg.Traversal.IncludeDirs,
		DryRun:        a.cfg.Traversal.DryRun,
		Backup:        a.cfg.Traversal.Backup,
		Regex:         a.cfg.Rule.Regex,
		Exts:          a.cfg.Traversal.Extensions,
	})
	if err != nil {
		return Summary{}, err
	}
	defer log.Close()

	planner := NewPlanner(a.cfg.Traversal, a.matcher, log)
	planner.SetConfirmFunc(a.confirm)
	planner.SetProgressFunc(a.progress)

	sum, actions := planner.Run()

	s := a.buildSummary(sum, actions)
	s.TextLog = log.TextPath
	s.JSONLog = log.JSONPath
	return s, nil
}

func (a *App) buildSummary(sum RunSummary, actions []Action) Summary {
	s := Summary{Counts: sum}
	for _, act := range actions {
		switch act.Kind {
		case ActionFind:
			s.Found = append(s.Found, a.rel(act.Src))
		case ActionRename, ActionDryRunRename:
			s.Renamed = append(s.Renamed, fmt.Sprintf("%s -> %s", a.rel(act.Src), filepath.Base(act.Dst)))
		case ActionError:
			s.Failed = append(s.Failed, fmt.Sprintf("%s (%s: %v)", a.rel(act.Src), act.Stage, act.Err))
		}
	}
	switch {
	case a.cfg.Traversal.FindOnly:
		s.Message = fmt.Sprintf("Found %d item(s) matching.", sum.Found)
	case a.cfg.Traversal.DryRun:
		s.Message = "Dry-run complete. No files were changed."
	case sum.Found == 0:
		s.Message = "Nothing to do."
	default:
		s.Message = "Job completed."
	}
	return s
}

// rel shortens paths to be relative to the traversal root, mirroring how the
// entries were discovered.
func (a *App) rel(path string) string {
	if r, err := filepath.Rel(a.cfg.Traversal.Root, path); err == nil {
		return r
	}
	return path
}
