package renamer

import "time"

// Action kinds, as recorded in run logs.
const (
	ActionFind         = "find"
	ActionRename       = "rename"
	ActionDryRunRename = "dry_run_rename"
	ActionDryRunBackup = "dry_run_backup"
	ActionBackup       = "backup"
	ActionError        = "error"
	ActionSummary      = "summary"
)

// Stages at which a per-entry error can occur.
const (
	StageBackup = "backup"
	StageRename = "rename"
)

// MatchRule describes what to find in a basename and what to put in its
// place. Immutable once constructed.
type MatchRule struct {
	Pattern       string
	Replacement   string
	Regex         bool
	CaseSensitive bool
}

// TraversalConfig holds the per-run traversal settings. Extensions must be
// normalized (leading dot, lower case); empty means all files.
type TraversalConfig struct {
	Root        string
	IncludeDirs bool
	Extensions  []string
	DryRun      bool
	Backup      bool
	FindOnly    bool
}

// Action is one record per filesystem entry processed. It is written to the
// run log the moment it is created and never mutated afterwards.
type Action struct {
	Kind  string
	Src   string
	Dst   string
	IsDir bool
	Stage string
	Err   error
	Time  time.Time
}

// RunSummary accumulates monotonically during a traversal.
type RunSummary struct {
	Found   int
	Renamed int
	Skipped int
}

// Decision is the outcome of a per-entry confirmation hook.
type Decision int

const (
	DecisionAccept Decision = iota
	DecisionReject
	DecisionRejectAll
)

// Proposal is handed to the confirmation hook after the destination has been
// resolved and before any filesystem mutation.
type Proposal struct {
	Src   string
	Dst   string
	IsDir bool
	Seq   int
}

// ConfirmFunc is the per-entry confirmation hook used by approve-each mode.
type ConfirmFunc func(p Proposal) Decision

// Summary is the display-facing result of a run.
type Summary struct {
	Found   []string
	Renamed []string
	Failed  []string
	Counts  RunSummary
	Message string
	TextLog string
	JSONLog string
}
