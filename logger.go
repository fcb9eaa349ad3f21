package renamer

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

// RunFlags are the run-level settings repeated on structured log records.
type RunFlags struct {
	CaseSensitive bool
	IncludeDirs   bool
	DryRun        bool
	Backup        bool
	Regex         bool
	Exts          []string
}

// RunLog appends one line per action to the enabled sinks: a human-readable
// text file and/or a JSONL file. It only ever appends; nothing reads back.
type RunLog struct {
	text  io.Writer
	jsonl io.Writer
	flags RunFlags

	TextPath string
	JSONPath string

	closers []io.Closer
}

// NewRunLog builds a log over caller-supplied sinks. Either writer may be
// nil to disable that sink.
func NewRunLog(text, jsonl io.Writer, flags RunFlags) *RunLog {
	return &RunLog{text: text, jsonl: jsonl, flags: flags}
}

// OpenRunLog creates the requested sinks in dir using dated, collision-free
// file names like "renamed.08.30.2026.txt" and "renamed.08.30.2026.jsonl".
// Call Close when the run finishes.
func OpenRunLog(dir string, text, jsonl bool, flags RunFlags) (*RunLog, error) {
	l := &RunLog{flags: flags}
	date := time.Now().Format("01.02.2006")

	if text {
		f, path, err := createLogFile(dir, "renamed."+date+".txt")
		if err != nil {
			return nil, fmt.Errorf("create text log: %w", err)
		}
		l.text = f
		l.TextPath = path
		l.closers = append(l.closers, f)
	}
	if jsonl {
		f, path, err := createLogFile(dir, "renamed."+date+".jsonl")
		if err != nil {
			l.Close()
			return nil, fmt.Errorf("create json log: %w", err)
		}
		l.jsonl = f
		l.JSONPath = path
		l.closers = append(l.closers, f)
	}
	return l, nil
}

func createLogFile(dir, base string) (*os.File, string, error) {
	path := NextAvailable(filepath.Join(dir, base))
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, "", err
	}
	return f, path, nil
}

// Close closes any file sinks opened by OpenRunLog.
func (l *RunLog) Close() error {
	var firstErr error
	for _, c := range l.closers {
		if err := c.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	l.closers = nil
	return firstErr
}

// Record writes one action to both sinks.
func (l *RunLog) Record(a Action) {
	l.writeText(a)
	l.writeJSON(a)
}

// RecordSummary writes the terminal summary record.
func (l *RunLog) RecordSummary(s RunSummary) {
	l.textLine("SUMMARY: found=%d renamed=%d skipped=%d", s.Found, s.Renamed, s.Skipped)
	l.writeRecord(map[string]any{
		"ts":      time.Now().UTC().Format(time.RFC3339),
		"action":  ActionSummary,
		"found":   s.Found,
		"renamed": s.Renamed,
		"skipped": s.Skipped,
	})
}

func (l *RunLog) writeText(a Action) {
	switch a.Kind {
	case ActionFind:
		l.textLine("FIND-ONLY: %s", a.Src)
	case ActionDryRunRename:
		l.textLine("DRY-RUN: %s -> %s", a.Src, a.Dst)
	case ActionDryRunBackup:
		l.textLine("DRY-RUN BACKUP: %s -> %s", a.Src, a.Dst)
	case ActionBackup:
		l.textLine("BACKUP: %s -> %s", a.Src, a.Dst)
	case ActionRename:
		l.textLine("RENAMED: %s -> %s", a.Src, a.Dst)
	case ActionError:
		if a.Dst != "" {
			l.textLine("ERROR (%s): %s -> %s :: %v", a.Stage, a.Src, a.Dst, a.Err)
		} else {
			l.textLine("ERROR (%s): %s :: %v", a.Stage, a.Src, a.Err)
		}
	}
}

func (l *RunLog) textLine(format string, args ...any) {
	if l.text == nil {
		return
	}
	fmt.Fprintf(l.text, format+"\n", args...)
}

func (l *RunLog) writeJSON(a Action) {
	rec := map[string]any{
		"ts":     a.Time.UTC().Format(time.RFC3339),
		"action": a.Kind,
		"src":    a.Src,
		"is_dir": a.IsDir,
	}
	if a.Dst != "" {
		rec["dst"] = a.Dst
	}
	if a.Kind == ActionError {
		rec["stage"] = a.Stage
		rec["error"] = a.Err.Error()
	} else {
		rec["status"] = "ok"
		rec["case_sensitive"] = l.flags.CaseSensitive
		rec["include_dirs"] = l.flags.IncludeDirs
		rec["dry_run"] = l.flags.DryRun
		rec["backup"] = l.flags.Backup
		rec["regex"] = l.flags.Regex
		rec["exts"] = l.flags.Exts
	}
	l.writeRecord(rec)
}

func (l *RunLog) writeRecord(rec map[string]any) {
	if l.jsonl == nil {
		return
	}
	if l.flags.Exts == nil {
		// keep "exts" a JSON array, not null
		if _, ok := rec["exts"]; ok {
			rec["exts"] = []string{}
		}
	}
	line, err := json.Marshal(rec)
	if err != nil {
		return
	}
	l.jsonl.Write(append(line, '\n'))
}
