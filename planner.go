package renamer

import (
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Planner walks the tree rooted at the traversal config's Root, applies the
// matcher to every eligible entry and performs (or previews) the renames.
// A single entry's failure never aborts the traversal.
type Planner struct {
	cfg     TraversalConfig
	matcher *Matcher
	log     *RunLog

	confirm  ConfirmFunc
	progress func(processed int)

	actions    []Action
	sum        RunSummary
	seq        int
	rejectRest bool
}

// NewPlanner wires a planner. log may be nil when no run log is requested.
func NewPlanner(cfg TraversalConfig, m *Matcher, log *RunLog) *Planner {
	return &Planner{cfg: cfg, matcher: m, log: log}
}

// SetConfirmFunc installs the approve-each hook. It is consulted for every
// matched entry after collision resolution and before any mutation.
func (p *Planner) SetConfirmFunc(fn ConfirmFunc) { p.confirm = fn }

// SetProgressFunc installs a callback invoked once per processed entry.
func (p *Planner) SetProgressFunc(fn func(processed int)) { p.progress = fn }

// Run performs the traversal and returns the final counts plus every action
// taken, ending with a summary action.
func (p *Planner) Run() (RunSummary, []Action) {
	p.walkDir(p.cfg.Root)
	if p.log != nil {
		p.log.RecordSummary(p.sum)
	}
	p.actions = append(p.actions, Action{Kind: ActionSummary, Time: time.Now()})
	return p.sum, p.actions
}

// walkDir processes the files of dir first, then recurses into its
// subdirectories, and only then renames each subdirectory entry itself when
// IncludeDirs is set. Children must be fully handled before their parent is
// renamed, otherwise the rename would orphan every descendant path. The root
// itself is never renamed.
func (p *Planner) walkDir(dir string) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		// Unreadable directories are silently skipped, same as the walk
		// primitives this mirrors.
		return
	}

	var subdirs []string
	for _, e := range entries {
		path := filepath.Join(dir, e.Name())
		if e.IsDir() {
			subdirs = append(subdirs, path)
			continue
		}
		p.processEntry(path, false)
	}
	for _, sub := range subdirs {
		p.walkDir(sub)
		if p.cfg.IncludeDirs {
			p.processEntry(sub, true)
		}
	}
}

func (p *Planner) processEntry(path string, isDir bool) {
	name := filepath.Base(path)
	if !isDir && !p.extensionAllowed(name) {
		return
	}

	newName, matched := p.matcher.Rewrite(name)
	if !matched {
		return
	}

	if p.cfg.FindOnly {
		p.sum.Found++
		p.emit(Action{Kind: ActionFind, Src: path, IsDir: isDir})
		p.step()
		return
	}

	if newName == name {
		// Substitution was a no-op; nothing to rename.
		return
	}

	dst := NextAvailable(filepath.Join(filepath.Dir(path), newName))
	p.sum.Found++
	p.seq++

	if p.confirm != nil {
		dec := DecisionReject
		if !p.rejectRest {
			dec = p.confirm(Proposal{Src: path, Dst: dst, IsDir: isDir, Seq: p.seq})
		}
		if dec == DecisionRejectAll {
			p.rejectRest = true
			dec = DecisionReject
		}
		if dec == DecisionReject {
			p.sum.Skipped++
			p.step()
			return
		}
	}

	if p.cfg.DryRun {
		if p.cfg.Backup && !isDir {
			p.emit(Action{Kind: ActionDryRunBackup, Src: path, Dst: BackupPath(path), IsDir: isDir})
		}
		p.emit(Action{Kind: ActionDryRunRename, Src: path, Dst: dst, IsDir: isDir})
		p.sum.Renamed++
		p.step()
		return
	}

	if p.cfg.Backup && !isDir {
		bk, err := WriteBackup(path)
		if err != nil {
			p.emit(Action{Kind: ActionError, Src: path, Dst: bk, IsDir: isDir, Stage: StageBackup, Err: err})
			p.sum.Skipped++
			p.step()
			return
		}
		p.emit(Action{Kind: ActionBackup, Src: path, Dst: bk, IsDir: isDir})
	}

	if err := os.Rename(path, dst); err != nil {
		p.emit(Action{Kind: ActionError, Src: path, Dst: dst, IsDir: isDir, Stage: StageRename, Err: err})
		p.sum.Skipped++
	} else {
		p.emit(Action{Kind: ActionRename, Src: path, Dst: dst, IsDir: isDir})
		p.sum.Renamed++
	}
	p.step()
}

func (p *Planner) extensionAllowed(name string) bool {
	if len(p.cfg.Extensions) == 0 {
		return true
	}
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range p.cfg.Extensions {
		if ext == e {
			return true
		}
	}
	return false
}

func (p *Planner) emit(a Action) {
	a.Time = time.Now()
	p.actions = append(p.actions, a)
	if p.log != nil {
		p.log.Record(a)
	}
}

func (p *Planner) step() {
	if p.progress != nil {
		p.progress(p.sum.Found)
	}
}
