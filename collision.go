package renamer

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// NextAvailable returns path unchanged if nothing exists there, otherwise the
// first "<stem>(N)<ext>" variant that is free, probing N upward from 1.
// Existence is checked at call time, never cached: earlier renames in the
// same run may have claimed a path that was free a moment ago.
func NextAvailable(path string) string {
	if !occupied(path) {
		return path
	}
	dir := filepath.Dir(path)
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	if stem == "" {
		// Dotfiles like ".report" have no extension to preserve; the
		// counter goes after the whole name.
		stem, ext = base, ""
	}
	for i := 1; ; i++ {
		candidate := filepath.Join(dir, fmt.Sprintf("%s(%d)%s", stem, i, ext))
		if !occupied(candidate) {
			return candidate
		}
	}
}

// BackupPath returns a free backup destination for src. The first choice is
// src+".bak"; on collision the counter goes after the .bak suffix, e.g.
// "Report.pdf.bak(1)".
func BackupPath(src string) string {
	candidate := src + ".bak"
	if !occupied(candidate) {
		return candidate
	}
	for i := 1; ; i++ {
		trial := fmt.Sprintf("%s.bak(%d)", src, i)
		if !occupied(trial) {
			return trial
		}
	}
}

func occupied(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}
