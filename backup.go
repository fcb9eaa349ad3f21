package renamer

import (
	"fmt"
	"io"
	"os"
	"time"
)

// WriteBackup copies src to a collision-free "<src>.bak" sibling, preserving
// the permission bits and modification time of the original. The chosen
// destination is returned even when the copy fails, so the failure can be
// logged against it. Backups apply to files only, never directories.
func WriteBackup(src string) (string, error) {
	dst := BackupPath(src)

	in, err := os.Open(src)
	if err != nil {
		return dst, fmt.Errorf("open source: %w", err)
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return dst, fmt.Errorf("stat source: %w", err)
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, info.Mode().Perm())
	if err != nil {
		return dst, fmt.Errorf("create backup: %w", err)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(dst)
		return dst, fmt.Errorf("copy contents: %w", err)
	}
	if err := out.Close(); err != nil {
		return dst, fmt.Errorf("close backup: %w", err)
	}

	_ = os.Chtimes(dst, time.Now(), info.ModTime())
	return dst, nil
}
