package renamer

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWriteBackup(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "Report.pdf")
	if err := os.WriteFile(src, []byte("contents"), 0640); err != nil {
		t.Fatal(err)
	}
	mtime := time.Date(2021, 4, 1, 12, 0, 0, 0, time.UTC)
	if err := os.Chtimes(src, time.Now(), mtime); err != nil {
		t.Fatal(err)
	}

	dst, err := WriteBackup(src)
	if err != nil {
		t.Fatalf("WriteBackup: %v", err)
	}
	if dst != src+".bak" {
		t.Errorf("dst = %q, want %q", dst, src+".bak")
	}

	data, err := os.ReadFile(dst)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "contents" {
		t.Errorf("backup contents = %q", data)
	}

	info, err := os.Stat(dst)
	if err != nil {
		t.Fatal(err)
	}
	if !info.ModTime().Equal(mtime) {
		t.Errorf("mtime = %v, want %v", info.ModTime(), mtime)
	}
	if info.Mode().Perm() != 0640 {
		t.Errorf("mode = %v, want 0640", info.Mode().Perm())
	}

	// The original must be untouched.
	if _, err := os.Stat(src); err != nil {
		t.Errorf("source missing after backup: %v", err)
	}
}

func TestWriteBackup_CollisionSuffix(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "Report.pdf")
	touch(t, src)
	touch(t, src+".bak")

	dst, err := WriteBackup(src)
	if err != nil {
		t.Fatalf("WriteBackup: %v", err)
	}
	if dst != src+".bak(1)" {
		t.Errorf("dst = %q, want %q", dst, src+".bak(1)")
	}
}

func TestWriteBackup_MissingSource(t *testing.T) {
	dst, err := WriteBackup(filepath.Join(t.TempDir(), "gone.txt"))
	if err == nil {
		t.Fatal("expected error for missing source")
	}
	if dst == "" {
		t.Error("destination should be reported even on failure")
	}
}
