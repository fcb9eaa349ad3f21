package renamer

import (
	"os"
	"path/filepath"
	"testing"
)

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestNextAvailable(t *testing.T) {
	dir := t.TempDir()

	free := filepath.Join(dir, "Report.pdf")
	if got := NextAvailable(free); got != free {
		t.Errorf("free path changed: got %q", got)
	}

	touch(t, filepath.Join(dir, "Report.pdf"))
	want := filepath.Join(dir, "Report(1).pdf")
	if got := NextAvailable(free); got != want {
		t.Errorf("first collision: got %q, want %q", got, want)
	}

	touch(t, filepath.Join(dir, "Report(1).pdf"))
	want = filepath.Join(dir, "Report(2).pdf")
	if got := NextAvailable(free); got != want {
		t.Errorf("second collision: got %q, want %q", got, want)
	}
}

func TestNextAvailable_Dotfile(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, ".report"))

	want := filepath.Join(dir, ".report(1)")
	if got := NextAvailable(filepath.Join(dir, ".report")); got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	touch(t, filepath.Join(dir, ".report(1)"))
	want = filepath.Join(dir, ".report(2)")
	if got := NextAvailable(filepath.Join(dir, ".report")); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestNextAvailable_NoExtension(t *testing.T) {
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, "Reports"), 0755); err != nil {
		t.Fatal(err)
	}
	want := filepath.Join(dir, "Reports(1)")
	if got := NextAvailable(filepath.Join(dir, "Reports")); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestBackupPath(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "Report.pdf")
	touch(t, src)

	if got, want := BackupPath(src), src+".bak"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	touch(t, src+".bak")
	if got, want := BackupPath(src), src+".bak(1)"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	touch(t, src+".bak(1)")
	if got, want := BackupPath(src), src+".bak(2)"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
