package renamer

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestNormalizeExtensions(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{"nil", nil, nil},
		{"dots added", []string{"pdf", "txt"}, []string{".pdf", ".txt"}},
		{"lower cased", []string{".PDF", ".Txt"}, []string{".pdf", ".txt"}},
		{"comma separated element", []string{".pdf,.txt"}, []string{".pdf", ".txt"}},
		{"blanks dropped", []string{" ", "", ".md "}, []string{".md"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeExtensions(tt.in); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLoadDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "defaults.yaml")
	content := "backup: true\njson_log: true\nextensions: [pdf, .TXT]\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	d, err := LoadDefaults(path)
	if err != nil {
		t.Fatalf("LoadDefaults: %v", err)
	}
	if !d.Backup || !d.JSONLog || d.CaseSensitive {
		t.Errorf("defaults = %+v", d)
	}
	if want := []string{".pdf", ".txt"}; !reflect.DeepEqual(d.Extensions, want) {
		t.Errorf("extensions = %v, want %v", d.Extensions, want)
	}
}

func TestLoadDefaults_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("backup: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadDefaults(path)
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("error = %v, want *ConfigError", err)
	}
}

func TestLoadDefaults_ExplicitMissingFileIsError(t *testing.T) {
	_, err := LoadDefaults(filepath.Join(t.TempDir(), "absent.yaml"))
	if err == nil {
		t.Fatal("expected error for missing explicit config file")
	}
}
