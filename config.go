package renamer

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// FileDefaults are optional flag defaults read from a YAML file. Explicitly
// set command-line flags always win over file values.
type FileDefaults struct {
	CaseSensitive bool     `yaml:"case_sensitive"`
	IncludeDirs   bool     `yaml:"include_dirs"`
	Backup        bool     `yaml:"backup"`
	Verbose       bool     `yaml:"verbose"`
	JSONLog       bool     `yaml:"json_log"`
	NoProgress    bool     `yaml:"no_progress"`
	Extensions    []string `yaml:"extensions"`
}

const defaultsFileName = ".renamer.yaml"

// LoadDefaults reads flag defaults from explicit when given, otherwise from
// ./.renamer.yaml, otherwise from the user config directory
// (renamer/config.yaml). A missing file is not an error; a file that exists
// but cannot be parsed is.
func LoadDefaults(explicit string) (*FileDefaults, error) {
	path := explicit
	if path == "" {
		path = findDefaultsFile()
		if path == "" {
			return nil, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if explicit == "" && os.IsNotExist(err) {
			return nil, nil
		}
		return nil, &ConfigError{Reason: fmt.Sprintf("could not read config file %s", path), Err: err}
	}

	var d FileDefaults
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, &ConfigError{Reason: fmt.Sprintf("invalid config file %s", path), Err: err}
	}
	d.Extensions = NormalizeExtensions(d.Extensions)
	return &d, nil
}

func findDefaultsFile() string {
	if _, err := os.Stat(defaultsFileName); err == nil {
		return defaultsFileName
	}
	if dir, err := os.UserConfigDir(); err == nil {
		path := filepath.Join(dir, "renamer", "config.yaml")
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// NormalizeExtensions trims, lower-cases and dot-prefixes extension filters.
// Comma-separated values inside a single element are split apart, so both
// "--ext .pdf,.txt" and repeated flags work.
func NormalizeExtensions(exts []string) []string {
	var out []string
	for _, raw := range exts {
		for _, e := range strings.Split(raw, ",") {
			e = strings.TrimSpace(e)
			if e == "" {
				continue
			}
			if !strings.HasPrefix(e, ".") {
				e = "." + e
			}
			out = append(out, strings.ToLower(e))
		}
	}
	return out
}
