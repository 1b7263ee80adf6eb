package policy

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"notifier/pkg/types"
)

// file is the on-disk shape of a policy table.
type file struct {
	Entities []fileEntry `json:"entities" yaml:"entities" toml:"entities"`
}

type fileEntry struct {
	Type     string   `json:"type" yaml:"type" toml:"type"`
	Fields   []string `json:"fields" yaml:"fields" toml:"fields"`
	Actions  []string `json:"actions" yaml:"actions" toml:"actions"`
	NotifyOn []string `json:"notify_on" yaml:"notify_on" toml:"notify_on"`
}

var supportedExt = map[string]bool{".yaml": true, ".yml": true, ".json": true, ".toml": true}

// LoadDir reads every policy file in dir, in file name order, and
// concatenates their entries. Subdirectories and files with other extensions
// are skipped; a directory without policy files is an error.
func LoadDir(dir string) ([]Entry, error) {
	files, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read dir: %w", err)
	}
	var out []Entry
	found := 0
	for _, f := range files {
		if f.IsDir() || !supportedExt[strings.ToLower(filepath.Ext(f.Name()))] {
			continue
		}
		entries, err := Load(filepath.Join(dir, f.Name()))
		if err != nil {
			return nil, err
		}
		out = append(out, entries...)
		found++
	}
	if found == 0 {
		return nil, fmt.Errorf("no policy files in %s", dir)
	}
	return out, nil
}

// Load reads a policy table based on its extension.
// Supports: .yaml/.yml, .json, .toml
func Load(path string) ([]Entry, error) {
	if path == "" {
		return nil, fmt.Errorf("empty policy path")
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f file
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, &f)
	case ".json":
		err = json.Unmarshal(b, &f)
	case ".toml":
		err = toml.Unmarshal(b, &f)
	default:
		return nil, fmt.Errorf("unsupported policy extension: %s", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return f.entries()
}

func (f file) entries() ([]Entry, error) {
	out := make([]Entry, 0, len(f.Entities))
	for _, fe := range f.Entities {
		if strings.TrimSpace(fe.Type) == "" {
			return nil, fmt.Errorf("policy entry without type")
		}
		e := Entry{Type: fe.Type, Fields: fe.Fields}
		for _, a := range fe.Actions {
			act, err := types.ParseAction(a)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", fe.Type, err)
			}
			e.Actions = append(e.Actions, act)
		}
		for _, t := range fe.NotifyOn {
			e.NotifyOn = append(e.NotifyOn, ParseTarget(t))
		}
		out = append(out, e)
	}
	return out, nil
}
