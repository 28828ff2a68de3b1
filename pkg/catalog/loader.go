package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-builderdocs/pkg/content"
)

// LoadFS walks fsys and parses JSON/YAML builder documents of the form
//
//	builders:
//	  popover:
//	    schemas: [...]
//	    features: [...]
//	    keyboard: [...]
//
// When fsys is nil or holds no documents the returned registry is empty.
func LoadFS(fsys fs.FS) (*Registry, error) {
	reg := NewRegistry()
	if fsys == nil {
		return reg, nil
	}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isDataFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("catalog: read %s: %w", path, err)
		}

		doc, err := parseDocument(data, path)
		if err != nil {
			return err
		}

		for rawName, builder := range doc.Builders {
			name := strings.TrimSpace(rawName)
			if name == "" {
				return fmt.Errorf("catalog: file %s defines an empty builder name", path)
			}
			if reg.Has(name) {
				return fmt.Errorf("catalog: duplicate builder %q (file %s)", name, path)
			}
			if err := reg.register(name, normaliseBuilder(name, builder), path); err != nil {
				return fmt.Errorf("catalog: file %s: %w", path, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return reg, nil
}

type documentFile struct {
	Builders map[string]content.BuilderData `json:"builders" yaml:"builders"`
}

func parseDocument(data []byte, source string) (documentFile, error) {
	var doc documentFile
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return documentFile{}, fmt.Errorf("catalog: file %s is empty", source)
	}

	var err error
	if trimmed[0] == '{' {
		err = json.Unmarshal(trimmed, &doc)
	} else {
		err = yaml.Unmarshal(trimmed, &doc)
	}
	if err != nil {
		return documentFile{}, fmt.Errorf("catalog: parse %s: %w", source, err)
	}
	if len(doc.Builders) == 0 {
		return documentFile{}, fmt.Errorf("catalog: file %s defines no builders", source)
	}
	return doc, nil
}

// normaliseBuilder fills the kind and builder fields authors usually leave
// out: the first schema is the builder schema, the rest are elements.
func normaliseBuilder(name string, data content.BuilderData) content.BuilderData {
	out := data.Clone()
	for idx := range out.Schemas {
		schema := &out.Schemas[idx]
		if schema.Kind == "" {
			if idx == 0 {
				schema.Kind = content.KindBuilder
			} else {
				schema.Kind = content.KindElement
			}
		}
		if schema.Builder == "" {
			schema.Builder = name
		}
	}
	return out
}

func isDataFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}
