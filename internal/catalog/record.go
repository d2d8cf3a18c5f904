package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"doc-quiz/internal/domain"

	"gopkg.in/yaml.v3"
)

// LoadRecord reads and decodes the documentation file at path.
// YAML documents are normalised through JSON so both formats share one shape.
func LoadRecord(path string) (*domain.DocumentationRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return DecodeRecord(data, filepath.Ext(path))
}

// DecodeRecord decodes a documentation record serialized with the given extension.
func DecodeRecord(data []byte, ext string) (*domain.DocumentationRecord, error) {
	var raw map[string]interface{}
	switch strings.ToLower(ext) {
	case ".json":
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("decode json record: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("decode yaml record: %w", err)
		}
		normalised, err := json.Marshal(raw)
		if err != nil {
			return nil, fmt.Errorf("normalise yaml record: %w", err)
		}
		data = normalised
	default:
		return nil, fmt.Errorf("unsupported documentation extension %q", ext)
	}
	if raw == nil {
		return nil, fmt.Errorf("documentation record is empty")
	}

	var record domain.DocumentationRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("decode record sections: %w", err)
	}
	record.Raw = raw
	return &record, nil
}
