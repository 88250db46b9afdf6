package output

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// ManifestFile is the name of the run manifest in the output directory
const ManifestFile = "manifest.yaml"

// Manifest records how a dataset was produced so it can be regenerated
type Manifest struct {
	Generator   string       `yaml:"generator"`
	Version     string       `yaml:"version"`
	Seed        uint64       `yaml:"seed"`
	StartDate   string       `yaml:"start_date"`
	EndDate     string       `yaml:"end_date"`
	Format      Format       `yaml:"format"`
	Compressed  bool         `yaml:"compressed"`
	GeneratedAt time.Time    `yaml:"generated_at"`
	TotalRows   int64        `yaml:"total_rows"`
	TotalBytes  int64        `yaml:"total_bytes"`
	Tables      []TableStats `yaml:"tables"`
}

// WriteManifest marshals m into dir/manifest.yaml and returns the path.
// Table paths are stored relative to dir.
func WriteManifest(dir string, m Manifest) (string, error) {
	m.TotalRows, m.TotalBytes = 0, 0
	tables := make([]TableStats, len(m.Tables))
	for i, t := range m.Tables {
		if rel, err := filepath.Rel(dir, t.Path); err == nil {
			t.Path = rel
		}
		tables[i] = t
		m.TotalRows += t.Rows
		m.TotalBytes += t.Bytes
	}
	m.Tables = tables

	data, err := yaml.Marshal(&m)
	if err != nil {
		return "", fmt.Errorf("failed to marshal manifest: %w", err)
	}

	path := filepath.Join(dir, ManifestFile)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write manifest: %w", err)
	}
	return path, nil
}

// ReadManifest loads a manifest written by WriteManifest
func ReadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}
	return &m, nil
}
