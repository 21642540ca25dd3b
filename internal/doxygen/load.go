package doxygen

import (
	"encoding/xml"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Load reads every *.xml file in dir and collects its compound
// definitions into a Project. Files are visited in lexical order, so a
// given input directory always yields the same compound ordering.
func Load(dir string) (*Project, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read XML directory: %w", err)
	}

	project := &Project{}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".xml") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		compounds, err := loadFile(path)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", entry.Name(), err)
		}
		slog.Debug("Loaded XML file", "file", entry.Name(), "compounds", len(compounds))
		project.Compounds = append(project.Compounds, compounds...)
	}

	slog.Info("XML description loaded", "dir", dir, "compounds", len(project.Compounds))
	return project, nil
}

func loadFile(path string) ([]*Compound, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var file doxygenFile
	if err := xml.Unmarshal(data, &file); err != nil {
		return nil, err
	}
	return file.Compounds, nil
}
