package lists

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/iammorganparry/clive/apps/todo/internal/models"
)

// Export is the YAML document written by WriteYAML.
type Export struct {
	Lists []ExportList `yaml:"lists"`
}

// ExportList adds the derived counts to a list so the document reads on its own.
type ExportList struct {
	Index     int           `yaml:"index"`
	Name      string        `yaml:"name"`
	Complete  bool          `yaml:"complete"`
	Remaining string        `yaml:"remaining"`
	Todos     []models.Todo `yaml:"todos"`
}

// WriteYAML encodes lists, in stored order, as a YAML document.
func WriteYAML(w io.Writer, all []models.List) error {
	doc := Export{Lists: make([]ExportList, 0, len(all))}
	for i, l := range all {
		todos := l.Todos
		if todos == nil {
			todos = []models.Todo{}
		}
		doc.Lists = append(doc.Lists, ExportList{
			Index:     i,
			Name:      l.Name,
			Complete:  l.IsComplete(),
			Remaining: l.CompletionRatio(),
			Todos:     todos,
		})
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}
