// Package snapshot renders a read-only YAML or JSON document of a registry.
// Nothing is ever loaded back from a snapshot.
package snapshot

import (
	"encoding/json"
	"fmt"

	"github.com/runoshun/procrastinot/internal/domain"
	"gopkg.in/yaml.v3"
)

// Supported formats.
const (
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// Ensure Exporter implements domain.Exporter.
var _ domain.Exporter = Exporter{}

// document is the exported structure.
// Fields are ordered to minimize memory padding.
type document struct {
	Tasks []taskNode `json:"tasks" yaml:"tasks"`
	Lists []listNode `json:"lists,omitempty" yaml:"lists,omitempty"`
}

type taskNode struct {
	Name      string     `json:"name" yaml:"name"`
	Priority  string     `json:"priority,omitempty" yaml:"priority,omitempty"`
	Due       string     `json:"due,omitempty" yaml:"due,omitempty"`
	Tags      []string   `json:"tags,omitempty" yaml:"tags,omitempty"`
	Children  []taskNode `json:"children,omitempty" yaml:"children,omitempty"`
	ID        int        `json:"id" yaml:"id"`
	Completed bool       `json:"completed" yaml:"completed"`
	Deleted   bool       `json:"deleted,omitempty" yaml:"deleted,omitempty"`
}

type listNode struct {
	Name    string   `json:"name" yaml:"name"`
	Tags    []string `json:"tags,omitempty" yaml:"tags,omitempty"`
	Members []int    `json:"members" yaml:"members"`
}

// Exporter implements domain.Exporter.
type Exporter struct{}

// Export renders every task, deleted ones included, as a tree in creation
// order, followed by the lists.
func (Exporter) Export(r *domain.Registry, format string) ([]byte, error) {
	doc := build(r)
	switch format {
	case FormatYAML, "":
		return yaml.Marshal(&doc)
	case FormatJSON:
		data, err := json.MarshalIndent(&doc, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	default:
		return nil, fmt.Errorf("unsupported export format %q", format)
	}
}

func build(r *domain.Registry) document {
	doc := document{Tasks: []taskNode{}}
	for _, t := range r.Tasks() {
		if !t.HasParent() {
			doc.Tasks = append(doc.Tasks, node(r, t))
		}
	}
	for _, l := range r.Lists() {
		doc.Lists = append(doc.Lists, listNode{
			Name:    l.Name(),
			Tags:    l.Tags(),
			Members: l.MemberIDs(),
		})
	}
	return doc
}

func node(r *domain.Registry, t *domain.Task) taskNode {
	n := taskNode{
		ID:        t.ID(),
		Name:      t.Name(),
		Priority:  t.Priority().String(),
		Tags:      t.Tags(),
		Completed: t.Completed(),
		Deleted:   !t.Visible(),
	}
	if due, ok := t.Due(); ok {
		n.Due = due.Format(domain.DateLayout)
	}
	for _, child := range r.Children(t) {
		n.Children = append(n.Children, node(r, child))
	}
	return n
}
