// Package content loads the read-only catalog shown on the cabin panel.
//
// A catalog file is YAML (JSON is accepted as a subset). It is either a bare
// list of records or a mapping with "welcome" and "records" keys. Page 0 of
// the panel is always the welcome block, so a catalog has at least one page.
package content

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

var (
	// ErrEmptyID is returned for a record without an id.
	ErrEmptyID = errors.New("record id is empty")
	// ErrDuplicateID is returned when two records share an id.
	ErrDuplicateID = errors.New("duplicate record id")
)

// Record is one portfolio entry.
type Record struct {
	ID          string `yaml:"id"`
	Title       string `yaml:"title"`
	Status      string `yaml:"status"`
	Description string `yaml:"description"`
	Detail      string `yaml:"detail"`
	Link        string `yaml:"link"`
}

// plainRecord drops the Unmarshaler so legacyRecord can inline it.
type plainRecord Record

// legacyRecord accepts the Portuguese field names used by older catalogs.
type legacyRecord struct {
	plainRecord `yaml:",inline"`
	Titulo      string `yaml:"titulo"`
	Descricao   string `yaml:"descricao"`
	Detalhes    string `yaml:"detalhes"`
}

// UnmarshalYAML implements yaml.Unmarshaler. English keys win over legacy ones.
func (r *Record) UnmarshalYAML(n *yaml.Node) error {
	var l legacyRecord
	if err := n.Decode(&l); err != nil {
		return err
	}
	*r = Record(l.plainRecord)
	if r.Title == "" {
		r.Title = l.Titulo
	}
	if r.Description == "" {
		r.Description = l.Descricao
	}
	if r.Detail == "" {
		r.Detail = l.Detalhes
	}
	return nil
}

// Welcome is the fixed first page.
type Welcome struct {
	Header      string   `yaml:"header"`
	Version     string   `yaml:"version"`
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Stack       []string `yaml:"stack"`
	Link        string   `yaml:"link"`
}

// DefaultWelcome is used when the catalog file does not define one.
func DefaultWelcome() Welcome {
	return Welcome{
		Header:      "SISTEMA: ONLINE",
		Version:     "v1.0.4",
		Title:       "BEM-VINDO, OPERADOR",
		Description: "ESTE TERMINAL EXIBE O PORTFÓLIO TÉCNICO. USE AS SETAS LATERAIS NO PAINEL 3D PARA NAVEGAR PELOS ARQUIVOS.",
		Stack:       []string{"REACT / REACT NATIVE", "TYPESCRIPT", "THREE.JS / R3F", "STYLED COMPONENTS"},
		Link:        "https://github.com/BanjoInertia",
	}
}

// Catalog is the ordered content sequence behind the panel.
type Catalog struct {
	Welcome Welcome  `yaml:"welcome"`
	Records []Record `yaml:"records"`
}

// Empty returns a catalog holding only the welcome page.
func Empty() *Catalog {
	return &Catalog{Welcome: DefaultWelcome()}
}

// Total returns the number of panel pages, records plus the welcome page.
func (c *Catalog) Total() int {
	if c == nil {
		return 1
	}
	return len(c.Records) + 1
}

// Page is the panel view of one page index.
type Page struct {
	Index   int
	Welcome bool
	Record
	Header  string
	Version string
	Stack   []string
}

// Page returns the view for index i, or false when i is out of range.
func (c *Catalog) Page(i int) (Page, bool) {
	if i < 0 || i >= c.Total() {
		return Page{}, false
	}
	if i == 0 {
		w := DefaultWelcome()
		if c != nil {
			w = c.Welcome
		}
		return Page{
			Index:   0,
			Welcome: true,
			Record: Record{
				Title:       w.Title,
				Description: w.Description,
				Link:        w.Link,
			},
			Header:  w.Header,
			Version: w.Version,
			Stack:   w.Stack,
		}, true
	}
	return Page{Index: i, Record: c.Records[i-1]}, true
}

// Validate reports every empty or duplicate id.
func (c *Catalog) Validate() error {
	var err error
	seen := make(map[string]int, len(c.Records))
	for i, r := range c.Records {
		if r.ID == "" {
			err = multierr.Append(err, fmt.Errorf("records[%d]: %w", i, ErrEmptyID))
			continue
		}
		if first, ok := seen[r.ID]; ok {
			err = multierr.Append(err, fmt.Errorf("records[%d] %q (first at %d): %w", i, r.ID, first, ErrDuplicateID))
			continue
		}
		seen[r.ID] = i
	}
	return err
}

// Load reads and validates a catalog file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return c, nil
}

// Parse decodes and validates a catalog document.
func Parse(data []byte) (*Catalog, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(bytes.NewReader(data)).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return Empty(), nil
		}
		return nil, err
	}

	c := Empty()
	root := &doc
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = root.Content[0]
	}
	switch root.Kind {
	case yaml.SequenceNode:
		if err := root.Decode(&c.Records); err != nil {
			return nil, err
		}
	case yaml.MappingNode:
		if err := root.Decode(c); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("catalog must be a list or a mapping, got %s", kindName(root.Kind))
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return fmt.Sprintf("kind %d", k)
	}
}
