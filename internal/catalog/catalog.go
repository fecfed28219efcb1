// Package catalog holds the static template catalog: the tier descriptors and
// the folder tree previews shown before generation. The catalog is embedded,
// checked against a JSON schema at load time and never mutated afterwards.
package catalog

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/ytget/android-template-generator/internal/model"
)

//go:embed templates.yaml
var templatesYAML []byte

// NodeKind distinguishes files from folders
type NodeKind string

const (
	KindFile   NodeKind = "file"
	KindFolder NodeKind = "folder"
)

// Node is one entry of a folder tree. Files never have children.
type Node struct {
	Name     string   `yaml:"name"`
	Kind     NodeKind `yaml:"type"`
	Children []*Node  `yaml:"children,omitempty"`
}

// IsFolder returns true for folder nodes
func (n *Node) IsFolder() bool {
	return n.Kind == KindFolder
}

// HasChildren returns true for folders with at least one child
func (n *Node) HasChildren() bool {
	return n.IsFolder() && len(n.Children) > 0
}

// Count returns the number of files and folders below and including n
func (n *Node) Count() (files, folders int) {
	if !n.IsFolder() {
		return 1, 0
	}
	folders = 1
	for _, child := range n.Children {
		f, d := child.Count()
		files += f
		folders += d
	}
	return files, folders
}

// Descriptor describes one template tier
type Descriptor struct {
	Tier        model.Tier `yaml:"tier"`
	Title       string     `yaml:"title"`
	Description string     `yaml:"description"`
	Icon        string     `yaml:"icon"`
	Status      string     `yaml:"status"`
	Available   bool       `yaml:"available"`
	Structure   *Node      `yaml:"structure"`
}

type document struct {
	Templates []*Descriptor `yaml:"templates"`
}

// Catalog is the read-only set of template descriptors
type Catalog struct {
	byTier map[model.Tier]*Descriptor
	order  []model.Tier
}

var (
	defaultCatalog *Catalog
	defaultErr     error
	once           sync.Once
)

// Default returns the embedded catalog, loading it on first use
func Default() (*Catalog, error) {
	once.Do(func() {
		defaultCatalog, defaultErr = Parse(templatesYAML)
	})
	return defaultCatalog, defaultErr
}

// Parse validates and decodes a catalog document
func Parse(content []byte) (*Catalog, error) {
	if err := validateDocument(content); err != nil {
		return nil, fmt.Errorf("invalid template catalog: %w", err)
	}

	var doc document
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return nil, fmt.Errorf("decode template catalog: %w", err)
	}

	c := &Catalog{byTier: make(map[model.Tier]*Descriptor, len(doc.Templates))}
	for _, d := range doc.Templates {
		if _, dup := c.byTier[d.Tier]; dup {
			return nil, fmt.Errorf("duplicate template tier: %s", d.Tier)
		}
		c.byTier[d.Tier] = d
		c.order = append(c.order, d.Tier)
	}
	return c, nil
}

// Get returns the descriptor of a tier
func (c *Catalog) Get(tier model.Tier) (*Descriptor, bool) {
	d, ok := c.byTier[tier]
	return d, ok
}

// IsAvailable reports whether a tier can be selected
func (c *Catalog) IsAvailable(tier model.Tier) bool {
	d, ok := c.byTier[tier]
	return ok && d.Available
}

// Templates returns descriptors in catalog order
func (c *Catalog) Templates() []*Descriptor {
	out := make([]*Descriptor, 0, len(c.order))
	for _, tier := range c.order {
		out = append(out, c.byTier[tier])
	}
	return out
}

// Tiers returns the tiers in catalog order
func (c *Catalog) Tiers() []model.Tier {
	return append([]model.Tier(nil), c.order...)
}
