// internal/catalog/catalog.go
//
// The catalog is the static content of the site: practice areas, attorneys
// and case results. It is loaded once at startup and never mutated; every
// accessor hands out copies so callers can't reach into the backing slices.

package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// FilterAll is the filter tag that matches every item.
const FilterAll = "all"

//go:embed default.yaml
var defaultCatalogYAML []byte

// Kind says which collection an item belongs to.
type Kind string

const (
	KindPracticeArea Kind = "practice-area"
	KindAttorney     Kind = "attorney"
	KindCaseResult   Kind = "case-result"
)

// Item is one piece of display content. Title is its identity within a
// collection and Category is the tag filters match against.
type Item struct {
	Kind        Kind   `yaml:"-"`
	Title       string `yaml:"title"`
	Category    string `yaml:"category,omitempty"`
	Description string `yaml:"description"`
	Icon        string `yaml:"icon,omitempty"`
	Role        string `yaml:"role,omitempty"`
	Outcome     string `yaml:"outcome,omitempty"`
}

// File models a catalog YAML document.
type File struct {
	Version       int    `yaml:"version"`
	Firm          string `yaml:"firm"`
	Tagline       string `yaml:"tagline"`
	PracticeAreas []Item `yaml:"practice_areas"`
	Attorneys     []Item `yaml:"attorneys"`
	CaseResults   []Item `yaml:"case_results"`
}

// Catalog is the read-only content set.
type Catalog struct {
	firm          string
	tagline       string
	practiceAreas []Item
	attorneys     []Item
	caseResults   []Item
	categories    []string
	categorySet   map[string]struct{}
	areaSet       map[string]struct{}
}

// Default returns the catalog bundled with the binary.
func Default() (*Catalog, error) {
	return Parse(defaultCatalogYAML)
}

// Load reads a catalog from disk.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: read %s: %w", path, err)
	}
	cat, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("catalog: %s: %w", path, err)
	}
	return cat, nil
}

// Parse decodes and validates a catalog document.
func Parse(data []byte) (*Catalog, error) {
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	return New(file)
}

// New builds a catalog from a decoded file. The first validation problem is
// returned; use Validate for the full list.
func New(file File) (*Catalog, error) {
	file.normalize()
	if errs := Validate(&file); len(errs) > 0 {
		return nil, errs[0]
	}
	c := &Catalog{
		firm:          file.Firm,
		tagline:       file.Tagline,
		practiceAreas: file.PracticeAreas,
		attorneys:     file.Attorneys,
		caseResults:   file.CaseResults,
		categorySet:   map[string]struct{}{},
		areaSet:       map[string]struct{}{},
	}
	for _, area := range c.practiceAreas {
		c.areaSet[area.Title] = struct{}{}
	}
	for _, item := range c.All() {
		if _, ok := c.categorySet[item.Category]; ok {
			continue
		}
		c.categorySet[item.Category] = struct{}{}
		c.categories = append(c.categories, item.Category)
	}
	return c, nil
}

func (f *File) normalize() {
	if f.Version == 0 {
		f.Version = 1
	}
	f.Firm = strings.TrimSpace(f.Firm)
	f.Tagline = strings.TrimSpace(f.Tagline)
	normalizeItems(f.PracticeAreas, KindPracticeArea)
	normalizeItems(f.Attorneys, KindAttorney)
	normalizeItems(f.CaseResults, KindCaseResult)
}

func normalizeItems(items []Item, kind Kind) {
	for i := range items {
		items[i].Kind = kind
		items[i].Title = strings.TrimSpace(items[i].Title)
		items[i].Category = strings.TrimSpace(items[i].Category)
		items[i].Description = strings.TrimSpace(items[i].Description)
		if kind == KindPracticeArea && items[i].Category == "" {
			items[i].Category = items[i].Title
		}
	}
}

// Firm returns the firm's display name.
func (c *Catalog) Firm() string { return c.firm }

// Tagline returns the hero tagline.
func (c *Catalog) Tagline() string { return c.tagline }

// PracticeAreas returns the practice areas in declaration order.
func (c *Catalog) PracticeAreas() []Item { return cloneItems(c.practiceAreas) }

// Attorneys returns the attorney profiles in declaration order.
func (c *Catalog) Attorneys() []Item { return cloneItems(c.attorneys) }

// CaseResults returns the case results in declaration order.
func (c *Catalog) CaseResults() []Item { return cloneItems(c.caseResults) }

// All returns every item: practice areas, then attorneys, then case results.
func (c *Catalog) All() []Item {
	out := make([]Item, 0, len(c.practiceAreas)+len(c.attorneys)+len(c.caseResults))
	out = append(out, c.practiceAreas...)
	out = append(out, c.attorneys...)
	out = append(out, c.caseResults...)
	return out
}

// Categories lists every category tag in first-seen order.
func (c *Catalog) Categories() []string {
	return append([]string(nil), c.categories...)
}

// HasCategory reports whether tag is a category of at least one item.
func (c *Catalog) HasCategory(tag string) bool {
	_, ok := c.categorySet[tag]
	return ok
}

// IsPracticeArea reports whether title names a practice area.
func (c *Catalog) IsPracticeArea(title string) bool {
	_, ok := c.areaSet[title]
	return ok
}

// Filter returns the items matching tag. FilterAll matches everything and an
// unknown tag matches nothing.
func (c *Catalog) Filter(tag string) []Item {
	return FilterItems(c.All(), tag)
}

// FilterItems projects items onto the ones whose category equals tag.
func FilterItems(items []Item, tag string) []Item {
	if tag == FilterAll {
		return cloneItems(items)
	}
	var out []Item
	for _, item := range items {
		if item.Category == tag {
			out = append(out, item)
		}
	}
	return out
}

// OfKind keeps the items of a single collection.
func OfKind(items []Item, kind Kind) []Item {
	var out []Item
	for _, item := range items {
		if item.Kind == kind {
			out = append(out, item)
		}
	}
	return out
}

func cloneItems(items []Item) []Item {
	if items == nil {
		return nil
	}
	return append([]Item(nil), items...)
}
