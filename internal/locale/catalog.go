package locale

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Catalog is one locale's flat key-to-string table.
type Catalog map[string]string

// CatalogError reports a catalog file that could not be loaded.
type CatalogError struct {
	Path string
	Err  error
}

func (e *CatalogError) Error() string {
	return fmt.Sprintf("catalog error %s: %v", e.Path, e.Err)
}

func (e *CatalogError) Unwrap() error {
	return e.Err
}

// Bundle holds the loaded catalogs and resolves lookups through the
// fallback chain: exact tag, base language, then the default locale.
type Bundle struct {
	catalogs   map[string]Catalog
	defaultTag string
}

// NewBundle creates an empty bundle with the given default locale.
func NewBundle(defaultTag string) *Bundle {
	return &Bundle{
		catalogs:   make(map[string]Catalog),
		defaultTag: defaultTag,
	}
}

// LoadDir loads every *.yaml catalog in dir. The file stem is the locale
// tag ("en.yaml", "pt-BR.yaml"). A missing directory yields an empty
// bundle rather than an error; strings then resolve to their keys.
func LoadDir(dir, defaultTag string) (*Bundle, error) {
	b := NewBundle(defaultTag)

	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return b, nil
	}
	if err != nil {
		return nil, &CatalogError{Path: dir, Err: err}
	}

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".yaml") {
			continue
		}
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, &CatalogError{Path: path, Err: err}
		}

		var catalog Catalog
		if err := yaml.Unmarshal(data, &catalog); err != nil {
			return nil, &CatalogError{Path: path, Err: err}
		}
		b.catalogs[strings.TrimSuffix(name, ".yaml")] = catalog
	}

	return b, nil
}

// AddCatalog registers a catalog under the given tag, replacing any
// previous one (last write wins).
func (b *Bundle) AddCatalog(tag string, catalog Catalog) {
	b.catalogs[tag] = catalog
}

// T resolves key in the given locale. Lookup order: exact tag, base
// language ("pt-BR" falls back to "pt"), default locale. A key missing
// everywhere resolves to itself, so the UI never renders blanks.
func (b *Bundle) T(tag, key string) string {
	chain := []string{tag}
	if base := baseTag(tag); base != tag {
		chain = append(chain, base)
	}
	if b.defaultTag != "" && b.defaultTag != tag {
		chain = append(chain, b.defaultTag)
	}

	for _, t := range chain {
		if catalog, ok := b.catalogs[t]; ok {
			if s, ok := catalog[key]; ok {
				return s
			}
		}
	}
	return key
}

// Has reports whether a catalog is loaded for the exact tag.
func (b *Bundle) Has(tag string) bool {
	_, ok := b.catalogs[tag]
	return ok
}

// Locales returns the loaded locale tags, sorted.
func (b *Bundle) Locales() []string {
	tags := make([]string, 0, len(b.catalogs))
	for tag := range b.catalogs {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// baseTag strips the region subtag: "pt-BR" -> "pt".
func baseTag(tag string) string {
	if i := strings.IndexByte(tag, '-'); i > 0 {
		return tag[:i]
	}
	return tag
}
