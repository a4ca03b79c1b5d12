package i18n

import (
	_ "embed"
	"fmt"
	"sort"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed translations.yaml
var defaultTranslations []byte

// Catalog holds translated labels per language. English is the source language.
type Catalog struct {
	fallback language.Tag
	tags     []language.Tag
	messages []map[string]string
	matcher  language.Matcher
}

// NewCatalog builds a catalog from the embedded translations file
func NewCatalog(fallback language.Tag) (*Catalog, error) {
	return ParseCatalog(defaultTranslations, fallback)
}

// ParseCatalog builds a catalog from YAML of the form {tag: {source: translation}}
func ParseCatalog(data []byte, fallback language.Tag) (*Catalog, error) {
	var raw map[string]map[string]string
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse translations: %w", err)
	}

	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	// Index 0 is the source language so unmatched requests stay untranslated
	c := &Catalog{
		fallback: fallback,
		tags:     []language.Tag{language.English},
		messages: []map[string]string{nil},
	}
	for _, k := range keys {
		tag, err := language.Parse(k)
		if err != nil {
			return nil, fmt.Errorf("invalid language tag %q: %w", k, err)
		}
		c.tags = append(c.tags, tag)
		c.messages = append(c.messages, raw[k])
	}
	c.matcher = language.NewMatcher(c.tags)

	return c, nil
}

// Translate returns source in the given language, or source itself when no translation exists
func (c *Catalog) Translate(lang language.Tag, source string) string {
	_, idx, conf := c.matcher.Match(lang)
	if conf == language.No {
		return source
	}
	if msg, ok := c.messages[idx][source]; ok && msg != "" {
		return msg
	}
	return source
}

// Negotiate picks the best supported language for an Accept-Language header value
func (c *Catalog) Negotiate(acceptLanguage string) language.Tag {
	if acceptLanguage == "" {
		return c.fallback
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return c.fallback
	}
	_, idx, conf := c.matcher.Match(tags...)
	if conf == language.No {
		return c.fallback
	}
	return c.tags[idx]
}

// Fallback returns the default language
func (c *Catalog) Fallback() language.Tag {
	return c.fallback
}

// Supported lists the languages the catalog can serve
func (c *Catalog) Supported() []language.Tag {
	out := make([]language.Tag, len(c.tags))
	copy(out, c.tags)
	return out
}
