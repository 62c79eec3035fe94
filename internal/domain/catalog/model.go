// Package catalog provides the read-only catalog of international trade variables
// (Catálogo de variables de comercio internacional).
package catalog

import "strings"

// Variable describes one measurable trade concept.
type Variable struct {
	// Name is the canonical display name (e.g., "Valor FOB")
	Name string `json:"name" yaml:"name"`

	// Aliases are alternate names or abbreviations (e.g., "FOB")
	Aliases []string `json:"aliases" yaml:"aliases"`

	Concept    string `json:"concept" yaml:"concept"`
	SourceName string `json:"source_name" yaml:"source_name"`
	SourceURL  string `json:"source_url" yaml:"source_url"`

	// Unit of measurement (e.g., "USD", "días")
	Unit string `json:"unit" yaml:"unit"`

	// Type is the qualitative/quantitative classification
	Type string `json:"type" yaml:"type"`

	// Scale is the measurement scale: nominal, ordinal, intervalo, razón
	Scale string `json:"scale" yaml:"scale"`

	Applications []string `json:"applications" yaml:"applications"`
}

// tokens returns the lowercase name followed by the lowercase aliases, space joined.
func (v Variable) tokens() string {
	parts := make([]string, 0, len(v.Aliases)+1)
	parts = append(parts, strings.ToLower(v.Name))
	for _, a := range v.Aliases {
		parts = append(parts, strings.ToLower(a))
	}
	return strings.Join(parts, " ")
}

// clone returns a deep copy so the catalog never shares slices with callers.
func (v Variable) clone() Variable {
	out := v
	out.Aliases = cloneStrings(v.Aliases)
	out.Applications = cloneStrings(v.Applications)
	return out
}

func cloneStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}
