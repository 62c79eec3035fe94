package catalog

import "strings"

// Catalog is an immutable, ordered collection of variables.
// It is built once at startup and shared by all request handlers without locking.
type Catalog struct {
	variables []Variable
}

// New creates a Catalog from records in the given order.
// Records are deep-copied; later changes to the input do not affect the catalog.
func New(records []Variable) *Catalog {
	vars := make([]Variable, len(records))
	for i, r := range records {
		vars[i] = r.clone()
	}
	return &Catalog{variables: vars}
}

// Len returns the number of variables.
func (c *Catalog) Len() int {
	return len(c.variables)
}

// All returns a copy of all variables in catalog order.
func (c *Catalog) All() []Variable {
	out := make([]Variable, len(c.variables))
	for i, v := range c.variables {
		out[i] = v.clone()
	}
	return out
}

// Names returns variable names in catalog order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.variables))
	for i, v := range c.variables {
		names[i] = v.Name
	}
	return names
}

// Search finds the first variable matching an already normalized query
// (lowercase, trimmed). Matching runs in three tiers, each attempted only when
// the previous one found nothing:
//
//  1. query is contained in "name alias1 alias2 ..."
//  2. query is contained in the name
//  3. query is contained in one of the aliases
//
// Within a tier the first variable in catalog order wins.
// An empty query never matches.
func (c *Catalog) Search(query string) (Variable, bool) {
	if query == "" {
		return Variable{}, false
	}

	for _, v := range c.variables {
		if strings.Contains(v.tokens(), query) {
			return v.clone(), true
		}
	}

	for _, v := range c.variables {
		if strings.Contains(strings.ToLower(v.Name), query) {
			return v.clone(), true
		}
	}

	for _, v := range c.variables {
		for _, a := range v.Aliases {
			if strings.Contains(strings.ToLower(a), query) {
				return v.clone(), true
			}
		}
	}

	return Variable{}, false
}
