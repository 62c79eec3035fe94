package dto

import "tradechat/internal/domain/catalog"

// VariableResponse is the JSON view of a catalog variable.
type VariableResponse struct {
	Name         string   `json:"name"`
	Aliases      []string `json:"aliases"`
	Concept      string   `json:"concept"`
	SourceName   string   `json:"sourceName"`
	SourceURL    string   `json:"sourceUrl"`
	Unit         string   `json:"unit"`
	Type         string   `json:"type"`
	Scale        string   `json:"scale"`
	Applications []string `json:"applications"`
}

// FromVariable creates VariableResponse from catalog.Variable.
func FromVariable(v catalog.Variable) VariableResponse {
	return VariableResponse{
		Name:         v.Name,
		Aliases:      nonNil(v.Aliases),
		Concept:      v.Concept,
		SourceName:   v.SourceName,
		SourceURL:    v.SourceURL,
		Unit:         v.Unit,
		Type:         v.Type,
		Scale:        v.Scale,
		Applications: nonNil(v.Applications),
	}
}

// VariableListResponse wraps the full catalog.
type VariableListResponse struct {
	Items      []VariableResponse `json:"items"`
	TotalCount int                `json:"totalCount"`
}

// SearchRequest holds catalog search parameters.
type SearchRequest struct {
	Query string `form:"q"`
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
