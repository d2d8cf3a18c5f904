package domain

import (
	"encoding/json"
	"strings"
)

// TopicDelimiter separates the path segments of a topic id.
const TopicDelimiter = "/"

// DefaultTopicType is used for documentation files that sit directly under a domain.
const DefaultTopicType = "general"

// Difficulty is the requested depth of the generated questions.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// IsValid reports whether d is one of the supported difficulties.
func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced:
		return true
	}
	return false
}

// Topic is one documentation record listed in the catalog.
type Topic struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

// CatalogEntry groups the topics of one documentation domain.
type CatalogEntry struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Topics []Topic `json:"topics"`
}

// DocumentationMeta is the "meta" section of a documentation record.
type DocumentationMeta struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// DocumentationTaxonomy is the "taxonomy" section of a documentation record.
type DocumentationTaxonomy struct {
	Category string `json:"category"`
}

// DocumentationRecord is a single documentation snippet, addressed by (DomainID, TopicID).
// Raw keeps the full decoded document so prompts can embed sections the typed fields skip.
type DocumentationRecord struct {
	DomainID string `json:"-"`
	TopicID  string `json:"-"`
	Path     string `json:"-"`

	Name           string                `json:"name"`
	Meta           DocumentationMeta     `json:"meta"`
	Taxonomy       DocumentationTaxonomy `json:"taxonomy"`
	MentalModel    json.RawMessage       `json:"mental_model,omitempty"`
	UsagePatterns  json.RawMessage       `json:"usage_patterns,omitempty"`
	CommonPitfalls json.RawMessage       `json:"common_pitfalls,omitempty"`
	BestPractices  json.RawMessage       `json:"best_practices,omitempty"`

	Raw map[string]interface{} `json:"-"`
}

// MentalModelSummary returns mental_model.summary, or mental_model itself when it is a plain string.
func (r *DocumentationRecord) MentalModelSummary() string {
	if len(r.MentalModel) == 0 {
		return ""
	}
	var asString string
	if err := json.Unmarshal(r.MentalModel, &asString); err == nil {
		return asString
	}
	var asObject struct {
		Summary string `json:"summary"`
	}
	if err := json.Unmarshal(r.MentalModel, &asObject); err == nil {
		return asObject.Summary
	}
	return ""
}

// Category returns taxonomy.category or "General" when absent.
func (r *DocumentationRecord) Category() string {
	if r.Taxonomy.Category == "" {
		return "General"
	}
	return r.Taxonomy.Category
}

// TopicSegments splits a topic id into its non-empty path segments.
func TopicSegments(topicID string) []string {
	parts := strings.Split(topicID, TopicDelimiter)
	segments := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			segments = append(segments, p)
		}
	}
	return segments
}
