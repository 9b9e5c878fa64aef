package models

import "strings"

// Summary projects the descriptor fields exposed by catalog listings.
type Summary struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Version         string `json:"version"`
	Description     string `json:"description,omitempty"`
	ImagingModality string `json:"imagingModality,omitempty"`
	Deprecated      bool   `json:"deprecated"`
}

// List returns catalog summaries in collection order, omitting deprecated
// entries unless includeDeprecated is set.
func List(catalog Collection, includeDeprecated bool) []Summary {
	summaries := make([]Summary, 0, len(catalog))
	for _, descriptor := range catalog {
		if descriptor.Deprecated && !includeDeprecated {
			continue
		}
		summaries = append(summaries, Summary{
			ID:              descriptor.ID,
			Title:           descriptor.Title,
			Version:         descriptor.Version,
			Description:     descriptor.Description,
			ImagingModality: descriptor.ImagingModality,
			Deprecated:      descriptor.Deprecated,
		})
	}
	return summaries
}

// FindByBaseName returns identifiers whose base name matches baseName, in
// collection order. Because the host lists newer versions first, the first
// returned identifier is the newest available version.
func FindByBaseName(catalog Collection, baseName string, includeDeprecated bool) []string {
	basePrefix := baseName + versionPrefixSeparator
	matchingIdentifiers := make([]string, 0, len(catalog))
	for _, descriptor := range catalog {
		if descriptor.Deprecated && !includeDeprecated {
			continue
		}
		if strings.HasPrefix(descriptor.ID, basePrefix) {
			matchingIdentifiers = append(matchingIdentifiers, descriptor.ID)
		}
	}
	return matchingIdentifiers
}
