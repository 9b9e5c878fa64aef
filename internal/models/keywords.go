package models

import (
	"strings"
	"unicode/utf8"
)

// Translator converts display text belonging to a translation category into
// the active locale. Use IdentityTranslator when no translation service is
// available.
type Translator func(category string, text string) string

// IdentityTranslator returns the supplied text unchanged.
func IdentityTranslator(category string, text string) string {
	return text
}

// translationCategoryModels names the translation context for model titles.
const translationCategoryModels = "Models"

// KeywordFilter controls which title tokens survive keyword extraction.
// The defaults are display heuristics tuned to known model titles, so they
// are configuration rather than algorithm.
type KeywordFilter struct {
	// StopWords are skipped during extraction, compared case-insensitively.
	StopWords []string
	// MinimumTokenLength is the smallest rune count a token may have and
	// still count as a keyword.
	MinimumTokenLength int
	// MaximumKeywords caps how many surviving tokens are joined.
	MaximumKeywords int
}

// DefaultKeywordFilter mirrors the stop list used by the host application's
// model search box.
func DefaultKeywordFilter() KeywordFilter {
	return KeywordFilter{
		StopWords:          []string{"segmentation", "quick", "-", "ts1", "ts2", "v1", "v2", "the"},
		MinimumTokenLength: 3,
		MaximumKeywords:    2,
	}
}

// SearchKeywords derives a short display label from the resolved model's
// translated title using the default filter. It returns an empty string when
// the identifier is absent from the catalog; it never fails.
func SearchKeywords(resolvedID string, catalog Collection, translate Translator) string {
	return SearchKeywordsFiltered(resolvedID, catalog, translate, DefaultKeywordFilter())
}

// SearchKeywordsFiltered derives a display label using an explicit filter.
// When every title token is filtered out, the first raw token is returned so
// the search box is never populated with nothing for a titled model.
func SearchKeywordsFiltered(resolvedID string, catalog Collection, translate Translator, filter KeywordFilter) string {
	if translate == nil {
		translate = IdentityTranslator
	}

	for _, descriptor := range catalog {
		if descriptor.ID != resolvedID {
			continue
		}

		translatedTitle := translate(translationCategoryModels, descriptor.Title)
		titleTokens := strings.Fields(translatedTitle)

		keywords := make([]string, 0, filter.MaximumKeywords)
		for _, titleToken := range titleTokens {
			if filter.isStopWord(titleToken) {
				continue
			}
			if utf8.RuneCountInString(titleToken) < filter.MinimumTokenLength {
				continue
			}
			keywords = append(keywords, titleToken)
			if len(keywords) >= filter.MaximumKeywords {
				break
			}
		}

		if len(keywords) > 0 {
			return strings.Join(keywords, " ")
		}
		if len(titleTokens) > 0 {
			return titleTokens[0]
		}
		return ""
	}

	return ""
}

// isStopWord reports whether the token appears in the stop list, ignoring case.
func (filter KeywordFilter) isStopWord(token string) bool {
	for _, stopWord := range filter.StopWords {
		if strings.EqualFold(token, stopWord) {
			return true
		}
	}
	return false
}
