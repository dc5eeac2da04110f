package feed

import "strings"

// CategoryAll is the sentinel category matching every article.
const CategoryAll = "all"

// NewsFilter narrows the articles returned by Service.News. The zero value
// matches everything.
type NewsFilter struct {
	// Category keeps only articles whose category equals it,
	// case-insensitively. Empty or CategoryAll keeps every article.
	Category string
	// Query keeps only articles whose title or preview contains it,
	// case-insensitively. Empty keeps every article.
	Query string
}

func filterArticles(articles []Article, f NewsFilter) []Article {
	filtered := make([]Article, 0, len(articles))
	for _, a := range articles {
		if !matchCategory(a, f.Category) {
			continue
		}
		if !matchQuery(a, f.Query) {
			continue
		}
		filtered = append(filtered, a)
	}
	return filtered
}

func matchCategory(a Article, category string) bool {
	if category == "" || strings.EqualFold(category, CategoryAll) {
		return true
	}
	return strings.EqualFold(a.Category, category)
}

func matchQuery(a Article, query string) bool {
	if query == "" {
		return true
	}
	query = strings.ToLower(query)
	return strings.Contains(strings.ToLower(a.Title), query) ||
		strings.Contains(strings.ToLower(a.Preview), query)
}
