package catalogue

import (
	"perfumefinder/internal/models"
	"strings"
	"unicode/utf8"
)

const (
	maxSuggestions     = 5
	minSuggestionQuery = 2
)

// Search keeps perfumes whose name, brand, description or any single note
// contains the query, case-insensitively. A blank query returns items as is.
func Search(items []models.Perfume, query string) []models.Perfume {
	if strings.TrimSpace(query) == "" {
		return items
	}

	q := strings.ToLower(query)
	result := make([]models.Perfume, 0)
	for i := range items {
		if matches(&items[i], q) {
			result = append(result, items[i])
		}
	}
	return result
}

func matches(p *models.Perfume, q string) bool {
	if strings.Contains(strings.ToLower(p.Name), q) ||
		strings.Contains(strings.ToLower(p.Brand), q) ||
		strings.Contains(strings.ToLower(p.Description), q) {
		return true
	}
	for _, tier := range [][]string{p.Notes.Top, p.Notes.Middle, p.Notes.Base} {
		for _, note := range tier {
			if strings.Contains(strings.ToLower(note), q) {
				return true
			}
		}
	}
	return false
}

// Suggestions returns up to five distinct names and brands containing the
// query, in the order they are first met while walking items.
func Suggestions(items []models.Perfume, query string) []string {
	trimmed := strings.TrimSpace(query)
	if utf8.RuneCountInString(trimmed) < minSuggestionQuery {
		return []string{}
	}

	q := strings.ToLower(query)
	seen := make(map[string]struct{})
	result := make([]string, 0, maxSuggestions)
	add := func(s string) {
		if _, ok := seen[s]; ok {
			return
		}
		seen[s] = struct{}{}
		result = append(result, s)
	}

	for i := range items {
		if strings.Contains(strings.ToLower(items[i].Name), q) {
			add(items[i].Name)
		}
		if strings.Contains(strings.ToLower(items[i].Brand), q) {
			add(items[i].Brand)
		}
		if len(result) >= maxSuggestions {
			break
		}
	}

	if len(result) > maxSuggestions {
		result = result[:maxSuggestions]
	}
	return result
}

// FindByID returns nil when no perfume has the id.
func FindByID(items []models.Perfume, id string) *models.Perfume {
	for i := range items {
		if items[i].ID == id {
			p := items[i]
			return &p
		}
	}
	return nil
}

// FilterByIDs keeps catalogue order, not the order of ids.
func FilterByIDs(items []models.Perfume, ids []string) []models.Perfume {
	wanted := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		wanted[id] = struct{}{}
	}
	result := make([]models.Perfume, 0, len(ids))
	for _, p := range items {
		if _, ok := wanted[p.ID]; ok {
			result = append(result, p)
		}
	}
	return result
}
