// Package plural wraps the pluralization service used for bracketed
// cross-reference prefixes.
package plural

import pluralize "github.com/gertd/go-pluralize"

// Service pluralizes prefix words. It is safe for reuse across runs.
type Service struct {
	client *pluralize.Client
}

// NewService returns a ready Service.
func NewService() *Service {
	return &Service{client: pluralize.NewClient()}
}

// Pluralize returns the plural form of word. A trailing period is kept
// outside the pluralization, so "fig." becomes "figs.".
func (s *Service) Pluralize(word string) string {
	if n := len(word); n > 0 && word[n-1] == '.' {
		return s.client.Plural(word[:n-1]) + "."
	}
	return s.client.Plural(word)
}
