// internal/domain/search/ranker.go
package search

import (
	"sort"
	"strings"

	"github.com/goldenbarrel/storefront-backend/internal/domain/catalog"
)

// MaxResults caps a ranked result set
const MaxResults = 8

// Score rates how well a product matches the query. Scores are additive over
// independent match conditions, case-insensitive, and deterministic. An exact
// name match always collects the contains/prefix scores too, so a full-name
// query outranks any substring query for the same product.
func Score(p catalog.Product, query string) int {
	term := strings.ToLower(strings.TrimSpace(query))
	if term == "" {
		return 0
	}

	name := strings.ToLower(p.Name)
	brand := strings.ToLower(p.Brand)
	distillery := strings.ToLower(p.Distillery)

	score := 0

	if name == term {
		score += 100
	}
	if brand == term {
		score += 50
	}

	if strings.HasPrefix(name, term) {
		score += 20
	}
	if strings.HasPrefix(brand, term) {
		score += 15
	}

	if strings.Contains(name, term) {
		score += 10
	}
	if strings.Contains(brand, term) {
		score += 5
	}
	if distillery != "" && strings.Contains(distillery, term) {
		score += 3
	}

	for _, word := range strings.Fields(name) {
		if word == term {
			score += 12
		}
		if strings.HasPrefix(word, term) {
			score += 8
		}
	}
	for _, word := range strings.Fields(brand) {
		if word == term {
			score += 6
		}
		if strings.HasPrefix(word, term) {
			score += 4
		}
	}

	return score
}

// Rank scores every catalog entry against the query and returns the top
// MaxResults products, most relevant first. Zero-score products are excluded;
// ties keep catalog order (stable sort). An empty or whitespace-only query
// yields an empty result. Rank is a pure function of (products, query).
func Rank(products []catalog.Product, query string) []catalog.Product {
	term := strings.TrimSpace(query)
	if term == "" {
		return nil
	}

	type scored struct {
		product catalog.Product
		score   int
	}

	var matches []scored
	for _, p := range products {
		if s := Score(p, term); s > 0 {
			matches = append(matches, scored{product: p, score: s})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].score > matches[j].score
	})

	if len(matches) > MaxResults {
		matches = matches[:MaxResults]
	}

	results := make([]catalog.Product, len(matches))
	for i, m := range matches {
		results[i] = m.product
	}
	return results
}
