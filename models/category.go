package models

import (
	"fmt"
	"strings"
)

// Category is the user-facing place filter. CategoryAll expands to the
// union of every known provider token.
type Category int

const (
	CategoryAll Category = iota
	CategoryRestaurant
	CategoryCafe
	CategoryLaundry
)

// categoryTokens maps each specific category to its provider tokens.
// Declaration order here fixes the token order of the CategoryAll expansion.
var categoryOrder = []Category{CategoryRestaurant, CategoryCafe, CategoryLaundry}

var categoryTokens = map[Category][]string{
	CategoryRestaurant: {"restaurant"},
	CategoryCafe:       {"cafe"},
	CategoryLaundry:    {"laundry"},
}

var categoryNames = map[Category]string{
	CategoryAll:        "All",
	CategoryRestaurant: "Restaurant",
	CategoryCafe:       "Cafe",
	CategoryLaundry:    "Laundry",
}

func init() {
	// The mapping table is static; fail fast on a bad edit rather than
	// sending a malformed type parameter to the provider.
	seen := map[string]Category{}
	for _, c := range categoryOrder {
		tokens, ok := categoryTokens[c]
		if !ok || len(tokens) == 0 {
			panic(fmt.Sprintf("category %s has no provider tokens", categoryNames[c]))
		}
		for _, tok := range tokens {
			if tok == "" {
				panic(fmt.Sprintf("category %s has an empty provider token", categoryNames[c]))
			}
			if prev, dup := seen[tok]; dup {
				panic(fmt.Sprintf("token %q mapped to both %s and %s",
					tok, categoryNames[prev], categoryNames[c]))
			}
			seen[tok] = c
		}
	}
}

func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Category(%d)", int(c))
}

// Tokens returns the provider tokens for the category. CategoryAll returns
// the union of every defined token in declaration order.
func (c Category) Tokens() []string {
	if c == CategoryAll {
		var all []string
		for _, cat := range categoryOrder {
			all = append(all, categoryTokens[cat]...)
		}
		return all
	}
	tokens := categoryTokens[c]
	out := make([]string, len(tokens))
	copy(out, tokens)
	return out
}

// TokenParam renders the token set as the provider's comma-joined type
// parameter.
func (c Category) TokenParam() string {
	return strings.Join(c.Tokens(), ",")
}

// Categories lists every selectable category, CategoryAll first.
func Categories() []Category {
	return append([]Category{CategoryAll}, categoryOrder...)
}
