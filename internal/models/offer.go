package models

import (
	"strconv"
	"strings"
)

type CollectibleKind string

const (
	KindUsername        CollectibleKind = "username"
	KindAnonymousNumber CollectibleKind = "anonymous_number"
)

// OfferListing is the collectible on sale and its asking price in TON.
// Parsed once from the launch parameter and immutable afterwards.
type OfferListing struct {
	Name  string
	Price float64
	Date  int64 // unix timestamp, 0 when the deep link carried none
}

// Kind classifies the listing by its name: names starting with "+" or made
// entirely of digits are anonymous numbers, everything else is a username.
func (o OfferListing) Kind() CollectibleKind {
	if strings.HasPrefix(o.Name, "+") {
		return KindAnonymousNumber
	}
	if _, err := strconv.ParseFloat(o.Name, 64); err == nil {
		return KindAnonymousNumber
	}
	return KindUsername
}

// MatchesSearch reports whether the listing should stay visible for a search
// query: empty query matches, otherwise case-insensitive containment either way.
func (o OfferListing) MatchesSearch(query string) bool {
	if query == "" {
		return true
	}
	name := strings.ToLower(o.Name)
	q := strings.ToLower(query)
	return strings.Contains(name, q) || strings.Contains(q, name)
}
