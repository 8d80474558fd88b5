package models

import "time"

// RateSnapshot is the last known USD price of TON with its percentage changes.
// Replaced wholesale on every successful poll; a failed poll keeps the
// previous snapshot.
type RateSnapshot struct {
	USDPrice  float64
	Diff24h   string
	Diff7d    string
	Diff30d   string
	FetchedAt time.Time
}
