package catalog

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Tier is the classification of a catalog entry.
type Tier int

const (
	TierFree Tier = iota
	TierPaid
)

func (t Tier) String() string {
	if t == TierFree {
		return "free"
	}
	return "paid"
}

// freeMarkers are the ID substrings providers use to flag a free variant.
var freeMarkers = []string{":free", "-free", "(free)"}

// Classify decides free vs paid for one model. Pure and total: every
// model yields exactly one tier, malformed pricing never errors.
//
// Ordered rules, first match wins:
//  1. A free marker in the ID wins regardless of pricing — some
//     zero-priced previews are deliberately excluded from the free tier
//     and only the marker signals supported status.
//  2. Every pricing dimension absent, null, zero, or unparseable: free.
//     A single positive numeric value anywhere forces paid.
//  3. Otherwise paid.
func Classify(m Model) Tier {
	id := strings.ToLower(m.ID)
	for _, marker := range freeMarkers {
		if strings.Contains(id, marker) {
			return TierFree
		}
	}

	if allNonPositive(m.Pricing) {
		return TierFree
	}
	return TierPaid
}

// allNonPositive reports whether no pricing value parses to a positive
// number. Nested maps contribute their values; unparseable values count
// as zero.
func allNonPositive(p Pricing) bool {
	for _, v := range p {
		if nested, ok := v.(map[string]any); ok {
			for _, nv := range nested {
				if priceValue(nv) > 0 {
					return false
				}
			}
			continue
		}
		if priceValue(v) > 0 {
			return false
		}
	}
	return true
}

// priceValue normalizes one pricing value to a float, treating null and
// garbage as zero.
func priceValue(v any) float64 {
	switch x := v.(type) {
	case nil:
		return 0
	case float64:
		return x
	case int:
		return float64(x)
	case json.Number:
		f, err := x.Float64()
		if err != nil {
			return 0
		}
		return f
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

// FreeIDs filters the catalog down to free model IDs, preserving catalog
// order and dropping duplicates (first occurrence wins).
func FreeIDs(models []Model) []string {
	seen := make(map[string]bool, len(models))
	ids := make([]string, 0, len(models))
	for _, m := range models {
		if m.ID == "" || seen[m.ID] {
			continue
		}
		if Classify(m) == TierFree {
			seen[m.ID] = true
			ids = append(ids, m.ID)
		}
	}
	return ids
}

// CountTiers returns the number of free and paid entries in the catalog.
func CountTiers(models []Model) (free, paid int) {
	for _, m := range models {
		if Classify(m) == TierFree {
			free++
		} else {
			paid++
		}
	}
	return free, paid
}
