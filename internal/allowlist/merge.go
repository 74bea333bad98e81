package allowlist

import (
	"encoding/json"
	"fmt"

	"github.com/tidwall/sjson"
)

// ChangeSet is the difference between the stored allow-list and the
// newly computed one. Transient: built fresh each run, never persisted.
type ChangeSet struct {
	Added     []string
	Removed   []string
	Unchanged int
}

// Empty reports whether applying would be a no-op.
func (c ChangeSet) Empty() bool {
	return len(c.Added) == 0 && len(c.Removed) == 0
}

// Plan computes the ChangeSet between the current sequence and the next
// one. Comparison is order-insensitive and duplicates in the stored data
// count as a single membership. Added keeps next's order, Removed keeps
// current's order.
func Plan(current, next []string) ChangeSet {
	inCurrent := make(map[string]bool, len(current))
	for _, id := range current {
		inCurrent[id] = true
	}
	inNext := make(map[string]bool, len(next))
	for _, id := range next {
		inNext[id] = true
	}

	var cs ChangeSet
	for _, id := range next {
		if !inCurrent[id] {
			cs.Added = append(cs.Added, id)
			inCurrent[id] = true // collapse duplicates in next
		}
	}
	seen := make(map[string]bool, len(current))
	for _, id := range current {
		if seen[id] {
			continue
		}
		seen[id] = true
		if inNext[id] {
			cs.Unchanged++
		} else {
			cs.Removed = append(cs.Removed, id)
		}
	}
	return cs
}

// Apply splices ids into the document at the path, leaving every byte
// outside the target untouched. The stored list always becomes exactly
// ids — entries the latest catalog no longer knows are dropped, the
// allow-list never accumulates.
func Apply(doc []byte, p Path, ids []string) ([]byte, error) {
	if ids == nil {
		ids = []string{}
	}
	raw, err := json.Marshal(ids)
	if err != nil {
		return nil, fmt.Errorf("encode allow-list: %w", err)
	}
	out, err := sjson.SetRawBytes(doc, p.query(), raw)
	if err != nil {
		return nil, fmt.Errorf("splice %s: %w", p, err)
	}
	return out, nil
}
