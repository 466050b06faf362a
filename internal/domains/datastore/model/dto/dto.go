package dto

import "hotel/internal/store"

// SyncResponse reports how many records each collection moved.
type SyncResponse struct {
	Collections map[string]int `json:"collections"`
	Backups     []string       `json:"backups,omitempty"`
}

func (r *SyncResponse) FromCounts(counts map[store.Entity]int) {
	r.Collections = make(map[string]int, len(counts))
	for entity, count := range counts {
		r.Collections[string(entity)] = count
	}
}
