package repository

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/noah-isme/teacher-activity-api/internal/models"
)

// LoadActivities reads and parses the JSON activity dataset. A read or parse
// failure aborts startup; individual record fields are not validated.
func LoadActivities(path string) ([]models.ActivityRecord, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}

	var records []models.ActivityRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("parse dataset: %w", err)
	}

	return records, nil
}

// ActivityStore holds the deduplicated record set for the process lifetime.
// It never mutates after construction, so concurrent readers need no locking.
type ActivityStore struct {
	records []models.ActivityRecord
	removed int
}

// NewActivityStore deduplicates the raw records by their composite key,
// keeping the first occurrence and preserving input order.
func NewActivityStore(records []models.ActivityRecord) *ActivityStore {
	seen := make(map[models.ActivityKey]struct{}, len(records))
	kept := make([]models.ActivityRecord, 0, len(records))
	for _, record := range records {
		key := record.Key()
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		kept = append(kept, record)
	}

	return &ActivityStore{records: kept, removed: len(records) - len(kept)}
}

// All returns the shared deduplicated slice. Callers must not mutate it.
func (s *ActivityStore) All() []models.ActivityRecord {
	return s.records
}

// Len returns the number of stored records.
func (s *ActivityStore) Len() int {
	return len(s.records)
}

// DuplicatesRemoved reports how many raw records were dropped during load.
func (s *ActivityStore) DuplicatesRemoved() int {
	return s.removed
}
