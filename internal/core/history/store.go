package history

import (
	"encoding/json"
	"fmt"

	"github.com/sahilm/fuzzy"
	"github.com/sirupsen/logrus"

	"github.com/sadopc/clicksnitch/internal/core/storage"
	"github.com/sadopc/clicksnitch/internal/logging"
)

const (
	// Key is the storage key holding the JSON-encoded list.
	Key = "recentScans"
	// Limit is the maximum number of records kept.
	Limit = 5
)

// Store manages the bounded recent-scan list, most recent first.
type Store struct {
	kv  *storage.Store
	log logrus.FieldLogger
}

// NewStore creates a history store on top of kv. A nil logger discards.
func NewStore(kv *storage.Store, log logrus.FieldLogger) *Store {
	if log == nil {
		log = logging.Discard()
	}
	return &Store{kv: kv, log: log}
}

// List returns the stored records. An absent or unparseable value reads as
// an empty list.
func (s *Store) List() ([]Record, error) {
	raw, ok, err := s.kv.GetItem(Key)
	if err != nil {
		return nil, fmt.Errorf("loading history: %w", err)
	}
	return s.decode(raw, ok), nil
}

// Add prepends r, drops everything past Limit and persists the result in
// one transaction. It returns the list as written.
func (s *Store) Add(r Record) ([]Record, error) {
	var written []Record
	err := s.kv.Update(Key, func(old string, ok bool) (string, error) {
		records := s.decode(old, ok)
		records = append([]Record{r}, records...)
		records = clamp(records)

		data, err := json.Marshal(records)
		if err != nil {
			return "", fmt.Errorf("encoding history: %w", err)
		}
		written = records
		return string(data), nil
	})
	if err != nil {
		return nil, fmt.Errorf("saving history: %w", err)
	}
	return written, nil
}

// Clear removes all records.
func (s *Store) Clear() error {
	if err := s.kv.RemoveItem(Key); err != nil {
		return fmt.Errorf("clearing history: %w", err)
	}
	return nil
}

// Search fuzzy-matches query against record URLs, best match first. An
// empty query returns the full list.
func (s *Store) Search(query string) ([]Record, error) {
	records, err := s.List()
	if err != nil {
		return nil, err
	}
	if query == "" {
		return records, nil
	}

	matches := fuzzy.FindFrom(query, urlSource(records))
	out := make([]Record, 0, len(matches))
	for _, m := range matches {
		out = append(out, records[m.Index])
	}
	return out, nil
}

func (s *Store) decode(raw string, ok bool) []Record {
	if !ok || raw == "" {
		return []Record{}
	}
	var records []Record
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		s.log.WithError(err).Warn("stored history is malformed, treating as empty")
		return []Record{}
	}
	if records == nil {
		return []Record{}
	}
	return clamp(records)
}

func clamp(records []Record) []Record {
	if len(records) > Limit {
		return records[:Limit]
	}
	return records
}

type urlSource []Record

func (u urlSource) String(i int) string { return u[i].URL }
func (u urlSource) Len() int            { return len(u) }
