// Package persistence keeps sealed recordings on disk between runs of the
// demo client.
package persistence

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"slices"

	"github.com/automoto/puppethands/recording"
	"github.com/quasilyte/gdata"
)

// ErrNotFound is returned by Load for an id that was never saved.
var ErrNotFound = errors.New("recording not found")

const (
	indexKey  = "recordings"
	itemStart = "rec_"
)

// itemStore is the part of gdata.Manager the store needs.
type itemStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

// RecordingStore saves sealed recordings as JSON items, with an index item
// listing their ids in save order.
type RecordingStore struct {
	items itemStore
	ids   []string
}

// Open initializes gdata storage for appName and reads the index.
func Open(appName string) (*RecordingStore, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}
	return newStore(m)
}

func newStore(items itemStore) (*RecordingStore, error) {
	s := &RecordingStore{items: items}
	data, err := items.LoadItem(indexKey)
	if err != nil {
		return nil, fmt.Errorf("load recording index: %w", err)
	}
	if len(data) == 0 {
		// Nothing saved yet
		return s, nil
	}
	if err := json.Unmarshal(data, &s.ids); err != nil {
		return nil, fmt.Errorf("parse recording index: %w", err)
	}
	return s, nil
}

// Save writes rec under id, replacing any earlier recording with that id.
func (s *RecordingStore) Save(id string, rec recording.Recording) error {
	if id == "" {
		return errors.New("save recording: empty id")
	}
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("serialize recording %s: %w", id, err)
	}
	if err := s.items.SaveItem(itemStart+id, data); err != nil {
		return fmt.Errorf("save recording %s: %w", id, err)
	}

	if slices.Contains(s.ids, id) {
		return nil
	}
	ids := append(slices.Clone(s.ids), id)
	index, err := json.Marshal(ids)
	if err != nil {
		return fmt.Errorf("serialize recording index: %w", err)
	}
	if err := s.items.SaveItem(indexKey, index); err != nil {
		return fmt.Errorf("save recording index: %w", err)
	}
	s.ids = ids
	log.Printf("[store] saved recording %s (%d snapshots)", id, rec.Len())
	return nil
}

// Load reads the recording saved under id. Stored snapshots are checked for
// timestamp order on the way in.
func (s *RecordingStore) Load(id string) (recording.Recording, error) {
	data, err := s.items.LoadItem(itemStart + id)
	if err != nil {
		return recording.Recording{}, fmt.Errorf("load recording %s: %w", id, err)
	}
	if len(data) == 0 {
		return recording.Recording{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	var rec recording.Recording
	if err := json.Unmarshal(data, &rec); err != nil {
		return recording.Recording{}, fmt.Errorf("parse recording %s: %w", id, err)
	}
	return rec, nil
}

// List returns the saved ids, oldest first.
func (s *RecordingStore) List() []string {
	return slices.Clone(s.ids)
}

// LoadAll loads every listed recording, skipping ones that fail with a
// warning so one bad item does not hide the rest.
func (s *RecordingStore) LoadAll() map[string]recording.Recording {
	out := make(map[string]recording.Recording, len(s.ids))
	for _, id := range s.ids {
		rec, err := s.Load(id)
		if err != nil {
			log.Printf("Warning: Could not load recording: %v", err)
			continue
		}
		out[id] = rec
	}
	return out
}
