package storage

import (
	"context"
	"errors"
	"fmt"
	"sync"

	bolt "go.etcd.io/bbolt"

	"gridscape/internal/model"
)

var (
	bucketEpisodes  = []byte("episodes")
	bucketScenarios = []byte("scenarios")
)

// BoltStore persists records in a single-file bbolt database. Episodes are
// keyed by their ID, scenario summaries by the scenario name, both stored
// as JSON payloads.
type BoltStore struct {
	path string

	mu sync.RWMutex
	db *bolt.DB
}

func NewBoltStore(path string) *BoltStore {
	return &BoltStore{path: path}
}

func (s *BoltStore) Init(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.path == "" {
		return errors.New("bolt path is required")
	}
	if s.db != nil {
		return nil
	}

	db, err := bolt.Open(s.path, 0o600, nil)
	if err != nil {
		return err
	}

	err = db.Update(func(tx *bolt.Tx) error {
		for _, bucket := range [][]byte{bucketEpisodes, bucketScenarios} {
			if _, err := tx.CreateBucketIfNotExists(bucket); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		_ = db.Close()
		return err
	}

	s.db = db
	return nil
}

func (s *BoltStore) SaveEpisode(_ context.Context, episode model.EpisodeRecord) error {
	db, err := s.getDB()
	if err != nil {
		return err
	}

	payload, err := EncodeEpisode(episode)
	if err != nil {
		return err
	}

	return db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketEpisodes).Put([]byte(episode.ID), payload)
	})
}

func (s *BoltStore) GetEpisode(_ context.Context, id string) (model.EpisodeRecord, bool, error) {
	db, err := s.getDB()
	if err != nil {
		return model.EpisodeRecord{}, false, err
	}

	var payload []byte
	err = db.View(func(tx *bolt.Tx) error {
		if record := tx.Bucket(bucketEpisodes).Get([]byte(id)); record != nil {
			payload = append([]byte(nil), record...)
		}
		return nil
	})
	if err != nil {
		return model.EpisodeRecord{}, false, err
	}
	if payload == nil {
		return model.EpisodeRecord{}, false, nil
	}

	episode, err := DecodeEpisode(payload)
	if err != nil {
		return model.EpisodeRecord{}, false, fmt.Errorf("decode episode %s: %w", id, err)
	}
	return episode, true, nil
}

func (s *BoltStore) ListEpisodes(_ context.Context, scenario string) ([]model.EpisodeRecord, error) {
	db, err := s.getDB()
	if err != nil {
		return nil, err
	}

	var episodes []model.EpisodeRecord
	err = db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketEpisodes).ForEach(func(k, v []byte) error {
			episode, err := DecodeEpisode(v)
			if err != nil {
				return fmt.Errorf("decode episode %s: %w", k, err)
			}
			if scenario != "" && episode.Scenario != scenario {
				return nil
			}
			episodes = append(episodes, episode)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	sortEpisodes(episodes)
	return episodes, nil
}

func (s *BoltStore) SaveScenarioSummary(_ context.Context, summary model.ScenarioSummary) error {
	db, err := s.getDB()
	if err != nil {
		return err
	}

	payload, err := EncodeScenarioSummary(summary)
	if err != nil {
		return err
	}

	return db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketScenarios).Put([]byte(summary.Name), payload)
	})
}

func (s *BoltStore) GetScenarioSummary(_ context.Context, name string) (model.ScenarioSummary, bool, error) {
	db, err := s.getDB()
	if err != nil {
		return model.ScenarioSummary{}, false, err
	}

	var payload []byte
	err = db.View(func(tx *bolt.Tx) error {
		if record := tx.Bucket(bucketScenarios).Get([]byte(name)); record != nil {
			payload = append([]byte(nil), record...)
		}
		return nil
	})
	if err != nil {
		return model.ScenarioSummary{}, false, err
	}
	if payload == nil {
		return model.ScenarioSummary{}, false, nil
	}

	summary, err := DecodeScenarioSummary(payload)
	if err != nil {
		return model.ScenarioSummary{}, false, fmt.Errorf("decode scenario summary %s: %w", name, err)
	}
	return summary, true, nil
}

func (s *BoltStore) ListScenarioSummaries(_ context.Context) ([]model.ScenarioSummary, error) {
	db, err := s.getDB()
	if err != nil {
		return nil, err
	}

	var summaries []model.ScenarioSummary
	err = db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketScenarios).ForEach(func(k, v []byte) error {
			summary, err := DecodeScenarioSummary(v)
			if err != nil {
				return fmt.Errorf("decode scenario summary %s: %w", k, err)
			}
			summaries = append(summaries, summary)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return summaries, nil
}

func (s *BoltStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

func (s *BoltStore) getDB() (*bolt.DB, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.db == nil {
		return nil, errors.New("store is not initialized")
	}
	return s.db, nil
}
