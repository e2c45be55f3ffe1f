package storage

import (
	"context"
	"sort"
	"sync"

	"gridscape/internal/model"
)

type MemoryStore struct {
	mu          sync.RWMutex
	initialized bool
	episodes    map[string]model.EpisodeRecord
	summaries   map[string]model.ScenarioSummary
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Init(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.initialized = true
	s.episodes = make(map[string]model.EpisodeRecord)
	s.summaries = make(map[string]model.ScenarioSummary)
	return nil
}

func (s *MemoryStore) SaveEpisode(_ context.Context, episode model.EpisodeRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.episodes[episode.ID] = copyEpisode(episode)
	return nil
}

func (s *MemoryStore) GetEpisode(_ context.Context, id string) (model.EpisodeRecord, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	episode, ok := s.episodes[id]
	if !ok {
		return model.EpisodeRecord{}, false, nil
	}
	return copyEpisode(episode), true, nil
}

func (s *MemoryStore) ListEpisodes(_ context.Context, scenario string) ([]model.EpisodeRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	episodes := make([]model.EpisodeRecord, 0, len(s.episodes))
	for _, episode := range s.episodes {
		if scenario != "" && episode.Scenario != scenario {
			continue
		}
		episodes = append(episodes, copyEpisode(episode))
	}
	sortEpisodes(episodes)
	return episodes, nil
}

func (s *MemoryStore) SaveScenarioSummary(_ context.Context, summary model.ScenarioSummary) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.summaries[summary.Name] = summary
	return nil
}

func (s *MemoryStore) GetScenarioSummary(_ context.Context, name string) (model.ScenarioSummary, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	summary, ok := s.summaries[name]
	return summary, ok, nil
}

func (s *MemoryStore) ListScenarioSummaries(_ context.Context) ([]model.ScenarioSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	summaries := make([]model.ScenarioSummary, 0, len(s.summaries))
	for _, summary := range s.summaries {
		summaries = append(summaries, summary)
	}
	sort.Slice(summaries, func(i, j int) bool { return summaries[i].Name < summaries[j].Name })
	return summaries, nil
}

func copyEpisode(e model.EpisodeRecord) model.EpisodeRecord {
	e.Actions = append([]int(nil), e.Actions...)
	e.Rewards = append([]float64(nil), e.Rewards...)
	return e
}

func sortEpisodes(episodes []model.EpisodeRecord) {
	sort.Slice(episodes, func(i, j int) bool {
		if !episodes[i].StartedAt.Equal(episodes[j].StartedAt) {
			return episodes[i].StartedAt.Before(episodes[j].StartedAt)
		}
		return episodes[i].ID < episodes[j].ID
	})
}
