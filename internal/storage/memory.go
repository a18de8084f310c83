package storage

import (
	"context"
	"sort"
	"sync"

	"neofuzzy/internal/model"
)

type MemoryStore struct {
	mu          sync.RWMutex
	initialized bool
	runs        map[string]model.RunRecord
	seq         map[string]int
	nextSeq     int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Init(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.initialized = true
	s.runs = make(map[string]model.RunRecord)
	s.seq = make(map[string]int)
	s.nextSeq = 0
	return nil
}

func (s *MemoryStore) SaveRun(_ context.Context, record model.RunRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	record.ErrorHistory = append([]float64(nil), record.ErrorHistory...)
	if _, ok := s.seq[record.ID]; !ok {
		s.seq[record.ID] = s.nextSeq
		s.nextSeq++
	}
	s.runs[record.ID] = record
	return nil
}

func (s *MemoryStore) GetRun(_ context.Context, id string) (model.RunRecord, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.runs[id]
	if !ok {
		return model.RunRecord{}, false, nil
	}
	record.ErrorHistory = append([]float64(nil), record.ErrorHistory...)
	return record, true, nil
}

func (s *MemoryStore) ListRuns(_ context.Context) ([]model.RunRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := make([]model.RunRecord, 0, len(s.runs))
	for _, record := range s.runs {
		record.ErrorHistory = append([]float64(nil), record.ErrorHistory...)
		records = append(records, record)
	}
	sort.Slice(records, func(i, j int) bool {
		if records[i].CreatedAtUTC == records[j].CreatedAtUTC {
			// Prefer later saved records for equal timestamps.
			return s.seq[records[i].ID] > s.seq[records[j].ID]
		}
		return records[i].CreatedAtUTC > records[j].CreatedAtUTC
	})
	return records, nil
}
