// Copyright 2024 Alexander Getmansky <alex@getsky.tech>
// Licensed under the Apache License, Version 2.0

package infrastructure

import (
	"context"
	"sync"

	"github.com/GetSky/SalahTracker/internal/application"
)

type memoryValidationStore struct {
	mu    sync.RWMutex
	marks map[application.CityID]application.Marks
}

// NewMemoryValidationStore keeps check-marks for the life of the process.
func NewMemoryValidationStore() application.ValidationStore {
	return &memoryValidationStore{
		marks: make(map[application.CityID]application.Marks),
	}
}

func (s *memoryValidationStore) Load(ctx context.Context, city application.CityID) (application.Marks, error) {
	if err := ctx.Err(); err != nil {
		return application.Marks{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.marks[city], nil
}

func (s *memoryValidationStore) Save(ctx context.Context, city application.CityID, marks application.Marks) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.marks[city] = marks
	return nil
}
