package main

import (
	"context"
	"sort"
	"sync"
	"time"

	"docvault/models"

	"github.com/google/uuid"
)

// In-memory store fakes so the HTTP suite runs without Postgres.

type memUserStore struct {
	mu   sync.Mutex
	byID map[string]*models.User
}

func newMemUserStore() *memUserStore {
	return &memUserStore{byID: make(map[string]*models.User)}
}

func (s *memUserStore) Create(ctx context.Context, u *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.byID {
		if existing.Email == u.Email {
			return ErrEmailExists
		}
	}
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	cp := *u
	s.byID[u.ID] = &cp
	return nil
}

func (s *memUserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.byID {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (s *memUserStore) FindByID(ctx context.Context, id string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (s *memUserStore) remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.byID, id)
}

type memDocumentStore struct {
	mu   sync.Mutex
	byID map[string]*models.Document
}

func newMemDocumentStore() *memDocumentStore {
	return &memDocumentStore{byID: make(map[string]*models.Document)}
}

func (s *memDocumentStore) Create(ctx context.Context, d *models.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	if d.UploadedAt.IsZero() {
		d.UploadedAt = time.Now()
	}
	cp := *d
	s.byID[d.ID] = &cp
	return nil
}

func (s *memDocumentStore) FindByID(ctx context.Context, id string) (*models.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *d
	return &cp, nil
}

func (s *memDocumentStore) ListByUser(ctx context.Context, userID string, f DocumentFilter) ([]models.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var docs []models.Document
	for _, d := range s.byID {
		if d.UserID != userID {
			continue
		}
		if f.Category != "" && d.Category != f.Category {
			continue
		}
		docs = append(docs, *d)
	}
	sort.Slice(docs, func(i, j int) bool { return docs[i].UploadedAt.After(docs[j].UploadedAt) })
	return docs, nil
}

func (s *memDocumentStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byID[id]; !ok {
		return ErrNotFound
	}
	delete(s.byID, id)
	return nil
}
