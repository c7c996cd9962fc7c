package main

import (
	"context"
	"errors"
	"strings"

	"docvault/models"

	"gorm.io/gorm"
)

// UserStore is the database collaborator for account records.
type UserStore interface {
	Create(ctx context.Context, u *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
}

// DocumentFilter narrows a document listing. Zero value means no filtering.
type DocumentFilter struct {
	Category models.Category
}

// DocumentStore is the database collaborator for document metadata.
type DocumentStore interface {
	Create(ctx context.Context, d *models.Document) error
	FindByID(ctx context.Context, id string) (*models.Document, error)
	ListByUser(ctx context.Context, userID string, f DocumentFilter) ([]models.Document, error)
	Delete(ctx context.Context, id string) error
}

type gormUserStore struct {
	db *gorm.DB
}

func newGormUserStore(db *gorm.DB) *gormUserStore { return &gormUserStore{db: db} }

func (s *gormUserStore) Create(ctx context.Context, u *models.User) error {
	if err := s.db.WithContext(ctx).Create(u).Error; err != nil {
		if isUniqueConstraintError(err) {
			return ErrEmailExists
		}
		return err
	}
	return nil
}

func (s *gormUserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (s *gormUserStore) FindByID(ctx context.Context, id string) (*models.User, error) {
	var u models.User
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

type gormDocumentStore struct {
	db *gorm.DB
}

func newGormDocumentStore(db *gorm.DB) *gormDocumentStore { return &gormDocumentStore{db: db} }

func (s *gormDocumentStore) Create(ctx context.Context, d *models.Document) error {
	return s.db.WithContext(ctx).Create(d).Error
}

func (s *gormDocumentStore) FindByID(ctx context.Context, id string) (*models.Document, error) {
	var d models.Document
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&d).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &d, nil
}

func (s *gormDocumentStore) ListByUser(ctx context.Context, userID string, f DocumentFilter) ([]models.Document, error) {
	q := s.db.WithContext(ctx).Where("user_id = ?", userID)
	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	var docs []models.Document
	if err := q.Order("uploaded_at desc").Find(&docs).Error; err != nil {
		return nil, err
	}
	return docs, nil
}

func (s *gormDocumentStore) Delete(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Document{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	s := err.Error()
	return strings.Contains(s, "duplicate key") || strings.Contains(s, "unique constraint") || strings.Contains(s, "already exists")
}
