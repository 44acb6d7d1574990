package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate record")
)

// Store groups the repositories so that a multi-record mutation can run
// against one transaction.
type Store interface {
	WithContext(ctx context.Context) Store
	Transaction(ctx context.Context, fn func(tx Store) error) error

	Users() UserRepository
	Companies() CompanyRepository
	Jobs() JobRepository
	Applications() ApplicationRepository
	Notifications() NotificationRepository
	SavedJobs() SavedJobRepository
}

type gormStore struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) WithContext(ctx context.Context) Store {
	return &gormStore{db: s.db.WithContext(ctx)}
}

// Transaction commits when fn returns nil and rolls back otherwise.
func (s *gormStore) Transaction(ctx context.Context, fn func(tx Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormStore{db: tx})
	})
}

func (s *gormStore) Users() UserRepository                 { return NewUserRepository(s.db) }
func (s *gormStore) Companies() CompanyRepository          { return NewCompanyRepository(s.db) }
func (s *gormStore) Jobs() JobRepository                   { return NewJobRepository(s.db) }
func (s *gormStore) Applications() ApplicationRepository   { return NewApplicationRepository(s.db) }
func (s *gormStore) Notifications() NotificationRepository { return NewNotificationRepository(s.db) }
func (s *gormStore) SavedJobs() SavedJobRepository         { return NewSavedJobRepository(s.db) }

// wrapError maps gorm errors onto the package sentinels.
func wrapError(err error, what string) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%s not found: %w", what, ErrNotFound)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%s already exists: %w", what, ErrDuplicate)
	default:
		return fmt.Errorf("failed to access %s: %w", what, err)
	}
}
