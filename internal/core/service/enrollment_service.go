package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nimbus-pos/nimbus/internal/core/domain"
	"github.com/nimbus-pos/nimbus/internal/core/embedding"
	"github.com/nimbus-pos/nimbus/internal/port"
)

// InitialBalance is credited to every identity at enrollment.
const InitialBalance = 100.0

type EnrollmentService struct {
	db     port.DatabaseRepository
	store  *embedding.Store
	logger *zap.Logger
}

func NewEnrollmentService(db port.DatabaseRepository, store *embedding.Store, logger *zap.Logger) *EnrollmentService {
	return &EnrollmentService{db: db, store: store, logger: logger}
}

// Enroll creates an identity from a name and an extracted face embedding.
// The row is persisted first, then the embedding is appended to the
// in-memory store; if persistence fails nothing is appended. A crash
// between the two leaves a persisted-but-unmatchable identity until the
// next Reload picks it up.
func (s *EnrollmentService) Enroll(ctx context.Context, name string, vec []float64) (*domain.Identity, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: empty name", ErrInvalidRequest)
	}
	if len(vec) != s.store.Dim() {
		return nil, fmt.Errorf("%w: embedding dim %d, want %d", ErrInvalidRequest, len(vec), s.store.Dim())
	}

	identity := domain.Identity{
		ID:        uuid.New().String(),
		Name:      name,
		Embedding: append([]float64(nil), vec...),
		Balance:   InitialBalance,
		CreatedAt: time.Now(),
	}

	if err := s.db.CreateIdentity(ctx, identity); err != nil {
		return nil, fmt.Errorf("persist identity: %w", err)
	}

	if err := s.store.Append(identity.ID, identity.Name, identity.Embedding); err != nil {
		// Dimensions were checked above; reaching here is a programming
		// error, but the row exists so Reload will recover it.
		s.logger.Error("cache append failed after persist",
			zap.String("identity_id", identity.ID), zap.Error(err))
		return nil, fmt.Errorf("cache append: %w", err)
	}

	s.logger.Info("enrolled identity",
		zap.String("identity_id", identity.ID), zap.String("name", identity.Name))
	return &identity, nil
}

// List returns every enrolled identity, vector and balance included.
func (s *EnrollmentService) List(ctx context.Context) ([]domain.Identity, error) {
	ids, err := s.db.ListIdentities(ctx)
	if err != nil {
		return nil, fmt.Errorf("list identities: %w", err)
	}
	return ids, nil
}

// Reload replaces the embedding store's contents from persisted
// identities. Run at startup before serving traffic.
func (s *EnrollmentService) Reload(ctx context.Context) error {
	ids, err := s.db.ListIdentities(ctx)
	if err != nil {
		return fmt.Errorf("load identities: %w", err)
	}
	entries := make([]embedding.Entry, 0, len(ids))
	for _, id := range ids {
		entries = append(entries, embedding.Entry{
			IdentityID: id.ID,
			Name:       id.Name,
			Vector:     id.Embedding,
		})
	}
	if err := s.store.Load(entries); err != nil {
		return fmt.Errorf("load embedding store: %w", err)
	}
	s.logger.Info("embedding store loaded", zap.Int("identities", len(entries)))
	return nil
}
