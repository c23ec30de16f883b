package service

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/nimbus-pos/nimbus/internal/core/domain"
	"github.com/nimbus-pos/nimbus/internal/core/embedding"
	"github.com/nimbus-pos/nimbus/internal/core/matching"
	"github.com/nimbus-pos/nimbus/internal/port"
)

var (
	ErrDuplicateRequest = errors.New("duplicate request")
	ErrUnauthorized     = errors.New("face not recognized")
	ErrInvalidRequest   = errors.New("invalid request")
)

// MatchThreshold is the maximum Euclidean distance at which a query
// embedding is accepted as an enrolled identity.
const MatchThreshold = 0.6

// totalTolerance absorbs float noise when comparing the declared total
// against the itemized sum.
const totalTolerance = 1e-9

const idempotencyKeyPrefix = "pay:"

// PaymentService identifies the payer from a face embedding and commits
// the purchase as one all-or-nothing unit. Any abort, at any step,
// leaves balance, transactions and inventory untouched.
type PaymentService struct {
	db        port.DatabaseRepository
	cache     port.CacheRepository
	store     *embedding.Store
	threshold float64
	validate  *validator.Validate
	logger    *zap.Logger
}

func NewPaymentService(db port.DatabaseRepository, cache port.CacheRepository, store *embedding.Store, threshold float64, logger *zap.Logger) *PaymentService {
	return &PaymentService{
		db:        db,
		cache:     cache,
		store:     store,
		threshold: threshold,
		validate:  validator.New(),
		logger:    logger,
	}
}

// Pay runs the full pipeline: validate the request, identify the payer,
// gate the stock mirror, then commit against the system of record.
func (s *PaymentService) Pay(ctx context.Context, vec []float64, req domain.PurchaseRequest) (*domain.Receipt, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	if math.Abs(req.TotalAmount-req.ItemTotal()) > totalTolerance {
		return nil, fmt.Errorf("%w: declared total %.2f does not match item total %.2f",
			ErrInvalidRequest, req.TotalAmount, req.ItemTotal())
	}

	// A dimension error here means a corrupted store entry or extractor,
	// not a bad client request; surface it as an internal fault.
	res, err := matching.Match(vec, s.store.Snapshot(), s.threshold)
	if err != nil {
		s.logger.Error("identity match failed", zap.Error(err))
		return nil, fmt.Errorf("match identity: %w", err)
	}
	if !res.Found {
		return nil, ErrUnauthorized
	}

	idempotencyKey := ""
	if req.RequestID != "" {
		idempotencyKey = idempotencyKeyPrefix + req.RequestID
		ok, err := s.cache.SetIdempotency(ctx, idempotencyKey)
		if err != nil {
			return nil, fmt.Errorf("idempotency check failed: %w", err)
		}
		if !ok {
			return nil, ErrDuplicateRequest
		}
	}

	// Fast-fail stock gate on the mirror. Advisory only: the conditional
	// decrement inside CommitPurchase is authoritative, so a stale mirror
	// can cause a spurious rejection but never an oversell.
	gated := make([]domain.PurchaseItem, 0, len(req.Items))
	for _, it := range req.Items {
		ok, err := s.cache.DecrementStock(ctx, it.ItemID, it.Quantity)
		if err != nil {
			s.abort(ctx, gated, idempotencyKey)
			return nil, fmt.Errorf("stock gate failed: %w", err)
		}
		if !ok {
			s.abort(ctx, gated, idempotencyKey)
			return nil, &domain.OutOfStockError{ItemID: it.ItemID}
		}
		gated = append(gated, it)
	}

	receipt, err := s.db.CommitPurchase(ctx, res.IdentityID, req)
	if err != nil {
		s.abort(ctx, gated, idempotencyKey)

		var oos *domain.OutOfStockError
		switch {
		case errors.Is(err, domain.ErrInsufficientFunds),
			errors.Is(err, domain.ErrIdentityNotFound),
			errors.As(err, &oos):
			return nil, err
		}
		s.logger.Error("purchase commit failed",
			zap.String("identity_id", res.IdentityID),
			zap.String("request_id", req.RequestID),
			zap.Error(err))
		return nil, fmt.Errorf("commit purchase: %w", err)
	}

	s.logger.Info("payment committed",
		zap.String("name", receipt.IdentityName),
		zap.Int("total_quantity", receipt.Transaction.TotalQuantity),
		zap.Float64("amount", receipt.Transaction.Amount))
	return receipt, nil
}

// abort restores the stock mirror for already-gated items and releases
// the idempotency key so the caller may resubmit.
func (s *PaymentService) abort(ctx context.Context, gated []domain.PurchaseItem, idempotencyKey string) {
	for _, it := range gated {
		if err := s.cache.IncrementStock(ctx, it.ItemID, it.Quantity); err != nil {
			s.logger.Error("CRITICAL stock mirror rollback failed",
				zap.String("item_id", it.ItemID), zap.Int("quantity", it.Quantity), zap.Error(err))
		}
	}
	if idempotencyKey != "" {
		if err := s.cache.ReleaseIdempotency(ctx, idempotencyKey); err != nil {
			s.logger.Error("idempotency release failed",
				zap.String("key", idempotencyKey), zap.Error(err))
		}
	}
}
