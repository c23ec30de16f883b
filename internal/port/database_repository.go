package port

import (
	"context"

	"github.com/nimbus-pos/nimbus/internal/core/domain"
)

type DatabaseRepository interface {
	// CreateIdentity persists a newly enrolled identity row
	CreateIdentity(ctx context.Context, identity domain.Identity) error

	// ListIdentities returns every enrolled identity, oldest first
	ListIdentities(ctx context.Context) ([]domain.Identity, error)

	// GetInventory retrieves an inventory entry by item ID, nil if absent
	GetInventory(ctx context.Context, itemID string) (*domain.InventoryEntry, error)

	// ListInventory returns every inventory entry
	ListInventory(ctx context.Context) ([]domain.InventoryEntry, error)

	// CommitPurchase applies the balance debit, the transaction row, its
	// items and the inventory decrements as one all-or-nothing unit.
	// It fails with ErrIdentityNotFound, ErrInsufficientFunds or
	// *OutOfStockError without having mutated anything.
	CommitPurchase(ctx context.Context, identityID string, req domain.PurchaseRequest) (*domain.Receipt, error)
}
