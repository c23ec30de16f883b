package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/nimbus-pos/nimbus/internal/core/domain"
)

// Mock CacheRepository
type mockCacheRepo struct {
	mu             sync.Mutex
	stock          map[string]int
	idempotencySet map[string]bool
	failDecrement  error
}

func newMockCacheRepo() *mockCacheRepo {
	return &mockCacheRepo{
		stock:          make(map[string]int),
		idempotencySet: make(map[string]bool),
	}
}

func (m *mockCacheRepo) DecrementStock(ctx context.Context, itemID string, quantity int) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.failDecrement != nil {
		return false, m.failDecrement
	}
	if m.stock[itemID] >= quantity {
		m.stock[itemID] -= quantity
		return true, nil
	}
	return false, nil
}

func (m *mockCacheRepo) IncrementStock(ctx context.Context, itemID string, quantity int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stock[itemID] += quantity
	return nil
}

func (m *mockCacheRepo) SetStock(ctx context.Context, itemID string, quantity int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stock[itemID] = quantity
	return nil
}

func (m *mockCacheRepo) SetIdempotency(ctx context.Context, key string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.idempotencySet[key] {
		return false, nil
	}
	m.idempotencySet[key] = true
	return true, nil
}

func (m *mockCacheRepo) ReleaseIdempotency(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.idempotencySet, key)
	return nil
}

func (m *mockCacheRepo) stockOf(itemID string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stock[itemID]
}

func (m *mockCacheRepo) hasIdempotency(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.idempotencySet[key]
}

// Mock DatabaseRepository. CommitPurchase validates everything under one
// lock and applies either all mutations or none, the contract the MySQL
// adapter provides with a real transaction.
type mockDatabaseRepo struct {
	mu           sync.Mutex
	identities   []domain.Identity
	inventory    map[string]int
	transactions []domain.Transaction
	failCreate   error
	failCommit   error
}

func newMockDatabaseRepo() *mockDatabaseRepo {
	return &mockDatabaseRepo{inventory: make(map[string]int)}
}

func (m *mockDatabaseRepo) addIdentity(id, name string, vec []float64, balance float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.identities = append(m.identities, domain.Identity{
		ID: id, Name: name, Embedding: vec, Balance: balance, CreatedAt: time.Now(),
	})
}

func (m *mockDatabaseRepo) balanceOf(id string) float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, iden := range m.identities {
		if iden.ID == id {
			return iden.Balance
		}
	}
	return -1
}

func (m *mockDatabaseRepo) remainingOf(itemID string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.inventory[itemID]
}

func (m *mockDatabaseRepo) CreateIdentity(ctx context.Context, identity domain.Identity) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failCreate != nil {
		return m.failCreate
	}
	m.identities = append(m.identities, identity)
	return nil
}

func (m *mockDatabaseRepo) ListIdentities(ctx context.Context) ([]domain.Identity, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.Identity(nil), m.identities...), nil
}

func (m *mockDatabaseRepo) GetInventory(ctx context.Context, itemID string) (*domain.InventoryEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	remaining, ok := m.inventory[itemID]
	if !ok {
		return nil, nil
	}
	return &domain.InventoryEntry{ItemID: itemID, Remaining: remaining}, nil
}

func (m *mockDatabaseRepo) ListInventory(ctx context.Context) ([]domain.InventoryEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.InventoryEntry, 0, len(m.inventory))
	for id, remaining := range m.inventory {
		out = append(out, domain.InventoryEntry{ItemID: id, Remaining: remaining})
	}
	return out, nil
}

func (m *mockDatabaseRepo) CommitPurchase(ctx context.Context, identityID string, req domain.PurchaseRequest) (*domain.Receipt, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.failCommit != nil {
		return nil, m.failCommit
	}

	var identity *domain.Identity
	for i := range m.identities {
		if m.identities[i].ID == identityID {
			identity = &m.identities[i]
			break
		}
	}
	if identity == nil {
		return nil, domain.ErrIdentityNotFound
	}
	if identity.Balance < req.TotalAmount {
		return nil, domain.ErrInsufficientFunds
	}
	for _, it := range req.Items {
		if m.inventory[it.ItemID] < it.Quantity {
			return nil, &domain.OutOfStockError{ItemID: it.ItemID}
		}
	}

	identity.Balance -= req.TotalAmount
	txn := domain.Transaction{
		ID:            uuid.New().String(),
		IdentityID:    identityID,
		Amount:        req.TotalAmount,
		TotalQuantity: req.TotalQuantity(),
		Description:   req.Description,
		Balance:       identity.Balance,
		CreatedAt:     time.Now(),
	}
	items := make([]domain.TransactionItem, 0, len(req.Items))
	for _, it := range req.Items {
		m.inventory[it.ItemID] -= it.Quantity
		items = append(items, domain.TransactionItem{
			ID:            uuid.New().String(),
			TransactionID: txn.ID,
			ItemID:        it.ItemID,
			Quantity:      it.Quantity,
			Price:         it.Price,
		})
	}
	m.transactions = append(m.transactions, txn)

	return &domain.Receipt{Transaction: txn, Items: items, IdentityName: identity.Name}, nil
}
