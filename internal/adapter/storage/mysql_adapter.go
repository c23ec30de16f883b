package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/nimbus-pos/nimbus/internal/core/domain"
	"github.com/nimbus-pos/nimbus/internal/core/embedding"
)

type MySQLAdapter struct {
	db *sql.DB
}

func NewMySQLAdapter(db *sql.DB) *MySQLAdapter {
	return &MySQLAdapter{db: db}
}

func (m *MySQLAdapter) CreateIdentity(ctx context.Context, identity domain.Identity) error {
	raw, err := embedding.Encode(identity.Embedding)
	if err != nil {
		return err
	}

	_, err = m.db.ExecContext(ctx, `
		INSERT INTO identities (id, name, embedding, balance, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		identity.ID, identity.Name, raw, identity.Balance, identity.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert identity: %w", err)
	}
	return nil
}

func (m *MySQLAdapter) ListIdentities(ctx context.Context) ([]domain.Identity, error) {
	rows, err := m.db.QueryContext(ctx, `
		SELECT id, name, embedding, balance, created_at
		FROM identities ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("query identities: %w", err)
	}
	defer rows.Close()

	var out []domain.Identity
	for rows.Next() {
		var id domain.Identity
		var raw string
		if err := rows.Scan(&id.ID, &id.Name, &raw, &id.Balance, &id.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan identity: %w", err)
		}
		vec, err := embedding.Decode(raw, domain.EmbeddingDim)
		if err != nil {
			return nil, fmt.Errorf("identity %s: %w", id.ID, err)
		}
		id.Embedding = vec
		out = append(out, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query identities: %w", err)
	}
	return out, nil
}

func (m *MySQLAdapter) GetInventory(ctx context.Context, itemID string) (*domain.InventoryEntry, error) {
	var inv domain.InventoryEntry
	err := m.db.QueryRowContext(ctx, `
		SELECT item_id, quantity_remaining, version, created_at, updated_at
		FROM inventory WHERE item_id = ?`, itemID,
	).Scan(&inv.ItemID, &inv.Remaining, &inv.Version, &inv.CreatedAt, &inv.UpdatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query inventory: %w", err)
	}
	return &inv, nil
}

func (m *MySQLAdapter) ListInventory(ctx context.Context) ([]domain.InventoryEntry, error) {
	rows, err := m.db.QueryContext(ctx, `
		SELECT item_id, quantity_remaining, version, created_at, updated_at
		FROM inventory`)
	if err != nil {
		return nil, fmt.Errorf("query inventory: %w", err)
	}
	defer rows.Close()

	var out []domain.InventoryEntry
	for rows.Next() {
		var inv domain.InventoryEntry
		if err := rows.Scan(&inv.ItemID, &inv.Remaining, &inv.Version, &inv.CreatedAt, &inv.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan inventory: %w", err)
		}
		out = append(out, inv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query inventory: %w", err)
	}
	return out, nil
}

// CommitPurchase debits the balance, inserts the transaction and its
// items, and decrements each inventory entry inside one serializable
// transaction. The balance is read under a row lock so the funds check
// never authorizes a write from a stale read; each inventory decrement is
// conditional on the remaining quantity at the moment of the write.
func (m *MySQLAdapter) CommitPurchase(ctx context.Context, identityID string, req domain.PurchaseRequest) (*domain.Receipt, error) {
	tx, err := m.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var name string
	var balance float64
	err = tx.QueryRowContext(ctx, `
		SELECT name, balance FROM identities WHERE id = ? FOR UPDATE`, identityID,
	).Scan(&name, &balance)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrIdentityNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("lock identity: %w", err)
	}

	if balance < req.TotalAmount {
		return nil, domain.ErrInsufficientFunds
	}
	newBalance := balance - req.TotalAmount

	_, err = tx.ExecContext(ctx, `
		UPDATE identities SET balance = ? WHERE id = ?`, newBalance, identityID)
	if err != nil {
		return nil, fmt.Errorf("debit balance: %w", err)
	}

	txn := domain.Transaction{
		ID:            uuid.New().String(),
		IdentityID:    identityID,
		Amount:        req.TotalAmount,
		TotalQuantity: req.TotalQuantity(),
		Description:   req.Description,
		Balance:       newBalance,
		CreatedAt:     time.Now(),
	}
	_, err = tx.ExecContext(ctx, `
		INSERT INTO transactions (id, identity_id, amount, total_quantity, description, balance, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		txn.ID, txn.IdentityID, txn.Amount, txn.TotalQuantity, txn.Description, txn.Balance, txn.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("insert transaction: %w", err)
	}

	items := make([]domain.TransactionItem, 0, len(req.Items))
	for _, it := range req.Items {
		item := domain.TransactionItem{
			ID:            uuid.New().String(),
			TransactionID: txn.ID,
			ItemID:        it.ItemID,
			Quantity:      it.Quantity,
			Price:         it.Price,
		}
		_, err = tx.ExecContext(ctx, `
			INSERT INTO transaction_items (id, transaction_id, item_id, quantity, price)
			VALUES (?, ?, ?, ?, ?)`,
			item.ID, item.TransactionID, item.ItemID, item.Quantity, item.Price,
		)
		if err != nil {
			return nil, fmt.Errorf("insert transaction item: %w", err)
		}

		result, err := tx.ExecContext(ctx, `
			UPDATE inventory
			SET quantity_remaining = quantity_remaining - ?, version = version + 1, updated_at = NOW()
			WHERE item_id = ? AND quantity_remaining >= ?`,
			it.Quantity, it.ItemID, it.Quantity,
		)
		if err != nil {
			return nil, fmt.Errorf("decrement inventory: %w", err)
		}
		rows, _ := result.RowsAffected()
		if rows == 0 {
			return nil, &domain.OutOfStockError{ItemID: it.ItemID}
		}

		items = append(items, item)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}

	return &domain.Receipt{Transaction: txn, Items: items, IdentityName: name}, nil
}
