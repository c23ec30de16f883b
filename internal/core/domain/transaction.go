package domain

import "time"

// Transaction is the persisted record of one committed payment. It is
// immutable once written; Balance is the identity's balance after the
// debit was applied.
type Transaction struct {
	ID            string
	IdentityID    string
	Amount        float64
	TotalQuantity int
	Description   string
	Balance       float64
	CreatedAt     time.Time
}

// TransactionItem exists only as a child of a committed Transaction.
type TransactionItem struct {
	ID            string
	TransactionID string
	ItemID        string
	Quantity      int
	Price         float64
}

// Receipt is what a successful payment returns to the caller.
type Receipt struct {
	Transaction  Transaction
	Items        []TransactionItem
	IdentityName string
}
