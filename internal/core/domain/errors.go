package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidImage means the uploaded photo could not be decoded.
	ErrInvalidImage = errors.New("invalid image")

	// ErrNoFaceDetected means the extractor found no face in the photo.
	ErrNoFaceDetected = errors.New("no face detected")

	// ErrIdentityNotFound means a matched identity had no persisted row.
	// This is a data-integrity fault, not a user error.
	ErrIdentityNotFound = errors.New("identity not found")

	// ErrInsufficientFunds means the balance cannot cover the total.
	ErrInsufficientFunds = errors.New("insufficient funds")
)

// OutOfStockError aborts a purchase whose line item asks for more than
// the remaining sellable quantity of ItemID.
type OutOfStockError struct {
	ItemID string
}

func (e *OutOfStockError) Error() string {
	return fmt.Sprintf("item %s out of stock", e.ItemID)
}
