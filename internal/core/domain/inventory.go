package domain

import "time"

type InventoryEntry struct {
	ItemID    string
	Remaining int
	Version   int // optimistic locking
	CreatedAt time.Time
	UpdatedAt time.Time
}
