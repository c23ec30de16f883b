package domain

// PurchaseItem is one line of a purchase request.
type PurchaseItem struct {
	ItemID   string  `json:"item_id" validate:"required"`
	Quantity int     `json:"quantity" validate:"required,gt=0"`
	Price    float64 `json:"price" validate:"gte=0"`
}

// PurchaseRequest is the transient client-declared shape of a payment.
// It is validated and re-derived against storage before anything is
// committed; it is never persisted as-is.
type PurchaseRequest struct {
	// RequestID, when set, dedupes resubmissions of the same purchase.
	RequestID   string         `json:"request_id,omitempty"`
	Description string         `json:"description"`
	TotalAmount float64        `json:"total_amount" validate:"gt=0"`
	Items       []PurchaseItem `json:"items" validate:"required,min=1,dive"`
}

// TotalQuantity is the sum of the line-item quantities. The stored
// Transaction carries this value, not anything client-declared.
func (p PurchaseRequest) TotalQuantity() int {
	var n int
	for _, it := range p.Items {
		n += it.Quantity
	}
	return n
}

// ItemTotal is the sum of price times quantity across all lines.
func (p PurchaseRequest) ItemTotal() float64 {
	var sum float64
	for _, it := range p.Items {
		sum += it.Price * float64(it.Quantity)
	}
	return sum
}
