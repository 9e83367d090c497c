package domain

import "time"

// HistoryLine mirrors what the backend returns for a past order's item;
// name and unit price are optional on older records.
type HistoryLine struct {
	ProductID int64   `json:"productId"`
	Name      string  `json:"name,omitempty"`
	Quantity  int     `json:"qty"`
	UnitPrice float64 `json:"unitPrice,omitempty"`
	LineTotal float64 `json:"lineTotal,omitempty"`
}

type HistoryItem struct {
	ID        string        `json:"_id"`
	Status    Status        `json:"status"`
	Total     float64       `json:"total"`
	Method    string        `json:"method"`
	CreatedAt time.Time     `json:"createdAt"`
	Items     []HistoryLine `json:"items"`
}

// HistoryPage is the backend's paged envelope for GET /orders/my.
type HistoryPage struct {
	Page  int           `json:"page"`
	Limit int           `json:"limit"`
	Total int           `json:"total"`
	Pages int           `json:"pages"`
	Items []HistoryItem `json:"items"`
}
