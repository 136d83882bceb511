package models

// MonthlyStats aggregates one user's expenses for a month prefix.
type MonthlyStats struct {
	Month      string             `json:"month"`
	Total      float64            `json:"total"`
	Count      int                `json:"count"`
	ByCategory map[string]float64 `json:"by_category"`
}
