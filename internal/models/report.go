package models

// SalesSummary represents chart-ready sales report data
type SalesSummary struct {
	Labels   []string       `json:"labels"`
	Datasets []SalesDataset `json:"datasets"`
}

// SalesDataset represents a single series in a sales report
type SalesDataset struct {
	Label           string    `json:"label"`
	Data            []float64 `json:"data"`
	BackgroundColor string    `json:"backgroundColor"`
	BorderColor     string    `json:"borderColor"`
	BorderWidth     int       `json:"borderWidth"`
}
