package models

// Plan is a subscription tier. The catalog is static, in-memory and
// process-lifetime constant; price is USD per month.
type Plan struct {
	Name     string   `json:"name"`
	Price    int      `json:"price"`
	Features []string `json:"features"`
}
