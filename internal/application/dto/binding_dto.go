package dto

// BindRequest body de POST /api/binding.
type BindRequest struct {
	CustomerID string `json:"customer_id"`
	Phone      string `json:"phone"`
}
