package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// StartSessionRequest body de POST /api/sessions. UID opcional (ej. ID de LINE).
type StartSessionRequest struct {
	UID string `json:"uid"`
}

// StartSessionResponse token bearer y estado inicial de la sesión.
type StartSessionResponse struct {
	Token   string          `json:"token"`
	Session SessionResponse `json:"session"`
}

// SessionResponse vista completa de la sesión.
type SessionResponse struct {
	ID        string            `json:"id"`
	Profile   ProfileResponse   `json:"profile"`
	Messages  []MessageResponse `json:"messages"`
	Pending   bool              `json:"pending"`
	CreatedAt time.Time         `json:"created_at"`
}

// ProfileResponse perfil del usuario con las funciones habilitadas por su rol.
type ProfileResponse struct {
	UID            string          `json:"uid"`
	CustomerID     string          `json:"customer_id,omitempty"`
	Phone          string          `json:"phone,omitempty"`
	Name           string          `json:"name,omitempty"`
	Role           string          `json:"role"`
	LastOrderTotal decimal.Decimal `json:"last_order_total"`
	CanOrder       bool            `json:"can_order"`
	CanLookup      bool            `json:"can_lookup_prices"`
}
