package entity

import "github.com/shopspring/decimal"

// Role nivel de acceso de la sesión.
type Role string

// Roles válidos para UserProfile.
const (
	RoleGuest    Role = "GUEST"
	RoleCustomer Role = "CUSTOMER"
	RoleAdmin    Role = "ADMIN"
)

// IsBound indica si el rol corresponde a una identidad vinculada.
func (r Role) IsBound() bool {
	return r == RoleCustomer || r == RoleAdmin
}

// UserProfile perfil del usuario de la sesión.
// Invariante: Role == RoleGuest ⇔ CustomerID y Phone vacíos.
type UserProfile struct {
	UID            string
	CustomerID     string
	Phone          string
	Name           string
	Role           Role
	LastOrderTotal decimal.Decimal // base de comparación para la detección de anomalías
}

// NewGuestProfile crea el perfil inicial de una sesión: invitado con una base sembrada.
func NewGuestProfile(uid string, baseline decimal.Decimal) UserProfile {
	return UserProfile{
		UID:            uid,
		Role:           RoleGuest,
		LastOrderTotal: baseline,
	}
}

// Bind devuelve una copia del perfil con la identidad vinculada.
func (p UserProfile) Bind(customerID, phone, name string, role Role) UserProfile {
	p.CustomerID = customerID
	p.Phone = phone
	p.Name = name
	p.Role = role
	return p
}

// Unbind vuelve a invitado. La base de pedidos no se toca.
func (p UserProfile) Unbind() UserProfile {
	p.CustomerID = ""
	p.Phone = ""
	p.Name = ""
	p.Role = RoleGuest
	return p
}

// WithBaseline sobrescribe el total del último pedido confirmado.
func (p UserProfile) WithBaseline(total decimal.Decimal) UserProfile {
	p.LastOrderTotal = total
	return p
}
