// Package access aplica la política de funciones por rol.
//
// Es una política de presentación y de casos de uso, no un sistema de autorización:
// el rol sale del perfil de la sesión, que a su vez depende del verificador de identidad.
package access

import (
	"github.com/jhoicas/nongyiding-api/internal/domain"
	"github.com/jhoicas/nongyiding-api/internal/domain/entity"
)

// CheckOrdering invitado no puede enviar mensajes de pedido.
func CheckOrdering(role entity.Role) error {
	if !role.IsBound() {
		return domain.ErrBindingRequired
	}
	return nil
}

// CheckPriceLookup solo ADMIN consulta precios; invitado recibe el aviso de vinculación.
func CheckPriceLookup(role entity.Role) error {
	switch role {
	case entity.RoleAdmin:
		return nil
	case entity.RoleCustomer:
		return domain.ErrPriceLookupForbidden
	default:
		return domain.ErrBindingRequired
	}
}
