package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound        = errors.New("recurso no encontrado")
	ErrInvalidInput    = errors.New("entrada inválida")
	ErrUnauthorized    = errors.New("no autorizado")
	ErrSessionNotFound = errors.New("sesión no encontrada")

	// Control de acceso por rol.
	ErrBindingRequired      = errors.New("se requiere vincular la identidad")
	ErrPriceLookupForbidden = errors.New("consulta de precios restringida a administradores")

	// Conversación.
	ErrSendInFlight        = errors.New("ya hay un mensaje en proceso para esta sesión")
	ErrNoSendInFlight      = errors.New("no hay ningún mensaje en proceso")
	ErrMessageNotFound     = errors.New("mensaje no encontrado")
	ErrOrderNotConfirmable = errors.New("el mensaje no contiene un pedido pendiente de confirmar")
	ErrOrderNotConfirmed   = errors.New("el pedido aún no está confirmado")

	// Vinculación de identidad.
	ErrCustomerNotFound        = errors.New("cliente no encontrado")
	ErrVerificationUnavailable = errors.New("verificación de identidad no disponible")
	ErrAlreadyBound            = errors.New("la sesión ya tiene una identidad vinculada")
	ErrNotBound                = errors.New("la sesión no tiene una identidad vinculada")

	ErrSlipUnavailable = errors.New("generación de comprobantes no configurada")
)
