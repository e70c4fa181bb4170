package session

import (
	"time"

	"github.com/jhoicas/nongyiding-api/internal/domain/entity"
)

// Event entrada de la máquina de estados.
type Event interface{ isEvent() }

// MessageSubmitted el usuario envía un texto. Se agrega al historial antes de interpretar.
type MessageSubmitted struct {
	MessageID string
	Text      string
	At        time.Time
}

// InterpretationReceived el intérprete respondió.
type InterpretationReceived struct {
	MessageID string
	Result    entity.Interpretation
	At        time.Time
}

// InterpretationFailed el intérprete falló o venció el tiempo de espera.
type InterpretationFailed struct {
	MessageID string
	At        time.Time
}

// BindingRequested el usuario envía el formulario de vinculación.
type BindingRequested struct {
	CustomerID string
	Phone      string
}

// BindingVerified el verificador aceptó la identidad.
type BindingVerified struct {
	CustomerID string
	Phone      string
	Name       string
	Role       entity.Role
	At         time.Time
}

// Unbound el usuario desvincula su identidad.
type Unbound struct {
	At time.Time
}

// OrderConfirmed el usuario confirma el pedido adjunto a un mensaje.
type OrderConfirmed struct {
	MessageID string // mensaje con el pedido
	NoticeID  string // ID del aviso de sistema que se agrega
	At        time.Time
}

func (MessageSubmitted) isEvent()       {}
func (InterpretationReceived) isEvent() {}
func (InterpretationFailed) isEvent()   {}
func (BindingRequested) isEvent()       {}
func (BindingVerified) isEvent()        {}
func (Unbound) isEvent()                {}
func (OrderConfirmed) isEvent()         {}
