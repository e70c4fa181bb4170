// Package session modela el estado de una conversación como valor inmutable.
//
// Machine.Apply recibe el estado actual y un evento y devuelve el estado siguiente
// más la lista de efectos (llamadas a colaboradores externos) que el caso de uso
// debe ejecutar. Aquí no hay E/S ni relojes: IDs y marcas de tiempo llegan en el evento.
package session

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/nongyiding-api/internal/domain/entity"
)

// State estado completo de una sesión. Se reemplaza entero en cada transición.
type State struct {
	ID         string
	Profile    entity.UserProfile
	Transcript []entity.ChatMessage
	Pending    bool // hay una interpretación en curso
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewState crea una sesión de invitado con el mensaje de bienvenida.
func NewState(id, uid, welcomeID string, baseline decimal.Decimal, at time.Time) State {
	profile := entity.NewGuestProfile(uid, baseline)
	return State{
		ID:      id,
		Profile: profile,
		Transcript: []entity.ChatMessage{{
			ID:        welcomeID,
			Author:    entity.AuthorAssistant,
			Text:      WelcomeText(profile.Role),
			CreatedAt: at,
		}},
		CreatedAt: at,
		UpdatedAt: at,
	}
}

// Message busca un mensaje por ID.
func (s State) Message(id string) (entity.ChatMessage, bool) {
	for _, m := range s.Transcript {
		if m.ID == id {
			return m, true
		}
	}
	return entity.ChatMessage{}, false
}

// MessagesFrom devuelve los mensajes desde el ID indicado (inclusive) hasta el final.
func (s State) MessagesFrom(id string) []entity.ChatMessage {
	for i, m := range s.Transcript {
		if m.ID == id {
			return s.Transcript[i:]
		}
	}
	return nil
}

// clone copia el historial para que el estado anterior no comparta el arreglo subyacente.
func (s State) clone() State {
	next := s
	next.Transcript = make([]entity.ChatMessage, len(s.Transcript), len(s.Transcript)+2)
	copy(next.Transcript, s.Transcript)
	return next
}

func (s *State) append(m entity.ChatMessage) {
	s.Transcript = append(s.Transcript, m)
}
