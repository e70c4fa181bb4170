package session

import (
	"fmt"
	"strings"

	"github.com/jhoicas/nongyiding-api/internal/domain"
	"github.com/jhoicas/nongyiding-api/internal/domain/access"
	"github.com/jhoicas/nongyiding-api/internal/domain/entity"
	"github.com/jhoicas/nongyiding-api/internal/domain/order"
)

// Machine aplica eventos sobre State. Catálogo y detector son fijos desde el arranque.
type Machine struct {
	catalog  []entity.Product
	detector *order.Detector
	format   *order.Formatter
}

// NewMachine construye la máquina de estados.
func NewMachine(catalog []entity.Product, detector *order.Detector, format *order.Formatter) *Machine {
	return &Machine{catalog: catalog, detector: detector, format: format}
}

// Apply devuelve el estado siguiente y los efectos a ejecutar.
// Si devuelve error, el estado devuelto es el de entrada sin cambios.
func (m *Machine) Apply(s State, ev Event) (State, []Effect, error) {
	switch e := ev.(type) {
	case MessageSubmitted:
		return m.submit(s, e)
	case InterpretationReceived:
		return m.receive(s, e)
	case InterpretationFailed:
		return m.fail(s, e)
	case BindingRequested:
		return m.requestBinding(s, e)
	case BindingVerified:
		return m.bind(s, e)
	case Unbound:
		return m.unbind(s, e)
	case OrderConfirmed:
		return m.confirm(s, e)
	default:
		return s, nil, fmt.Errorf("session: evento no soportado %T", ev)
	}
}

func (m *Machine) submit(s State, e MessageSubmitted) (State, []Effect, error) {
	if err := access.CheckOrdering(s.Profile.Role); err != nil {
		return s, nil, err
	}
	text := strings.TrimSpace(e.Text)
	if text == "" {
		return s, nil, fmt.Errorf("%w: texto vacío", domain.ErrInvalidInput)
	}
	if s.Pending {
		return s, nil, domain.ErrSendInFlight
	}
	next := s.clone()
	next.append(entity.ChatMessage{
		ID:        e.MessageID,
		Author:    entity.AuthorUser,
		Text:      text,
		CreatedAt: e.At,
	})
	next.Pending = true
	next.UpdatedAt = e.At
	return next, []Effect{InterpretMessage{Text: text, Role: s.Profile.Role}}, nil
}

func (m *Machine) receive(s State, e InterpretationReceived) (State, []Effect, error) {
	if !s.Pending {
		return s, nil, domain.ErrNoSendInFlight
	}
	res := e.Result
	reply := entity.ChatMessage{
		ID:        e.MessageID,
		Author:    entity.AuthorAssistant,
		Text:      res.Reply,
		Intent:    res.Intent,
		CreatedAt: e.At,
	}

	if res.Intent == entity.IntentOrder && len(res.ExtractedOrder) > 0 {
		resolved := order.Resolve(res.ExtractedOrder, m.catalog)
		if resolved.Total.IsPositive() {
			reply.Order = &resolved
			if s.Profile.Role.IsBound() {
				report := m.detector.Evaluate(resolved.Total, s.Profile.LastOrderTotal)
				if report.Flagged {
					reply.Anomaly = &report
					reply.Text = m.format.AnomalyWarning(report, res.Reply)
				}
			}
		}
	}

	next := s.clone()
	next.append(reply)
	next.Pending = false
	next.UpdatedAt = e.At
	return next, nil, nil
}

func (m *Machine) fail(s State, e InterpretationFailed) (State, []Effect, error) {
	if !s.Pending {
		return s, nil, domain.ErrNoSendInFlight
	}
	next := s.clone()
	next.append(entity.ChatMessage{
		ID:        e.MessageID,
		Author:    entity.AuthorAssistant,
		Text:      BusyText,
		CreatedAt: e.At,
	})
	next.Pending = false
	next.UpdatedAt = e.At
	return next, nil, nil
}

func (m *Machine) requestBinding(s State, e BindingRequested) (State, []Effect, error) {
	if s.Profile.Role.IsBound() {
		return s, nil, domain.ErrAlreadyBound
	}
	customerID := strings.TrimSpace(e.CustomerID)
	phone := strings.TrimSpace(e.Phone)
	if customerID == "" || phone == "" {
		return s, nil, fmt.Errorf("%w: customer_id y phone son requeridos", domain.ErrInvalidInput)
	}
	return s, []Effect{VerifyIdentity{CustomerID: customerID, Phone: phone}}, nil
}

func (m *Machine) bind(s State, e BindingVerified) (State, []Effect, error) {
	if s.Profile.Role.IsBound() {
		return s, nil, domain.ErrAlreadyBound
	}
	if !e.Role.IsBound() || e.CustomerID == "" || e.Phone == "" {
		return s, nil, fmt.Errorf("%w: verificación sin rol o identidad", domain.ErrInvalidInput)
	}
	next := s.clone()
	next.Profile = s.Profile.Bind(e.CustomerID, e.Phone, e.Name, e.Role)
	next.UpdatedAt = e.At
	return next, nil, nil
}

func (m *Machine) unbind(s State, e Unbound) (State, []Effect, error) {
	if !s.Profile.Role.IsBound() {
		return s, nil, domain.ErrNotBound
	}
	next := s.clone()
	next.Profile = s.Profile.Unbind()
	next.UpdatedAt = e.At
	return next, nil, nil
}

func (m *Machine) confirm(s State, e OrderConfirmed) (State, []Effect, error) {
	if err := access.CheckOrdering(s.Profile.Role); err != nil {
		return s, nil, err
	}
	idx := -1
	for i, msg := range s.Transcript {
		if msg.ID == e.MessageID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return s, nil, domain.ErrMessageNotFound
	}
	msg := s.Transcript[idx]
	if !msg.HasConfirmableOrder() {
		return s, nil, domain.ErrOrderNotConfirmable
	}

	total := msg.Order.Total
	next := s.clone()
	msg.Confirmed = true
	next.Transcript[idx] = msg
	next.append(entity.ChatMessage{
		ID:        e.NoticeID,
		Author:    entity.AuthorSystem,
		Text:      m.format.ConfirmationNotice(total),
		CreatedAt: e.At,
	})
	// La base se sobrescribe siempre, esté o no marcado el pedido.
	next.Profile = s.Profile.WithBaseline(total)
	next.UpdatedAt = e.At

	confirmed := entity.ConfirmedOrder{
		SessionID:    s.ID,
		MessageID:    msg.ID,
		UID:          s.Profile.UID,
		CustomerID:   s.Profile.CustomerID,
		CustomerName: s.Profile.Name,
		Lines:        msg.Order.Lines,
		Total:        total,
		ConfirmedAt:  e.At,
	}
	return next, []Effect{PublishOrder{Order: confirmed}}, nil
}
