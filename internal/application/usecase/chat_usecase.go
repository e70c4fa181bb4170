package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/nongyiding-api/internal/application/dto"
	"github.com/jhoicas/nongyiding-api/internal/application/ports"
	"github.com/jhoicas/nongyiding-api/internal/domain"
	"github.com/jhoicas/nongyiding-api/internal/domain/entity"
	"github.com/jhoicas/nongyiding-api/internal/domain/repository"
	"github.com/jhoicas/nongyiding-api/internal/domain/session"
	"github.com/jhoicas/nongyiding-api/pkg/logger"
)

// ChatUseCase orquesta el envío de mensajes, la interpretación y la confirmación de pedidos.
//
// Cada envío agrega el mensaje del usuario y marca la sesión como pendiente antes de llamar
// al intérprete. La llamada tiene un límite de tiempo; si falla o vence se agrega el aviso
// de sistema ocupado. Así cada envío termina con exactamente una respuesta.
type ChatUseCase struct {
	repo        repository.SessionRepository
	machine     *session.Machine
	interpreter ports.IntentInterpreter
	sink        ports.OrderSink
	log         *logger.Logger
	timeout     time.Duration
	sinkTimeout time.Duration
}

// ChatConfig límites de tiempo de los colaboradores externos.
type ChatConfig struct {
	InterpretTimeout time.Duration // por defecto 10 s
	SinkTimeout      time.Duration // por defecto 10 s
}

// NewChatUseCase construye el caso de uso.
func NewChatUseCase(
	repo repository.SessionRepository,
	machine *session.Machine,
	interpreter ports.IntentInterpreter,
	sink ports.OrderSink,
	log *logger.Logger,
	cfg ChatConfig,
) *ChatUseCase {
	if cfg.InterpretTimeout <= 0 {
		cfg.InterpretTimeout = 10 * time.Second
	}
	if cfg.SinkTimeout <= 0 {
		cfg.SinkTimeout = 10 * time.Second
	}
	return &ChatUseCase{
		repo:        repo,
		machine:     machine,
		interpreter: interpreter,
		sink:        sink,
		log:         log.Component("chat"),
		timeout:     cfg.InterpretTimeout,
		sinkTimeout: cfg.SinkTimeout,
	}
}

// Send agrega el texto del usuario, lo interpreta y devuelve los mensajes agregados.
func (uc *ChatUseCase) Send(ctx context.Context, sessionID, text string) (*dto.SendMessageResponse, error) {
	userMsgID := uuid.NewString()
	var effects []session.Effect
	_, err := uc.repo.Update(ctx, sessionID, func(s session.State) (session.State, error) {
		next, eff, err := uc.machine.Apply(s, session.MessageSubmitted{
			MessageID: userMsgID, Text: text, At: time.Now().UTC(),
		})
		effects = eff
		return next, err
	})
	if err != nil {
		return nil, err
	}

	var req session.InterpretMessage
	for _, e := range effects {
		if im, ok := e.(session.InterpretMessage); ok {
			req = im
		}
	}

	ev := uc.interpret(ctx, sessionID, req)

	// La respuesta se guarda aunque el cliente ya se haya desconectado.
	state, err := uc.complete(context.WithoutCancel(ctx), sessionID, ev)
	if err != nil {
		return nil, fmt.Errorf("guardar respuesta: %w", err)
	}

	return &dto.SendMessageResponse{Messages: toMessageResponses(state.MessagesFrom(userMsgID))}, nil
}

// completionAttempts intentos de guardar la respuesta antes de recurrir al aviso de ocupado.
const completionAttempts = 3

// complete aplica el resultado de la interpretación y libera Pending.
// Si el almacén falla en todos los intentos, agrega el aviso de sistema ocupado para que la
// sesión no quede bloqueada en ErrSendInFlight.
func (uc *ChatUseCase) complete(ctx context.Context, sessionID string, ev session.Event) (*session.State, error) {
	var err error
	for attempt := 1; attempt <= completionAttempts; attempt++ {
		var state *session.State
		state, err = uc.applyCompletion(ctx, sessionID, ev)
		if err == nil {
			return state, nil
		}
		if errors.Is(err, domain.ErrNoSendInFlight) || errors.Is(err, domain.ErrSessionNotFound) {
			break
		}
		uc.log.Warn().Err(err).Str("session_id", sessionID).Int("attempt", attempt).Msg("fallo al guardar la respuesta del intérprete")
		if attempt < completionAttempts {
			time.Sleep(time.Duration(attempt) * 20 * time.Millisecond)
		}
	}

	// Un intento anterior pudo haberse aplicado aunque el almacén devolviera error.
	if errors.Is(err, domain.ErrNoSendInFlight) {
		return uc.repo.Get(ctx, sessionID)
	}
	if errors.Is(err, domain.ErrSessionNotFound) {
		return nil, err
	}

	uc.log.Error().Err(err).Str("session_id", sessionID).Msg("no se pudo guardar la respuesta del intérprete, se agrega aviso de ocupado")
	state, ferr := uc.applyCompletion(ctx, sessionID, session.InterpretationFailed{
		MessageID: uuid.NewString(), At: time.Now().UTC(),
	})
	if errors.Is(ferr, domain.ErrNoSendInFlight) {
		return uc.repo.Get(ctx, sessionID)
	}
	if ferr != nil {
		uc.log.Error().Err(ferr).Str("session_id", sessionID).Msg("no se pudo liberar la sesión")
		return nil, errors.Join(err, ferr)
	}
	return state, nil
}

func (uc *ChatUseCase) applyCompletion(ctx context.Context, sessionID string, ev session.Event) (*session.State, error) {
	return uc.repo.Update(ctx, sessionID, func(s session.State) (session.State, error) {
		next, _, err := uc.machine.Apply(s, ev)
		return next, err
	})
}

// interpret llama al intérprete con timeout y convierte el resultado en el evento a aplicar.
func (uc *ChatUseCase) interpret(ctx context.Context, sessionID string, req session.InterpretMessage) session.Event {
	replyID := uuid.NewString()

	ictx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	res, err := uc.interpreter.Interpret(ictx, req.Text, req.Role)
	if err == nil && res == nil {
		err = errors.New("intérprete devolvió resultado vacío")
	}
	if err != nil {
		uc.log.Warn().Err(err).Str("session_id", sessionID).Msg("interpretación fallida")
		return session.InterpretationFailed{MessageID: replyID, At: time.Now().UTC()}
	}

	uc.log.Debug().
		Str("session_id", sessionID).
		Str("intent", string(res.Intent)).
		Int("lines", len(res.ExtractedOrder)).
		Msg("mensaje interpretado")
	return session.InterpretationReceived{MessageID: replyID, Result: *res, At: time.Now().UTC()}
}

// Transcript devuelve el historial de la sesión.
func (uc *ChatUseCase) Transcript(ctx context.Context, sessionID string) (*dto.TranscriptResponse, error) {
	s, err := uc.repo.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return &dto.TranscriptResponse{Messages: toMessageResponses(s.Transcript), Pending: s.Pending}, nil
}

// Confirm marca el pedido del mensaje como confirmado, actualiza la base y lo publica en segundo plano.
func (uc *ChatUseCase) Confirm(ctx context.Context, sessionID, messageID string) (*dto.ConfirmOrderResponse, error) {
	noticeID := uuid.NewString()
	var effects []session.Effect
	state, err := uc.repo.Update(ctx, sessionID, func(s session.State) (session.State, error) {
		next, eff, err := uc.machine.Apply(s, session.OrderConfirmed{
			MessageID: messageID, NoticeID: noticeID, At: time.Now().UTC(),
		})
		effects = eff
		return next, err
	})
	if err != nil {
		return nil, err
	}

	for _, e := range effects {
		if po, ok := e.(session.PublishOrder); ok {
			uc.publish(po.Order)
		}
	}

	notice, ok := state.Message(noticeID)
	if !ok {
		return nil, fmt.Errorf("%w: aviso de confirmación", domain.ErrMessageNotFound)
	}
	return &dto.ConfirmOrderResponse{
		Notice:  toMessageResponse(notice),
		Profile: toProfileResponse(state.Profile),
	}, nil
}

// publish envía el pedido sin esperar el resultado; los errores solo se registran.
func (uc *ChatUseCase) publish(order entity.ConfirmedOrder) {
	uc.log.Info().
		Str("session_id", order.SessionID).
		Str("message_id", order.MessageID).
		Str("total", order.Total.String()).
		Msg("pedido confirmado")
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), uc.sinkTimeout)
		defer cancel()
		if err := uc.sink.Publish(ctx, order); err != nil {
			uc.log.Warn().Err(err).Str("message_id", order.MessageID).Msg("no se pudo publicar el pedido")
		}
	}()
}
