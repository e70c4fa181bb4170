package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/nongyiding-api/internal/application/dto"
	"github.com/jhoicas/nongyiding-api/internal/domain"
)

// Textos mostrados al usuario final.
const (
	msgBindingRequired    = "請先完成身份綁定，綁定後可進行叫貨與查價喔！"
	msgPriceForbidden     = "抱歉，您目前的身份無法使用即時價格查詢功能。此功能僅限「管理員」或「VIP 業務」使用。"
	msgCustomerNotFound   = "查無此客戶，請檢查客戶代碼或聯繫客服中心。"
	msgVerificationFailed = "身份驗證服務暫時無法使用，請稍後再試。"
	msgSendInFlight       = "上一則訊息還在處理中，請稍候。"
	msgInternal           = "系統發生錯誤，請稍後再試。"
)

// errorMapping código HTTP, código de error y mensaje por error de dominio.
var errorMapping = []struct {
	err     error
	status  int
	code    string
	message string
}{
	{domain.ErrBindingRequired, fiber.StatusForbidden, "BINDING_REQUIRED", msgBindingRequired},
	{domain.ErrPriceLookupForbidden, fiber.StatusForbidden, "FORBIDDEN", msgPriceForbidden},
	{domain.ErrCustomerNotFound, fiber.StatusNotFound, "CUSTOMER_NOT_FOUND", msgCustomerNotFound},
	{domain.ErrVerificationUnavailable, fiber.StatusServiceUnavailable, "VERIFICATION_UNAVAILABLE", msgVerificationFailed},
	{domain.ErrSendInFlight, fiber.StatusConflict, "SEND_IN_FLIGHT", msgSendInFlight},
	{domain.ErrAlreadyBound, fiber.StatusConflict, "ALREADY_BOUND", ""},
	{domain.ErrNotBound, fiber.StatusConflict, "NOT_BOUND", ""},
	{domain.ErrOrderNotConfirmable, fiber.StatusConflict, "ORDER_NOT_CONFIRMABLE", ""},
	{domain.ErrOrderNotConfirmed, fiber.StatusConflict, "ORDER_NOT_CONFIRMED", ""},
	{domain.ErrSessionNotFound, fiber.StatusUnauthorized, "SESSION_EXPIRED", ""},
	{domain.ErrMessageNotFound, fiber.StatusNotFound, "NOT_FOUND", ""},
	{domain.ErrNotFound, fiber.StatusNotFound, "NOT_FOUND", ""},
	{domain.ErrInvalidInput, fiber.StatusBadRequest, "VALIDATION", ""},
	{domain.ErrSlipUnavailable, fiber.StatusServiceUnavailable, "SLIP_UNAVAILABLE", ""},
}

// writeError traduce errores de dominio a respuestas HTTP. El resto es 500 con un mensaje
// fijo; el detalle solo va al log.
func writeError(c *fiber.Ctx, err error) error {
	for _, m := range errorMapping {
		if errors.Is(err, m.err) {
			msg := m.message
			if msg == "" {
				msg = err.Error()
			}
			return c.Status(m.status).JSON(dto.ErrorResponse{Code: m.code, Message: msg})
		}
	}
	requestLog(c).Error().Err(err).
		Str("session_id", GetSessionID(c)).
		Str("method", c.Method()).
		Str("path", c.Path()).
		Msg("error interno")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Code: "INTERNAL", Message: msgInternal,
	})
}

func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
		Code: "INVALID_BODY", Message: "cuerpo de la petición inválido",
	})
}
