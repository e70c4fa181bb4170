package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/nongyiding-api/internal/application/dto"
	"github.com/jhoicas/nongyiding-api/internal/application/usecase"
)

// ChatHandler maneja la conversación y la confirmación de pedidos.
type ChatHandler struct {
	chat  *usecase.ChatUseCase
	slips *usecase.SlipUseCase
}

// NewChatHandler construye el handler.
func NewChatHandler(chat *usecase.ChatUseCase, slips *usecase.SlipUseCase) *ChatHandler {
	return &ChatHandler{chat: chat, slips: slips}
}

// Send godoc
// @Summary      Enviar mensaje al asistente
// @Description  Agrega el mensaje, lo interpreta con el modelo de lenguaje y devuelve el mensaje
//               del usuario y la respuesta. Si hay un pedido se adjunta el total confirmable y,
//               para clientes vinculados, la advertencia de anomalía. Requiere identidad vinculada.
// @Tags         chat
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SendMessageRequest  true  "texto libre"
// @Success      200   {object}  dto.SendMessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      429   {object}  dto.ErrorResponse
// @Router       /api/chat/messages [post]
func (h *ChatHandler) Send(c *fiber.Ctx) error {
	var req dto.SendMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}
	out, err := h.chat.Send(c.Context(), GetSessionID(c), req.Text)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Transcript godoc
// @Summary      Historial de la conversación
// @Tags         chat
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.TranscriptResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/chat/messages [get]
func (h *ChatHandler) Transcript(c *fiber.Ctx) error {
	out, err := h.chat.Transcript(c.Context(), GetSessionID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Confirm godoc
// @Summary      Confirmar pedido
// @Description  Marca el pedido del mensaje como confirmado, agrega el aviso de sistema,
//               actualiza la base de comparación y envía el pedido al ERP en segundo plano.
// @Tags         chat
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del mensaje con el pedido"
// @Success      200  {object}  dto.ConfirmOrderResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/chat/messages/{id}/confirm [post]
func (h *ChatHandler) Confirm(c *fiber.Ctx) error {
	out, err := h.chat.Confirm(c.Context(), GetSessionID(c), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Slip godoc
// @Summary      Comprobante PDF del pedido confirmado
// @Tags         chat
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  string  true  "ID del mensaje con el pedido"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/chat/messages/{id}/slip [get]
func (h *ChatHandler) Slip(c *fiber.Ctx) error {
	id := c.Params("id")
	pdfBytes, err := h.slips.Generate(c.Context(), GetSessionID(c), id)
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="order-`+id+`.pdf"`)
	return c.Send(pdfBytes)
}
