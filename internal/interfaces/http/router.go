package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/jhoicas/nongyiding-api/internal/application/analytics"
	"github.com/jhoicas/nongyiding-api/internal/application/dto"
	"github.com/jhoicas/nongyiding-api/internal/application/usecase"
	"github.com/jhoicas/nongyiding-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	SessionUC *usecase.SessionUseCase
	ChatUC    *usecase.ChatUseCase
	BindingUC *usecase.BindingUseCase
	PriceUC   *usecase.PriceUseCase
	SlipUC    *usecase.SlipUseCase
	ReportUC  *analytics.ReportUseCase
	JWTSecret string
	Log       *logger.Logger // nil = descarta
	// ChatPerMinute envíos de chat por IP y minuto; 0 desactiva el límite.
	ChatPerMinute int
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Log
	if log == nil {
		log = logger.Nop()
	}
	api := app.Group("/api", RequestLogger(log.Component("http")))

	// Sesiones (público: emite el token)
	sessionHandler := NewSessionHandler(deps.SessionUC)
	api.Post("/sessions", sessionHandler.Start)

	// Rutas protegidas (requieren Bearer Token y sesión vigente)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret), RequireSession(deps.SessionUC))
	protected.Get("/sessions/me", sessionHandler.Me)

	// Chat
	chatHandler := NewChatHandler(deps.ChatUC, deps.SlipUC)
	chat := protected.Group("/chat/messages")
	sendHandlers := []fiber.Handler{chatHandler.Send}
	if deps.ChatPerMinute > 0 {
		sendHandlers = append([]fiber.Handler{chatRateLimit(deps.ChatPerMinute)}, sendHandlers...)
	}
	chat.Post("/", sendHandlers...)
	chat.Get("/", chatHandler.Transcript)
	chat.Post("/:id/confirm", chatHandler.Confirm)
	chat.Get("/:id/slip", chatHandler.Slip)

	// Vinculación de identidad
	bindingHandler := NewBindingHandler(deps.BindingUC)
	protected.Post("/binding", bindingHandler.Bind)
	protected.Delete("/binding", bindingHandler.Unbind)

	// Precios (ADMIN; el caso de uso aplica la restricción)
	priceHandler := NewPriceHandler(deps.PriceUC)
	protected.Get("/prices", priceHandler.Search)

	// Reportes
	reportHandler := NewReportHandler(deps.ReportUC)
	protected.Get("/reports/monthly", reportHandler.Monthly)
}

func chatRateLimit(perMinute int) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        perMinute,
		Expiration: time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(dto.ErrorResponse{
				Code: "RATE_LIMITED", Message: "訊息傳送太頻繁，請稍後再試。",
			})
		},
	})
}
