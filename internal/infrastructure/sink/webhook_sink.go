package sink

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/nongyiding-api/internal/application/ports"
	"github.com/jhoicas/nongyiding-api/internal/domain/entity"
)

var _ ports.OrderSink = (*WebhookSink)(nil)

// WebhookSink envía el pedido confirmado por POST JSON al ERP.
type WebhookSink struct {
	url        string
	httpClient *http.Client
}

// NewWebhookSink timeout <= 0 usa 5 s.
func NewWebhookSink(url string, timeout time.Duration) *WebhookSink {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &WebhookSink{url: url, httpClient: &http.Client{Timeout: timeout}}
}

type webhookLine struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Spec      string          `json:"spec,omitempty"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	LineTotal decimal.Decimal `json:"line_total"`
}

type webhookPayload struct {
	SessionID    string          `json:"session_id"`
	MessageID    string          `json:"message_id"`
	UID          string          `json:"uid"`
	CustomerID   string          `json:"customer_id"`
	CustomerName string          `json:"customer_name"`
	Lines        []webhookLine   `json:"lines"`
	Total        decimal.Decimal `json:"total"`
	ConfirmedAt  time.Time       `json:"confirmed_at"`
}

func (s *WebhookSink) Publish(ctx context.Context, order entity.ConfirmedOrder) error {
	payload := webhookPayload{
		SessionID:    order.SessionID,
		MessageID:    order.MessageID,
		UID:          order.UID,
		CustomerID:   order.CustomerID,
		CustomerName: order.CustomerName,
		Lines:        make([]webhookLine, 0, len(order.Lines)),
		Total:        order.Total,
		ConfirmedAt:  order.ConfirmedAt,
	}
	for _, l := range order.Lines {
		payload.Lines = append(payload.Lines, webhookLine{
			ProductID: l.Product.ID,
			Name:      l.Product.Name,
			Spec:      l.Spec,
			Quantity:  l.Quantity,
			UnitPrice: l.Product.Price,
			LineTotal: l.LineTotal,
		})
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("ERP: serializar pedido: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("ERP: crear HTTP request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Idempotency-Key", order.MessageID)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("ERP: llamada HTTP fallida: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64*1024))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("ERP: HTTP %d", resp.StatusCode)
	}
	return nil
}
