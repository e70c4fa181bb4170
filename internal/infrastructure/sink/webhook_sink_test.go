package sink_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/nongyiding-api/internal/domain/entity"
	"github.com/jhoicas/nongyiding-api/internal/infrastructure/sink"
	"github.com/jhoicas/nongyiding-api/pkg/logger"
)

func confirmedOrder() entity.ConfirmedOrder {
	salmon := entity.Product{ID: "P001", Name: "大西洋鮭魚", Price: decimal.NewFromInt(450), Category: "海鮮"}
	return entity.ConfirmedOrder{
		SessionID:  "s-1",
		MessageID:  "m-1",
		UID:        "line_user_123",
		CustomerID: "CUST001",
		Lines: []entity.ResolvedLine{
			{Product: salmon, Quantity: decimal.NewFromInt(3), LineTotal: decimal.NewFromInt(1350)},
		},
		Total:       decimal.NewFromInt(1350),
		ConfirmedAt: time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC),
	}
}

func TestWebhookSink_EnviaPedido(t *testing.T) {
	type received struct {
		idempotency string
		body        map[string]any
	}
	got := make(chan received, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)
		got <- received{idempotency: r.Header.Get("Idempotency-Key"), body: body}
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	err := sink.NewWebhookSink(srv.URL, time.Second).Publish(context.Background(), confirmedOrder())
	require.NoError(t, err)

	r := <-got
	assert.Equal(t, "m-1", r.idempotency)
	assert.Equal(t, "CUST001", r.body["customer_id"])
	assert.Equal(t, "1350", r.body["total"])
	lines, ok := r.body["lines"].([]any)
	require.True(t, ok)
	require.Len(t, lines, 1)
	assert.Equal(t, "P001", lines[0].(map[string]any)["product_id"])
}

func TestWebhookSink_ErrorHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	err := sink.NewWebhookSink(srv.URL, time.Second).Publish(context.Background(), confirmedOrder())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}

func TestLogSink_NuncaFalla(t *testing.T) {
	err := sink.NewLogSink(logger.Nop()).Publish(context.Background(), confirmedOrder())
	assert.NoError(t, err)
}
