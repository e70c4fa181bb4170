package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/jhoicas/nongyiding-api/internal/application/ports"
	"github.com/jhoicas/nongyiding-api/internal/domain/entity"
)

// Verificar en tiempo de compilación que AnthropicInterpreter implementa IntentInterpreter.
var _ ports.IntentInterpreter = (*AnthropicInterpreter)(nil)

const (
	defaultAnthropicBaseURL = "https://api.anthropic.com"
	anthropicVersion        = "2023-06-01"
)

// AnthropicInterpreter adaptador que implementa IntentInterpreter usando la API REST de Anthropic (Claude).
// Usa net/http de la librería estándar de Go; no requiere el SDK oficial.
type AnthropicInterpreter struct {
	apiKey     string
	model      string
	baseURL    string
	catalog    []entity.Product
	httpClient *http.Client
}

// NewAnthropicInterpreter construye el adaptador.
// model suele ser "claude-3-5-haiku-20241022".
func NewAnthropicInterpreter(apiKey, model string, catalog []entity.Product) *AnthropicInterpreter {
	return &AnthropicInterpreter{
		apiKey:  apiKey,
		model:   model,
		baseURL: defaultAnthropicBaseURL,
		catalog: catalog,
		httpClient: &http.Client{
			Timeout: 25 * time.Second,
		},
	}
}

// WithBaseURL cambia el endpoint (proxy o servidor de pruebas).
func (s *AnthropicInterpreter) WithBaseURL(baseURL string) *AnthropicInterpreter {
	s.baseURL = strings.TrimRight(baseURL, "/")
	return s
}

// ── Estructuras internas del protocolo Anthropic Messages API ─────────────────

type anthropicRequest struct {
	Model     string             `json:"model"`
	MaxTokens int                `json:"max_tokens"`
	System    string             `json:"system"`
	Messages  []anthropicMessage `json:"messages"`
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	Error *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// ── Implementación del puerto ─────────────────────────────────────────────────

// Interpret envía el mensaje a Claude y parsea el JSON de la respuesta aunque venga envuelto en markdown.
func (s *AnthropicInterpreter) Interpret(ctx context.Context, message string, role entity.Role) (*entity.Interpretation, error) {
	if s.apiKey == "" {
		notice := entity.SystemNotice(fmt.Sprintf(notConfiguredReply, "ANTHROPIC_API_KEY"))
		return &notice, nil
	}

	payload := anthropicRequest{
		Model:     s.model,
		MaxTokens: 1024,
		System:    buildSystemPrompt(role, s.catalog),
		Messages: []anthropicMessage{
			{Role: "user", Content: message},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("AI: serializar request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/v1/messages", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("AI: crear HTTP request: %w", err)
	}
	req.Header.Set("x-api-key", s.apiKey)
	req.Header.Set("anthropic-version", anthropicVersion)
	req.Header.Set("content-type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("AI: timeout o cancelación: %w", ctx.Err())
		}
		return nil, fmt.Errorf("AI: llamada HTTP fallida: %w", err)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err != nil {
		return nil, fmt.Errorf("AI: leer respuesta: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errResp anthropicResponse
		if jsonErr := json.Unmarshal(rawBody, &errResp); jsonErr == nil && errResp.Error != nil {
			return nil, fmt.Errorf("AI: Anthropic error (%s): %s", errResp.Error.Type, errResp.Error.Message)
		}
		return nil, fmt.Errorf("AI: Anthropic HTTP %d: %s", resp.StatusCode, string(rawBody))
	}

	var anthResp anthropicResponse
	if err := json.Unmarshal(rawBody, &anthResp); err != nil {
		return nil, fmt.Errorf("AI: deserializar respuesta Anthropic: %w", err)
	}
	if len(anthResp.Content) == 0 {
		return nil, fmt.Errorf("AI: Claude devolvió respuesta vacía")
	}

	return parseInterpretation(anthResp.Content[0].Text)
}
