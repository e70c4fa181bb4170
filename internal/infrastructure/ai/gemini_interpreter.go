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

// Verificar en tiempo de compilación que GeminiInterpreter implementa IntentInterpreter.
var _ ports.IntentInterpreter = (*GeminiInterpreter)(nil)

const defaultGeminiBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// GeminiInterpreter adaptador que implementa IntentInterpreter llamando a la API REST de Google Gemini.
type GeminiInterpreter struct {
	apiKey     string
	model      string
	baseURL    string
	catalog    []entity.Product
	httpClient *http.Client
}

// NewGeminiInterpreter construye el adaptador. model suele ser "gemini-1.5-flash".
// Si apiKey está vacío, Interpret devuelve un aviso de sistema en lugar de fallar.
func NewGeminiInterpreter(apiKey, model string, catalog []entity.Product) *GeminiInterpreter {
	return &GeminiInterpreter{
		apiKey:  apiKey,
		model:   model,
		baseURL: defaultGeminiBaseURL,
		catalog: catalog,
		httpClient: &http.Client{
			Timeout: 20 * time.Second, // timeout de red; el caller también pone WithTimeout
		},
	}
}

// WithBaseURL cambia el endpoint (proxy o servidor de pruebas).
func (s *GeminiInterpreter) WithBaseURL(baseURL string) *GeminiInterpreter {
	s.baseURL = strings.TrimRight(baseURL, "/")
	return s
}

// ── Estructuras internas para la API de Gemini ────────────────────────────────

type geminiRequest struct {
	SystemInstruction *geminiContent  `json:"system_instruction,omitempty"`
	Contents          []geminiContent `json:"contents"`
	GenerationConfig  genConfig       `json:"generationConfig"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
	Role  string       `json:"role,omitempty"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type genConfig struct {
	ResponseMIMEType string        `json:"responseMimeType"` // "application/json" → JSON puro garantizado
	ResponseSchema   *geminiSchema `json:"responseSchema,omitempty"`
	Temperature      float32       `json:"temperature"`
	MaxOutputTokens  int           `json:"maxOutputTokens"`
}

type geminiSchema struct {
	Type       string                   `json:"type"`
	Properties map[string]*geminiSchema `json:"properties,omitempty"`
	Items      *geminiSchema            `json:"items,omitempty"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// interpretationSchema obliga al modelo a devolver {intent, reply, extractedOrder[]}.
var interpretationSchema = &geminiSchema{
	Type: "OBJECT",
	Properties: map[string]*geminiSchema{
		"intent": {Type: "STRING"},
		"reply":  {Type: "STRING"},
		"extractedOrder": {
			Type: "ARRAY",
			Items: &geminiSchema{
				Type: "OBJECT",
				Properties: map[string]*geminiSchema{
					"name":     {Type: "STRING"},
					"quantity": {Type: "NUMBER"},
					"spec":     {Type: "STRING"},
				},
			},
		},
	},
}

// ── Implementación del puerto ─────────────────────────────────────────────────

// Interpret envía el mensaje a Gemini con el catálogo y el rol en el prompt del sistema.
func (s *GeminiInterpreter) Interpret(ctx context.Context, message string, role entity.Role) (*entity.Interpretation, error) {
	if s.apiKey == "" {
		notice := entity.SystemNotice(fmt.Sprintf(notConfiguredReply, "GEMINI_API_KEY"))
		return &notice, nil
	}

	payload := geminiRequest{
		SystemInstruction: &geminiContent{
			Parts: []geminiPart{{Text: buildSystemPrompt(role, s.catalog)}},
		},
		Contents: []geminiContent{
			{Role: "user", Parts: []geminiPart{{Text: message}}},
		},
		GenerationConfig: genConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   interpretationSchema,
			Temperature:      0.2,
			MaxOutputTokens:  1024,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("AI: serializar request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", s.baseURL, s.model, s.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("AI: crear HTTP request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

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
		var errResp geminiResponse
		if jsonErr := json.Unmarshal(rawBody, &errResp); jsonErr == nil && errResp.Error != nil {
			return nil, fmt.Errorf("AI: Gemini error %d: %s", errResp.Error.Code, errResp.Error.Message)
		}
		return nil, fmt.Errorf("AI: Gemini HTTP %d", resp.StatusCode)
	}

	var gemResp geminiResponse
	if err := json.Unmarshal(rawBody, &gemResp); err != nil {
		return nil, fmt.Errorf("AI: deserializar respuesta Gemini: %w", err)
	}
	if len(gemResp.Candidates) == 0 || len(gemResp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("AI: Gemini devolvió respuesta vacía")
	}

	return parseInterpretation(gemResp.Candidates[0].Content.Parts[0].Text)
}
