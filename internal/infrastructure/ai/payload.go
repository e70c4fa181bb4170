package ai

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/nongyiding-api/internal/domain/entity"
)

// notConfiguredReply respuesta cuando falta la API key del proveedor.
const notConfiguredReply = "抱歉，系統尚未設定 API 金鑰，請先在伺服器的環境變數中設定 %s。"

// promptTemplate define el rol del modelo y el formato de salida.
const promptTemplate = `你是「農易訂」智慧叫貨系統的 AI 助理。
當前用戶權限：%s。

你的任務：
1. 判斷用戶意圖：叫貨、詢價、報表、閒聊、客訴。
2. 如果用戶想叫貨，請從以下產品清單中匹配：%s。
3. 叫貨必須包含：品項、數量。如果規格不明（例如多種規格），請反問確認。
4. 如果用戶詢價，且權限不是 ADMIN，請委婉拒絕。
5. 回應必須簡短、親切，符合台灣市場口吻（例如：老闆、您好）。

請只回覆一個 JSON 物件（不要 markdown），包含：
- intent: string
- reply: string (給用戶的回覆)
- extractedOrder: Array<{ name: string, quantity: number, spec?: string }> (選填)`

// catalogItem forma del catálogo embebida en el prompt.
type catalogItem struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Price    string   `json:"price"`
	Specs    []string `json:"specs"`
	Category string   `json:"category"`
}

// interpretationPayload es el JSON que esperamos recibir del modelo.
type interpretationPayload struct {
	Intent         string        `json:"intent"`
	Reply          string        `json:"reply"`
	ExtractedOrder []linePayload `json:"extractedOrder"`
}

type linePayload struct {
	Name     string          `json:"name"`
	Quantity decimal.Decimal `json:"quantity"`
	Spec     string          `json:"spec"`
}

// buildSystemPrompt arma el prompt con el rol actual y el catálogo serializado.
func buildSystemPrompt(role entity.Role, catalog []entity.Product) string {
	items := make([]catalogItem, 0, len(catalog))
	for _, p := range catalog {
		items = append(items, catalogItem{
			ID:       p.ID,
			Name:     p.Name,
			Price:    p.Price.String(),
			Specs:    p.Specs,
			Category: p.Category,
		})
	}
	raw, _ := json.Marshal(items)
	return fmt.Sprintf(promptTemplate, role, raw)
}

// parseInterpretation convierte el texto del modelo en una Interpretation normalizada.
func parseInterpretation(text string) (*entity.Interpretation, error) {
	cleanJSON := extractJSON(text)
	if cleanJSON == "" {
		return nil, fmt.Errorf("AI: no se encontró JSON válido en la respuesta del modelo (respuesta: %s)", text)
	}
	var p interpretationPayload
	if err := json.Unmarshal([]byte(cleanJSON), &p); err != nil {
		return nil, fmt.Errorf("AI: parsear JSON de interpretación: %w (JSON extraído: %s)", err, cleanJSON)
	}
	return normalize(p), nil
}

// normalize mapea la etiqueta de intención y descarta líneas sin nombre o con cantidad no positiva.
// Solo los pedidos llevan líneas.
func normalize(p interpretationPayload) *entity.Interpretation {
	res := &entity.Interpretation{
		Intent: entity.ParseIntent(p.Intent),
		Reply:  strings.TrimSpace(p.Reply),
	}
	if res.Intent != entity.IntentOrder {
		return res
	}
	for _, l := range p.ExtractedOrder {
		name := strings.TrimSpace(l.Name)
		if name == "" || !l.Quantity.IsPositive() {
			continue
		}
		res.ExtractedOrder = append(res.ExtractedOrder, entity.ExtractedOrderLine{
			Name:     name,
			Quantity: l.Quantity,
			Spec:     strings.TrimSpace(l.Spec),
		})
	}
	return res
}

// jsonBlockRe extrae el primer objeto JSON del texto aunque el modelo lo envuelva en markdown.
var jsonBlockRe = regexp.MustCompile(`(?s)\{.*\}`)

// extractJSON extrae el primer objeto JSON bien formado de un texto libre.
//  1. Eliminar bloques de código markdown (```json … ``` o ``` … ```).
//  2. Usar regex para capturar el primer bloque { … }.
func extractJSON(text string) string {
	text = strings.TrimSpace(text)
	if idx := strings.Index(text, "```"); idx != -1 {
		after := text[idx+3:]
		if nl := strings.Index(after, "\n"); nl != -1 {
			after = after[nl+1:]
		}
		if end := strings.LastIndex(after, "```"); end != -1 {
			after = after[:end]
		}
		text = strings.TrimSpace(after)
	}

	if strings.HasPrefix(text, "{") {
		return text
	}

	return strings.TrimSpace(jsonBlockRe.FindString(text))
}
