package usecase

import (
	"github.com/jhoicas/nongyiding-api/internal/application/dto"
	"github.com/jhoicas/nongyiding-api/internal/domain/access"
	"github.com/jhoicas/nongyiding-api/internal/domain/entity"
	"github.com/jhoicas/nongyiding-api/internal/domain/session"
)

func toSessionResponse(s *session.State) *dto.SessionResponse {
	return &dto.SessionResponse{
		ID:        s.ID,
		Profile:   toProfileResponse(s.Profile),
		Messages:  toMessageResponses(s.Transcript),
		Pending:   s.Pending,
		CreatedAt: s.CreatedAt,
	}
}

func toProfileResponse(p entity.UserProfile) dto.ProfileResponse {
	return dto.ProfileResponse{
		UID:            p.UID,
		CustomerID:     p.CustomerID,
		Phone:          p.Phone,
		Name:           p.Name,
		Role:           string(p.Role),
		LastOrderTotal: p.LastOrderTotal,
		CanOrder:       access.CheckOrdering(p.Role) == nil,
		CanLookup:      access.CheckPriceLookup(p.Role) == nil,
	}
}

func toMessageResponses(msgs []entity.ChatMessage) []dto.MessageResponse {
	out := make([]dto.MessageResponse, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, toMessageResponse(m))
	}
	return out
}

func toMessageResponse(m entity.ChatMessage) dto.MessageResponse {
	r := dto.MessageResponse{
		ID:          m.ID,
		Author:      string(m.Author),
		Text:        m.Text,
		Intent:      string(m.Intent),
		Confirmed:   m.Confirmed,
		Confirmable: m.HasConfirmableOrder(),
		CreatedAt:   m.CreatedAt,
	}
	if m.Order != nil {
		o := &dto.OrderDTO{Total: m.Order.Total, Lines: make([]dto.OrderLineDTO, 0, len(m.Order.Lines))}
		for _, l := range m.Order.Lines {
			o.Lines = append(o.Lines, dto.OrderLineDTO{
				ProductID: l.Product.ID,
				Name:      l.Product.Name,
				Spec:      l.Spec,
				Quantity:  l.Quantity,
				UnitPrice: l.Product.Price,
				LineTotal: l.LineTotal,
			})
		}
		r.Order = o
	}
	if m.Anomaly != nil {
		r.Anomaly = &dto.AnomalyDTO{
			Total:    m.Anomaly.Total,
			Baseline: m.Anomaly.Baseline,
			Percent:  m.Anomaly.Percent,
			Trend:    string(m.Anomaly.Trend),
		}
	}
	return r
}

func toPriceItems(products []entity.Product) []dto.PriceItemDTO {
	out := make([]dto.PriceItemDTO, 0, len(products))
	for _, p := range products {
		out = append(out, dto.PriceItemDTO{
			ID:       p.ID,
			Name:     p.Name,
			Price:    p.Price,
			Specs:    p.Specs,
			Category: p.Category,
		})
	}
	return out
}
