package usecase

import (
	"context"
	"strings"

	"github.com/jhoicas/nongyiding-api/internal/application/dto"
	"github.com/jhoicas/nongyiding-api/internal/domain/access"
	"github.com/jhoicas/nongyiding-api/internal/domain/catalog"
	"github.com/jhoicas/nongyiding-api/internal/domain/entity"
	"github.com/jhoicas/nongyiding-api/internal/domain/repository"
)

// PriceUseCase consulta de precios, restringida a administradores.
type PriceUseCase struct {
	repo     repository.SessionRepository
	products []entity.Product
}

// NewPriceUseCase construye el caso de uso con el catálogo cargado al arrancar.
func NewPriceUseCase(repo repository.SessionRepository, products []entity.Product) *PriceUseCase {
	return &PriceUseCase{repo: repo, products: products}
}

// Search filtra por nombre o categoría. Consulta vacía lista todo el catálogo.
func (uc *PriceUseCase) Search(ctx context.Context, sessionID, query string) (*dto.PriceListResponse, error) {
	s, err := uc.repo.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := access.CheckPriceLookup(s.Profile.Role); err != nil {
		return nil, err
	}
	query = strings.TrimSpace(query)
	return &dto.PriceListResponse{
		Query: query,
		Items: toPriceItems(catalog.Search(uc.products, query)),
	}, nil
}
