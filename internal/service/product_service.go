package service

import (
	"context"
	"errors"

	"github.com/4supreme/business-application/internal/apperror"
	"github.com/4supreme/business-application/internal/dto"
	"github.com/4supreme/business-application/internal/model"
	"github.com/4supreme/business-application/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ProductService covers catalog storage and lookup. Quantity and cost are
// never mutated here — that is the document engine's job.
type ProductService interface {
	Create(ctx context.Context, req dto.CreateProductRequest) (*dto.ProductResponse, error)
	Get(ctx context.Context, id uint) (*dto.ProductResponse, error)
	List(ctx context.Context) ([]dto.ProductResponse, error)
	// Stock is the warehouse view: same rows, ordered by name.
	Stock(ctx context.Context) ([]dto.ProductResponse, error)
}

type productService struct {
	repo repository.ProductRepository
}

func NewProductService(repo repository.ProductRepository) ProductService {
	return &productService{repo: repo}
}

func (s *productService) Create(ctx context.Context, req dto.CreateProductRequest) (*dto.ProductResponse, error) {
	unit := "pcs"
	if req.Unit != nil && *req.Unit != "" {
		unit = *req.Unit
	}
	p := &model.Product{
		Name:      req.Name,
		SKU:       req.SKU,
		Unit:      unit,
		Barcode:   req.Barcode,
		QtyOnHand: decimal.Zero,
		AvgCost:   decimal.Zero,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return productToResponse(p), nil
}

func (s *productService) Get(ctx context.Context, id uint) (*dto.ProductResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NewNotFound("product %d not found", id)
		}
		return nil, err
	}
	return productToResponse(p), nil
}

func (s *productService) List(ctx context.Context) ([]dto.ProductResponse, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return productsToResponses(products), nil
}

func (s *productService) Stock(ctx context.Context) ([]dto.ProductResponse, error) {
	products, err := s.repo.Stock(ctx)
	if err != nil {
		return nil, err
	}
	return productsToResponses(products), nil
}

func productToResponse(p *model.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:        p.ID,
		Name:      p.Name,
		SKU:       p.SKU,
		Unit:      p.Unit,
		Barcode:   p.Barcode,
		QtyOnHand: p.QtyOnHand,
		AvgCost:   p.AvgCost,
	}
}

func productsToResponses(products []model.Product) []dto.ProductResponse {
	out := make([]dto.ProductResponse, 0, len(products))
	for i := range products {
		out = append(out, *productToResponse(&products[i]))
	}
	return out
}
