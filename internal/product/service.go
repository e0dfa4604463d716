package product

import (
	"context"
	"strings"

	"ecowear-be/internal/apperr"
	"ecowear-be/internal/logger"
	"ecowear-be/internal/user"

	"go.uber.org/zap"
)

type Service interface {
	List(ctx context.Context) ([]Product, error)
	Get(ctx context.Context, id string) (*Product, error)
	ListMine(ctx context.Context, caller user.Identity) ([]Product, error)
	Create(ctx context.Context, caller user.Identity, input NewProductInput) (Product, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context) ([]Product, error) {
	products, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, apperr.Internal("failed to list products", err)
	}
	return products, nil
}

func (s *service) Get(ctx context.Context, id string) (*Product, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal("failed to get product", err)
	}
	if p == nil {
		return nil, apperr.NotFound("product not found")
	}
	return p, nil
}

func (s *service) ListMine(ctx context.Context, caller user.Identity) ([]Product, error) {
	products, err := s.repo.ListBySeller(ctx, caller.UserID)
	if err != nil {
		return nil, apperr.Internal("failed to list products", err)
	}
	return products, nil
}

func (s *service) Create(ctx context.Context, caller user.Identity, input NewProductInput) (Product, error) {
	switch caller.Role {
	case user.RoleSeller, user.RoleAdmin:
	default:
		return Product{}, apperr.Forbidden("not authorized as seller")
	}

	if err := validateNewProduct(input); err != nil {
		return Product{}, err
	}

	p, err := s.repo.Create(ctx, input, caller.UserID)
	if err != nil {
		return Product{}, apperr.Internal("failed to create product", err)
	}

	logger.FromCtx(ctx).Info("product created",
		zap.String("product_id", p.ID),
		zap.Int("seller_id", caller.UserID),
	)

	return p, nil
}

func validateNewProduct(input NewProductInput) error {
	var missing []string
	for field, value := range map[string]string{
		"name":        input.Name,
		"description": input.Description,
		"category":    input.Category,
		"image":       input.Image,
		"materials":   input.Materials,
	} {
		if strings.TrimSpace(value) == "" {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		return apperr.Validation("missing required fields: " + strings.Join(missing, ", "))
	}

	if input.Price < 0 || input.Stock < 0 || input.CarbonFootprint < 0 {
		return apperr.Validation("price, stock and carbon footprint must be non-negative")
	}

	return nil
}
