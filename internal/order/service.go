package order

import (
	"context"

	"ecowear-be/internal/apperr"
	"ecowear-be/internal/logger"
	"ecowear-be/internal/user"

	"go.uber.org/zap"
)

type Service interface {
	Create(ctx context.Context, caller user.Identity, items []NewOrderItem, totalAmount float64) (Order, error)
	ListMine(ctx context.Context, caller user.Identity) ([]Order, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, caller user.Identity, items []NewOrderItem, totalAmount float64) (Order, error) {
	if len(items) == 0 {
		return Order{}, apperr.Validation("order must contain at least one item")
	}
	for _, item := range items {
		if item.ProductID == "" {
			return Order{}, apperr.Validation("every line item needs a product id")
		}
		if item.Quantity < 1 {
			return Order{}, apperr.Validation("line item quantity must be at least 1")
		}
	}
	if totalAmount < 0 {
		return Order{}, apperr.Validation("total amount must be non-negative")
	}

	o, err := s.repo.Create(ctx, caller.UserID, items, totalAmount)
	if err != nil {
		return Order{}, apperr.Internal("failed to create order", err)
	}

	logger.FromCtx(ctx).Info("order created",
		zap.String("order_id", o.ID),
		zap.Int("buyer_id", caller.UserID),
		zap.Int("line_items", len(items)),
	)

	return o, nil
}

func (s *service) ListMine(ctx context.Context, caller user.Identity) ([]Order, error) {
	orders, err := s.repo.ListByBuyer(ctx, caller.UserID)
	if err != nil {
		return nil, apperr.Internal("failed to list orders", err)
	}
	if orders == nil {
		orders = []Order{}
	}
	return orders, nil
}
