package review

import (
	"context"
	"errors"
	"strings"

	"ecowear-be/internal/apperr"
	"ecowear-be/internal/logger"
	"ecowear-be/internal/user"

	"go.uber.org/zap"
)

type Service interface {
	List(ctx context.Context, productID string) ([]Review, error)
	Create(ctx context.Context, productID string, caller user.Identity, input NewReviewInput) (Review, error)
	ToggleLike(ctx context.Context, reviewID string, caller user.Identity) ([]int, error)
	Reply(ctx context.Context, reviewID string, caller user.Identity, comment string) ([]Reply, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context, productID string) ([]Review, error) {
	reviews, err := s.repo.ListByProduct(ctx, productID)
	if err != nil {
		return nil, apperr.Internal("failed to list reviews", err)
	}
	if reviews == nil {
		reviews = []Review{}
	}
	return reviews, nil
}

func (s *service) Create(ctx context.Context, productID string, caller user.Identity, input NewReviewInput) (Review, error) {
	if caller.Role == user.RoleSeller {
		return Review{}, apperr.Forbidden("sellers cannot add reviews")
	}

	if input.Rating < 1 || input.Rating > 5 {
		return Review{}, apperr.Validation("rating must be between 1 and 5")
	}
	if input.SustainabilityRating < 1 || input.SustainabilityRating > 5 {
		return Review{}, apperr.Validation("sustainability rating must be between 1 and 5")
	}
	if strings.TrimSpace(input.Comment) == "" {
		return Review{}, apperr.Validation("comment is required")
	}

	rv, err := s.repo.Create(ctx, productID, caller.UserID, input)
	if err != nil {
		return Review{}, apperr.Internal("failed to create review", err)
	}

	logger.FromCtx(ctx).Info("review created",
		zap.String("review_id", rv.ID),
		zap.String("product_id", productID),
		zap.Int("user_id", caller.UserID),
	)

	return rv, nil
}

func (s *service) ToggleLike(ctx context.Context, reviewID string, caller user.Identity) ([]int, error) {
	likes, err := s.repo.ToggleLike(ctx, reviewID, caller.UserID)
	if err != nil {
		if errors.Is(err, ErrReviewNotFound) {
			return nil, apperr.NotFound(ErrReviewNotFound.Error())
		}
		return nil, apperr.Internal("failed to toggle like", err)
	}
	return likes, nil
}

func (s *service) Reply(ctx context.Context, reviewID string, caller user.Identity, comment string) ([]Reply, error) {
	switch caller.Role {
	case user.RoleSeller, user.RoleAdmin:
	default:
		return nil, apperr.Forbidden("only sellers can reply")
	}

	if strings.TrimSpace(comment) == "" {
		return nil, apperr.Validation("comment is required")
	}

	replies, err := s.repo.AppendReply(ctx, reviewID, caller.UserID, comment)
	if err != nil {
		if errors.Is(err, ErrReviewNotFound) {
			return nil, apperr.NotFound(ErrReviewNotFound.Error())
		}
		return nil, apperr.Internal("failed to append reply", err)
	}
	return replies, nil
}
