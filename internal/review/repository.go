package review

import (
	"context"
	"database/sql"

	"ecowear-be/internal/logger"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"go.uber.org/zap"
)

type Repository interface {
	ListByProduct(ctx context.Context, productID string) ([]Review, error)
	Create(ctx context.Context, productID string, userID int, input NewReviewInput) (Review, error)

	// ToggleLike flips the caller's membership in the review's like-set and
	// returns the resulting set. The delete-else-insert pair runs inside a
	// single transaction so concurrent toggles against the same review
	// cannot lose an update. Returns ErrReviewNotFound if the review is
	// absent.
	ToggleLike(ctx context.Context, reviewID string, userID int) ([]int, error)

	// AppendReply appends a reply and returns the full ordered reply
	// sequence. Returns ErrReviewNotFound if the review is absent.
	AppendReply(ctx context.Context, reviewID string, userID int, comment string) ([]Reply, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) ListByProduct(ctx context.Context, productID string) ([]Review, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT r.id, r.product_id, r.user_id, u.name, r.rating,
		       r.sustainability_rating, r.comment, r.created_at
		FROM reviews r
		JOIN users u ON u.id = r.user_id
		WHERE r.product_id = $1
		ORDER BY r.created_at, r.id`,
		productID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reviews []Review
	var ids []string
	byID := make(map[string]*Review)

	for rows.Next() {
		var rv Review
		if err := rows.Scan(
			&rv.ID, &rv.ProductID, &rv.UserID, &rv.UserName, &rv.Rating,
			&rv.SustainabilityRating, &rv.Comment, &rv.CreatedAt,
		); err != nil {
			return nil, err
		}
		rv.Likes = []int{}
		rv.Replies = []Reply{}
		reviews = append(reviews, rv)
		ids = append(ids, rv.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(reviews) == 0 {
		return reviews, nil
	}

	for i := range reviews {
		byID[reviews[i].ID] = &reviews[i]
	}

	if err := r.attachLikes(ctx, ids, byID); err != nil {
		return nil, err
	}
	if err := r.attachReplies(ctx, ids, byID); err != nil {
		return nil, err
	}

	return reviews, nil
}

func (r *repository) attachLikes(ctx context.Context, ids []string, byID map[string]*Review) error {
	rows, err := r.db.QueryContext(ctx, `
		SELECT review_id, user_id
		FROM review_likes
		WHERE review_id = ANY($1)
		ORDER BY user_id`,
		pq.Array(ids),
	)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var reviewID string
		var userID int
		if err := rows.Scan(&reviewID, &userID); err != nil {
			return err
		}
		if rv, ok := byID[reviewID]; ok {
			rv.Likes = append(rv.Likes, userID)
		}
	}
	return rows.Err()
}

func (r *repository) attachReplies(ctx context.Context, ids []string, byID map[string]*Review) error {
	rows, err := r.db.QueryContext(ctx, `
		SELECT rr.id, rr.review_id, rr.user_id, u.name, rr.comment, rr.created_at
		FROM review_replies rr
		JOIN users u ON u.id = rr.user_id
		WHERE rr.review_id = ANY($1)
		ORDER BY rr.id`,
		pq.Array(ids),
	)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var rp Reply
		if err := rows.Scan(&rp.ID, &rp.ReviewID, &rp.UserID, &rp.UserName, &rp.Comment, &rp.CreatedAt); err != nil {
			return err
		}
		if rv, ok := byID[rp.ReviewID]; ok {
			rv.Replies = append(rv.Replies, rp)
		}
	}
	return rows.Err()
}

func (r *repository) Create(ctx context.Context, productID string, userID int, input NewReviewInput) (Review, error) {
	log := logger.FromCtx(ctx)

	rv := Review{
		ID:                   uuid.NewString(),
		ProductID:            productID,
		UserID:               userID,
		Rating:               input.Rating,
		SustainabilityRating: input.SustainabilityRating,
		Comment:              input.Comment,
		Likes:                []int{},
		Replies:              []Reply{},
	}

	err := r.db.QueryRowContext(ctx, `
		INSERT INTO reviews (id, product_id, user_id, rating, sustainability_rating, comment)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, (SELECT name FROM users WHERE id = $3)`,
		rv.ID, productID, userID, input.Rating, input.SustainabilityRating, input.Comment,
	).Scan(&rv.CreatedAt, &rv.UserName)

	if err != nil {
		log.Error("db: failed to insert review",
			zap.String("product_id", productID),
			zap.Int("user_id", userID),
			zap.Error(err),
		)
		return Review{}, err
	}

	return rv, nil
}

func (r *repository) ToggleLike(ctx context.Context, reviewID string, userID int) ([]int, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var exists bool
	if err := tx.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM reviews WHERE id = $1)",
		reviewID,
	).Scan(&exists); err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrReviewNotFound
	}

	res, err := tx.ExecContext(ctx,
		"DELETE FROM review_likes WHERE review_id = $1 AND user_id = $2",
		reviewID, userID,
	)
	if err != nil {
		return nil, err
	}

	removed, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}

	if removed == 0 {
		// Not liked yet: insert. ON CONFLICT keeps the composite PK
		// invariant under racing toggles.
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO review_likes (review_id, user_id)
			VALUES ($1, $2)
			ON CONFLICT DO NOTHING`,
			reviewID, userID,
		); err != nil {
			return nil, err
		}
	}

	likes, err := likeSet(ctx, tx, reviewID)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return likes, nil
}

func likeSet(ctx context.Context, tx *sql.Tx, reviewID string) ([]int, error) {
	rows, err := tx.QueryContext(ctx,
		"SELECT user_id FROM review_likes WHERE review_id = $1 ORDER BY user_id",
		reviewID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	likes := []int{}
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		likes = append(likes, id)
	}
	return likes, rows.Err()
}

func (r *repository) AppendReply(ctx context.Context, reviewID string, userID int, comment string) ([]Reply, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var exists bool
	if err := tx.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM reviews WHERE id = $1)",
		reviewID,
	).Scan(&exists); err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrReviewNotFound
	}

	if _, err := tx.ExecContext(ctx,
		"INSERT INTO review_replies (review_id, user_id, comment) VALUES ($1, $2, $3)",
		reviewID, userID, comment,
	); err != nil {
		return nil, err
	}

	rows, err := tx.QueryContext(ctx, `
		SELECT rr.id, rr.review_id, rr.user_id, u.name, rr.comment, rr.created_at
		FROM review_replies rr
		JOIN users u ON u.id = rr.user_id
		WHERE rr.review_id = $1
		ORDER BY rr.id`,
		reviewID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	replies := []Reply{}
	for rows.Next() {
		var rp Reply
		if err := rows.Scan(&rp.ID, &rp.ReviewID, &rp.UserID, &rp.UserName, &rp.Comment, &rp.CreatedAt); err != nil {
			return nil, err
		}
		replies = append(replies, rp)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return replies, nil
}
