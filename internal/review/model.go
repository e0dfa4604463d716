package review

import "time"

// Reply is a seller/admin-authored addendum to a review. Replies are
// append-only; display order always matches submission order.
type Reply struct {
	ID        int64     `json:"id"`
	ReviewID  string    `json:"review_id"`
	UserID    int       `json:"user_id"`
	UserName  string    `json:"user_name"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

type Review struct {
	ID                   string `json:"id"`
	ProductID            string `json:"product_id"`
	UserID               int    `json:"user_id"`
	UserName             string `json:"user_name"`
	Rating               int    `json:"rating"`
	SustainabilityRating int    `json:"sustainability_rating"`
	Comment              string `json:"comment"`
	// Likes holds the ids of users who currently like the review.
	// Membership is the source of truth; a user id appears at most once.
	Likes     []int     `json:"likes"`
	Replies   []Reply   `json:"replies"`
	CreatedAt time.Time `json:"created_at"`
}

type NewReviewInput struct {
	Rating               int
	SustainabilityRating int
	Comment              string
}
