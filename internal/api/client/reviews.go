package client

import (
	"context"
	"fmt"

	domain "github.com/donaldgifford/carmatch/pkg/types"
)

// NewReview is the body for writing a review.
type NewReview struct {
	CarID   int64   `json:"car_id"`
	Rating  int     `json:"rating"`
	Title   string  `json:"title"`
	Comment *string `json:"comment,omitempty"`
}

// ListReviews returns a car's reviews with the average rating.
func (c *Client) ListReviews(ctx context.Context, carID int64) (*domain.ReviewSummary, error) {
	var s domain.ReviewSummary
	if err := c.get(ctx, fmt.Sprintf("/api/v1/cars/%d/reviews", carID), &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// CreateReview writes a review as the signed-in user.
func (c *Client) CreateReview(ctx context.Context, r *NewReview) (*domain.Review, error) {
	var created domain.Review
	if err := c.post(ctx, "/api/v1/reviews", r, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// DeleteReview deletes one of the signed-in user's reviews.
func (c *Client) DeleteReview(ctx context.Context, id int64) error {
	return c.del(ctx, fmt.Sprintf("/api/v1/reviews/%d", id), nil)
}
