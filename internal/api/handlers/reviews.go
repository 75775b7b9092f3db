package handlers

import (
	"context"
	"errors"
	"math"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/carmatch/internal/metrics"
	"github.com/donaldgifford/carmatch/internal/store"
	domain "github.com/donaldgifford/carmatch/pkg/types"
)

const maxReviewTitleLength = 200

// ReviewsHandler handles car review endpoints.
type ReviewsHandler struct {
	store store.Store
}

// NewReviewsHandler creates a new ReviewsHandler.
func NewReviewsHandler(s store.Store) *ReviewsHandler {
	return &ReviewsHandler{store: s}
}

// --- Input/Output types ---

// ListReviewsOutput is the response for a car's reviews.
type ListReviewsOutput struct {
	Body domain.ReviewSummary
}

// CreateReviewInput is the input for writing a review.
type CreateReviewInput struct {
	BearerAuth
	Body struct {
		CarID   int64   `json:"car_id"            doc:"Reviewed car"           minimum:"1" example:"42"`
		Rating  int     `json:"rating"            doc:"Rating from 1 to 5"                 example:"4"`
		Title   string  `json:"title"             doc:"Short headline"                     example:"Great daily driver"`
		Comment *string `json:"comment,omitempty" doc:"Optional longer comment"`
	}
}

// CreateReviewOutput is the response for writing a review.
type CreateReviewOutput struct {
	Body domain.Review
}

// DeleteReviewInput identifies a review to delete.
type DeleteReviewInput struct {
	BearerAuth
	ID int64 `path:"id" doc:"Review ID" minimum:"1"`
}

// --- Handlers ---

// ListReviews returns a car's reviews, newest first, with the average rating.
func (h *ReviewsHandler) ListReviews(
	ctx context.Context,
	input *CarIDInput,
) (*ListReviewsOutput, error) {
	reviews, err := h.store.ListReviewsByCar(ctx, input.ID)
	if err != nil {
		return nil, huma.Error500InternalServerError("listing reviews failed: " + err.Error())
	}

	return &ListReviewsOutput{Body: Summarize(input.ID, reviews)}, nil
}

// CreateReview records the signed-in user's review of a car.
func (h *ReviewsHandler) CreateReview(
	ctx context.Context,
	input *CreateReviewInput,
) (*CreateReviewOutput, error) {
	userID, err := input.UserID()
	if err != nil {
		return nil, err
	}

	if input.Body.Rating < domain.MinRating || input.Body.Rating > domain.MaxRating {
		return nil, huma.Error400BadRequest("rating must be between 1 and 5")
	}

	title := strings.TrimSpace(input.Body.Title)
	if title == "" {
		return nil, huma.Error400BadRequest("title is required")
	}
	if len([]rune(title)) > maxReviewTitleLength {
		return nil, huma.Error400BadRequest("title must be at most 200 characters")
	}

	r := &domain.Review{
		UserID:  userID,
		CarID:   input.Body.CarID,
		Rating:  input.Body.Rating,
		Title:   title,
		Comment: input.Body.Comment,
	}
	if r.Comment != nil && strings.TrimSpace(*r.Comment) == "" {
		r.Comment = nil
	}

	if err := h.store.CreateReview(ctx, r); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, huma.Error404NotFound("car not found")
		}
		return nil, huma.Error500InternalServerError("creating review failed: " + err.Error())
	}

	metrics.ReviewsCreatedTotal.Inc()

	return &CreateReviewOutput{Body: *r}, nil
}

// DeleteReview removes a review written by the signed-in user.
func (h *ReviewsHandler) DeleteReview(
	ctx context.Context,
	input *DeleteReviewInput,
) (*struct{}, error) {
	userID, err := input.UserID()
	if err != nil {
		return nil, err
	}

	review, err := h.store.GetReview(ctx, input.ID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, huma.Error404NotFound("review not found")
	}
	if err != nil {
		return nil, huma.Error500InternalServerError("fetching review failed: " + err.Error())
	}
	if review.UserID != userID {
		return nil, huma.Error403Forbidden("review belongs to another user")
	}

	// Still scoped to the author; a concurrent delete surfaces as not found.
	err = h.store.DeleteReview(ctx, input.ID, userID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, huma.Error404NotFound("review not found")
	}
	if err != nil {
		return nil, huma.Error500InternalServerError("deleting review failed: " + err.Error())
	}

	return nil, nil
}

// Summarize builds the review summary for a car. The average is rounded to
// one decimal place and is 0 when there are no reviews.
func Summarize(carID int64, reviews []domain.Review) domain.ReviewSummary {
	if reviews == nil {
		reviews = []domain.Review{}
	}

	s := domain.ReviewSummary{CarID: carID, Count: len(reviews), Reviews: reviews}
	if len(reviews) == 0 {
		return s
	}

	sum := 0
	for i := range reviews {
		sum += reviews[i].Rating
	}
	s.AverageRating = math.Round(float64(sum)/float64(len(reviews))*10) / 10

	return s
}

// RegisterReviewRoutes registers review endpoints with the Huma API.
func RegisterReviewRoutes(api huma.API, h *ReviewsHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-car-reviews",
		Method:      http.MethodGet,
		Path:        "/api/v1/cars/{id}/reviews",
		Summary:     "List a car's reviews",
		Description: "Returns the car's reviews, newest first, with the review count and average rating.",
		Tags:        []string{"reviews"},
	}, h.ListReviews)

	huma.Register(api, huma.Operation{
		OperationID:   "create-review",
		Method:        http.MethodPost,
		Path:          "/api/v1/reviews",
		Summary:       "Review a car",
		Tags:          []string{"reviews"},
		Security:      bearerSecurity,
		DefaultStatus: http.StatusCreated,
		Errors:        []int{http.StatusBadRequest, http.StatusUnauthorized, http.StatusNotFound},
	}, h.CreateReview)

	huma.Register(api, huma.Operation{
		OperationID:   "delete-review",
		Method:        http.MethodDelete,
		Path:          "/api/v1/reviews/{id}",
		Summary:       "Delete a review",
		Description:   "Deletes a review. Only its author may delete it.",
		Tags:          []string{"reviews"},
		Security:      bearerSecurity,
		DefaultStatus: http.StatusNoContent,
		Errors:        []int{http.StatusUnauthorized, http.StatusForbidden, http.StatusNotFound},
	}, h.DeleteReview)
}
