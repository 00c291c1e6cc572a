package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/Ashfatul/drawcademi-server/internal/models"
	"github.com/Ashfatul/drawcademi-server/internal/repository"
)

type ReviewHandler struct {
	store reviewStore
}

type reviewStore interface {
	List(ctx context.Context) ([]models.Review, error)
}

func NewReviewHandler(store *repository.ReviewRepository) *ReviewHandler {
	return &ReviewHandler{store: store}
}

func (h *ReviewHandler) ListReviews(c *fiber.Ctx) error {
	reviews, err := h.store.List(c.Context())
	if err != nil {
		return mapStoreError(c, err)
	}
	return c.JSON(reviews)
}
