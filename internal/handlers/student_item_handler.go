package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Ashfatul/drawcademi-server/internal/models"
	"github.com/Ashfatul/drawcademi-server/internal/repository"
)

type StudentItemHandler struct {
	store studentItemStore
}

type studentItemStore interface {
	ListByAuthID(ctx context.Context, authID string) ([]models.StudentItem, error)
	ListByAuthIDAndStatus(ctx context.Context, authID, status string) ([]models.StudentItem, error)
	Select(ctx context.Context, authID string, classItem bson.M) (*mongo.InsertOneResult, error)
	Finalize(ctx context.Context, id primitive.ObjectID, input repository.FinalizeEnrollmentInput) (*mongo.UpdateResult, error)
	Delete(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error)
}

func NewStudentItemHandler(store *repository.StudentItemRepository) *StudentItemHandler {
	return &StudentItemHandler{store: store}
}

type selectClassRequest struct {
	Item bson.M `json:"item"`
}

type finalizeEnrollmentRequest struct {
	TransactionID string    `json:"transactionID"`
	Status        string    `json:"status"`
	CreatedOn     time.Time `json:"createdOn"`
	PaidAmount    float64   `json:"paidAmount"`
}

func (h *StudentItemHandler) ListForStudent(c *fiber.Ctx) error {
	items, err := h.store.ListByAuthID(c.Context(), c.Params("id"))
	if err != nil {
		return mapStoreError(c, err)
	}
	return c.JSON(items)
}

func (h *StudentItemHandler) ListSelected(c *fiber.Ctx) error {
	items, err := h.store.ListByAuthIDAndStatus(c.Context(), c.Params("id"), "selected")
	if err != nil {
		return mapStoreError(c, err)
	}
	return c.JSON(items)
}

func (h *StudentItemHandler) ListEnrolled(c *fiber.Ctx) error {
	items, err := h.store.ListByAuthIDAndStatus(c.Context(), c.Params("id"), "paid")
	if err != nil {
		return mapStoreError(c, err)
	}
	return c.JSON(items)
}

// SelectClass puts a class in the student's cart. The path id is the
// student's authID, not a document id.
func (h *StudentItemHandler) SelectClass(c *fiber.Ctx) error {
	var req selectClassRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	result, err := h.store.Select(c.Context(), c.Params("id"), req.Item)
	if err != nil {
		return mapStoreError(c, err)
	}
	return c.JSON(result)
}

func (h *StudentItemHandler) FinalizeEnrollment(c *fiber.Ctx) error {
	id, err := parseDocumentID(c)
	if err != nil {
		return invalidIDResponse(c)
	}

	var req finalizeEnrollmentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	result, err := h.store.Finalize(c.Context(), id, repository.FinalizeEnrollmentInput{
		TransactionID: req.TransactionID,
		Status:        req.Status,
		CreatedOn:     req.CreatedOn,
		PaidAmount:    req.PaidAmount,
	})
	if err != nil {
		return mapStoreError(c, err)
	}
	return c.JSON(result)
}

func (h *StudentItemHandler) DeleteItem(c *fiber.Ctx) error {
	id, err := parseDocumentID(c)
	if err != nil {
		return invalidIDResponse(c)
	}

	result, err := h.store.Delete(c.Context(), id)
	if err != nil {
		return mapStoreError(c, err)
	}
	return c.JSON(result)
}
