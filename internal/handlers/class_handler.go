package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Ashfatul/drawcademi-server/internal/models"
	"github.com/Ashfatul/drawcademi-server/internal/repository"
)

type ClassHandler struct {
	store classStore
}

type classStore interface {
	ListPopular(ctx context.Context) ([]models.Class, error)
	ListApproved(ctx context.Context) ([]models.Class, error)
	ListAll(ctx context.Context) ([]models.Class, error)
	ListByInstructor(ctx context.Context, authID string) ([]models.Class, error)
	ListApprovedByInstructor(ctx context.Context, authID string) ([]models.Class, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Class, error)
	Create(ctx context.Context, class *models.Class) (*mongo.InsertOneResult, error)
	SetStatus(ctx context.Context, id primitive.ObjectID, status string) (*mongo.UpdateResult, error)
	SetFeedback(ctx context.Context, id primitive.ObjectID, feedback string) (*mongo.UpdateResult, error)
	Update(ctx context.Context, id primitive.ObjectID, input repository.UpdateClassInput) (*mongo.UpdateResult, error)
	ConsumeSeat(ctx context.Context, id primitive.ObjectID) (*mongo.UpdateResult, error)
}

func NewClassHandler(store *repository.ClassRepository) *ClassHandler {
	return &ClassHandler{store: store}
}

type attachFeedbackRequest struct {
	Feedback string `json:"feedback"`
}

type updateClassRequest struct {
	Name           *string  `json:"name"`
	Image          *string  `json:"image"`
	Description    *string  `json:"description"`
	InstructorName *string  `json:"instructorName"`
	Email          *string  `json:"email"`
	Price          *float64 `json:"price"`
	AvailableSeats *int     `json:"availableSeats"`
}

func (h *ClassHandler) ListPopular(c *fiber.Ctx) error {
	classes, err := h.store.ListPopular(c.Context())
	if err != nil {
		return mapStoreError(c, err)
	}
	return c.JSON(classes)
}

func (h *ClassHandler) ListApproved(c *fiber.Ctx) error {
	classes, err := h.store.ListApproved(c.Context())
	if err != nil {
		return mapStoreError(c, err)
	}
	return c.JSON(classes)
}

func (h *ClassHandler) ListAll(c *fiber.Ctx) error {
	classes, err := h.store.ListAll(c.Context())
	if err != nil {
		return mapStoreError(c, err)
	}
	return c.JSON(classes)
}

// ListByInstructor returns every class an instructor owns, including pending
// and denied ones, so they can track approval state.
func (h *ClassHandler) ListByInstructor(c *fiber.Ctx) error {
	classes, err := h.store.ListByInstructor(c.Context(), c.Params("id"))
	if err != nil {
		return mapStoreError(c, err)
	}
	return c.JSON(classes)
}

func (h *ClassHandler) ListApprovedByInstructor(c *fiber.Ctx) error {
	classes, err := h.store.ListApprovedByInstructor(c.Context(), c.Params("id"))
	if err != nil {
		return mapStoreError(c, err)
	}
	return c.JSON(classes)
}

func (h *ClassHandler) GetClass(c *fiber.Ctx) error {
	id, err := parseDocumentID(c)
	if err != nil {
		return invalidIDResponse(c)
	}

	class, err := h.store.GetByID(c.Context(), id)
	if err != nil {
		return mapStoreError(c, err)
	}
	return c.JSON(class)
}

func (h *ClassHandler) CreateClass(c *fiber.Ctx) error {
	var class models.Class
	if err := c.BodyParser(&class); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	result, err := h.store.Create(c.Context(), &class)
	if err != nil {
		return mapStoreError(c, err)
	}
	return c.JSON(result)
}

func (h *ClassHandler) ApproveClass(c *fiber.Ctx) error {
	return h.setStatus(c, "approved")
}

func (h *ClassHandler) DenyClass(c *fiber.Ctx) error {
	return h.setStatus(c, "denied")
}

func (h *ClassHandler) setStatus(c *fiber.Ctx, status string) error {
	id, err := parseDocumentID(c)
	if err != nil {
		return invalidIDResponse(c)
	}

	result, err := h.store.SetStatus(c.Context(), id, status)
	if err != nil {
		return mapStoreError(c, err)
	}
	return c.JSON(result)
}

func (h *ClassHandler) AttachFeedback(c *fiber.Ctx) error {
	id, err := parseDocumentID(c)
	if err != nil {
		return invalidIDResponse(c)
	}

	var req attachFeedbackRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	result, err := h.store.SetFeedback(c.Context(), id, req.Feedback)
	if err != nil {
		return mapStoreError(c, err)
	}
	return c.JSON(result)
}

func (h *ClassHandler) UpdateClass(c *fiber.Ctx) error {
	id, err := parseDocumentID(c)
	if err != nil {
		return invalidIDResponse(c)
	}

	var req updateClassRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	result, err := h.store.Update(c.Context(), id, repository.UpdateClassInput{
		Name:           req.Name,
		Image:          req.Image,
		Description:    req.Description,
		InstructorName: req.InstructorName,
		Email:          req.Email,
		Price:          req.Price,
		AvailableSeats: req.AvailableSeats,
	})
	if err != nil {
		return mapStoreError(c, err)
	}
	return c.JSON(result)
}

func (h *ClassHandler) UpdateSeats(c *fiber.Ctx) error {
	id, err := parseDocumentID(c)
	if err != nil {
		return invalidIDResponse(c)
	}

	result, err := h.store.ConsumeSeat(c.Context(), id)
	if err != nil {
		return mapStoreError(c, err)
	}
	return c.JSON(result)
}
