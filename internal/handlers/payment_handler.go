package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Ashfatul/drawcademi-server/internal/models"
	"github.com/Ashfatul/drawcademi-server/internal/repository"
	"github.com/Ashfatul/drawcademi-server/internal/services"
)

type PaymentHandler struct {
	intents paymentIntentCreator
	store   paymentStore
	items   enrollmentReader
}

type paymentIntentCreator interface {
	CreateIntent(ctx context.Context, amountCents int64) (string, error)
}

type paymentStore interface {
	Record(ctx context.Context, record *models.PaymentRecord) (*mongo.InsertOneResult, error)
	HistoryByAuthID(ctx context.Context, authID string) ([]models.PaymentRecord, error)
}

type enrollmentReader interface {
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.StudentItem, error)
}

func NewPaymentHandler(
	intents *services.PaymentIntentService,
	store *repository.PaymentRepository,
	items *repository.StudentItemRepository,
) *PaymentHandler {
	return &PaymentHandler{
		intents: intents,
		store:   store,
		items:   items,
	}
}

type paymentIntentRequest struct {
	Amount float64 `json:"amount"`
}

type recordPaymentRequest struct {
	PaymentHistory models.PaymentRecord `json:"paymentHistory"`
}

// CreatePaymentIntent converts the whole-dollar amount to cents and asks the
// payment provider for a card intent.
func (h *PaymentHandler) CreatePaymentIntent(c *fiber.Ctx) error {
	var req paymentIntentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	clientSecret, err := h.intents.CreateIntent(c.Context(), int64(req.Amount)*100)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "Payment provider failed"})
	}

	return c.JSON(fiber.Map{"clientSecret": clientSecret})
}

func (h *PaymentHandler) RecordPayment(c *fiber.Ctx) error {
	var req recordPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	result, err := h.store.Record(c.Context(), &req.PaymentHistory)
	if err != nil {
		return mapStoreError(c, err)
	}
	return c.JSON(result)
}

func (h *PaymentHandler) PaymentHistory(c *fiber.Ctx) error {
	records, err := h.store.HistoryByAuthID(c.Context(), c.Params("id"))
	if err != nil {
		return mapStoreError(c, err)
	}
	return c.JSON(records)
}

// PaymentOf looks up the enrollment record behind a payment by its item id.
func (h *PaymentHandler) PaymentOf(c *fiber.Ctx) error {
	id, err := parseDocumentID(c)
	if err != nil {
		return invalidIDResponse(c)
	}

	item, err := h.items.GetByID(c.Context(), id)
	if err != nil {
		return mapStoreError(c, err)
	}
	return c.JSON(item)
}
