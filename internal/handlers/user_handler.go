package handlers

import (
	"context"
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Ashfatul/drawcademi-server/internal/models"
	"github.com/Ashfatul/drawcademi-server/internal/repository"
)

type UserHandler struct {
	store userStore
}

type userStore interface {
	List(ctx context.Context) ([]models.User, error)
	ListInstructors(ctx context.Context, limit int64) ([]models.User, error)
	GetByAuthID(ctx context.Context, authID string) (*models.User, error)
	Create(ctx context.Context, user *models.User) (*mongo.InsertOneResult, error)
	UpdateRole(ctx context.Context, id primitive.ObjectID, role string) (*mongo.UpdateResult, error)
	UpdateProfile(ctx context.Context, id primitive.ObjectID, input repository.UpdateProfileInput) (*mongo.UpdateResult, error)
}

func NewUserHandler(store *repository.UserRepository) *UserHandler {
	return &UserHandler{store: store}
}

type updateUserRoleRequest struct {
	Role string `json:"role"`
}

type updateProfileRequest struct {
	Name    *string `json:"name"`
	Email   *string `json:"email"`
	Photo   *string `json:"photo"`
	Gender  *string `json:"gender"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
	Role    *string `json:"role"`
}

func (h *UserHandler) ListUsers(c *fiber.Ctx) error {
	users, err := h.store.List(c.Context())
	if err != nil {
		return mapStoreError(c, err)
	}
	return c.JSON(users)
}

func (h *UserHandler) ListInstructors(c *fiber.Ctx) error {
	// A missing or malformed limit falls back to 0, which the store treats
	// as "no limit".
	limit, _ := strconv.ParseInt(c.Query("limit"), 10, 64)

	instructors, err := h.store.ListInstructors(c.Context(), limit)
	if err != nil {
		return mapStoreError(c, err)
	}
	return c.JSON(instructors)
}

func (h *UserHandler) GetUserRole(c *fiber.Ctx) error {
	user, err := h.store.GetByAuthID(c.Context(), c.Params("id"))
	if errors.Is(err, repository.ErrNotFound) {
		return c.JSON(fiber.Map{"role": ""})
	}
	if err != nil {
		return mapStoreError(c, err)
	}
	return c.JSON(fiber.Map{"role": user.Role})
}

func (h *UserHandler) GetUser(c *fiber.Ctx) error {
	user, err := h.store.GetByAuthID(c.Context(), c.Params("id"))
	if err != nil {
		return mapStoreError(c, err)
	}
	return c.JSON(user)
}

func (h *UserHandler) CreateUser(c *fiber.Ctx) error {
	var user models.User
	if err := c.BodyParser(&user); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	result, err := h.store.Create(c.Context(), &user)
	if err != nil {
		return mapStoreError(c, err)
	}
	return c.JSON(result)
}

func (h *UserHandler) UpdateUserRole(c *fiber.Ctx) error {
	id, err := parseDocumentID(c)
	if err != nil {
		return invalidIDResponse(c)
	}

	var req updateUserRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	result, err := h.store.UpdateRole(c.Context(), id, req.Role)
	if err != nil {
		return mapStoreError(c, err)
	}
	return c.JSON(result)
}

func (h *UserHandler) UpdateProfile(c *fiber.Ctx) error {
	id, err := parseDocumentID(c)
	if err != nil {
		return invalidIDResponse(c)
	}

	var req updateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	result, err := h.store.UpdateProfile(c.Context(), id, repository.UpdateProfileInput{
		Name:    req.Name,
		Email:   req.Email,
		Photo:   req.Photo,
		Gender:  req.Gender,
		Phone:   req.Phone,
		Address: req.Address,
		Role:    req.Role,
	})
	if err != nil {
		return mapStoreError(c, err)
	}
	return c.JSON(result)
}
