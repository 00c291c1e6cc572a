package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Ashfatul/drawcademi-server/internal/models"
	"github.com/Ashfatul/drawcademi-server/internal/repository"
)

type stubClassStore struct {
	popularResult []models.Class
	listResult    []models.Class
	listErr       error
	getResult     *models.Class
	getErr        error
	createResult  *mongo.InsertOneResult
	createErr     error
	updateResult  *mongo.UpdateResult
	updateErr     error
	consumeResult *mongo.UpdateResult
	consumeErr    error
	lastID        primitive.ObjectID
	lastAuthID    string
	lastStatus    string
	lastFeedback  string
	lastCreated   *models.Class
	lastInput     repository.UpdateClassInput
}

func (s *stubClassStore) ListPopular(_ context.Context) ([]models.Class, error) {
	return s.popularResult, s.listErr
}

func (s *stubClassStore) ListApproved(_ context.Context) ([]models.Class, error) {
	return s.listResult, s.listErr
}

func (s *stubClassStore) ListAll(_ context.Context) ([]models.Class, error) {
	return s.listResult, s.listErr
}

func (s *stubClassStore) ListByInstructor(_ context.Context, authID string) ([]models.Class, error) {
	s.lastAuthID = authID
	return s.listResult, s.listErr
}

func (s *stubClassStore) ListApprovedByInstructor(_ context.Context, authID string) ([]models.Class, error) {
	s.lastAuthID = authID
	return s.listResult, s.listErr
}

func (s *stubClassStore) GetByID(_ context.Context, id primitive.ObjectID) (*models.Class, error) {
	s.lastID = id
	return s.getResult, s.getErr
}

func (s *stubClassStore) Create(_ context.Context, class *models.Class) (*mongo.InsertOneResult, error) {
	s.lastCreated = class
	return s.createResult, s.createErr
}

func (s *stubClassStore) SetStatus(_ context.Context, id primitive.ObjectID, status string) (*mongo.UpdateResult, error) {
	s.lastID = id
	s.lastStatus = status
	return s.updateResult, s.updateErr
}

func (s *stubClassStore) SetFeedback(_ context.Context, id primitive.ObjectID, feedback string) (*mongo.UpdateResult, error) {
	s.lastID = id
	s.lastFeedback = feedback
	return s.updateResult, s.updateErr
}

func (s *stubClassStore) Update(_ context.Context, id primitive.ObjectID, input repository.UpdateClassInput) (*mongo.UpdateResult, error) {
	s.lastID = id
	s.lastInput = input
	return s.updateResult, s.updateErr
}

func (s *stubClassStore) ConsumeSeat(_ context.Context, id primitive.ObjectID) (*mongo.UpdateResult, error) {
	s.lastID = id
	return s.consumeResult, s.consumeErr
}

func newClassTestApp(store *stubClassStore) *fiber.App {
	handler := &ClassHandler{store: store}

	app := fiber.New()
	app.Get("/popular-classes", handler.ListPopular)
	app.Get("/classes", handler.ListApproved)
	app.Get("/all-classes", handler.ListAll)
	app.Get("/class/:id", handler.GetClass)
	app.Get("/my-classes/:id", handler.ListByInstructor)
	app.Get("/classes-of/:id", handler.ListApprovedByInstructor)
	app.Post("/add-class", handler.CreateClass)
	app.Put("/approve-class/:id", handler.ApproveClass)
	app.Put("/deny-class/:id", handler.DenyClass)
	app.Put("/feedback/:id", handler.AttachFeedback)
	app.Patch("/update-class/:id", handler.UpdateClass)
	app.Patch("/updateSeats/:id", handler.UpdateSeats)
	return app
}

func TestListPopularReturnsStoreResult(t *testing.T) {
	store := &stubClassStore{popularResult: []models.Class{
		{Name: "Watercolor", Status: "approved", EnrolledStudent: 40},
		{Name: "Sketching", Status: "approved", EnrolledStudent: 25},
	}}
	app := newClassTestApp(store)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/popular-classes", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	var classes []models.Class
	if err := json.NewDecoder(resp.Body).Decode(&classes); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if len(classes) != 2 {
		t.Fatalf("expected 2 classes, got %d", len(classes))
	}
	if classes[0].Name != "Watercolor" {
		t.Fatalf("expected Watercolor first, got %s", classes[0].Name)
	}
}

func TestListByInstructorUsesPathAuthID(t *testing.T) {
	store := &stubClassStore{}
	app := newClassTestApp(store)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/my-classes/uid9", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if store.lastAuthID != "uid9" {
		t.Fatalf("expected authID uid9, got %q", store.lastAuthID)
	}
}

func TestGetClassRejectsMalformedID(t *testing.T) {
	store := &stubClassStore{}
	app := newClassTestApp(store)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/class/not-an-id", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestGetClassNotFoundReturns404(t *testing.T) {
	store := &stubClassStore{getErr: repository.ErrNotFound}
	app := newClassTestApp(store)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/class/"+primitive.NewObjectID().Hex(), nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}

func TestApproveClassSetsApprovedStatus(t *testing.T) {
	id := primitive.NewObjectID()
	store := &stubClassStore{updateResult: &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}}
	app := newClassTestApp(store)

	resp, err := app.Test(httptest.NewRequest(http.MethodPut, "/approve-class/"+id.Hex(), nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if store.lastStatus != "approved" {
		t.Fatalf("expected status approved, got %q", store.lastStatus)
	}
	if store.lastID != id {
		t.Fatalf("expected id %s, got %s", id.Hex(), store.lastID.Hex())
	}
}

func TestApproveClassMissingIDReportsZeroMatched(t *testing.T) {
	store := &stubClassStore{updateResult: &mongo.UpdateResult{MatchedCount: 0, ModifiedCount: 0}}
	app := newClassTestApp(store)

	resp, err := app.Test(httptest.NewRequest(http.MethodPut, "/approve-class/"+primitive.NewObjectID().Hex(), nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	var body struct {
		MatchedCount  int64
		ModifiedCount int64
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.MatchedCount != 0 || body.ModifiedCount != 0 {
		t.Fatalf("expected zero matched and modified, got %+v", body)
	}
}

func TestDenyClassSetsDeniedStatus(t *testing.T) {
	store := &stubClassStore{updateResult: &mongo.UpdateResult{MatchedCount: 1}}
	app := newClassTestApp(store)

	resp, err := app.Test(httptest.NewRequest(http.MethodPut, "/deny-class/"+primitive.NewObjectID().Hex(), nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if store.lastStatus != "denied" {
		t.Fatalf("expected status denied, got %q", store.lastStatus)
	}
}

func TestAttachFeedbackForwardsFeedback(t *testing.T) {
	store := &stubClassStore{updateResult: &mongo.UpdateResult{MatchedCount: 1}}
	app := newClassTestApp(store)

	req := httptest.NewRequest(http.MethodPut, "/feedback/"+primitive.NewObjectID().Hex(),
		strings.NewReader(`{"feedback":"Needs a clearer syllabus"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if store.lastFeedback != "Needs a clearer syllabus" {
		t.Fatalf("expected feedback to be forwarded, got %q", store.lastFeedback)
	}
}

func TestUpdateClassMissingClassReturns404(t *testing.T) {
	store := &stubClassStore{updateErr: repository.ErrNotFound}
	app := newClassTestApp(store)

	req := httptest.NewRequest(http.MethodPatch, "/update-class/"+primitive.NewObjectID().Hex(),
		strings.NewReader(`{"name":"Oil Painting"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}

func TestUpdateClassForwardsProvidedFields(t *testing.T) {
	store := &stubClassStore{updateResult: &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}}
	app := newClassTestApp(store)

	req := httptest.NewRequest(http.MethodPatch, "/update-class/"+primitive.NewObjectID().Hex(),
		strings.NewReader(`{"name":"Oil Painting","price":79.5,"availableSeats":12}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	input := store.lastInput
	if input.Name == nil || *input.Name != "Oil Painting" {
		t.Fatalf("expected name Oil Painting, got %+v", input.Name)
	}
	if input.Price == nil || *input.Price != 79.5 {
		t.Fatalf("expected price 79.5, got %+v", input.Price)
	}
	if input.AvailableSeats == nil || *input.AvailableSeats != 12 {
		t.Fatalf("expected 12 seats, got %+v", input.AvailableSeats)
	}
	if input.Image != nil || input.Description != nil || input.Email != nil {
		t.Fatalf("expected absent fields to stay nil, got %+v", input)
	}
}

func TestUpdateSeatsRejectsMalformedID(t *testing.T) {
	store := &stubClassStore{}
	app := newClassTestApp(store)

	resp, err := app.Test(httptest.NewRequest(http.MethodPatch, "/updateSeats/not-an-id", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestUpdateSeatsMissingClassReturns404(t *testing.T) {
	store := &stubClassStore{consumeErr: repository.ErrNotFound}
	app := newClassTestApp(store)

	resp, err := app.Test(httptest.NewRequest(http.MethodPatch, "/updateSeats/"+primitive.NewObjectID().Hex(), nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}

func TestUpdateSeatsSoldOutReturnsConflict(t *testing.T) {
	store := &stubClassStore{consumeErr: repository.ErrNoSeats}
	app := newClassTestApp(store)

	resp, err := app.Test(httptest.NewRequest(http.MethodPatch, "/updateSeats/"+primitive.NewObjectID().Hex(), nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("expected 409, got %d", resp.StatusCode)
	}
	var body map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["error"] != "No seats available" {
		t.Fatalf("expected no seats error, got %q", body["error"])
	}
}

func TestUpdateSeatsConsumesOneSeat(t *testing.T) {
	id := primitive.NewObjectID()
	store := &stubClassStore{consumeResult: &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}}
	app := newClassTestApp(store)

	resp, err := app.Test(httptest.NewRequest(http.MethodPatch, "/updateSeats/"+id.Hex(), nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if store.lastID != id {
		t.Fatalf("expected id %s, got %s", id.Hex(), store.lastID.Hex())
	}
}
