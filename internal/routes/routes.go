package routes

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Ashfatul/drawcademi-server/internal/config"
	"github.com/Ashfatul/drawcademi-server/internal/handlers"
	"github.com/Ashfatul/drawcademi-server/internal/repository"
	"github.com/Ashfatul/drawcademi-server/internal/services"
)

func RegisterRoutes(app *fiber.App, cfg *config.Config, db *mongo.Database) {
	userRepo := repository.NewUserRepository(db)
	classRepo := repository.NewClassRepository(db)
	studentItemRepo := repository.NewStudentItemRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	reviewRepo := repository.NewReviewRepository(db)

	intentService := services.NewPaymentIntentService(cfg.StripeSecretKey)

	userHandler := handlers.NewUserHandler(userRepo)
	classHandler := handlers.NewClassHandler(classRepo)
	studentItemHandler := handlers.NewStudentItemHandler(studentItemRepo)
	paymentHandler := handlers.NewPaymentHandler(intentService, paymentRepo, studentItemRepo)
	reviewHandler := handlers.NewReviewHandler(reviewRepo)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Server is running")
	})

	app.Post("/payment-intent", paymentHandler.CreatePaymentIntent)
	app.Post("/payment", paymentHandler.RecordPayment)
	app.Get("/payment-history/:id", paymentHandler.PaymentHistory)
	app.Get("/payment-of/:id", paymentHandler.PaymentOf)

	app.Get("/users", userHandler.ListUsers)
	app.Get("/instructors", userHandler.ListInstructors)
	app.Get("/user-role/:id", userHandler.GetUserRole)
	app.Get("/user/:id", userHandler.GetUser)
	app.Post("/add-user", userHandler.CreateUser)
	app.Put("/update-user-role/:id", userHandler.UpdateUserRole)
	app.Patch("/update-profile/:id", userHandler.UpdateProfile)

	app.Get("/popular-classes", classHandler.ListPopular)
	app.Get("/classes", classHandler.ListApproved)
	app.Get("/all-classes", classHandler.ListAll)
	app.Get("/class/:id", classHandler.GetClass)
	app.Get("/my-classes/:id", classHandler.ListByInstructor)
	app.Get("/classes-of/:id", classHandler.ListApprovedByInstructor)
	app.Post("/add-class", classHandler.CreateClass)
	app.Put("/approve-class/:id", classHandler.ApproveClass)
	app.Put("/deny-class/:id", classHandler.DenyClass)
	app.Put("/feedback/:id", classHandler.AttachFeedback)
	app.Patch("/update-class/:id", classHandler.UpdateClass)
	app.Patch("/updateSeats/:id", classHandler.UpdateSeats)

	app.Get("/student-classes/:id", studentItemHandler.ListForStudent)
	app.Get("/student-classes/selected/:id", studentItemHandler.ListSelected)
	app.Get("/student-classes/enrolled/:id", studentItemHandler.ListEnrolled)
	app.Post("/student-items/select/:id", studentItemHandler.SelectClass)
	app.Patch("/student-classes/enrolled/:id", studentItemHandler.FinalizeEnrollment)
	app.Delete("/student-classes/delete/:id", studentItemHandler.DeleteItem)

	app.Get("/reviews", reviewHandler.ListReviews)
}
