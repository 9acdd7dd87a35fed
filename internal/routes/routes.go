package routes

import (
	"github.com/Tai550/training-menu-platform/internal/config"
	"github.com/Tai550/training-menu-platform/internal/handlers"
	"github.com/Tai550/training-menu-platform/internal/middleware"
	"github.com/Tai550/training-menu-platform/internal/repository"
	"github.com/Tai550/training-menu-platform/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
)

func RegisterRoutes(app *fiber.App, cfg *config.Config, db *pgxpool.Pool) {
	userRepo := repository.NewUserRepository(db)
	userProfileRepo := repository.NewUserProfileRepository(db)
	trainerProfileRepo := repository.NewTrainerProfileRepository(db)
	consultationRepo := repository.NewConsultationRepository(db)
	proposalRepo := repository.NewProposalRepository(db)

	var storageService services.StorageService
	if cfg.SupabaseURL != "" && cfg.SupabaseBucket != "" && cfg.SupabaseServiceKey != "" {
		storageService = services.NewSupabaseStorageService(cfg.SupabaseURL, cfg.SupabaseBucket, cfg.SupabaseServiceKey)
	}

	consultationService := services.NewConsultationService(db, consultationRepo, proposalRepo)
	proposalService := services.NewProposalService(proposalRepo, consultationRepo, userRepo)
	profileService := services.NewProfileService(trainerProfileRepo, userProfileRepo, userRepo)
	adminService := services.NewAdminService(userRepo)

	authHandler := handlers.NewAuthHandler(userRepo, userProfileRepo, trainerProfileRepo, cfg.JWTSecret, cfg.OwnerEmail)
	consultationHandler := handlers.NewConsultationHandler(consultationService)
	proposalHandler := handlers.NewProposalHandler(proposalService)
	trainerHandler := handlers.NewTrainerHandler(profileService)
	profileHandler := handlers.NewProfileHandler(profileService)
	adminHandler := handlers.NewAdminHandler(adminService)
	storageHandler := handlers.NewStorageHandler(storageService)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Get("/me", middleware.AuthRequired(cfg.JWTSecret), authHandler.Me)

	// Public reads: the board is browsable without an account.
	api.Get("/consultations", consultationHandler.List)
	api.Get("/consultations/:id", consultationHandler.Get)
	api.Get("/consultations/:id/proposals", proposalHandler.ListByConsultation)
	api.Get("/proposals/:id", proposalHandler.Get)
	api.Get("/trainers/:userId/profile", trainerHandler.GetProfile)

	protected := api.Group("/v1", middleware.AuthRequired(cfg.JWTSecret))

	consultations := protected.Group("/consultations")
	consultations.Post("", consultationHandler.Create)
	consultations.Post("/:id/best-answer", consultationHandler.SelectBestAnswer)

	proposals := protected.Group("/proposals")
	proposals.Post("", proposalHandler.Create)
	proposals.Put("/:id", proposalHandler.Update)

	trainers := protected.Group("/trainers")
	trainers.Put("/profile", trainerHandler.UpdateProfile)

	users := protected.Group("/users")
	users.Get("/profile", profileHandler.GetOwnProfile)
	users.Put("/profile", profileHandler.UpdateOwnProfile)
	users.Put("/type", trainerHandler.UpdateUserType)

	storage := protected.Group("/storage")
	storage.Post("/upload", storageHandler.Upload)

	admin := protected.Group("/admin", middleware.AdminRequired())
	admin.Get("/users", adminHandler.ListUsers)
	admin.Get("/trainers/pending", adminHandler.ListPendingTrainers)
	admin.Post("/trainers/:userId/approve", adminHandler.ApproveTrainer)
	admin.Post("/trainers/:userId/revoke", adminHandler.RevokeTrainer)
	admin.Put("/users/:userId/type", adminHandler.ChangeUserType)
}
