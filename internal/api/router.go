package api

import (
	"net/http"

	"github.com/devprince/ecommerce-api/internal/api/handlers"
	"github.com/devprince/ecommerce-api/internal/api/middleware"
	"github.com/devprince/ecommerce-api/internal/config"
	"github.com/devprince/ecommerce-api/internal/repository"
	"github.com/devprince/ecommerce-api/internal/service"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

func NewRouter(services *service.Services, repos *repository.Repositories, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(middleware.CORS)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Initialize handlers
	userHandler := handlers.NewUserHandler(services.Auth)
	categoryHandler := handlers.NewCategoryHandler(repos.Category)
	subcategoryHandler := handlers.NewSubcategoryHandler(repos.Subcategory, repos.Category)
	productHandler := handlers.NewProductHandler(repos.Product, repos.Category)
	mediaHandler := handlers.NewMediaHandler(cfg.UploadDir, cfg.UploadMaxBytes)

	r.Route("/api", func(r chi.Router) {
		r.Route("/user", func(r chi.Router) {
			r.Post("/register", userHandler.Register)
			r.Get("/verify-user", userHandler.VerifyUser)
			r.Post("/login", userHandler.Login)
			r.Post("/refresh-token", userHandler.Refresh)

			// Protected user routes
			r.Group(func(r chi.Router) {
				r.Use(middleware.Auth(services.Auth))
				r.Post("/logout", userHandler.Logout)
				r.Get("/get-all-users", userHandler.GetAllUsers)
			})
		})

		r.Route("/category", func(r chi.Router) {
			r.Post("/add", categoryHandler.Add)
			r.Get("/get", categoryHandler.GetAll)
			r.Get("/get/{id}", categoryHandler.Get)
			r.Put("/update/{id}", categoryHandler.Update)
			r.Delete("/remove", categoryHandler.Remove)
		})

		r.Route("/subCategory", func(r chi.Router) {
			r.Post("/add", subcategoryHandler.Add)
			r.Get("/get", subcategoryHandler.GetAll)
			r.Get("/get/{id}", subcategoryHandler.Get)
			r.Put("/update/{id}", subcategoryHandler.Update)
			r.Delete("/remove", subcategoryHandler.Remove)
		})

		// Product routes require a session
		r.Route("/product", func(r chi.Router) {
			r.Use(middleware.Auth(services.Auth))
			r.Post("/add", productHandler.Add)
			r.Get("/get", productHandler.GetAll)
			r.Get("/get/{id}", productHandler.Get)
			r.Put("/update/{id}", productHandler.Update)
			r.Delete("/remove", productHandler.Remove)
		})

		r.Route("/media", func(r chi.Router) {
			r.Post("/upload/single", mediaHandler.UploadSingle)
			r.Post("/upload/multiple", mediaHandler.UploadMultiple)
		})
	})

	return r
}
