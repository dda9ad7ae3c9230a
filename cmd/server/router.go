package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/rasupy/todo-myapp/internal/api"
	"github.com/rasupy/todo-myapp/internal/api/middleware"
	"github.com/rasupy/todo-myapp/internal/api/shared"
)

// setupRouter builds the chi router with the full middleware chain and all
// API routes mounted under /api.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.TraceMiddleware)
	r.Use(middleware.RateLimit(20, 40))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithJSON(w, r, http.StatusOK, api.OKResponse{OK: true})
	})

	authHandler := api.NewAuthHandler(app.userStore, app.passwordHasher, app.passwordVerify, app.logger)
	categoryHandler := api.NewCategoryHandler(app.categoryService, app.logger)
	taskHandler := api.NewTaskHandler(app.taskService, app.logger)

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
			r.Get("/me", authHandler.Me)
			r.Post("/logout", authHandler.Logout)
		})

		r.Get("/categories", categoryHandler.List)
		r.Patch("/categories/reorder", categoryHandler.Reorder)
		r.Post("/category", categoryHandler.Create)
		r.Put("/category/{id}", categoryHandler.Rename)
		r.Patch("/category/{id}", categoryHandler.Rename)
		r.Delete("/category/{id}", categoryHandler.Delete)

		r.Get("/tasks", taskHandler.List)
		r.Patch("/tasks/reorder", taskHandler.Reorder)
		r.Post("/task", taskHandler.Create)
		r.Put("/task/{id}", taskHandler.Edit)
		r.Patch("/task/{id}", taskHandler.Edit)
		r.Delete("/task/{id}", taskHandler.Delete)
	})

	return r
}
