package http

import (
	"github.com/MKhiriev/inkloth/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.RealIP, h.withTraceID, h.withLogging, withMetrics, middleware.Recoverer, withGZip)

	router.NotFound(routeNotFound)
	router.MethodNotAllowed(routeNotFound)

	router.Handle("/metrics", promhttp.Handler())

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/version", h.getServerVersion)

		// routes without authorization
		r.Group(func(r chi.Router) {
			r.Post("/register", h.register)
			r.Post("/login", h.login)
			r.Get("/logout", h.logout)
			r.Post("/password/forgot", h.forgotPassword)
			r.Put("/password/reset/{token}", h.resetPassword)
		})

		r.Group(func(r chi.Router) {
			r.Use(h.auth)

			r.Get("/me", h.me)
			r.Put("/password/update", h.changePassword)
			r.Put("/me/update", h.updateProfile)
			r.Get("/blogs", h.listBlogs)

			r.Route("/admin", func(r chi.Router) {
				r.Use(h.authorizeRoles(models.RoleAdmin))

				r.Get("/users", h.listUsers)
				r.Get("/user/{id}", h.getUser)
				r.Put("/user/{id}", h.updateUser)
				r.Delete("/user/{id}", h.deleteUser)

				r.Post("/blog/new", h.createBlog)
				r.Put("/blog/update/{id}", h.updateBlog)
				r.Delete("/blog/delete/{id}", h.deleteBlog)
				r.Get("/blog/{id}", h.getBlog)
			})
		})
	})

	return router
}
