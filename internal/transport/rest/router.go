package rest

import (
	"net/http"

	"ecowear-be/internal/impact"
	"ecowear-be/internal/logger"
	"ecowear-be/internal/metrics"
	"ecowear-be/internal/middleware"
	"ecowear-be/internal/order"
	"ecowear-be/internal/product"
	"ecowear-be/internal/review"
	"ecowear-be/internal/user"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Services bundles everything the router needs to mount the API.
type Services struct {
	User    user.Service
	Product product.Service
	Review  review.Service
	Order   order.Service
	Impact  impact.Service
}

func NewRouter(svcs Services) http.Handler {
	r := chi.NewRouter()

	r.Use(logger.RequestIDMiddleware)
	r.Use(logger.LoggingMiddleware)
	r.Use(metrics.HTTP)
	r.Use(middleware.RateLimit)

	r.Handle("/metrics", promhttp.Handler())

	authH := NewAuthHandler(svcs.User)
	productH := NewProductHandler(svcs.Product)
	reviewH := NewReviewHandler(svcs.Review)
	orderH := NewOrderHandler(svcs.Order)
	impactH := NewImpactHandler(svcs.Impact)

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authH.Register)
			r.Post("/login", authH.Login)

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAuth)
				r.Get("/sellers", authH.Sellers)
				r.Put("/verify/{id}", authH.Verify)
			})
		})

		r.Route("/products", func(r chi.Router) {
			r.Get("/", productH.List)

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAuth)
				r.Get("/myproducts", productH.ListMine)
				r.Post("/", productH.Create)
			})

			r.Get("/{id}", productH.Get)
		})

		// The first path segment under /reviews is a product id for
		// listing and creation, and a review id for like and reply.
		r.Route("/reviews", func(r chi.Router) {
			r.Get("/{id}", reviewH.List)

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAuth)
				r.Post("/{id}", reviewH.Create)
				r.Put("/{id}/like", reviewH.ToggleLike)
				r.Post("/{id}/reply", reviewH.Reply)
			})
		})

		r.Route("/orders", func(r chi.Router) {
			r.Use(middleware.RequireAuth)
			r.Post("/", orderH.Create)
			r.Get("/myorders", orderH.ListMine)
		})

		r.Get("/impact/platform", impactH.Platform)
	})

	return r
}
