package rest

import (
	"net/http"

	"storefront-backend/infrastructure/di"
	"storefront-backend/interfaces/http/rest/handlers"
	"storefront-backend/interfaces/http/rest/middleware"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// Router creates and configures the HTTP router
type Router struct {
	container *di.Container
}

// NewRouter creates a new router instance
func NewRouter(container *di.Container) *Router {
	return &Router{container: container}
}

// Setup configures all routes and middleware
func (rt *Router) Setup() http.Handler {
	c := rt.container

	router := chi.NewRouter()

	// Global middleware
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(c.ErrorHandler.Middleware)
	router.Use(middleware.Logger(c.Logger))

	if c.Config.EnableCORS {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
			ExposedHeaders:   []string{"X-Request-ID"},
			AllowCredentials: false,
			MaxAge:           300,
		}))
	}

	// Health check
	router.Get("/health", rt.healthCheck)

	adminOnly := middleware.AdminOnly(c.UserRepo, c.ErrorHandler)

	userHandler := handlers.NewUserHandler(c.UserService, c.ErrorHandler, c.Logger)
	productHandler := handlers.NewProductHandler(c.ProductService, c.Config.ProductsPerPage, c.ErrorHandler, c.Logger)
	orderHandler := handlers.NewOrderHandler(c.OrderService, c.ErrorHandler, c.Logger)
	couponHandler := handlers.NewCouponHandler(c.CouponService, c.ErrorHandler, c.Logger)
	statsHandler := handlers.NewStatsHandler(c.StatsService, c.ErrorHandler, c.Logger)

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/user", func(r chi.Router) {
			r.Post("/new", userHandler.CreateUser)
			r.With(adminOnly).Get("/all", userHandler.ListUsers)
			r.Get("/{userID}", userHandler.GetUser)
			r.With(adminOnly).Delete("/{userID}", userHandler.DeleteUser)
		})

		r.Route("/product", func(r chi.Router) {
			r.Get("/latest", productHandler.LatestProducts)
			r.Get("/categories", productHandler.Categories)
			r.Get("/all", productHandler.SearchProducts)
			r.With(adminOnly).Get("/admin-products", productHandler.AdminProducts)
			r.With(adminOnly).Post("/new", productHandler.CreateProduct)
			r.Get("/{productID}", productHandler.GetProduct)
			r.With(adminOnly).Put("/{productID}", productHandler.UpdateProduct)
			r.With(adminOnly).Delete("/{productID}", productHandler.DeleteProduct)
		})

		r.Route("/order", func(r chi.Router) {
			r.Post("/new", orderHandler.CreateOrder)
			r.Get("/my", orderHandler.MyOrders)
			r.With(adminOnly).Get("/all", orderHandler.ListOrders)
			r.Get("/{orderID}", orderHandler.GetOrder)
			r.With(adminOnly).Put("/{orderID}", orderHandler.ProcessOrder)
			r.With(adminOnly).Delete("/{orderID}", orderHandler.DeleteOrder)
		})

		r.Route("/payment", func(r chi.Router) {
			r.Get("/discount", couponHandler.ApplyDiscount)
			r.Route("/coupon", func(r chi.Router) {
				r.Use(adminOnly)
				r.Post("/new", couponHandler.CreateCoupon)
				r.Get("/all", couponHandler.ListCoupons)
				r.Delete("/{couponID}", couponHandler.DeleteCoupon)
			})
		})

		r.Route("/dashboard", func(r chi.Router) {
			r.Use(adminOnly)
			r.Get("/stats", statsHandler.DashboardStats)
			r.Get("/pie", statsHandler.PieCharts)
			r.Get("/bar", statsHandler.BarCharts)
			r.Get("/line", statsHandler.LineCharts)
		})
	})

	return router
}

// healthCheck handles health check requests
func (rt *Router) healthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"healthy"}`))
}
