package router

import (
	"net/http"

	"github.com/RoyceAzure/lab/shopcenter/internal/api/handler"
	"github.com/RoyceAzure/lab/shopcenter/internal/api/middleware"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

// Server 聚合所有handler, 掛載到同一個chi router
type Server struct {
	AuthHandler         *handler.AuthHandler
	ProductHandler      *handler.ProductHandler
	CartHandler         *handler.CartHandler
	OrderHandler        *handler.OrderHandler
	AddressHandler      *handler.AddressHandler
	CouponHandler       *handler.CouponHandler
	NotificationHandler *handler.NotificationHandler
}

func NewRouter(s *Server) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestIdMiddleware)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.LoggerMiddleware)
	r.Use(middleware.RecoverMiddleware)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status": "ok"}`))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", s.AuthHandler.Register)
			r.Post("/login", s.AuthHandler.Login)
			r.Post("/logout", s.AuthHandler.Logout)
			r.Post("/forget-password", s.AuthHandler.ForgetPassword)
			r.Post("/verify-otp", s.AuthHandler.VerifyOTP)
			r.Post("/reset-password", s.AuthHandler.ResetPassword)
		})

		r.Route("/users", func(r chi.Router) {
			r.Get("/profile", s.AuthHandler.Profile)
			r.Delete("/", s.AuthHandler.DeleteUser)
		})

		r.Route("/products", func(r chi.Router) {
			r.Post("/", s.ProductHandler.Create)
			r.Get("/", s.ProductHandler.List)
			r.Get("/search", s.ProductHandler.Search)
			r.Patch("/{id}", s.ProductHandler.Patch)
			r.Delete("/{id}", s.ProductHandler.Delete)
		})

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", s.CartHandler.View)
			r.Post("/items", s.CartHandler.Add)
			r.Patch("/items", s.CartHandler.Update)
			r.Delete("/items", s.CartHandler.Remove)
		})

		r.Route("/orders", func(r chi.Router) {
			r.Post("/", s.OrderHandler.PlaceOrder)
			r.Get("/", s.OrderHandler.List)
			r.Get("/{id}", s.OrderHandler.Detail)
		})

		r.Route("/payments", func(r chi.Router) {
			r.Post("/initiate", s.OrderHandler.InitiatePayment)
			r.Post("/confirm", s.OrderHandler.ConfirmPayment)
			r.Get("/status/{id}", s.OrderHandler.PaymentStatus)
		})

		r.Route("/addresses", func(r chi.Router) {
			r.Post("/", s.AddressHandler.Create)
			r.Get("/", s.AddressHandler.List)
			r.Patch("/", s.AddressHandler.Patch)
			r.Delete("/", s.AddressHandler.Delete)
		})

		r.Route("/coupons", func(r chi.Router) {
			r.Post("/apply", s.CouponHandler.Apply)
			r.Post("/remove", s.CouponHandler.Remove)
		})

		r.Get("/notifications", s.NotificationHandler.List)
	})

	return r
}
