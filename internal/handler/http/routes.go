package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Get("/health", h.health)

	router.Route("/vendor", func(r chi.Router) {
		r.Post("/register", h.register)
		r.Post("/login", h.login)
		r.Get("/all-vendors", h.allVendors)
		r.Get("/single-vendor/{vendorID}", h.singleVendor)
	})

	router.Route("/firm", func(r chi.Router) {
		r.With(h.auth).Post("/add-firm", h.addFirm)
		r.Get("/single-firm/{firmID}", h.singleFirm)
		// deletion is deliberately left outside the auth group to keep
		// compatibility with existing clients
		r.Delete("/{firmID}", h.deleteFirm)
	})

	router.Route("/product", func(r chi.Router) {
		r.With(h.auth).Post("/add-product/{firmID}", h.addProduct)
		r.Get("/{firmID}/products", h.productsByFirm)
		r.Delete("/{productID}", h.deleteProduct)
	})

	router.Get("/uploads/{imageName}", h.serveImage)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
