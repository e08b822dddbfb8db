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

	router.Post("/decrypt-seed", h.decryptSeed)
	router.Get("/generate-2fa", h.generateCode)
	router.Post("/verify-2fa", h.verifyCode)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
