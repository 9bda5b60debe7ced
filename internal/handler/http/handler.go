package http

import (
	"time"

	"github.com/msarvarov/vendor-market/internal/logger"
	"github.com/msarvarov/vendor-market/internal/service"
)

type Handler struct {
	services *service.Services

	// requestTimeout bounds the context of every inbound request; zero
	// disables the bound.
	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, requestTimeout time.Duration, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		requestTimeout: requestTimeout,
		logger:         logger,
	}
}
