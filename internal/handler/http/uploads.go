package http

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/msarvarov/vendor-market/internal/logger"
	"github.com/msarvarov/vendor-market/internal/store"
	"github.com/msarvarov/vendor-market/internal/utils"
)

// healthResponse is the JSON body for GET /health.
type healthResponse struct {
	Status string `json:"status"`
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, healthResponse{Status: "OK"}, http.StatusOK)
}

// serveImage handles GET /uploads/{imageName}. Names that fail validation
// are reported as missing, the same as names that resolve to no file.
func (h *Handler) serveImage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	imageName := chi.URLParam(r, "imageName")

	path, err := h.services.ImageService.ImagePath(ctx, imageName)
	if err != nil {
		if errors.Is(err, store.ErrImageNotFound) || errors.Is(err, store.ErrInvalidImageName) {
			log.Err(err).Str("image", imageName).Msg("image not found")
			http.Error(w, "image not found", http.StatusNotFound)
			return
		}
		log.Err(err).Str("image", imageName).Msg("unexpected error occurred during image lookup")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	http.ServeFile(w, r, path)
}
