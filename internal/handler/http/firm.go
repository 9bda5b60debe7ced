package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/msarvarov/vendor-market/internal/logger"
	"github.com/msarvarov/vendor-market/internal/service"
	"github.com/msarvarov/vendor-market/internal/store"
	"github.com/msarvarov/vendor-market/internal/utils"
	"github.com/msarvarov/vendor-market/models"
)

// maxMultipartMemory caps the in-memory portion of a parsed multipart
// form; larger uploads spill to temporary files.
const maxMultipartMemory = 32 << 20

// addFirm handles POST /firm/add-firm. The body is a multipart form with
// the text fields firmName, area, category (repeatable), region
// (repeatable), offer and an optional image file. The owning vendor is
// taken from the authenticated request context, never from the body.
func (h *Handler) addFirm(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	vendorID, ok := utils.GetVendorIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no vendor ID in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		log.Err(err).Msg("invalid multipart form")
		http.Error(w, "invalid multipart form", http.StatusBadRequest)
		return
	}

	firm := models.Firm{
		VendorID: vendorID,
		FirmName: r.FormValue("firmName"),
		Area:     r.FormValue("area"),
		Category: r.Form["category"],
		Region:   r.Form["region"],
		Offer:    r.FormValue("offer"),
	}

	imageName, err := h.saveUploadedImage(r)
	if err != nil {
		log.Err(err).Msg("image upload failed")
		http.Error(w, "image upload failed", http.StatusBadRequest)
		return
	}
	firm.Image = imageName

	savedFirm, err := h.services.FirmService.CreateFirm(ctx, firm)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			http.Error(w, "invalid data provided", http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrFirmAlreadyExists):
			log.Err(err).Msg("firm name already exists")
			http.Error(w, "firm name already exists", http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrNoVendorWasFound):
			log.Err(err).Msg("vendor not found")
			http.Error(w, "vendor not found", http.StatusNotFound)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during firm creation")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, models.FirmCreatedResponse{
		Message: "Firm added successfully",
		FirmID:  savedFirm.FirmID,
	}, http.StatusCreated)
}

func (h *Handler) singleFirm(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	firmID, err := strconv.ParseInt(chi.URLParam(r, "firmID"), 10, 64)
	if err != nil {
		log.Err(err).Msg("invalid firm ID")
		http.Error(w, "invalid firm ID", http.StatusBadRequest)
		return
	}

	firm, err := h.services.FirmService.GetFirmByID(ctx, firmID)
	if err != nil {
		if errors.Is(err, store.ErrNoFirmWasFound) {
			log.Err(err).Int64("id", firmID).Msg("firm not found")
			http.Error(w, "firm not found", http.StatusNotFound)
			return
		}
		log.Err(err).Int64("id", firmID).Msg("unexpected error occurred during firm lookup")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.FirmResponse{Firm: firm}, http.StatusOK)
}

func (h *Handler) deleteFirm(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	firmID, err := strconv.ParseInt(chi.URLParam(r, "firmID"), 10, 64)
	if err != nil {
		log.Err(err).Msg("invalid firm ID")
		http.Error(w, "invalid firm ID", http.StatusBadRequest)
		return
	}

	if err := h.services.FirmService.DeleteFirm(ctx, firmID); err != nil {
		if errors.Is(err, store.ErrNoFirmWasFound) {
			log.Err(err).Int64("id", firmID).Msg("firm not found")
			http.Error(w, "firm not found", http.StatusNotFound)
			return
		}
		log.Err(err).Int64("id", firmID).Msg("unexpected error occurred during firm deletion")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// saveUploadedImage stores the optional "image" part of an already parsed
// multipart form and returns the generated file name. A form without an
// image part yields an empty name and no error.
func (h *Handler) saveUploadedImage(r *http.Request) (string, error) {
	file, header, err := r.FormFile("image")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return "", nil
		}
		return "", err
	}
	defer file.Close()

	return h.services.ImageService.SaveImage(r.Context(), header.Filename, file)
}
