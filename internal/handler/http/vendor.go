package http

import (
	"encoding/json"
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

// registerRequest is the JSON body for POST /vendor/register.
type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// loginRequest is the JSON body for POST /vendor/login.
type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	vendor := models.Vendor{
		Username: req.Username,
		Email:    req.Email,
	}

	_, err := h.services.AuthService.RegisterVendor(ctx, vendor, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			http.Error(w, "invalid data provided", http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrEmailAlreadyExists):
			log.Err(err).Msg("email already exists")
			http.Error(w, "email already exists", http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during vendor registration")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, models.RegisterResponse{Message: "Vendor registered successfully"}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	foundVendor, err := h.services.AuthService.Login(ctx, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			http.Error(w, "invalid data provided", http.StatusBadRequest)
			return
		case errors.Is(err, service.ErrWrongEmailOrPassword):
			log.Err(err).Msg("wrong email/password")
			http.Error(w, "invalid email/password", http.StatusUnauthorized)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during vendor login")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	log.Debug().Int64("id", foundVendor.VendorID).Msg("vendor successfully logged in")

	token, err := h.services.AuthService.CreateToken(ctx, foundVendor)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.LoginResponse{
		Success: "Login successful",
		Token:   token.SignedString,
	}, http.StatusOK)
}

func (h *Handler) allVendors(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	vendors, err := h.services.AuthService.GetAllVendors(ctx)
	if err != nil {
		log.Err(err).Msg("unexpected error occurred during vendor listing")
		status := statusFromError(err)
		http.Error(w, http.StatusText(status), status)
		return
	}

	utils.WriteJSON(w, models.VendorsResponse{Vendors: vendors}, http.StatusOK)
}

func (h *Handler) singleVendor(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	vendorID, err := strconv.ParseInt(chi.URLParam(r, "vendorID"), 10, 64)
	if err != nil {
		log.Err(err).Msg("invalid vendor ID")
		http.Error(w, "invalid vendor ID", http.StatusBadRequest)
		return
	}

	vendor, err := h.services.AuthService.GetVendorByID(ctx, vendorID)
	if err != nil {
		if errors.Is(err, store.ErrNoVendorWasFound) {
			log.Err(err).Int64("id", vendorID).Msg("vendor not found")
			http.Error(w, "vendor not found", http.StatusNotFound)
			return
		}
		log.Err(err).Int64("id", vendorID).Msg("unexpected error occurred during vendor lookup")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.VendorResponse{Vendor: vendor}, http.StatusOK)
}
