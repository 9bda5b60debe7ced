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

// addProduct handles POST /product/add-product/{firmID}. The body is a
// multipart form with the text fields productName, price, category
// (repeatable), bestSeller, description and an optional image file.
func (h *Handler) addProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	firmID, err := strconv.ParseInt(chi.URLParam(r, "firmID"), 10, 64)
	if err != nil {
		log.Err(err).Msg("invalid firm ID")
		http.Error(w, "invalid firm ID", http.StatusBadRequest)
		return
	}

	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		log.Err(err).Msg("invalid multipart form")
		http.Error(w, "invalid multipart form", http.StatusBadRequest)
		return
	}

	product := models.Product{
		FirmID:      firmID,
		ProductName: r.FormValue("productName"),
		Category:    r.Form["category"],
		BestSeller:  r.FormValue("bestSeller") == "true",
		Description: r.FormValue("description"),
	}

	if priceValue := r.FormValue("price"); priceValue != "" {
		price, err := strconv.ParseFloat(priceValue, 64)
		if err != nil {
			log.Err(err).Msg("invalid price")
			http.Error(w, "invalid price", http.StatusBadRequest)
			return
		}
		product.Price = price
	}

	imageName, err := h.saveUploadedImage(r)
	if err != nil {
		log.Err(err).Msg("image upload failed")
		http.Error(w, "image upload failed", http.StatusBadRequest)
		return
	}
	product.Image = imageName

	savedProduct, err := h.services.ProductService.CreateProduct(ctx, product)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			http.Error(w, "invalid data provided", http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrNoFirmWasFound):
			log.Err(err).Int64("firm_id", firmID).Msg("firm not found")
			http.Error(w, "firm not found", http.StatusNotFound)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during product creation")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, models.ProductCreatedResponse{
		Message:   "Product added successfully",
		ProductID: savedProduct.ProductID,
	}, http.StatusCreated)
}

// productsByFirm handles GET /product/{firmID}/products. The optional
// query parameters bestSeller (true/false) and category (repeatable)
// narrow the listing.
func (h *Handler) productsByFirm(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	firmID, err := strconv.ParseInt(chi.URLParam(r, "firmID"), 10, 64)
	if err != nil {
		log.Err(err).Msg("invalid firm ID")
		http.Error(w, "invalid firm ID", http.StatusBadRequest)
		return
	}

	var filter models.ProductFilter
	if bestSellerValue := r.URL.Query().Get("bestSeller"); bestSellerValue != "" {
		bestSeller, err := strconv.ParseBool(bestSellerValue)
		if err != nil {
			log.Err(err).Msg("invalid bestSeller filter")
			http.Error(w, "invalid bestSeller filter", http.StatusBadRequest)
			return
		}
		filter.BestSeller = &bestSeller
	}
	filter.Category = r.URL.Query()["category"]

	products, err := h.services.ProductService.GetProductsByFirm(ctx, firmID, filter)
	if err != nil {
		if errors.Is(err, store.ErrNoFirmWasFound) {
			log.Err(err).Int64("firm_id", firmID).Msg("firm not found")
			http.Error(w, "firm not found", http.StatusNotFound)
			return
		}
		log.Err(err).Int64("firm_id", firmID).Msg("unexpected error occurred during product listing")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.ProductsResponse{Products: products}, http.StatusOK)
}

func (h *Handler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	productID, err := strconv.ParseInt(chi.URLParam(r, "productID"), 10, 64)
	if err != nil {
		log.Err(err).Msg("invalid product ID")
		http.Error(w, "invalid product ID", http.StatusBadRequest)
		return
	}

	if err := h.services.ProductService.DeleteProduct(ctx, productID); err != nil {
		if errors.Is(err, store.ErrNoProductWasFound) {
			log.Err(err).Int64("id", productID).Msg("product not found")
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		log.Err(err).Int64("id", productID).Msg("unexpected error occurred during product deletion")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
