package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/msarvarov/vendor-market/internal/service"
	"github.com/msarvarov/vendor-market/internal/store"
	"github.com/msarvarov/vendor-market/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock ProductService
// ─────────────────────────────────────────────

type mockProductService struct {
	createProductFn     func(ctx context.Context, product models.Product) (models.Product, error)
	getProductsByFirmFn func(ctx context.Context, firmID int64, filter models.ProductFilter) ([]models.Product, error)
	deleteProductFn     func(ctx context.Context, productID int64) error
}

func (m *mockProductService) CreateProduct(ctx context.Context, product models.Product) (models.Product, error) {
	if m.createProductFn != nil {
		return m.createProductFn(ctx, product)
	}
	return product, nil
}

func (m *mockProductService) GetProductsByFirm(ctx context.Context, firmID int64, filter models.ProductFilter) ([]models.Product, error) {
	if m.getProductsByFirmFn != nil {
		return m.getProductsByFirmFn(ctx, firmID, filter)
	}
	return nil, nil
}

func (m *mockProductService) DeleteProduct(ctx context.Context, productID int64) error {
	if m.deleteProductFn != nil {
		return m.deleteProductFn(ctx, productID)
	}
	return nil
}

// parseTokenForVendor returns a mockAuthService whose ParseToken yields a
// token asserting the given vendor ID, for driving protected routes via
// the full router.
func parseTokenForVendor(vendorID int64) *mockAuthService {
	return &mockAuthService{
		parseTokenFn: func(_ context.Context, _ string) (models.Token, error) {
			return models.Token{VendorID: vendorID}, nil
		},
	}
}

// ─────────────────────────────────────────────
// addProduct
// ─────────────────────────────────────────────

func TestAddProduct_Success(t *testing.T) {
	products := &mockProductService{
		createProductFn: func(_ context.Context, product models.Product) (models.Product, error) {
			assert.Equal(t, int64(5), product.FirmID)
			assert.Equal(t, "Margherita", product.ProductName)
			assert.InDelta(t, 9.99, product.Price, 0.0001)
			assert.True(t, product.BestSeller)
			product.ProductID = 100
			return product, nil
		},
	}

	h := newHandlerWithServices(t, &service.Services{
		AuthService:    parseTokenForVendor(1),
		ProductService: products,
	})
	router := h.Init()

	body, contentType := multipartBody(t, map[string][]string{
		"productName": {"Margherita"},
		"price":       {"9.99"},
		"category":    {"veg"},
		"bestSeller":  {"true"},
		"description": {"classic"},
	}, "margherita.png")

	req := httptest.NewRequest(http.MethodPost, "/product/add-product/5", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer some.valid.token")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp models.ProductCreatedResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(100), resp.ProductID)
}

func TestAddProduct_NoToken(t *testing.T) {
	h := newHandlerWithServices(t, &service.Services{})
	router := h.Init()

	body, contentType := multipartBody(t, map[string][]string{"productName": {"X"}}, "")
	req := httptest.NewRequest(http.MethodPost, "/product/add-product/5", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAddProduct_FirmMissing(t *testing.T) {
	products := &mockProductService{
		createProductFn: func(_ context.Context, _ models.Product) (models.Product, error) {
			return models.Product{}, store.ErrNoFirmWasFound
		},
	}

	h := newHandlerWithServices(t, &service.Services{
		AuthService:    parseTokenForVendor(1),
		ProductService: products,
	})
	router := h.Init()

	body, contentType := multipartBody(t, map[string][]string{
		"productName": {"Ghost"},
		"price":       {"1"},
	}, "")

	req := httptest.NewRequest(http.MethodPost, "/product/add-product/404", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer some.valid.token")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAddProduct_InvalidPrice(t *testing.T) {
	h := newHandlerWithServices(t, &service.Services{
		AuthService: parseTokenForVendor(1),
	})
	router := h.Init()

	body, contentType := multipartBody(t, map[string][]string{
		"productName": {"Margherita"},
		"price":       {"not-a-number"},
	}, "")

	req := httptest.NewRequest(http.MethodPost, "/product/add-product/5", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer some.valid.token")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid price")
}

// ─────────────────────────────────────────────
// productsByFirm
// ─────────────────────────────────────────────

func TestProductsByFirm_Success(t *testing.T) {
	products := &mockProductService{
		getProductsByFirmFn: func(_ context.Context, firmID int64, filter models.ProductFilter) ([]models.Product, error) {
			assert.Equal(t, int64(5), firmID)
			require.NotNil(t, filter.BestSeller)
			assert.True(t, *filter.BestSeller)
			assert.Equal(t, []string{"veg"}, filter.Category)
			return []models.Product{{ProductID: 1, ProductName: "Margherita"}}, nil
		},
	}

	h := newHandlerWithServices(t, &service.Services{ProductService: products})
	router := h.Init()

	req := httptest.NewRequest(http.MethodGet, "/product/5/products?bestSeller=true&category=veg", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.ProductsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Products, 1)
}

func TestProductsByFirm_NoFilter(t *testing.T) {
	products := &mockProductService{
		getProductsByFirmFn: func(_ context.Context, _ int64, filter models.ProductFilter) ([]models.Product, error) {
			assert.Nil(t, filter.BestSeller)
			assert.Empty(t, filter.Category)
			return []models.Product{}, nil
		},
	}

	h := newHandlerWithServices(t, &service.Services{ProductService: products})
	router := h.Init()

	req := httptest.NewRequest(http.MethodGet, "/product/5/products", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestProductsByFirm_FirmMissing(t *testing.T) {
	products := &mockProductService{
		getProductsByFirmFn: func(_ context.Context, _ int64, _ models.ProductFilter) ([]models.Product, error) {
			return nil, store.ErrNoFirmWasFound
		},
	}

	h := newHandlerWithServices(t, &service.Services{ProductService: products})
	router := h.Init()

	req := httptest.NewRequest(http.MethodGet, "/product/404/products", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestProductsByFirm_InvalidBestSellerFilter(t *testing.T) {
	h := newHandlerWithServices(t, &service.Services{})
	router := h.Init()

	req := httptest.NewRequest(http.MethodGet, "/product/5/products?bestSeller=maybe", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// ─────────────────────────────────────────────
// deleteProduct
// ─────────────────────────────────────────────

func TestDeleteProduct_Success(t *testing.T) {
	var deleted int64
	products := &mockProductService{
		deleteProductFn: func(_ context.Context, productID int64) error {
			deleted = productID
			return nil
		},
	}

	h := newHandlerWithServices(t, &service.Services{ProductService: products})
	router := h.Init()

	req := httptest.NewRequest(http.MethodDelete, "/product/100", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, int64(100), deleted)
}

func TestDeleteProduct_NotFound(t *testing.T) {
	products := &mockProductService{
		deleteProductFn: func(_ context.Context, _ int64) error {
			return store.ErrNoProductWasFound
		},
	}

	h := newHandlerWithServices(t, &service.Services{ProductService: products})
	router := h.Init()

	req := httptest.NewRequest(http.MethodDelete, "/product/404", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
