package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"comanda/internal/model"
	"comanda/internal/service"
)

// CatalogHandler handles product and category HTTP requests.
type CatalogHandler struct {
	service service.CatalogService
	logger  zerolog.Logger
}

// NewCatalogHandler creates a new catalogue handler.
func NewCatalogHandler(service service.CatalogService, logger zerolog.Logger) *CatalogHandler {
	return &CatalogHandler{
		service: service,
		logger:  logger.With().Str("handler", "catalog").Logger(),
	}
}

// productPage is the GET /api/products response envelope.
type productPage struct {
	Products []model.Product `json:"products"`
	Total    int             `json:"total"`
}

// ListProducts handles GET /api/products requests with category
// filtering and pagination.
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	// Parse query parameters
	limitStr := r.URL.Query().Get("limit")
	offsetStr := r.URL.Query().Get("offset")
	categoryID := r.URL.Query().Get("category")

	limit := 0 // default: no paging
	if limitStr != "" {
		var err error
		limit, err = strconv.Atoi(limitStr)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, model.ErrCodeMissingField, "invalid limit parameter", h.logger)
			return
		}
	}

	offset := 0 // default
	if offsetStr != "" {
		var err error
		offset, err = strconv.Atoi(offsetStr)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, model.ErrCodeMissingField, "invalid offset parameter", h.logger)
			return
		}
	}

	if r.URL.Query().Get("refresh") == "true" {
		if err := h.service.Refresh(r.Context()); err != nil {
			writeDomainError(w, r, err, h.logger)
			return
		}
	}

	products, total := h.service.Products(categoryID, limit, offset)
	writeJSON(w, http.StatusOK, productPage{Products: products, Total: total})
}

// createProductRequest is the POST /api/products payload.
type createProductRequest struct {
	Name       string          `json:"name"`
	Price      decimal.Decimal `json:"price"`
	CategoryID string          `json:"categoryId"`
	PerWeight  bool            `json:"perWeight"`
}

// CreateProduct handles POST /api/products requests.
func (h *CatalogHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req createProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}

	product, err := h.service.CreateProduct(r.Context(), req.Name, req.Price, req.CategoryID, req.PerWeight)
	if err != nil {
		writeDomainError(w, r, err, h.logger)
		return
	}
	writeJSON(w, http.StatusCreated, product)
}

// UpdateProduct handles PUT /api/products/{id} requests. Only the
// fields present in the payload are changed.
func (h *CatalogHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id := pathID(r.URL.Path, "/api/products/")
	if id == "" {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeMissingField, "product ID is required", h.logger)
		return
	}

	var updates model.ProductUpdate
	if err := json.NewDecoder(r.Body).Decode(&updates); err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}

	if err := h.service.UpdateProduct(r.Context(), id, updates); err != nil {
		writeDomainError(w, r, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

// DeleteProduct handles DELETE /api/products/{id} requests.
func (h *CatalogHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id := pathID(r.URL.Path, "/api/products/")
	if id == "" {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeMissingField, "product ID is required", h.logger)
		return
	}

	if err := h.service.DeleteProduct(r.Context(), id); err != nil {
		writeDomainError(w, r, err, h.logger)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListCategories handles GET /api/categories requests.
func (h *CatalogHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.service.Categories())
}

// createCategoryRequest is the POST /api/categories payload.
type createCategoryRequest struct {
	Name string `json:"name"`
	Icon string `json:"icon"`
}

// CreateCategory handles POST /api/categories requests.
func (h *CatalogHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req createCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}

	category, err := h.service.CreateCategory(r.Context(), req.Name, req.Icon)
	if err != nil {
		writeDomainError(w, r, err, h.logger)
		return
	}
	writeJSON(w, http.StatusCreated, category)
}
