package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/RoyceAzure/lab/shopcenter/internal/api"
	"github.com/RoyceAzure/lab/shopcenter/internal/api/dto"
	"github.com/RoyceAzure/lab/shopcenter/internal/domain/model"
	"github.com/RoyceAzure/lab/shopcenter/internal/pkg/apperr"
	"github.com/RoyceAzure/lab/shopcenter/internal/service"
	"github.com/go-chi/chi/v5"
)

type ProductHandler struct {
	productService service.IProductService
}

func NewProductHandler(productService service.IProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

func productToDTO(p *model.Product) dto.ProductDTO {
	return dto.ProductDTO{
		ID:          p.ProductID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Category:    p.Category,
		Stock:       p.Stock,
		Image:       p.ImageURL,
	}
}

func parseIDParam(r *http.Request, name string) (uint, error) {
	id, err := strconv.ParseUint(chi.URLParam(r, name), 10, 64)
	if err != nil {
		return 0, apperr.Validation("Invalid id.")
	}
	return uint(id), nil
}

func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateProductDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.ErrorJSON(w, apperr.Validation("Invalid JSON."))
		return
	}
	if req.Price == nil {
		api.ErrorJSON(w, apperr.Validation("name and price are required."))
		return
	}
	if req.Stock < 0 {
		api.ErrorJSON(w, apperr.Validation("Invalid price or stock."))
		return
	}

	product := &model.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       *req.Price,
		Category:    req.Category,
		Stock:       uint(req.Stock),
		ImageURL:    req.Image,
		IsActive:    true,
	}
	if err := h.productService.CreateProduct(r.Context(), product); err != nil {
		api.ErrorJSON(w, err)
		return
	}

	api.WriteJSON(w, http.StatusCreated, map[string]any{
		"message":    "Product created successfully.",
		"product_id": product.ProductID,
	})
}

func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.productService.ListProducts(r.Context())
	if err != nil {
		api.ErrorJSON(w, err)
		return
	}

	out := make([]dto.ProductDTO, 0, len(products))
	for i := range products {
		out = append(out, productToDTO(&products[i]))
	}
	api.WriteJSON(w, http.StatusOK, map[string]any{"products": out})
}

func (h *ProductHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	if query == "" {
		api.ErrorJSON(w, apperr.Validation("Query parameter is required."))
		return
	}

	products, err := h.productService.SearchProducts(r.Context(), query)
	if err != nil {
		api.ErrorJSON(w, err)
		return
	}

	out := make([]dto.ProductDTO, 0, len(products))
	for i := range products {
		out = append(out, productToDTO(&products[i]))
	}
	api.WriteJSON(w, http.StatusOK, map[string]any{"products": out})
}

func (h *ProductHandler) Patch(w http.ResponseWriter, r *http.Request) {
	productID, err := parseIDParam(r, "id")
	if err != nil {
		api.ErrorJSON(w, err)
		return
	}

	var req dto.PatchProductDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.ErrorJSON(w, apperr.Validation("Invalid JSON."))
		return
	}

	product, err := h.productService.PatchProduct(r.Context(), productID, service.ProductPatch{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		ImageURL:    req.Image,
		Price:       req.Price,
		Stock:       req.Stock,
	})
	if err != nil {
		api.ErrorJSON(w, err)
		return
	}

	api.WriteJSON(w, http.StatusOK, map[string]any{
		"message": "Product updated successfully.",
		"product": productToDTO(product),
	})
}

func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	productID, err := parseIDParam(r, "id")
	if err != nil {
		api.ErrorJSON(w, err)
		return
	}

	if err := h.productService.DeleteProduct(r.Context(), productID); err != nil {
		api.ErrorJSON(w, err)
		return
	}

	api.WriteJSON(w, http.StatusOK, map[string]string{
		"message": "Product deleted successfully.",
	})
}
