package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/RoyceAzure/lab/shopcenter/internal/api"
	"github.com/RoyceAzure/lab/shopcenter/internal/api/dto"
	"github.com/RoyceAzure/lab/shopcenter/internal/pkg/apperr"
	"github.com/RoyceAzure/lab/shopcenter/internal/service"
)

type CartHandler struct {
	cartService service.ICartService
}

func NewCartHandler(cartService service.ICartService) *CartHandler {
	return &CartHandler{cartService: cartService}
}

func (h *CartHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req dto.AddToCartDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.ErrorJSON(w, apperr.Validation("Invalid JSON."))
		return
	}

	qty := 1
	if req.Quantity != nil {
		qty = *req.Quantity
	}

	quantity, err := h.cartService.AddToCart(r.Context(), req.Email, req.ProductID, qty)
	if err != nil {
		api.ErrorJSON(w, err)
		return
	}

	api.WriteJSON(w, http.StatusOK, map[string]any{
		"message":  "Product added to cart.",
		"quantity": quantity,
	})
}

func (h *CartHandler) View(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		api.ErrorJSON(w, apperr.Validation("Email is required."))
		return
	}

	lines, total, err := h.cartService.ViewCart(r.Context(), email)
	if err != nil {
		api.ErrorJSON(w, err)
		return
	}

	api.WriteJSON(w, http.StatusOK, map[string]any{
		"cart_items":   lines,
		"total_amount": total,
	})
}

func (h *CartHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req dto.EditCartDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.ErrorJSON(w, apperr.Validation("Invalid JSON."))
		return
	}
	if req.Quantity == nil {
		api.ErrorJSON(w, apperr.Validation("Quantity is required."))
		return
	}

	quantity, err := h.cartService.UpdateCartItem(r.Context(), req.Email, req.ProductID, *req.Quantity)
	if err != nil {
		api.ErrorJSON(w, err)
		return
	}

	api.WriteJSON(w, http.StatusOK, map[string]any{
		"message":  "Cart updated successfully.",
		"quantity": quantity,
	})
}

func (h *CartHandler) Remove(w http.ResponseWriter, r *http.Request) {
	var req dto.DeleteCartDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.ErrorJSON(w, apperr.Validation("Invalid JSON."))
		return
	}

	name, err := h.cartService.RemoveFromCart(r.Context(), req.Email, req.ProductID)
	if err != nil {
		api.ErrorJSON(w, err)
		return
	}

	api.WriteJSON(w, http.StatusOK, map[string]string{
		"message": fmt.Sprintf("%s removed from cart.", name),
	})
}
