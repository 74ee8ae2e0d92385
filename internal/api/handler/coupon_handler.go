package handler

import (
	"encoding/json"
	"net/http"

	"github.com/RoyceAzure/lab/shopcenter/internal/api"
	"github.com/RoyceAzure/lab/shopcenter/internal/api/dto"
	"github.com/RoyceAzure/lab/shopcenter/internal/pkg/apperr"
	"github.com/RoyceAzure/lab/shopcenter/internal/service"
)

type CouponHandler struct {
	couponService service.ICouponService
}

func NewCouponHandler(couponService service.ICouponService) *CouponHandler {
	return &CouponHandler{couponService: couponService}
}

func (h *CouponHandler) Apply(w http.ResponseWriter, r *http.Request) {
	var req dto.ApplyCouponDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.ErrorJSON(w, apperr.Validation("Invalid JSON."))
		return
	}

	quote, err := h.couponService.ApplyCoupon(r.Context(), req.ProductID, req.CouponCode)
	if err != nil {
		api.ErrorJSON(w, err)
		return
	}

	api.WriteJSON(w, http.StatusOK, map[string]any{
		"message":          "Coupon applied successfully.",
		"product_id":       quote.ProductID,
		"original_price":   quote.OriginalPrice,
		"discounted_price": quote.DiscountedPrice,
	})
}

func (h *CouponHandler) Remove(w http.ResponseWriter, r *http.Request) {
	var req dto.RemoveCouponDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.ErrorJSON(w, apperr.Validation("Invalid JSON."))
		return
	}

	quote, err := h.couponService.RemoveCoupon(r.Context(), req.ProductID)
	if err != nil {
		api.ErrorJSON(w, err)
		return
	}

	api.WriteJSON(w, http.StatusOK, map[string]any{
		"message":        "Coupon removed.",
		"product_id":     quote.ProductID,
		"original_price": quote.OriginalPrice,
	})
}
