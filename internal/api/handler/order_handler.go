package handler

import (
	"encoding/json"
	"net/http"

	"github.com/RoyceAzure/lab/shopcenter/internal/api"
	"github.com/RoyceAzure/lab/shopcenter/internal/api/dto"
	"github.com/RoyceAzure/lab/shopcenter/internal/domain/model"
	"github.com/RoyceAzure/lab/shopcenter/internal/pkg/apperr"
	"github.com/RoyceAzure/lab/shopcenter/internal/service"
)

type OrderHandler struct {
	checkoutService service.ICheckoutService
	orderService    service.IOrderService
}

func NewOrderHandler(checkoutService service.ICheckoutService, orderService service.IOrderService) *OrderHandler {
	return &OrderHandler{
		checkoutService: checkoutService,
		orderService:    orderService,
	}
}

func orderToDetailDTO(o *model.Order) dto.OrderDetailDTO {
	out := dto.OrderDetailDTO{
		OrderID:     o.OrderID,
		User:        o.User.Username,
		TotalAmount: o.TotalAmount,
		Status:      o.Status,
		CreatedAt:   o.CreatedAt,
		Items:       make([]dto.OrderItemDTO, 0, len(o.Items)),
	}
	if o.ShippingAddress != nil {
		out.ShippingAddress = &dto.OrderAddressDTO{
			Street:  o.ShippingAddress.Street,
			City:    o.ShippingAddress.City,
			State:   o.ShippingAddress.State,
			ZipCode: o.ShippingAddress.ZipCode,
		}
	}
	for i := range o.Items {
		item := &o.Items[i]
		out.Items = append(out.Items, dto.OrderItemDTO{
			ProductName: item.Product.Name,
			Quantity:    item.Quantity,
			Price:       item.PriceAtPurchase,
			Subtotal:    item.Subtotal,
		})
	}
	return out
}

func (h *OrderHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	var req dto.PlaceOrderDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.ErrorJSON(w, apperr.Validation("Invalid JSON."))
		return
	}

	result, err := h.checkoutService.PlaceOrder(r.Context(), req.Email, req.AddressID)
	if err != nil {
		api.ErrorJSON(w, err)
		return
	}

	api.WriteJSON(w, http.StatusOK, map[string]any{
		"message":      "Order placed successfully.",
		"order_id":     result.OrderID,
		"total_amount": result.TotalAmount,
	})
}

func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orderService.ListOrders(r.Context())
	if err != nil {
		api.ErrorJSON(w, err)
		return
	}

	out := make([]dto.OrderSummaryDTO, 0, len(orders))
	for i := range orders {
		o := &orders[i]
		out = append(out, dto.OrderSummaryDTO{
			OrderID:     o.OrderID,
			User:        o.User.Username,
			TotalAmount: o.TotalAmount,
			Status:      o.Status,
			CreatedAt:   o.CreatedAt,
		})
	}
	api.WriteJSON(w, http.StatusOK, map[string]any{"orders": out})
}

func (h *OrderHandler) Detail(w http.ResponseWriter, r *http.Request) {
	orderID, err := parseIDParam(r, "id")
	if err != nil {
		api.ErrorJSON(w, err)
		return
	}

	order, err := h.orderService.GetOrder(r.Context(), orderID)
	if err != nil {
		api.ErrorJSON(w, err)
		return
	}

	api.WriteJSON(w, http.StatusOK, orderToDetailDTO(order))
}

// InitiatePayment mock金流: 回訂單與應付金額
func (h *OrderHandler) InitiatePayment(w http.ResponseWriter, r *http.Request) {
	var req dto.PaymentDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.ErrorJSON(w, apperr.Validation("Invalid JSON."))
		return
	}

	order, err := h.orderService.InitiatePayment(r.Context(), req.OrderID)
	if err != nil {
		api.ErrorJSON(w, err)
		return
	}

	api.WriteJSON(w, http.StatusOK, map[string]any{
		"message":  "Payment initiated.",
		"order_id": order.OrderID,
		"amount":   order.TotalAmount,
	})
}

func (h *OrderHandler) ConfirmPayment(w http.ResponseWriter, r *http.Request) {
	var req dto.ConfirmPaymentDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.ErrorJSON(w, apperr.Validation("Invalid JSON."))
		return
	}

	if err := h.orderService.ConfirmPayment(r.Context(), req.OrderID, req.PaymentStatus); err != nil {
		api.ErrorJSON(w, err)
		return
	}

	api.WriteJSON(w, http.StatusOK, map[string]string{
		"message": "Payment successful. Order confirmed.",
	})
}

func (h *OrderHandler) PaymentStatus(w http.ResponseWriter, r *http.Request) {
	orderID, err := parseIDParam(r, "id")
	if err != nil {
		api.ErrorJSON(w, err)
		return
	}

	id, status, amount, err := h.orderService.PaymentStatus(r.Context(), orderID)
	if err != nil {
		api.ErrorJSON(w, err)
		return
	}

	api.WriteJSON(w, http.StatusOK, map[string]any{
		"order_id":     id,
		"status":       status,
		"total_amount": amount,
	})
}
