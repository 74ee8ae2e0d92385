package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/RoyceAzure/lab/shopcenter/internal/api"
	"github.com/RoyceAzure/lab/shopcenter/internal/api/dto"
	"github.com/RoyceAzure/lab/shopcenter/internal/pkg/apperr"
	"github.com/RoyceAzure/lab/shopcenter/internal/service"
)

type AddressHandler struct {
	addressService service.IAddressService
}

func NewAddressHandler(addressService service.IAddressService) *AddressHandler {
	return &AddressHandler{addressService: addressService}
}

func (h *AddressHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAddressDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.ErrorJSON(w, apperr.Validation("Invalid JSON."))
		return
	}

	address, err := h.addressService.CreateAddress(r.Context(), req.UserID, req.Street, req.City, req.State, req.ZipCode)
	if err != nil {
		api.ErrorJSON(w, err)
		return
	}

	api.WriteJSON(w, http.StatusCreated, map[string]any{
		"message":    "Address added successfully.",
		"address_id": address.AddressID,
	})
}

func (h *AddressHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseUint(r.URL.Query().Get("user_id"), 10, 64)
	if err != nil {
		api.ErrorJSON(w, apperr.Validation("Invalid user_id."))
		return
	}

	addresses, err := h.addressService.ListAddresses(r.Context(), uint(userID))
	if err != nil {
		api.ErrorJSON(w, err)
		return
	}

	api.WriteJSON(w, http.StatusOK, map[string]any{"addresses": addresses})
}

func (h *AddressHandler) Patch(w http.ResponseWriter, r *http.Request) {
	var req dto.PatchAddressDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.ErrorJSON(w, apperr.Validation("Invalid JSON."))
		return
	}

	address, err := h.addressService.PatchAddress(r.Context(), req.AddressID, service.AddressPatch{
		Street:  req.Street,
		City:    req.City,
		State:   req.State,
		ZipCode: req.ZipCode,
	})
	if err != nil {
		api.ErrorJSON(w, err)
		return
	}

	api.WriteJSON(w, http.StatusOK, map[string]any{
		"message": "Address updated successfully.",
		"address": address,
	})
}

func (h *AddressHandler) Delete(w http.ResponseWriter, r *http.Request) {
	var req dto.DeleteAddressDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.ErrorJSON(w, apperr.Validation("Invalid JSON."))
		return
	}

	if err := h.addressService.DeleteAddress(r.Context(), req.AddressID); err != nil {
		api.ErrorJSON(w, err)
		return
	}

	api.WriteJSON(w, http.StatusOK, map[string]string{
		"message": "Address deleted successfully.",
	})
}
