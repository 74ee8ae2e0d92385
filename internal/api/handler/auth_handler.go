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

type AuthHandler struct {
	authService  service.IAuthService
	resetService service.IPasswordResetService
}

func NewAuthHandler(authService service.IAuthService, resetService service.IPasswordResetService) *AuthHandler {
	return &AuthHandler{
		authService:  authService,
		resetService: resetService,
	}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.ErrorJSON(w, apperr.Validation("Invalid JSON."))
		return
	}

	user, err := h.authService.Register(r.Context(), req.Username, req.Email, req.Password, req.Password2)
	if err != nil {
		api.ErrorJSON(w, err)
		return
	}

	api.WriteJSON(w, http.StatusCreated, map[string]any{
		"message": "User registered successfully.",
		"user_id": user.UserID,
	})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.ErrorJSON(w, apperr.Validation("Invalid JSON."))
		return
	}

	user, accessToken, err := h.authService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		api.ErrorJSON(w, err)
		return
	}

	api.WriteJSON(w, http.StatusOK, dto.LoginResponse{
		Message: "Login successful.",
		UserID:  user.UserID,
		Token:   accessToken,
	})
}

// Logout 無伺服端session, 僅回應成功
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	api.WriteJSON(w, http.StatusOK, map[string]string{
		"message": "Logged out successfully.",
	})
}

func (h *AuthHandler) Profile(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseUint(r.URL.Query().Get("user_id"), 10, 64)
	if err != nil {
		api.ErrorJSON(w, apperr.Validation("Invalid user_id."))
		return
	}

	user, err := h.authService.GetProfile(r.Context(), uint(userID))
	if err != nil {
		api.ErrorJSON(w, err)
		return
	}

	api.WriteJSON(w, http.StatusOK, map[string]any{
		"user_profile": dto.UserProfileDTO{
			Username: user.Username,
			Email:    user.Email,
		},
	})
}

func (h *AuthHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	var req dto.DeleteUserDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.ErrorJSON(w, apperr.Validation("Invalid JSON."))
		return
	}

	if err := h.authService.DeleteUser(r.Context(), req.UserID); err != nil {
		api.ErrorJSON(w, err)
		return
	}

	api.WriteJSON(w, http.StatusOK, map[string]string{
		"message": "User deleted successfully.",
	})
}

func (h *AuthHandler) ForgetPassword(w http.ResponseWriter, r *http.Request) {
	var req dto.ForgetPasswordDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.ErrorJSON(w, apperr.Validation("Invalid JSON."))
		return
	}

	if err := h.resetService.IssueOTP(r.Context(), req.Email); err != nil {
		api.ErrorJSON(w, err)
		return
	}

	api.WriteJSON(w, http.StatusOK, map[string]string{
		"message": "OTP sent to your email.",
	})
}

func (h *AuthHandler) VerifyOTP(w http.ResponseWriter, r *http.Request) {
	var req dto.VerifyOTPDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.ErrorJSON(w, apperr.Validation("Invalid JSON."))
		return
	}

	if err := h.resetService.VerifyOTP(r.Context(), req.Email, req.OTP); err != nil {
		api.ErrorJSON(w, err)
		return
	}

	api.WriteJSON(w, http.StatusOK, map[string]string{
		"message": "OTP verified successfully.",
	})
}

// ResetPassword 僅做重設前檢核, 見service.ValidateReset
func (h *AuthHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req dto.ResetPasswordDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.ErrorJSON(w, apperr.Validation("Invalid JSON."))
		return
	}

	if err := h.resetService.ValidateReset(r.Context(), req.Email, req.NewPassword, req.NewPassword2); err != nil {
		api.ErrorJSON(w, err)
		return
	}

	api.WriteJSON(w, http.StatusOK, map[string]string{
		"message": "Validation passed.",
	})
}
