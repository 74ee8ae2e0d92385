package api

import (
	"encoding/json"
	"net/http"

	"github.com/RoyceAzure/lab/shopcenter/internal/pkg/apperr"
)

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// ErrorJSON 錯誤一律走 {"error": msg}, status由錯誤分類決定
func ErrorJSON(w http.ResponseWriter, err error) {
	WriteJSON(w, apperr.StatusOf(err), map[string]string{
		"error": apperr.MessageOf(err),
	})
}
