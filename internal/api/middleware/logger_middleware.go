package middleware

import (
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
)

// StatusRecoder 記錄ResponseWriter寫出的status code
type StatusRecoder struct {
	http.ResponseWriter
	StatusCode int
}

func (r *StatusRecoder) WriteHeader(status int) {
	r.StatusCode = status
	r.ResponseWriter.WriteHeader(status)
}

func LoggerMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		recorder := &StatusRecoder{
			ResponseWriter: w,
			StatusCode:     http.StatusOK,
		}

		next.ServeHTTP(recorder, r)

		log.Info().
			Str("request_id", GetRequestID(r)).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", recorder.StatusCode).
			Dur("elapsed", time.Since(start)).
			Msg("request")
	})
}
