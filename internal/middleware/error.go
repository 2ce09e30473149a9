package middleware

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// responseRecorder holds back error responses written downstream so the
// middleware can emit one canonical JSON error shape. Success statuses
// pass straight through; for statuses >= 400 both the status line and the
// body are deferred until the body has been inspected, since headers can
// no longer change once the status line is sent.
type responseRecorder struct {
	http.ResponseWriter
	statusCode int
	body       strings.Builder
}

func (r *responseRecorder) WriteHeader(statusCode int) {
	r.statusCode = statusCode
	if statusCode < 400 {
		r.ResponseWriter.WriteHeader(statusCode)
	}
}

func (r *responseRecorder) Write(b []byte) (int, error) {
	if r.statusCode >= 400 {
		return r.body.Write(b)
	}
	return r.ResponseWriter.Write(b)
}

// ErrorHandler wraps the router so that panics and plain-text error bodies
// from any handler reach the client as JSON. Store failures no handler
// mapped to a specific status end up here as a generic 500.
func ErrorHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := &responseRecorder{ResponseWriter: w, statusCode: 200}
		defer func() {
			if err := recover(); err != nil {
				log.Printf("Error: %v", err)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				_ = json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal Server Error"})
				return
			}
			if rec.statusCode < 400 {
				return
			}
			body := strings.TrimSpace(rec.body.String())
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(rec.statusCode)
			switch {
			case body == "":
				_ = json.NewEncoder(w).Encode(ErrorResponse{Error: http.StatusText(rec.statusCode)})
			case json.Valid([]byte(body)):
				_, _ = w.Write([]byte(body))
			default:
				_ = json.NewEncoder(w).Encode(ErrorResponse{Error: body})
			}
		}()

		next.ServeHTTP(rec, r)
	})
}
