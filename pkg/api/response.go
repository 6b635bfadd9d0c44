package api

import (
	"encoding/json"
	"net/http"
	"time"
)

// Response 所有API回應的統一格式
// Data只在成功時出現, Error只在失敗時出現
type Response struct {
	Success   bool      `json:"success"`
	Message   string    `json:"message"`
	Data      any       `json:"data,omitempty"`
	Error     any       `json:"error,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

func writeJSON(w http.ResponseWriter, status int, resp Response) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}

func SuccessJSON(w http.ResponseWriter, status int, data any, message string) {
	writeJSON(w, status, Response{
		Success:   true,
		Message:   message,
		Data:      data,
		Timestamp: time.Now().UTC(),
	})
}

func ErrorJSON(w http.ResponseWriter, status int, errDetail any, message string) {
	writeJSON(w, status, Response{
		Success:   false,
		Message:   message,
		Error:     errDetail,
		Timestamp: time.Now().UTC(),
	})
}
