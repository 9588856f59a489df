package handler

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("Failed to encode response",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err))
	}
}

func (h *Handler) successResponse(w http.ResponseWriter, r *http.Request, data any) {
	h.writeJSON(w, r, http.StatusOK, Response{Success: true, Data: data})
}

func (h *Handler) badRequest(w http.ResponseWriter, r *http.Request, msg string) {
	h.writeJSON(w, r, http.StatusBadRequest, Response{Success: false, Message: msg})
}

func (h *Handler) internalServerError(w http.ResponseWriter, r *http.Request, err error) {
	h.logger.Error("Internal server error",
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.Error(err))
	h.writeJSON(w, r, http.StatusInternalServerError, Response{Success: false, Message: "internal server error"})
}
