package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/samandr77/immutablepost/pkg/logger"
)

type ErrorResponse struct {
	Message     string `json:"message"`
	Description string `json:"description,omitempty"`
	RequestID   string `json:"requestId,omitempty"`
}

func SendJSONErr(ctx context.Context, w http.ResponseWriter, code int, originErr error, msgToSend string) {
	resp := ErrorResponse{
		Message:   msgToSend,
		RequestID: logger.RequestIDFromCtx(ctx),
	}

	if originErr != nil {
		slog.ErrorContext(ctx, "api error", "error", originErr.Error(), "code", code)
		resp.Description = originErr.Error()
	} else {
		slog.WarnContext(ctx, "api error", "message", msgToSend, "code", code)
	}

	SendJSON(ctx, w, code, resp)
}

func SendJSON(ctx context.Context, w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	err := json.NewEncoder(w).Encode(data)
	if err != nil {
		slog.ErrorContext(ctx, "encode response", "error", err)
	}
}

func SendText(w http.ResponseWriter, code int, text string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(code)

	_, _ = w.Write([]byte(text))
}
