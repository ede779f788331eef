// Package respond пишет JSON-ответы и ошибки в едином формате.
package respond

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/Totarae/shortlink/internal/apperrors"
)

type errorBody struct {
	Error string `json:"error"`
}

type validationBody struct {
	Success bool                `json:"success"`
	Errors  map[string][]string `json:"errors"`
}

// JSON сериализует v с заданным статусом.
func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(v)
}

// Error пишет ошибку. Внутренние ошибки логируются с причиной, клиент видит общее сообщение.
func Error(w http.ResponseWriter, logger *zap.Logger, err error) {
	appErr := apperrors.From(err)

	if appErr.Kind == apperrors.KindValidation && len(appErr.Fields) > 0 {
		JSON(w, appErr.Kind.Status(), validationBody{Success: false, Errors: appErr.Fields})
		return
	}

	if appErr.Kind == apperrors.KindInternal {
		logger.Error("internal error", zap.Error(err))
	} else {
		logger.Debug("request rejected",
			zap.Int("status", appErr.Kind.Status()),
			zap.String("reason", appErr.Message),
		)
	}

	JSON(w, appErr.Kind.Status(), errorBody{Error: appErr.Message})
}
