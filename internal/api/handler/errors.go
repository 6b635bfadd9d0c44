package handler

import (
	"errors"
	"net/http"

	"github.com/RoyceAzure/lab/purchaseorder/internal/constants"
	"github.com/RoyceAzure/lab/purchaseorder/internal/errs"
	"github.com/RoyceAzure/lab/purchaseorder/pkg/api"
	"github.com/rs/zerolog/log"
)

// 將service層錯誤轉成對應的HTTP回應
// 驗證錯誤 -> 400 (附違規商品ID), 不存在 -> 404, 其餘 -> 500 只回通用訊息, 細節寫log
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	if ve, ok := errs.AsValidation(err); ok {
		var detail any
		if len(ve.ProductIDs) > 0 {
			detail = map[string]any{"productIds": ve.ProductIDs}
		}
		api.ErrorJSON(w, http.StatusBadRequest, detail, ve.Message)
		return
	}

	switch {
	case errors.Is(err, errs.ErrOrderNotFound):
		api.ErrorJSON(w, http.StatusNotFound, nil, "Orden no encontrada")
	case errors.Is(err, errs.ErrProductNotFound):
		api.ErrorJSON(w, http.StatusNotFound, nil, "Producto no encontrado")
	default:
		requestID := ""
		if v := r.Context().Value(constants.RequestIDKey); v != nil {
			requestID, _ = v.(string)
		}
		log.Error().
			Err(err).
			Str("request_id", requestID).
			Str("method", r.Method).
			Str("url", r.URL.String()).
			Msg("unhandled service error")
		api.ErrorJSON(w, http.StatusInternalServerError, nil, "Error interno del servidor")
	}
}
