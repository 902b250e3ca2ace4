package dto

import (
	"net/http"
	"rimbest/shared/constant"
	"rimbest/shared/failure"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// PathID returns the numeric {id} route parameter.
func PathID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, constant.RequestParamID)

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, failure.Validation(constant.RequestParamID, "id must be a positive number")
	}

	return id, nil
}

// PathString returns the {id} route parameter as is.
func PathString(r *http.Request) (string, error) {
	raw := chi.URLParam(r, constant.RequestParamID)
	if raw == "" {
		return "", failure.Validation(constant.RequestParamID, "id is required")
	}

	return raw, nil
}
