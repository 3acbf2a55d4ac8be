package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/MKhiriev/inkloth/internal/config"
	"github.com/MKhiriev/inkloth/internal/logger"
	"github.com/MKhiriev/inkloth/internal/service"
	"github.com/MKhiriev/inkloth/models"
	"github.com/go-chi/chi/v5"
)

type Handler struct {
	services *service.Services

	// cookieExpire is the lifetime of the "token" cookie.
	cookieExpire time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.App, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:     services,
		cookieExpire: cfg.CookieExpire,
		logger:       logger,
	}
}

// decodeJSON decodes the request body into dst, rejecting unknown fields.
func decodeJSON(r *http.Request, dst any) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return nil
}

func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id < 1 {
		return 0, ErrInvalidID
	}
	return id, nil
}

// pageFromQuery reads ?page and ?limit. Missing or unparsable values are left
// zero and replaced by the service defaults.
func pageFromQuery(r *http.Request) models.Page {
	query := r.URL.Query()
	number, _ := strconv.Atoi(query.Get("page"))
	limit, _ := strconv.Atoi(query.Get("limit"))
	return models.Page{Number: number, Limit: limit}
}
