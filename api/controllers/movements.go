package controllers

import (
	"context"
	"net/http"

	"github.com/dsalazar-dev/restoops-backend/api/responses"
	"github.com/dsalazar-dev/restoops-backend/internal/records"
	"github.com/dsalazar-dev/restoops-backend/pkg/logger"
)

type MovementService interface {
	ListMovements(ctx context.Context) ([]records.Movement, error)
}

// Movements are written by the POS integration, never through this API.
func ListMovements(svc MovementService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		movements, err := svc.ListMovements(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, movements)
	}
}
