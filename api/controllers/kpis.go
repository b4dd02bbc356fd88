package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/dsalazar-dev/restoops-backend/api/responses"
	"github.com/dsalazar-dev/restoops-backend/api/validators"
	"github.com/dsalazar-dev/restoops-backend/internal/daterange"
	"github.com/dsalazar-dev/restoops-backend/internal/kpis"
	pkgerrors "github.com/dsalazar-dev/restoops-backend/pkg/errors"
	"github.com/dsalazar-dev/restoops-backend/pkg/logger"
)

// swappable in tests
var timeNow = time.Now

type KPIService interface {
	Query(ctx context.Context, req kpis.QueryRequest) (*kpis.Summary, error)
}

// GetKPIs resolves the requested date window and runs the aggregation. The
// window is anchored to the restaurant's local midnight, not server time.
func GetKPIs(svc KPIService, loc *time.Location, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "kpi service unavailable"))
			return
		}

		sel, err := daterange.ParseSelector(validators.QueryString(r, "range"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		now := timeNow().In(loc)
		window, err := daterange.Resolve(
			sel,
			validators.QueryString(r, "customStart"),
			validators.QueryString(r, "customEnd"),
			now,
		)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		summary, err := svc.Query(r.Context(), kpis.QueryRequest{Window: window, Now: now})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, summary)
	}
}
