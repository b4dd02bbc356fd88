package routes

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dsalazar-dev/restoops-backend/api/controllers"
	"github.com/dsalazar-dev/restoops-backend/api/middleware"
	"github.com/dsalazar-dev/restoops-backend/api/responses"
	"github.com/dsalazar-dev/restoops-backend/internal/kpis"
	"github.com/dsalazar-dev/restoops-backend/internal/records"
	"github.com/dsalazar-dev/restoops-backend/pkg/config"
	pkgerrors "github.com/dsalazar-dev/restoops-backend/pkg/errors"
	"github.com/dsalazar-dev/restoops-backend/pkg/logger"
	"github.com/dsalazar-dev/restoops-backend/pkg/metrics"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	loc *time.Location,
	recordsService records.Service,
	kpiService kpis.Service,
	httpMetrics *metrics.HTTPMetrics,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(cfg.CORS),
		middleware.Metrics(httpMetrics),
	)

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		responses.WriteError(req.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "route not found"))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		responses.WriteError(req.Context(), logg, w, pkgerrors.New(pkgerrors.CodeMethodNotAllowed, "method not allowed"))
	})

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
	})

	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Get("/kpis", controllers.GetKPIs(kpiService, loc, logg))

		r.Route("/inventario", func(r chi.Router) {
			r.Get("/", controllers.ListInventory(recordsService, logg))
			r.Post("/", controllers.CreateInventoryItem(recordsService, logg))
			r.Put("/", controllers.UpdateInventoryItem(recordsService, logg))
			r.Patch("/", controllers.ToggleInventoryItem(recordsService, logg))
		})

		r.Get("/movimientos", controllers.ListMovements(recordsService, logg))
		r.Get("/ventas", controllers.ListSales(recordsService, logg))
		r.Get("/usuarios", controllers.ListUsers(recordsService, logg))

		r.Route("/pedidos", func(r chi.Router) {
			r.Get("/", controllers.ListOrders(recordsService, logg))
			r.Post("/", controllers.CreateOrder(recordsService, logg))
			r.Put("/", controllers.UpdateOrder(recordsService, logg))
			r.Delete("/", controllers.DeleteOrder(recordsService, logg))
		})

		r.Route("/reservas", func(r chi.Router) {
			r.Get("/", controllers.ListReservations(recordsService, logg))
			r.Post("/", controllers.CreateReservation(recordsService, logg))
			r.Put("/", controllers.UpdateReservation(recordsService, logg))
			r.Delete("/", controllers.DeleteReservation(recordsService, logg))
		})

		r.Route("/tareas", func(r chi.Router) {
			r.Get("/", controllers.ListTasks(recordsService, logg))
			r.Post("/", controllers.CreateTask(recordsService, logg))
			r.Put("/", controllers.UpdateTask(recordsService, logg))
			r.Delete("/", controllers.DeleteTask(recordsService, logg))
		})
	})

	return r
}
