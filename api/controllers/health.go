package controllers

import (
	"net/http"

	"github.com/dsalazar-dev/restoops-backend/api/responses"
	"github.com/dsalazar-dev/restoops-backend/pkg/config"
)

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-RestoOps-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}
