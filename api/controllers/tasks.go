package controllers

import (
	"context"
	"net/http"

	"github.com/dsalazar-dev/restoops-backend/api/responses"
	"github.com/dsalazar-dev/restoops-backend/api/validators"
	"github.com/dsalazar-dev/restoops-backend/internal/records"
	"github.com/dsalazar-dev/restoops-backend/pkg/airtable"
	"github.com/dsalazar-dev/restoops-backend/pkg/logger"
)

type TaskService interface {
	ListTasks(ctx context.Context) ([]records.Task, error)
	CreateTask(ctx context.Context, fields records.Fields) (*records.Task, error)
	UpdateTask(ctx context.Context, recordID string, fields records.Fields) (*records.Task, error)
	DeleteTask(ctx context.Context, recordID string) (*airtable.DeletedRecord, error)
}

func ListTasks(svc TaskService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tasks, err := svc.ListTasks(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, tasks)
	}
}

func CreateTask(svc TaskService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload taskRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		task, err := svc.CreateTask(r.Context(), payload.fields(true))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteCreated(w, task)
	}
}

func UpdateTask(svc TaskService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload taskRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		task, err := svc.UpdateTask(r.Context(), payload.RecordID, payload.fields(false))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, task)
	}
}

func DeleteTask(svc TaskService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload deleteRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		deleted, err := svc.DeleteTask(r.Context(), payload.RecordID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, deleted)
	}
}

type taskRequest struct {
	RecordID          string   `json:"recordId,omitempty"`
	Tarea             *string  `json:"Tarea,omitempty"`
	Descripcion       *string  `json:"Descripción,omitempty"`
	Responsable       []string `json:"Responsable,omitempty"`
	FechaLimite       *string  `json:"Fecha Limite,omitempty"`
	FechaFinalizacion *string  `json:"Fecha de finalización,omitempty"`
	Estado            *string  `json:"Estado,omitempty"`
	Prioridad         *string  `json:"Prioridad,omitempty"`
	Activa            *bool    `json:"Activa,omitempty"`
}

// Responsable carries user record ids. Updates may clear the description.
func (p taskRequest) fields(create bool) records.Fields {
	fields := records.Fields{}
	setString(fields, "Tarea", p.Tarea)
	setStringList(fields, "Responsable", p.Responsable)
	setString(fields, "Fecha Limite", p.FechaLimite)
	setString(fields, "Fecha de finalización", p.FechaFinalizacion)
	setString(fields, "Estado", p.Estado)
	setString(fields, "Prioridad", p.Prioridad)
	setBool(fields, "Activa", p.Activa)
	if create {
		setString(fields, "Descripción", p.Descripcion)
	} else {
		setStringAllowEmpty(fields, "Descripción", p.Descripcion)
	}
	return fields
}
