package removeParticipant

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"eventRegistrar/internal/lib/api/response"
	"eventRegistrar/internal/lib/logger/sl"
	"eventRegistrar/internal/registration"
	"eventRegistrar/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type RemovalRequest struct {
	CPF string `json:"cpf" validate:"required"`
	// ConfirmationId must repeat the event id; destructive operations are
	// refused without it.
	ConfirmationId string `json:"confirmation_id" validate:"required"`
}

type RemovalResponse struct {
	response.Response
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ParticipantRemover
type ParticipantRemover interface {
	RemoveParticipant(ctx context.Context, eventID, rawCPF, confirmationID string) error
}

func New(log *slog.Logger, registrar ParticipantRemover) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.removeParticipant.New"

		log = log.With(slog.String("op", op))

		eventID := chi.URLParam(r, "id")
		if eventID == "" {
			log.Error("event id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("event id is required"))
			return
		}

		log = log.With(slog.String("event_id", eventID))

		var req RemovalRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		log.Info("request body decoded", slog.Any("request", req))

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			if errors.As(err, &validateErr) {
				log.Error("invalid request", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.ValidationError(validateErr))
				return
			}
		}

		err = registrar.RemoveParticipant(r.Context(), eventID, req.CPF, req.ConfirmationId)
		if err != nil {
			log.Error("failed to remove participant", sl.Err(err))

			switch {
			case errors.Is(err, registration.ErrConfirmationMismatch):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("confirmation id does not match event id"))
			case errors.Is(err, storage.ErrEventNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("event not found"))
			case errors.Is(err, storage.ErrSnapshotConflict):
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("event is being updated, try again"))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to remove participant"))
			}

			return
		}

		log.Info("participant removed")

		responseOK(w, r)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, RemovalResponse{
		Response: response.OK(),
	})
}
