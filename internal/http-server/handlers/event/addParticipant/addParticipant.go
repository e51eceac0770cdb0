package addParticipant

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"eventRegistrar/internal/ledger"
	"eventRegistrar/internal/lib/api/response"
	"eventRegistrar/internal/lib/logger/sl"
	"eventRegistrar/internal/models"
	"eventRegistrar/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type RegistrationRequest struct {
	Name string `json:"name" validate:"required"`
	CPF  string `json:"cpf" validate:"required"`
	PCD  bool   `json:"pcd"`
}

type RegistrationResponse struct {
	response.Response
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ParticipantAdder
type ParticipantAdder interface {
	AddParticipant(ctx context.Context, eventID string, draft models.Participant) error
}

func New(log *slog.Logger, registrar ParticipantAdder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.addParticipant.New"

		log = log.With(slog.String("op", op))

		eventID := chi.URLParam(r, "id")
		if eventID == "" {
			log.Error("event id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("event id is required"))
			return
		}

		log = log.With(slog.String("event_id", eventID))

		var req RegistrationRequest

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

		err = registrar.AddParticipant(r.Context(), eventID, models.Participant{
			Name: req.Name,
			CPF:  req.CPF,
			PCD:  req.PCD,
		})
		if err != nil {
			log.Error("failed to add participant", sl.Err(err))

			switch {
			case errors.Is(err, ledger.ErrMissingIdentifier),
				errors.Is(err, ledger.ErrInvalidIdentifier):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error(err.Error()))
			case errors.Is(err, ledger.ErrNoSlotsAvailable),
				errors.Is(err, ledger.ErrDuplicateRegistration):
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error(err.Error()))
			case errors.Is(err, storage.ErrEventNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("event not found"))
			case errors.Is(err, storage.ErrSnapshotConflict):
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("event is being updated, try again"))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to add participant"))
			}

			return
		}

		log.Info("participant added")

		responseOK(w, r)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, RegistrationResponse{
		Response: response.OK(),
	})
}
