package createEvent

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"eventRegistrar/internal/lib/api/response"
	"eventRegistrar/internal/lib/logger/sl"
	"eventRegistrar/internal/registration"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type EventRequest struct {
	EventName    string    `json:"eventname" validate:"required"`
	EventDate    time.Time `json:"eventdata" validate:"required"`
	Slots        int       `json:"slots" validate:"required,gt=0"`
	Observations string    `json:"observations"`
}

type EventResponse struct {
	response.Response
	EventId string `json:"event_id"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventCreator
type EventCreator interface {
	CreateEvent(ctx context.Context, name string, date time.Time, slots int, observations string) (string, error)
}

func New(log *slog.Logger, creator EventCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.createEvent.New"

		log = log.With(
			slog.String("op", op),
		)

		var req EventRequest

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
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))

			return
		}

		eventId, err := creator.CreateEvent(r.Context(), req.EventName, req.EventDate, req.Slots, req.Observations)
		if err != nil {
			log.Error("failed to add event", sl.Err(err))

			switch {
			case errors.Is(err, registration.ErrEmptyEventName),
				errors.Is(err, registration.ErrInvalidSlots):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error(err.Error()))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to add event"))
			}

			return
		}

		log.Info("event added", slog.String("id", eventId))

		responseOK(w, r, eventId)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, eventId string) {
	render.JSON(w, r, EventResponse{
		Response: response.OK(),
		EventId:  eventId,
	})
}
