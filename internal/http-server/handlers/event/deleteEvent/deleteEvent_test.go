package deleteEvent

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"eventRegistrar/internal/http-server/handlers/event/deleteEvent/mocks"
	"eventRegistrar/internal/lib/logger/handlers/slogdiscard"
	"eventRegistrar/internal/registration"
	"eventRegistrar/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeleteEventHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		eventID        string
		requestBody    string
		mockSetup      func(m *mocks.EventDeleter)
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:        "Success",
			eventID:     "evt-1",
			requestBody: `{"confirmation_id": "evt-1"}`,
			mockSetup: func(m *mocks.EventDeleter) {
				m.On("DeleteEvent", mock.Anything, "evt-1", "evt-1").Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK"}`,
		},
		{
			name:        "Confirmation mismatch",
			eventID:     "evt-1",
			requestBody: `{"confirmation_id": "evt-9"}`,
			mockSetup: func(m *mocks.EventDeleter) {
				m.On("DeleteEvent", mock.Anything, "evt-1", "evt-9").
					Return(registration.ErrConfirmationMismatch)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"confirmation id does not match event id"}`,
		},
		{
			name:           "Missing confirmation id",
			eventID:        "evt-1",
			requestBody:    `{}`,
			mockSetup:      func(m *mocks.EventDeleter) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"Error"`)
				assert.Contains(t, body, "ConfirmationId")
			},
		},
		{
			name:        "Event not found",
			eventID:     "missing",
			requestBody: `{"confirmation_id": "missing"}`,
			mockSetup: func(m *mocks.EventDeleter) {
				m.On("DeleteEvent", mock.Anything, "missing", "missing").
					Return(storage.ErrEventNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"event not found"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockDeleter := mocks.NewEventDeleter(t)
			tc.mockSetup(mockDeleter)

			handler := New(logger, mockDeleter)

			router := chi.NewRouter()
			router.Delete("/events/{id}", handler)

			req, err := http.NewRequest("DELETE", "/events/"+tc.eventID, bytes.NewBufferString(tc.requestBody))
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")

			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
			} else if tc.checkBody != nil {
				tc.checkBody(t, rr.Body.String())
			}
		})
	}
}
