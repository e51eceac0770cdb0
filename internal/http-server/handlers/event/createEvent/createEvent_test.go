package createEvent

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"eventRegistrar/internal/http-server/handlers/event/createEvent/mocks"
	"eventRegistrar/internal/lib/logger/handlers/slogdiscard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateEventHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testTime := time.Date(2025, 3, 1, 19, 0, 0, 0, time.UTC)

	testCases := []struct {
		name           string
		requestBody    string
		mockSetup      func(m *mocks.EventCreator)
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, body string)
	}{
		{
			name: "Success",
			requestBody: `{
				"eventname": "Workshop",
				"eventdata": "2025-03-01T19:00:00Z",
				"slots": 25,
				"observations": "bring a laptop"
			}`,
			mockSetup: func(m *mocks.EventCreator) {
				m.On("CreateEvent", mock.Anything, "Workshop", testTime, 25, "bring a laptop").
					Return("7b9c8a52-1d2e-4f34-9a1b-3c4d5e6f7a88", nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","event_id":"7b9c8a52-1d2e-4f34-9a1b-3c4d5e6f7a88"}`,
		},
		{
			name: "Observations optional",
			requestBody: `{
				"eventname": "Workshop",
				"eventdata": "2025-03-01T19:00:00Z",
				"slots": 25
			}`,
			mockSetup: func(m *mocks.EventCreator) {
				m.On("CreateEvent", mock.Anything, "Workshop", testTime, 25, "").
					Return("evt-1", nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","event_id":"evt-1"}`,
		},
		{
			name:           "Invalid JSON",
			requestBody:    `invalid json`,
			mockSetup:      func(m *mocks.EventCreator) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"failed to decode request"}`,
		},
		{
			name: "Missing eventname",
			requestBody: `{
				"eventdata": "2025-03-01T19:00:00Z",
				"slots": 25
			}`,
			mockSetup:      func(m *mocks.EventCreator) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"Error"`)
				assert.Contains(t, body, "EventName")
			},
		},
		{
			name: "Missing eventdata",
			requestBody: `{
				"eventname": "Workshop",
				"slots": 25
			}`,
			mockSetup:      func(m *mocks.EventCreator) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"Error"`)
				assert.Contains(t, body, "EventDate")
			},
		},
		{
			name: "Zero slots",
			requestBody: `{
				"eventname": "Workshop",
				"eventdata": "2025-03-01T19:00:00Z",
				"slots": 0
			}`,
			mockSetup:      func(m *mocks.EventCreator) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"Error"`)
				assert.Contains(t, body, "Slots")
			},
		},
		{
			name: "Negative slots",
			requestBody: `{
				"eventname": "Workshop",
				"eventdata": "2025-03-01T19:00:00Z",
				"slots": -3
			}`,
			mockSetup:      func(m *mocks.EventCreator) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"Error"`)
				assert.Contains(t, body, "Slots")
			},
		},
		{
			name: "Invalid date format",
			requestBody: `{
				"eventname": "Workshop",
				"eventdata": "not-a-date",
				"slots": 25
			}`,
			mockSetup:      func(m *mocks.EventCreator) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"failed to decode request"}`,
		},
		{
			name: "Internal server error",
			requestBody: `{
				"eventname": "Workshop",
				"eventdata": "2025-03-01T19:00:00Z",
				"slots": 25
			}`,
			mockSetup: func(m *mocks.EventCreator) {
				m.On("CreateEvent", mock.Anything, "Workshop", testTime, 25, "").
					Return("", errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to add event"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockCreator := mocks.NewEventCreator(t)
			tc.mockSetup(mockCreator)

			handler := New(logger, mockCreator)

			req, err := http.NewRequest("POST", "/events", bytes.NewBufferString(tc.requestBody))
			require.NoError(t, err)

			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")

			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
			} else if tc.checkBody != nil {
				tc.checkBody(t, rr.Body.String())
			}
		})
	}
}

func TestResponseOK(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest("GET", "/", nil)
	rr := httptest.NewRecorder()

	responseOK(rr, req, "evt-42")

	assert.Equal(t, http.StatusOK, rr.Code)

	var actualResponse EventResponse
	err := json.Unmarshal(rr.Body.Bytes(), &actualResponse)
	require.NoError(t, err)

	assert.Equal(t, "OK", actualResponse.Status)
	assert.Equal(t, "", actualResponse.Error)
	assert.Equal(t, "evt-42", actualResponse.EventId)
}
