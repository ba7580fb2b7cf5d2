package handlers

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/team-manager/internal/models"
	"github.com/sbilibin2017/team-manager/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func eventRouter(svc EventManager) http.Handler {
	r := chi.NewRouter()
	r.Get("/events", NewListEventsHandler(svc))
	r.Get("/events/upcoming", NewUpcomingEventsHandler(svc))
	r.Post("/events", NewCreateEventHandler(svc))
	r.Get("/events/{id}", NewGetEventHandler(svc))
	r.Patch("/events/{id}", NewUpdateEventHandler(svc))
	r.Delete("/events/{id}", NewDeleteEventHandler(svc))
	return r
}

func TestEventHandlers_UpcomingIsNotAnID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	start := time.Date(2025, 10, 20, 18, 0, 0, 0, time.UTC)
	m := NewMockEventManager(ctrl)
	m.EXPECT().Upcoming(gomock.Any()).Return([]models.Event{
		{ID: "e1", Title: "Game vs Lakers", EventType: models.EventGame, StartDate: start, CreatedBy: "u1"},
	}, nil)

	w := serve(eventRouter(m), http.MethodGet, "/events/upcoming", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var got []models.Event
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "e1", got[0].ID)
	assert.True(t, start.Equal(got[0].StartDate))
}

func TestEventHandlers_EmptyListIsArray(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := NewMockEventManager(ctrl)
	m.EXPECT().List(gomock.Any()).Return([]models.Event{}, nil)

	w := serve(eventRouter(m), http.MethodGet, "/events", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestEventHandlers_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		body         string
		mockSetup    func(m *MockEventManager)
		expectedCode int
		expectedErr  string
	}{
		{
			name: "created",
			body: `{"title":"Practice","eventType":"training","startDate":"2025-10-20T18:00:00Z","createdBy":"u1"}`,
			mockSetup: func(m *MockEventManager) {
				m.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ any, in models.NewEvent) (*models.Event, error) {
						assert.Equal(t, models.EventTraining, in.EventType)
						assert.Nil(t, in.IsMandatory)
						return &models.Event{ID: "e1", Title: in.Title, EventType: in.EventType, StartDate: in.StartDate, CreatedBy: in.CreatedBy}, nil
					})
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:         "unknown type",
			body:         `{"title":"Party","eventType":"party","startDate":"2025-10-20T18:00:00Z","createdBy":"u1"}`,
			mockSetup:    func(m *MockEventManager) {},
			expectedCode: http.StatusBadRequest,
			expectedErr:  "Invalid request body",
		},
		{
			name:         "missing start",
			body:         `{"title":"Practice","eventType":"training","createdBy":"u1"}`,
			mockSetup:    func(m *MockEventManager) {},
			expectedCode: http.StatusBadRequest,
			expectedErr:  "Invalid request body",
		},
		{
			name: "end before start",
			body: `{"title":"Practice","eventType":"training","startDate":"2025-10-20T18:00:00Z","endDate":"2025-10-20T17:00:00Z","createdBy":"u1"}`,
			mockSetup: func(m *MockEventManager) {
				m.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, services.ErrInvalidInput)
			},
			expectedCode: http.StatusBadRequest,
			expectedErr:  "Invalid input",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMockEventManager(ctrl)
			tt.mockSetup(m)

			w := serve(eventRouter(m), http.MethodPost, "/events", []byte(tt.body))
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedErr != "" {
				assert.JSONEq(t, `{"error":"`+tt.expectedErr+`"}`, w.Body.String())
			}
		})
	}
}

func TestEventHandlers_GetUnknown(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := NewMockEventManager(ctrl)
	m.EXPECT().Get(gomock.Any(), "missing").Return(nil, services.ErrNotFound)

	w := serve(eventRouter(m), http.MethodGet, "/events/missing", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Event not found"}`, w.Body.String())
}
