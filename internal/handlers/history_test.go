package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/autolens/autolens-api/internal/models"
	"github.com/autolens/autolens-api/internal/services"
)

func TestHistoryListHandler(t *testing.T) {
	tests := []struct {
		name           string
		target         string
		expectedFilter string
		entries        []models.HistoryEntry
	}{
		{
			name:           "no filter",
			target:         "/history",
			expectedFilter: "",
			entries: []models.HistoryEntry{
				{ID: "a", Make: "Toyota"},
				{ID: "b", Make: "Honda"},
			},
		},
		{
			name:           "with filter",
			target:         "/history?q=toyota",
			expectedFilter: "toyota",
			entries: []models.HistoryEntry{
				{ID: "a", Make: "Toyota"},
			},
		},
		{
			name:           "empty history",
			target:         "/history",
			expectedFilter: "",
			entries:        []models.HistoryEntry{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockLister := NewMockHistoryLister(ctrl)
			mockLister.EXPECT().List(gomock.Any(), tt.expectedFilter).Return(tt.entries)

			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			rr := httptest.NewRecorder()

			handler := NewHistoryListHandler(mockLister)
			handler.ServeHTTP(rr, req)

			assert.Equal(t, http.StatusOK, rr.Code)

			var resp HistoryListResponse
			assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
			assert.Len(t, resp.Entries, len(tt.entries))
		})
	}
}

func TestHistoryGetHandler(t *testing.T) {
	tests := []struct {
		name               string
		entryID            string
		setupMocks         func(mockGetter *MockHistoryGetter)
		expectedStatusCode int
	}{
		{
			name:    "entry found",
			entryID: "entry-1",
			setupMocks: func(mockGetter *MockHistoryGetter) {
				mockGetter.EXPECT().Get(gomock.Any(), "entry-1").
					Return(models.HistoryEntry{ID: "entry-1", Make: "Toyota"}, nil)
			},
			expectedStatusCode: http.StatusOK,
		},
		{
			name:    "entry not found",
			entryID: "missing",
			setupMocks: func(mockGetter *MockHistoryGetter) {
				mockGetter.EXPECT().Get(gomock.Any(), "missing").
					Return(models.HistoryEntry{}, services.ErrNotFound)
			},
			expectedStatusCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockGetter := NewMockHistoryGetter(ctrl)
			tt.setupMocks(mockGetter)

			router := chi.NewRouter()
			router.Get("/history/{id}", NewHistoryGetHandler(mockGetter))

			req := httptest.NewRequest(http.MethodGet, "/history/"+tt.entryID, nil)
			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatusCode, rr.Code)
		})
	}
}

func TestHistoryClearHandler(t *testing.T) {
	tests := []struct {
		name               string
		setupMocks         func(mockClearer *MockHistoryClearer)
		expectedStatusCode int
	}{
		{
			name: "cleared",
			setupMocks: func(mockClearer *MockHistoryClearer) {
				mockClearer.EXPECT().Clear(gomock.Any()).Return(nil)
			},
			expectedStatusCode: http.StatusNoContent,
		},
		{
			name: "store failure",
			setupMocks: func(mockClearer *MockHistoryClearer) {
				mockClearer.EXPECT().Clear(gomock.Any()).Return(assert.AnError)
			},
			expectedStatusCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockClearer := NewMockHistoryClearer(ctrl)
			tt.setupMocks(mockClearer)

			req := httptest.NewRequest(http.MethodDelete, "/history", nil)
			rr := httptest.NewRecorder()

			handler := NewHistoryClearHandler(mockClearer)
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatusCode, rr.Code)
		})
	}
}
