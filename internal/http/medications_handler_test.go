//go:build !integration

package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/medpak/webster-service/internal/domain/dto"
	"github.com/medpak/webster-service/internal/domain/model"
	"github.com/medpak/webster-service/internal/middleware"
	"github.com/medpak/webster-service/internal/mocks"
	"github.com/medpak/webster-service/internal/service"
)

func setupMedicationsRouter() (*gin.Engine, *mocks.MockMedicationService) {
	medications := new(mocks.MockMedicationService)
	handler := NewMedicationsHandler(medications)

	router := gin.New()
	router.Use(middleware.RequestID())
	router.POST("/api/medications", handler.Create)
	router.GET("/api/medications", handler.List)
	router.GET("/api/medications/barcode/:code", handler.GetByBarcode)
	router.GET("/api/medications/:id", handler.Get)
	return router, medications
}

func TestCreateMedication(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setupMock      func(*mocks.MockMedicationService)
		expectedStatus int
	}{
		{
			name: "valid request",
			body: `{"brand_name": "Lipitor", "strength": "20mg", "form": "tablet", "barcode": "9312345678907"}`,
			setupMock: func(m *mocks.MockMedicationService) {
				m.On("Create", mock.Anything, mock.MatchedBy(func(req dto.CreateMedicationRequest) bool {
					return req.Barcode == "9312345678907"
				})).Return(&model.Medication{
					ID:      primitive.NewObjectID(),
					Barcode: "9312345678907",
				}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "missing barcode",
			body:           `{"brand_name": "Lipitor", "strength": "20mg", "form": "tablet"}`,
			setupMock:      func(m *mocks.MockMedicationService) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, medications := setupMedicationsRouter()
			tt.setupMock(medications)

			req := httptest.NewRequest(http.MethodPost, "/api/medications", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			medications.AssertExpectations(t)
		})
	}
}

func TestGetMedicationByBarcode(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		router, medications := setupMedicationsRouter()
		medications.On("GetByBarcode", mock.Anything, "9312345678907").
			Return(&model.Medication{Barcode: "9312345678907", BrandName: "Lipitor"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/medications/barcode/9312345678907", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		resp := decodeSuccess(t, w)

		dataBytes, _ := json.Marshal(resp.Data)
		var med model.Medication
		require.NoError(t, json.Unmarshal(dataBytes, &med))
		assert.Equal(t, "Lipitor", med.BrandName)
	})

	t.Run("unknown barcode", func(t *testing.T) {
		router, medications := setupMedicationsRouter()
		medications.On("GetByBarcode", mock.Anything, "0000").
			Return(nil, service.ErrMedicationNotFound)

		req := httptest.NewRequest(http.MethodGet, "/api/medications/barcode/0000", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestListMedications(t *testing.T) {
	tests := []struct {
		name           string
		query          string
		setupMock      func(*mocks.MockMedicationService)
		expectedStatus int
	}{
		{
			name:  "default limit",
			query: "",
			setupMock: func(m *mocks.MockMedicationService) {
				m.On("List", mock.Anything, 100).Return([]model.Medication{{BrandName: "Lipitor"}}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:  "explicit limit",
			query: "?limit=5",
			setupMock: func(m *mocks.MockMedicationService) {
				m.On("List", mock.Anything, 5).Return([]model.Medication{}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "invalid limit",
			query:          "?limit=abc",
			setupMock:      func(m *mocks.MockMedicationService) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, medications := setupMedicationsRouter()
			tt.setupMock(medications)

			req := httptest.NewRequest(http.MethodGet, "/api/medications"+tt.query, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			medications.AssertExpectations(t)
		})
	}
}

func TestGetMedication(t *testing.T) {
	medicationID := primitive.NewObjectID()

	t.Run("found", func(t *testing.T) {
		router, medications := setupMedicationsRouter()
		medications.On("GetByID", mock.Anything, medicationID).
			Return(&model.Medication{ID: medicationID}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/medications/"+medicationID.Hex(), nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("not found", func(t *testing.T) {
		router, medications := setupMedicationsRouter()
		medications.On("GetByID", mock.Anything, medicationID).
			Return(nil, service.ErrMedicationNotFound)

		req := httptest.NewRequest(http.MethodGet, "/api/medications/"+medicationID.Hex(), nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
