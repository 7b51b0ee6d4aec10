package handlers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/autolens/autolens-api/internal/models"
	"github.com/autolens/autolens-api/internal/services"
)

// multipartImage builds a multipart body with a single part under the given
// field name and content type.
func multipartImage(t *testing.T, field, contentType string, data []byte) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="`+field+`"; filename="car.jpg"`)
	header.Set("Content-Type", contentType)

	part, err := writer.CreatePart(header)
	assert.NoError(t, err)
	_, err = part.Write(data)
	assert.NoError(t, err)
	assert.NoError(t, writer.Close())

	return body, writer.FormDataContentType()
}

func TestIdentifyHandler(t *testing.T) {
	record := models.VehicleRecord{Make: "Toyota", Model: "Camry", Year: "2020"}

	tests := []struct {
		name               string
		field              string
		contentType        string
		setupMocks         func(runner *MockIdentifyRunner, journal *MockIdentifyJournal, ledger *MockIdentifyBalancer)
		expectedStatusCode int
		expectedKey        string
	}{
		{
			name:        "successful identification",
			field:       "image",
			contentType: "image/jpeg",
			setupMocks: func(runner *MockIdentifyRunner, journal *MockIdentifyJournal, ledger *MockIdentifyBalancer) {
				runner.EXPECT().Identify(gomock.Any(), []byte("image-bytes")).Return(record, nil)
				journal.EXPECT().Append(gomock.Any(), record, gomock.Any()).Return(models.HistoryEntry{ID: "entry-1"}, nil)
				ledger.EXPECT().Balance(gomock.Any()).Return(int64(4))
			},
			expectedStatusCode: http.StatusOK,
			expectedKey:        "vehicle",
		},
		{
			name:               "missing image field",
			field:              "photo",
			contentType:        "image/jpeg",
			setupMocks:         func(runner *MockIdentifyRunner, journal *MockIdentifyJournal, ledger *MockIdentifyBalancer) {},
			expectedStatusCode: http.StatusBadRequest,
			expectedKey:        "error",
		},
		{
			name:               "non-image upload",
			field:              "image",
			contentType:        "application/pdf",
			setupMocks:         func(runner *MockIdentifyRunner, journal *MockIdentifyJournal, ledger *MockIdentifyBalancer) {},
			expectedStatusCode: http.StatusBadRequest,
			expectedKey:        "error",
		},
		{
			name:        "insufficient tokens",
			field:       "image",
			contentType: "image/jpeg",
			setupMocks: func(runner *MockIdentifyRunner, journal *MockIdentifyJournal, ledger *MockIdentifyBalancer) {
				runner.EXPECT().Identify(gomock.Any(), gomock.Any()).Return(models.VehicleRecord{}, services.ErrInsufficientTokens)
			},
			expectedStatusCode: http.StatusPaymentRequired,
			expectedKey:        "error",
		},
		{
			name:        "recognition service unavailable",
			field:       "image",
			contentType: "image/jpeg",
			setupMocks: func(runner *MockIdentifyRunner, journal *MockIdentifyJournal, ledger *MockIdentifyBalancer) {
				runner.EXPECT().Identify(gomock.Any(), gomock.Any()).Return(models.VehicleRecord{}, services.ErrTransportFailure)
			},
			expectedStatusCode: http.StatusBadGateway,
			expectedKey:        "error",
		},
		{
			name:        "unparseable recognition response",
			field:       "image",
			contentType: "image/jpeg",
			setupMocks: func(runner *MockIdentifyRunner, journal *MockIdentifyJournal, ledger *MockIdentifyBalancer) {
				runner.EXPECT().Identify(gomock.Any(), gomock.Any()).Return(models.VehicleRecord{}, services.ErrParseFailure)
			},
			expectedStatusCode: http.StatusUnprocessableEntity,
			expectedKey:        "error",
		},
		{
			name:        "journal failure does not fail the request",
			field:       "image",
			contentType: "image/png",
			setupMocks: func(runner *MockIdentifyRunner, journal *MockIdentifyJournal, ledger *MockIdentifyBalancer) {
				runner.EXPECT().Identify(gomock.Any(), gomock.Any()).Return(record, nil)
				journal.EXPECT().Append(gomock.Any(), record, gomock.Any()).Return(models.HistoryEntry{}, assert.AnError)
				ledger.EXPECT().Balance(gomock.Any()).Return(int64(4))
			},
			expectedStatusCode: http.StatusOK,
			expectedKey:        "vehicle",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRunner := NewMockIdentifyRunner(ctrl)
			mockJournal := NewMockIdentifyJournal(ctrl)
			mockLedger := NewMockIdentifyBalancer(ctrl)

			tt.setupMocks(mockRunner, mockJournal, mockLedger)

			body, formContentType := multipartImage(t, tt.field, tt.contentType, []byte("image-bytes"))

			req := httptest.NewRequest(http.MethodPost, "/identify", body)
			req.Header.Set("Content-Type", formContentType)
			rr := httptest.NewRecorder()

			handler := NewIdentifyHandler(mockRunner, mockJournal, mockLedger)
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatusCode, rr.Code)

			var resp map[string]interface{}
			err := json.NewDecoder(rr.Body).Decode(&resp)
			assert.NoError(t, err)

			_, ok := resp[tt.expectedKey]
			assert.True(t, ok, "response should contain key %s", tt.expectedKey)
		})
	}
}

func TestIdentifyHandler_BuildsImageDataURL(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	record := models.VehicleRecord{Make: "Toyota"}

	mockRunner := NewMockIdentifyRunner(ctrl)
	mockRunner.EXPECT().Identify(gomock.Any(), []byte("image-bytes")).Return(record, nil)

	mockJournal := NewMockIdentifyJournal(ctrl)
	// "image-bytes" base64-encodes to aW1hZ2UtYnl0ZXM=
	mockJournal.EXPECT().
		Append(gomock.Any(), record, "data:image/jpeg;base64,aW1hZ2UtYnl0ZXM=").
		Return(models.HistoryEntry{ID: "entry-1"}, nil)

	mockLedger := NewMockIdentifyBalancer(ctrl)
	mockLedger.EXPECT().Balance(gomock.Any()).Return(int64(4))

	body, formContentType := multipartImage(t, "image", "image/jpeg", []byte("image-bytes"))

	req := httptest.NewRequest(http.MethodPost, "/identify", body)
	req.Header.Set("Content-Type", formContentType)
	rr := httptest.NewRecorder()

	handler := NewIdentifyHandler(mockRunner, mockJournal, mockLedger)
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp IdentifyResponse
	assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, "entry-1", resp.HistoryID)
	assert.Equal(t, int64(4), resp.Balance)
}
