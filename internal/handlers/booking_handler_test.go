package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/alankritha/salon-booking/internal/models"
)

type mockStore struct {
	mock.Mock
}

func (m *mockStore) Name() string {
	args := m.Called()
	return args.String(0)
}

func (m *mockStore) CreateDocument(ctx context.Context, collection string, doc any) (string, error) {
	args := m.Called(ctx, collection, doc)
	return args.String(0), args.Error(1)
}

func (m *mockStore) ListCollectionNames(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func bookingRouter(store DocumentStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/book", NewBookingHandler(store).Create)
	return r
}

func postBooking(r *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/book", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

const validBody = `{
	"name": "Jane Doe",
	"phone": "1234567890",
	"email": "jane@example.com",
	"service": "Facials",
	"preferred_datetime": "2025-06-01T10:00:00"
}`

func TestCreateBookingSuccess(t *testing.T) {
	store := new(mockStore)
	store.On("CreateDocument", mock.Anything, models.BookingCollection, mock.MatchedBy(func(doc any) bool {
		b, ok := doc.(*models.Booking)
		return ok && b.Status == "pending" && b.Name == "Jane Doe"
	})).Return("64a1f0e2c9b4a13d2f8e7a61", nil)

	w := postBooking(bookingRouter(store), validBody)
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, "success", resp["status"])
	assert.Equal(t, "64a1f0e2c9b4a13d2f8e7a61", resp["booking_id"])
	assert.NotEmpty(t, resp["message"])

	invite, _ := resp["ics"].(string)
	assert.Contains(t, invite, "DTSTART:20250601T100000")
	assert.Contains(t, invite, "DTEND:20250601T110000")
	assert.Contains(t, invite, "UID:booking-20250601T100000-jane@example.com")

	store.AssertExpectations(t)
}

func TestCreateBookingBadDateText(t *testing.T) {
	store := new(mockStore)

	body := strings.Replace(validBody, "2025-06-01T10:00:00", "not-a-date", 1)
	w := postBooking(bookingRouter(store), body)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Invalid preferred_datetime format. Use ISO 8601.", resp["detail"])

	store.AssertNotCalled(t, "CreateDocument", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateBookingValidationFailure(t *testing.T) {
	store := new(mockStore)

	body := strings.Replace(validBody, "Facials", "Massage", 1)
	w := postBooking(bookingRouter(store), body)

	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var resp struct {
		Detail []struct {
			Field   string `json:"field"`
			Message string `json:"message"`
		} `json:"detail"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Detail, 1)
	assert.Equal(t, "service", resp.Detail[0].Field)

	store.AssertNotCalled(t, "CreateDocument", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateBookingPersistenceFailure(t *testing.T) {
	store := new(mockStore)
	store.On("CreateDocument", mock.Anything, models.BookingCollection, mock.Anything).
		Return("", errors.New("server selection timeout"))

	w := postBooking(bookingRouter(store), validBody)
	require.Equal(t, http.StatusInternalServerError, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Database error: server selection timeout", resp["detail"])
}

func TestCreateBookingWithoutStore(t *testing.T) {
	w := postBooking(bookingRouter(nil), validBody)
	require.Equal(t, http.StatusInternalServerError, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp["detail"], "Database error")
}

func TestCreateBookingMalformedJSON(t *testing.T) {
	store := new(mockStore)

	w := postBooking(bookingRouter(store), `{"name": `)
	require.Equal(t, http.StatusBadRequest, w.Code)

	store.AssertNotCalled(t, "CreateDocument", mock.Anything, mock.Anything, mock.Anything)
}
