package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	domain "github.com/alankritha/salon-booking/internal/domain/booking"
	"github.com/alankritha/salon-booking/internal/httperr"
	"github.com/alankritha/salon-booking/internal/httpresp"
	"github.com/alankritha/salon-booking/internal/ics"
	"github.com/alankritha/salon-booking/internal/models"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

type BookingHandler struct {
	store DocumentStore
}

func NewBookingHandler(store DocumentStore) *BookingHandler {
	return &BookingHandler{store: store}
}

////////////////////////////////////////////////////////
// CREATE BOOKING
////////////////////////////////////////////////////////

// Create accepts a loosely-structured booking payload, coerces the
// datetime, validates the schema, persists the record and returns the
// confirmation with the calendar invite. Nothing is written before the
// single insert, so a failure at any step leaves no partial state.
func (h *BookingHandler) Create(c *gin.Context) {
	var payload map[string]any
	if err := c.ShouldBindJSON(&payload); err != nil {
		httperr.BadRequest(c, "Invalid JSON body.")
		return
	}

	if err := domain.CoercePreferredDatetime(payload); err != nil {
		httperr.BadRequest(c, "Invalid preferred_datetime format. Use ISO 8601.")
		return
	}

	b, err := domain.FromPayload(payload)
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			httperr.Unprocessable(c, verr.Fields)
			return
		}
		httperr.Internal(c, err.Error())
		return
	}

	if h.store == nil {
		httperr.Internal(c, "Database error: database not configured")
		return
	}

	bookingID, err := h.store.CreateDocument(c.Request.Context(), models.BookingCollection, b)
	if err != nil {
		httperr.Internal(c, "Database error: "+err.Error())
		return
	}

	invite := ics.Build(ics.Event{
		Name:    b.Name,
		Phone:   b.Phone,
		Email:   b.Email,
		Service: b.Service,
		Notes:   b.Notes,
		Start:   b.PreferredDatetime,
	})

	httpresp.OK(c, gin.H{
		"status":     "success",
		"message":    "Appointment confirmed — we’ll call to confirm the time.",
		"booking_id": bookingID,
		"ics":        invite,
	})
}
