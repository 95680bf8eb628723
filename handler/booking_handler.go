package handler

import (
	"net/http"
	"wedding-api/common"
	"wedding-api/model"
	"wedding-api/service"
)

// BookingHandler serves booked events and the public calendar.
type BookingHandler struct {
	service *service.BookingService
}

func NewBookingHandler(service *service.BookingService) *BookingHandler {
	return &BookingHandler{service: service}
}

func (h *BookingHandler) Calendar(w http.ResponseWriter, r *http.Request) *common.AppError {
	entries, err := h.service.Calendar(r.Context())
	return respond(w, http.StatusOK, entries, err, "Could not load calendar")
}

// CalendarInfo godoc
// @Summary      Bookings of a day
// @Tags         web
// @Produce      json
// @Param        date  query     string  true  "Day, YYYY-MM-DD"
// @Success      200  {array}  model.CalendarInfo
// @Failure      400  {object}  common.AppError
// @Router       /api/v1/web/calendar/info [get]
func (h *BookingHandler) CalendarInfo(w http.ResponseWriter, r *http.Request) *common.AppError {
	day, err := model.ParseDate(r.URL.Query().Get("date"))
	if err != nil {
		return common.NewAppError(http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD", err)
	}
	info, err := h.service.CalendarInfo(r.Context(), day)
	return respond(w, http.StatusOK, info, err, "Could not load calendar")
}

func (h *BookingHandler) List(w http.ResponseWriter, r *http.Request) *common.AppError {
	items, err := h.service.ListBookings(r.Context())
	return respond(w, http.StatusOK, items, err, "Could not list events")
}

func (h *BookingHandler) Get(w http.ResponseWriter, r *http.Request) *common.AppError {
	id, appErr := pathID(r, "id")
	if appErr != nil {
		return appErr
	}
	b, err := h.service.GetBooking(r.Context(), id)
	return respond(w, http.StatusOK, b, err, "Could not load event")
}

func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.BookingRequest
	if appErr := common.ValidateAndDecode(r, &req); appErr != nil {
		return appErr
	}
	b, err := h.service.CreateBooking(r.Context(), req)
	return respond(w, http.StatusCreated, b, err, "Could not create event")
}

func (h *BookingHandler) Update(w http.ResponseWriter, r *http.Request) *common.AppError {
	id, appErr := pathID(r, "id")
	if appErr != nil {
		return appErr
	}
	var patch model.BookingPatch
	if appErr := common.ValidateAndDecode(r, &patch); appErr != nil {
		return appErr
	}
	b, err := h.service.UpdateBooking(r.Context(), id, patch)
	return respond(w, http.StatusOK, b, err, "Could not update event")
}

func (h *BookingHandler) Delete(w http.ResponseWriter, r *http.Request) *common.AppError {
	id, appErr := pathID(r, "id")
	if appErr != nil {
		return appErr
	}
	return noContent(w, h.service.DeleteBooking(r.Context(), id), "Could not delete event")
}

func (h *BookingHandler) Upcoming(w http.ResponseWriter, r *http.Request) *common.AppError {
	events, err := h.service.UpcomingEvents(r.Context())
	return respond(w, http.StatusOK, events, err, "Could not load upcoming events")
}

func (h *BookingHandler) EventStats(w http.ResponseWriter, r *http.Request) *common.AppError {
	stats, err := h.service.EventStats(r.Context())
	return respond(w, http.StatusOK, stats, err, "Could not load event statistics")
}
