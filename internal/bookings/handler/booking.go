package handler

import (
	"encoding/json"
	"net/http"

	"hoteldesk/internal/bookings/service"
	httputil "hoteldesk/pkg/http"
	"hoteldesk/pkg/logger"
	"hoteldesk/pkg/model"

	"github.com/julienschmidt/httprouter"
)

type BookingHandler struct {
	service service.BookingService
	log     *logger.Logger
}

func NewBookingHandler(service service.BookingService, log *logger.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log,
	}
}

func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var booking model.Booking
	if err := json.NewDecoder(r.Body).Decode(&booking); err != nil {
		if writeErr := httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{
			Error: "Invalid request body",
		}); writeErr != nil {
			h.log.Error("failed to write JSON response", "handler", "Create", "error", writeErr)
		}
		return
	}

	if err := h.service.Create(r.Context(), &booking); err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Create", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteJSON(w, http.StatusCreated, booking); err != nil {
		h.log.Error("failed to write created response", "handler", "Create", "error", err)
	}
}

func (h *BookingHandler) Recent(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	bookings, err := h.service.Recent(r.Context())
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Recent", "error", writeErr)
		}
		return
	}

	h.writeBookings(w, "Recent", bookings)
}

func (h *BookingHandler) GetAll(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	bookings, err := h.service.All(r.Context())
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetAll", "error", writeErr)
		}
		return
	}

	h.writeBookings(w, "GetAll", bookings)
}

func (h *BookingHandler) DashboardStats(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	stats, err := h.service.Stats(r.Context())
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "DashboardStats", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteJSON(w, http.StatusOK, stats); err != nil {
		h.log.Error("failed to write success response", "handler", "DashboardStats", "error", err)
	}
}

func (h *BookingHandler) Arrivals(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	bookings, err := h.service.Arrivals(r.Context())
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Arrivals", "error", writeErr)
		}
		return
	}

	h.writeBookings(w, "Arrivals", bookings)
}

func (h *BookingHandler) Departures(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	bookings, err := h.service.Departures(r.Context())
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Departures", "error", writeErr)
		}
		return
	}

	h.writeBookings(w, "Departures", bookings)
}

func (h *BookingHandler) Delete(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")

	if _, err := h.service.Delete(r.Context(), id); err != nil {
		if writeErr := httputil.WriteFlaggedError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Delete", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteJSON(w, http.StatusOK, httputil.DeleteResponse{
		Success:   true,
		Message:   "Booking deleted successfully",
		DeletedID: id,
	}); err != nil {
		h.log.Error("failed to write success response", "handler", "Delete", "error", err)
	}
}

func (h *BookingHandler) RoomStatus(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	rooms, err := h.service.OccupiedRooms(r.Context())
	if err != nil {
		if writeErr := httputil.WriteFlaggedError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "RoomStatus", "error", writeErr)
		}
		return
	}

	if rooms == nil {
		rooms = []string{}
	}

	if err := httputil.WriteJSON(w, http.StatusOK, httputil.RoomStatusResponse{
		Success:     true,
		BookedRooms: rooms,
	}); err != nil {
		h.log.Error("failed to write success response", "handler", "RoomStatus", "error", err)
	}
}

// writeBookings emits a bare JSON array, never null.
func (h *BookingHandler) writeBookings(w http.ResponseWriter, handlerName string, bookings []*model.Booking) {
	if bookings == nil {
		bookings = []*model.Booking{}
	}

	if err := httputil.WriteJSON(w, http.StatusOK, bookings); err != nil {
		h.log.Error("failed to write success response", "handler", handlerName, "error", err)
	}
}

func (h *BookingHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/api/bookings", h.Create)
	router.GET("/api/bookings", h.GetAll)
	router.GET("/api/bookings/recent", h.Recent)
	router.GET("/api/bookings/arrivals", h.Arrivals)
	router.GET("/api/bookings/departures", h.Departures)
	router.DELETE("/api/bookings/:id", h.Delete)
	router.GET("/api/dashboard/stats", h.DashboardStats)
	router.GET("/api/rooms/status", h.RoomStatus)
}
