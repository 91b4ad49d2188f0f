package v1

import (
	"net/http"

	"go-workerconnect-backend/internal/delivery/http/middleware"
	"go-workerconnect-backend/internal/delivery/http/response"
	"go-workerconnect-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	bookingUC domain.BookingUsecase
}

func NewBookingHandler(protected *gin.RouterGroup, bookingUC domain.BookingUsecase) {
	handler := &BookingHandler{bookingUC: bookingUC}

	bookings := protected.Group("/bookings")
	{
		bookings.GET("", handler.List)
	}
}

// List returns the bookings visible to the authenticated identity, filtered
// by the optional status tab ("all" by default).
func (h *BookingHandler) List(c *gin.Context) {
	identity := middleware.CurrentIdentity(c)
	statusTab := c.DefaultQuery("status", "all")

	bookings, err := h.bookingUC.ListForIdentity(c.Request.Context(), identity, statusTab)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Bookings", gin.H{
		"bookings": bookings,
		"total":    len(bookings),
	})
}
