package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/service-marketplace/internal/domain/catalog"
	"github.com/BruksfildServices01/service-marketplace/internal/domain/identity"
	"github.com/BruksfildServices01/service-marketplace/internal/httperr"
	"github.com/BruksfildServices01/service-marketplace/internal/httpresp"
	"github.com/BruksfildServices01/service-marketplace/internal/models"
	ucBooking "github.com/BruksfildServices01/service-marketplace/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	createUC   *ucBooking.CreateBooking
	acceptUC   *ucBooking.AcceptBooking
	rejectUC   *ucBooking.RejectBooking
	cancelUC   *ucBooking.CancelBooking
	completeUC *ucBooking.CompleteBooking
	getUC      *ucBooking.GetBooking

	listByCustomerUC *ucBooking.ListBookingsForCustomer
	listByProviderUC *ucBooking.ListBookingsForProvider
	listOpenUC       *ucBooking.ListOpenBookings
	listAllUC        *ucBooking.ListAllBookings
}

type BookingUseCases struct {
	Create   *ucBooking.CreateBooking
	Accept   *ucBooking.AcceptBooking
	Reject   *ucBooking.RejectBooking
	Cancel   *ucBooking.CancelBooking
	Complete *ucBooking.CompleteBooking
	Get      *ucBooking.GetBooking

	ListByCustomer *ucBooking.ListBookingsForCustomer
	ListByProvider *ucBooking.ListBookingsForProvider
	ListOpen       *ucBooking.ListOpenBookings
	ListAll        *ucBooking.ListAllBookings
}

func NewBookingHandler(uc BookingUseCases) *BookingHandler {
	return &BookingHandler{
		createUC:         uc.Create,
		acceptUC:         uc.Accept,
		rejectUC:         uc.Reject,
		cancelUC:         uc.Cancel,
		completeUC:       uc.Complete,
		getUC:            uc.Get,
		listByCustomerUC: uc.ListByCustomer,
		listByProviderUC: uc.ListByProvider,
		listOpenUC:       uc.ListOpen,
		listAllUC:        uc.ListAll,
	}
}

// ======================================================
// REQUESTS
// ======================================================

// Either service_name or service_id identifies the service.
type CreateBookingRequest struct {
	ServiceName string `json:"service_name"`
	ServiceID   uint   `json:"service_id"`
}

// ======================================================
// CREATE
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	actor, ok := principal(c)
	if !ok {
		return
	}

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	b, err := h.createUC.Execute(c.Request.Context(), ucBooking.CreateBookingInput{
		Actor:   actor,
		Service: catalog.ServiceRef{Name: req.ServiceName, ID: req.ServiceID},
	})
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	c.JSON(http.StatusCreated, b)
}

// ======================================================
// TRANSITIONS
// ======================================================

type transitionFunc func(ctx context.Context, actor identity.Principal, id uint) (*models.Booking, error)

func (h *BookingHandler) transition(run transitionFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := principal(c)
		if !ok {
			return
		}
		id, ok := idParam(c, "id")
		if !ok {
			return
		}

		b, err := run(c.Request.Context(), actor, id)
		if err != nil {
			httperr.Abort(c, err)
			return
		}

		httpresp.OK(c, b)
	}
}

func (h *BookingHandler) Accept() gin.HandlerFunc   { return h.transition(h.acceptUC.Execute) }
func (h *BookingHandler) Reject() gin.HandlerFunc   { return h.transition(h.rejectUC.Execute) }
func (h *BookingHandler) Cancel() gin.HandlerFunc   { return h.transition(h.cancelUC.Execute) }
func (h *BookingHandler) Complete() gin.HandlerFunc { return h.transition(h.completeUC.Execute) }

// ======================================================
// READ
// ======================================================

func (h *BookingHandler) Get(c *gin.Context) {
	actor, ok := principal(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	b, err := h.getUC.Execute(c.Request.Context(), actor, id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	httpresp.OK(c, b)
}

// GET /customers/:id/bookings
func (h *BookingHandler) ListForCustomer(c *gin.Context) {
	actor, ok := principal(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	list, err := h.listByCustomerUC.Execute(c.Request.Context(), actor, id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	httpresp.List(c, list)
}

// GET /providers/:id/bookings
func (h *BookingHandler) ListForProvider(c *gin.Context) {
	actor, ok := principal(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	list, err := h.listByProviderUC.Execute(c.Request.Context(), actor, id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	httpresp.List(c, list)
}

// GET /bookings/open
func (h *BookingHandler) ListOpen(c *gin.Context) {
	actor, ok := principal(c)
	if !ok {
		return
	}

	list, err := h.listOpenUC.Execute(c.Request.Context(), actor)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	httpresp.List(c, list)
}

// GET /bookings (admin)
func (h *BookingHandler) ListAll(c *gin.Context) {
	actor, ok := principal(c)
	if !ok {
		return
	}

	list, err := h.listAllUC.Execute(c.Request.Context(), actor)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	httpresp.List(c, list)
}
