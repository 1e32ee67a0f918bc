package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/service-marketplace/internal/domain/catalog"
	"github.com/BruksfildServices01/service-marketplace/internal/httperr"
	"github.com/BruksfildServices01/service-marketplace/internal/httpresp"
	ucOffer "github.com/BruksfildServices01/service-marketplace/internal/usecase/offer"
)

// ======================================================
// HANDLER
// ======================================================

type OfferHandler struct {
	create         *ucOffer.CreateOffer
	update         *ucOffer.UpdateOffer
	deleteOffer    *ucOffer.DeleteOffer
	get            *ucOffer.GetOffer
	listByProvider *ucOffer.ListOffersForProvider
	listByService  *ucOffer.ListOffersForService
}

func NewOfferHandler(
	create *ucOffer.CreateOffer,
	update *ucOffer.UpdateOffer,
	deleteOffer *ucOffer.DeleteOffer,
	get *ucOffer.GetOffer,
	listByProvider *ucOffer.ListOffersForProvider,
	listByService *ucOffer.ListOffersForService,
) *OfferHandler {
	return &OfferHandler{
		create:         create,
		update:         update,
		deleteOffer:    deleteOffer,
		get:            get,
		listByProvider: listByProvider,
		listByService:  listByService,
	}
}

// ======================================================
// REQUESTS
// ======================================================

// Either service_name or service_id identifies the service.
type CreateOfferRequest struct {
	ServiceName string `json:"service_name"`
	ServiceID   uint   `json:"service_id"`
	Price       *int64 `json:"price" binding:"required"`
	Description string `json:"description" binding:"required"`
}

type UpdateOfferRequest struct {
	ServiceName *string `json:"service_name"`
	Price       *int64  `json:"price"`
	Description *string `json:"description"`
}

// ======================================================
// WRITE
// ======================================================

func (h *OfferHandler) Create(c *gin.Context) {
	actor, ok := principal(c)
	if !ok {
		return
	}

	var req CreateOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	offer, err := h.create.Execute(c.Request.Context(), ucOffer.CreateOfferInput{
		Actor:       actor,
		Service:     catalog.ServiceRef{Name: req.ServiceName, ID: req.ServiceID},
		Price:       *req.Price,
		Description: req.Description,
	})
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	c.JSON(http.StatusCreated, offer)
}

// PATCH /offers/:id
func (h *OfferHandler) Update(c *gin.Context) {
	actor, ok := principal(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req UpdateOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	offer, err := h.update.Execute(c.Request.Context(), ucOffer.UpdateOfferInput{
		Actor:       actor,
		OfferID:     id,
		Price:       req.Price,
		Description: req.Description,
		ServiceName: req.ServiceName,
	})
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	httpresp.OK(c, offer)
}

func (h *OfferHandler) Delete(c *gin.Context) {
	actor, ok := principal(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := h.deleteOffer.Execute(c.Request.Context(), actor, id); err != nil {
		httperr.Abort(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ======================================================
// READ
// ======================================================

func (h *OfferHandler) Get(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	offer, err := h.get.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	httpresp.OK(c, offer)
}

// GET /providers/:id/offers
func (h *OfferHandler) ListForProvider(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	offers, err := h.listByProvider.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	httpresp.List(c, offers)
}

// GET /services/:name/offers
func (h *OfferHandler) ListForService(c *gin.Context) {
	offers, err := h.listByService.Execute(
		c.Request.Context(),
		catalog.ServiceRef{Name: c.Param("name")},
	)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	httpresp.List(c, offers)
}
