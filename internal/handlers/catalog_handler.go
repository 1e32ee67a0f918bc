package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/service-marketplace/internal/httperr"
	"github.com/BruksfildServices01/service-marketplace/internal/httpresp"
	ucCatalog "github.com/BruksfildServices01/service-marketplace/internal/usecase/catalog"
)

// ======================================================
// HANDLER
// ======================================================

type CatalogHandler struct {
	listCategories *ucCatalog.ListCategories
	getCategory    *ucCatalog.GetCategory
	listServices   *ucCatalog.ListServices
	getService     *ucCatalog.GetService
}

func NewCatalogHandler(
	listCategories *ucCatalog.ListCategories,
	getCategory *ucCatalog.GetCategory,
	listServices *ucCatalog.ListServices,
	getService *ucCatalog.GetService,
) *CatalogHandler {
	return &CatalogHandler{
		listCategories: listCategories,
		getCategory:    getCategory,
		listServices:   listServices,
		getService:     getService,
	}
}

// ======================================================
// CATEGORIES
// ======================================================

func (h *CatalogHandler) ListCategories(c *gin.Context) {
	cats, err := h.listCategories.Execute(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	httpresp.List(c, cats)
}

func (h *CatalogHandler) GetCategory(c *gin.Context) {
	cat, err := h.getCategory.Execute(c.Request.Context(), c.Param("name"))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	httpresp.OK(c, cat)
}

// GET /categories/:name/services
func (h *CatalogHandler) ListCategoryServices(c *gin.Context) {
	services, err := h.listServices.Execute(c.Request.Context(), c.Param("name"))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	httpresp.List(c, services)
}

// ======================================================
// SERVICES
// ======================================================

// GET /services?category=
func (h *CatalogHandler) ListServices(c *gin.Context) {
	services, err := h.listServices.Execute(c.Request.Context(), c.Query("category"))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	httpresp.List(c, services)
}

func (h *CatalogHandler) GetService(c *gin.Context) {
	service, err := h.getService.Execute(c.Request.Context(), c.Param("name"))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	httpresp.OK(c, service)
}
