package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/groomshop/grooming-scheduler/internal/apperr"
	"github.com/groomshop/grooming-scheduler/internal/catalog"
	"github.com/groomshop/grooming-scheduler/internal/httpresp"
)

type ServiceTypeHandler struct {
	catalog catalog.Catalog
}

func NewServiceTypeHandler(cat catalog.Catalog) *ServiceTypeHandler {
	return &ServiceTypeHandler{catalog: cat}
}

func (h *ServiceTypeHandler) List(c *gin.Context) {
	types, err := h.catalog.ListServiceTypes(c.Request.Context())
	if err != nil {
		apperr.Internal(c, "failed_to_list_service_types", "Could not load services.")
		return
	}

	httpresp.List(c, types)
}
