package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"atrid_reportes/internal/models"
	"atrid_reportes/internal/repositories"
	"atrid_reportes/internal/services"
	"atrid_reportes/pkg/utils"
)

const DefaultReportDateLayout = "2006-01-02"

// ReportHandler exposes the order store and its aggregates over HTTP.
type ReportHandler struct {
	store *services.OrderStore
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(store *services.OrderStore) *ReportHandler {
	return &ReportHandler{store: store}
}

// UpdateComisionRequest is the payload for updating the commission rate.
type UpdateComisionRequest struct {
	Porcentaje decimal.Decimal `json:"porcentaje"`
}

// resumenResponse bundles the aggregate figures with the order listing.
type resumenResponse struct {
	Resumen models.ReportSummary  `json:"resumen"`
	Ordenes []models.OrderSummary `json:"ordenes"`
}

// GetResumen loads the requested period and returns its aggregates plus the
// order listing. Without inicio/fin it refetches the current period, so the
// previously loaded window stays on screen after a backend hiccup.
func (h *ReportHandler) GetResumen(c *gin.Context) {
	var params models.ReportRequestParams
	if err := c.ShouldBindQuery(&params); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid query parameters.", err.Error()))
		return
	}

	var err error
	switch {
	case params.Inicio != "" && params.Fin != "":
		var inicio, fin time.Time
		inicio, err = time.ParseInLocation(DefaultReportDateLayout, params.Inicio, time.Local)
		if err != nil {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid inicio date. Use YYYY-MM-DD.", err.Error()))
			return
		}
		fin, err = time.ParseInLocation(DefaultReportDateLayout, params.Fin, time.Local)
		if err != nil {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid fin date. Use YYYY-MM-DD.", err.Error()))
			return
		}
		err = h.store.LoadPeriod(c.Request.Context(), inicio, fin)
	case params.Inicio == "" && params.Fin == "":
		err = h.store.Reload(c.Request.Context())
	default:
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Provide both inicio and fin, or neither.", ""))
		return
	}

	if err != nil {
		utils.LogError(err, "GetResumen: failed to load orders")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadGateway, utils.ErrCodeInternalServerError, "Failed to fetch orders from the order backend; showing the last loaded period.", err.Error()))
		return
	}

	c.JSON(http.StatusOK, resumenResponse{
		Resumen: h.store.Summary(),
		Ordenes: h.store.OrderSummaries(),
	})
}

// GetOrdenes returns the currently loaded order listing without refetching.
func (h *ReportHandler) GetOrdenes(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"ordenes": h.store.OrderSummaries(),
		"resumen": h.store.Summary(),
	})
}

// GetOrdenByID opens one order for detail viewing and returns its resolved
// line items.
func (h *ReportHandler) GetOrdenByID(c *gin.Context) {
	orderID, err := utils.StrToInt64(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid order ID format.", err.Error()))
		return
	}

	if err := h.store.SelectOrder(&orderID); err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Order not found in the loaded period.", err.Error()))
			return
		}
		utils.LogError(err, "GetOrdenByID: failed to select order")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to open order.", "Internal error"))
		return
	}

	order := h.store.SelectedOrder()
	if order == nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Order not found in the loaded period.", ""))
		return
	}
	c.JSON(http.StatusOK, services.BuildOrderDetail(*order))
}

// ClearSeleccion closes the detail view.
func (h *ReportHandler) ClearSeleccion(c *gin.Context) {
	_ = h.store.SelectOrder(nil)
	c.Status(http.StatusNoContent)
}

// DeleteOrden deletes one order through the store. An id outside the loaded
// collection is a no-op; a duplicate request for an in-flight deletion is
// rejected without reaching the backend.
func (h *ReportHandler) DeleteOrden(c *gin.Context) {
	orderID, err := utils.StrToInt64(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid order ID format.", err.Error()))
		return
	}

	if err := h.store.DeleteOrder(c.Request.Context(), orderID); err != nil {
		utils.LogError(err, "DeleteOrden: failed to delete order")
		switch {
		case errors.Is(err, services.ErrDeleteInFlight):
			utils.RespondWithError(c, utils.NewAPIError(http.StatusConflict, utils.ErrCodeConflict, "A delete request for this order is already in progress.", err.Error()))
		case errors.Is(err, repositories.ErrNotFound):
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Order no longer exists on the backend.", err.Error()))
		default:
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadGateway, utils.ErrCodeInternalServerError, "Failed to delete order; it remains listed and can be retried.", err.Error()))
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Order deleted",
		"resumen": h.store.Summary(),
	})
}

// UpdateComision sets the commission percentage and returns the recomputed
// aggregates for the loaded period.
func (h *ReportHandler) UpdateComision(c *gin.Context) {
	var req UpdateComisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}
	if req.Porcentaje.IsNegative() {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "porcentaje must not be negative.", ""))
		return
	}

	h.store.SetCommissionRate(req.Porcentaje)
	c.JSON(http.StatusOK, gin.H{"resumen": h.store.Summary()})
}
