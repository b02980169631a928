package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nutricr/storefront/internal/adapters/http/handlers"
	"github.com/nutricr/storefront/internal/core/domain"
	"github.com/nutricr/storefront/internal/core/service"
)

type InventoryController struct {
	inventoryService *service.InventoryService
}

type InventoryMetricsResponse struct {
	Period        string            `json:"period"`
	TotalProducts int               `json:"total_products"`
	TotalStock    int               `json:"total_stock"`
	LowStockCount int               `json:"low_stock_count"`
	OutOfStock    int               `json:"out_of_stock"`
	TotalValue    int               `json:"total_value"`
	LowStockItems []ProductResponse `json:"low_stock_items"`
}

func NewInventoryMetricsResponse(metrics *domain.InventoryMetrics) InventoryMetricsResponse {
	items := make([]ProductResponse, len(metrics.LowStockItems))
	for i, product := range metrics.LowStockItems {
		items[i] = NewProductResponse(product)
	}

	return InventoryMetricsResponse{
		Period:        string(metrics.Period),
		TotalProducts: metrics.TotalProducts,
		TotalStock:    metrics.TotalStock,
		LowStockCount: metrics.LowStockCount,
		OutOfStock:    metrics.OutOfStock,
		TotalValue:    int(metrics.TotalValue),
		LowStockItems: items,
	}
}

func NewInventoryController(inventoryService *service.InventoryService) *InventoryController {
	return &InventoryController{inventoryService: inventoryService}
}

// Metrics godoc
// @Summary     Inventory metrics
// @Description Returns inventory metrics simulated over the requested period
// @Tags        inventory
// @Produce     json
// @Param       period query    string false "Period" Enums(day, week, month, year) default(month)
// @Success     200    {object} InventoryMetricsResponse
// @Failure     400    {object} handlers.ErrorResponse
// @Failure     500    {object} handlers.ErrorResponse
// @Router      /api/v1/inventory/metrics [get]
func (ic *InventoryController) Metrics(c *gin.Context) {
	period := domain.Period(c.DefaultQuery("period", string(domain.PeriodMonth)))

	metrics, err := ic.inventoryService.Metrics(c.Request.Context(), period)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, NewInventoryMetricsResponse(metrics))
}
