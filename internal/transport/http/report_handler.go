package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/michaeliyer/canCockOne/internal/dto"
	"github.com/michaeliyer/canCockOne/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ReportHandler struct {
	reports service.ReportService
	log     *zap.Logger
}

func NewReportHandler(reports service.ReportService, log *zap.Logger) *ReportHandler {
	return &ReportHandler{reports: reports, log: log}
}

func (h *ReportHandler) Sales(c *gin.Context) {
	var f service.ReportFilter

	// The date range only applies as a pair.
	if start, end := c.Query("startDate"), c.Query("endDate"); start != "" && end != "" {
		startT, err1 := time.Parse("2006-01-02", start)
		endT, err2 := time.Parse("2006-01-02", end)
		if err1 != nil || err2 != nil {
			c.JSON(http.StatusBadRequest, dto.NewError("dates must be YYYY-MM-DD"))
			return
		}
		// Make the range inclusive of the whole end day.
		endT = endT.Add(24*time.Hour - time.Nanosecond)
		f.StartDate = &startT
		f.EndDate = &endT
	}

	f.CustomerID = queryID(c, "customer_id")
	f.ProductID = queryID(c, "product_id")
	f.VariantID = queryID(c, "variant_id")

	report, err := h.reports.SalesReport(c.Request.Context(), f)
	if err != nil {
		h.log.Error("sales report failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.NewError(err.Error()))
		return
	}
	c.JSON(http.StatusOK, report)
}

func (h *ReportHandler) Daily(c *gin.Context) {
	report, err := h.reports.DailyReport(c.Request.Context(), c.Query("date"))
	if err != nil {
		if errors.Is(err, service.ErrDateRequired) {
			c.JSON(http.StatusBadRequest, dto.NewError(err.Error()))
			return
		}
		h.log.Error("daily report failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.NewError(err.Error()))
		return
	}
	c.JSON(http.StatusOK, report)
}

func queryID(c *gin.Context, key string) uint {
	v := c.Query(key)
	if v == "" {
		return 0
	}
	id, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return 0
	}
	return uint(id)
}
