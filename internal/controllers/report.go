package controllers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/Nduhiu17/treasure-shop-api/internal/entities"
	"github.com/Nduhiu17/treasure-shop-api/internal/services"
	"github.com/Nduhiu17/treasure-shop-api/pkg/api"
	"github.com/Nduhiu17/treasure-shop-api/pkg/utils"
)

type ReportController struct {
	reportService services.ReportServiceInterface
	logger        *zap.Logger
}

func NewReportController(reportService services.ReportServiceInterface, logger *zap.Logger) *ReportController {
	return &ReportController{reportService: reportService, logger: logger}
}

func (c *ReportController) GetOrdersReport(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	actor, err := utils.GetActorFromCtx(reqCtx)
	if err != nil {
		return api.ErrorResponse(ctx, err)
	}

	filter, format := c.parseFilters(ctx)

	data, total, err := c.reportService.GetOrdersReport(reqCtx, filter, actor)
	if err != nil {
		return api.ErrorResponse(ctx, err)
	}

	if format == "xlsx" {
		return c.respondWithXLSX(ctx, data)
	}
	return api.SuccessList(ctx, "orders report", data, total, filter.Page, filter.PerPage)
}

func (c *ReportController) parseFilters(ctx echo.Context) (entities.ReportFilter, string) {
	listFilter := utils.ParseQuery(ctx.Request().URL.Query())
	filter := entities.ReportFilter{
		Page:    listFilter.Page,
		PerPage: listFilter.Limit,
	}
	format := strings.ToLower(ctx.QueryParam("format"))

	if format == "xlsx" {
		// exports carry the full result set
		filter.Page = 1
		filter.PerPage = 100000
	}

	if df := ctx.QueryParam("date_from"); df != "" {
		if t, err := time.Parse(time.RFC3339, df); err == nil {
			filter.DateFrom = &t
		}
	}
	if dt := ctx.QueryParam("date_to"); dt != "" {
		if t, err := time.Parse(time.RFC3339, dt); err == nil {
			filter.DateTo = &t
		}
	}

	if arr, ok := ctx.QueryParams()["status[]"]; ok {
		filter.Statuses = arr
	} else if s := ctx.QueryParam("status"); s != "" {
		filter.Statuses = strings.Split(s, ",")
	}

	return filter, format
}

var reportHeaders = []string{
	"Order #", "Title", "Status", "Order Type", "Customer", "Writer",
	"Pages", "Price", "Created", "Last Updated",
}

func rowToSlice(item entities.ReportItem) []interface{} {
	dateFmt := "02.01.2006 15:04"
	return []interface{}{
		item.OrderNumber, item.Title, item.Status, item.OrderTypeName.String,
		item.CustomerName.String, item.WriterName.String,
		item.Pages, item.Price.StringFixed(2),
		item.CreatedAt.Format(dateFmt), item.UpdatedAt.Format(dateFmt),
	}
}

func (c *ReportController) respondWithXLSX(ctx echo.Context, data []entities.ReportItem) error {
	f := excelize.NewFile()
	sheet := "Orders"
	f.SetSheetName("Sheet1", sheet)
	f.SetSheetRow(sheet, "A1", &reportHeaders)
	style, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	f.SetCellStyle(sheet, "A1", "J1", style)

	for i, item := range data {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := rowToSlice(item)
		f.SetSheetRow(sheet, cell, &row)
	}
	f.SetColWidth(sheet, "A", "A", 14)
	f.SetColWidth(sheet, "B", "B", 40)
	f.SetColWidth(sheet, "C", "F", 22)
	f.SetColWidth(sheet, "I", "J", 18)

	fileName := fmt.Sprintf("orders_report_%s.xlsx", time.Now().Format("2006-01-02"))
	ctx.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Response().Header().Set("Content-Disposition", "attachment; filename="+fileName)
	ctx.Response().WriteHeader(http.StatusOK)
	return f.Write(ctx.Response().Writer)
}
