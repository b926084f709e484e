package handler

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rajshree/shopbill-api/internal/application/service"
	"github.com/rajshree/shopbill-api/internal/domain/repository"
	"github.com/rajshree/shopbill-api/internal/presentation/http/dto/request"
	"github.com/rajshree/shopbill-api/internal/presentation/http/dto/response"
	"github.com/rajshree/shopbill-api/pkg/pagination"
)

// BillingHandler handles bill HTTP requests
type BillingHandler struct {
	billingService *service.BillingService
	pdfService     *service.PDFService
}

// NewBillingHandler creates a new billing handler
func NewBillingHandler(billingService *service.BillingService, pdfService *service.PDFService) *BillingHandler {
	return &BillingHandler{
		billingService: billingService,
		pdfService:     pdfService,
	}
}

// Create handles creating a bill from (product, quantity) pairs
func (h *BillingHandler) Create(c *gin.Context) {
	var req request.CreateBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "At least one item is required")
		return
	}

	input := &service.CreateBillInput{
		CustomerName:   req.CustomerName,
		WhatsappNumber: req.WhatsappNumber,
	}
	for _, item := range req.Items {
		input.Items = append(input.Items, service.BillItemInput{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	bill, err := h.billingService.CreateBill(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Bill created successfully", bill)
}

// List handles listing bills, optionally bounded to a date range
func (h *BillingHandler) List(c *gin.Context) {
	var filter request.BillFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := &repository.BillFilterParams{
		Pagination: &pagination.PaginationParams{
			Page:    filter.Page,
			PerPage: filter.PerPage,
		},
	}

	if filter.StartDate != "" {
		start, err := time.Parse("2006-01-02", filter.StartDate)
		if err != nil {
			response.BadRequest(c, "Invalid startDate, expected YYYY-MM-DD")
			return
		}
		params.StartDate = &start
	}
	if filter.EndDate != "" {
		end, err := time.Parse("2006-01-02", filter.EndDate)
		if err != nil {
			response.BadRequest(c, "Invalid endDate, expected YYYY-MM-DD")
			return
		}
		params.EndDate = &end
	}

	result, err := h.billingService.ListBills(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Bills retrieved successfully", result)
}

// Get handles retrieving a bill by ID
func (h *BillingHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	bill, err := h.billingService.GetBill(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Bill retrieved successfully", bill)
}

// SalesSummary handles period-bounded sales statistics
func (h *BillingHandler) SalesSummary(c *gin.Context) {
	summary, err := h.billingService.GetSalesSummary(c.Request.Context(), c.Query("period"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Sales summary retrieved successfully", summary)
}

// PDF streams a printable A6 rendering of a bill
func (h *BillingHandler) PDF(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	bill, err := h.billingService.GetBill(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=bill-%s.pdf", bill.BillNumber))

	if err := h.pdfService.RenderBill(bill, c.Writer); err != nil {
		// Headers may already be out; log via gin's error list and stop.
		_ = c.Error(err)
		c.Abort()
	}
}
