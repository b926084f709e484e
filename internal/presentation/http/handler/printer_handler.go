package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rajshree/shopbill-api/internal/application/service"
	"github.com/rajshree/shopbill-api/internal/domain/entity"
	"github.com/rajshree/shopbill-api/internal/presentation/http/dto/request"
	"github.com/rajshree/shopbill-api/internal/presentation/http/dto/response"
)

// PrinterHandler handles printer-related HTTP requests.
type PrinterHandler struct {
	printerService *service.PrinterService
}

// NewPrinterHandler creates a new printer handler.
func NewPrinterHandler(printerService *service.PrinterService) *PrinterHandler {
	return &PrinterHandler{printerService: printerService}
}

// GetStatus returns the current printer connection status.
func (h *PrinterHandler) GetStatus(c *gin.Context) {
	status := h.printerService.GetStatus()
	response.OK(c, "Printer status retrieved", status)
}

// PrintLabel prints a product QR label. Best effort: a device failure is a
// 500 here but never affects the product record.
func (h *PrinterHandler) PrintLabel(c *gin.Context) {
	var req request.PrintLabelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid label data")
		return
	}

	label := &entity.Label{
		ProductID: req.ID,
		Name:      req.Name,
		Size:      req.Size,
		MRP:       req.MRP,
		RCP:       req.RCP,
	}

	if err := h.printerService.PrintLabel(label); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Label printed successfully", nil)
}

// PrintReceipt prints a thermal receipt for a stored bill.
func (h *PrinterHandler) PrintReceipt(c *gin.Context) {
	var req request.PrintReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	billID, err := uuid.Parse(req.BillID)
	if err != nil {
		response.BadRequest(c, "Invalid bill ID format")
		return
	}

	receipt, err := h.printerService.PrintBillReceipt(c.Request.Context(), billID)
	if err != nil {
		// Receipt was composed but the device failed; hand it back with a
		// warning so the frontend can offer a reprint.
		if receipt != nil {
			response.OK(c, "Receipt generated but printing failed", gin.H{
				"receipt": receipt,
				"warning": err.Error(),
			})
			return
		}
		response.Error(c, err)
		return
	}

	response.OK(c, "Receipt printed successfully", gin.H{
		"receipt": receipt,
	})
}
