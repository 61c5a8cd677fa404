package handler

import (
	"net/http"

	"sheetcrm/internal/model"
	"sheetcrm/internal/service"

	"github.com/gin-gonic/gin"
)

// BillHandler handles bill creation and purchase history
type BillHandler struct {
	service service.BillService
}

// NewBillHandler creates a new BillHandler
func NewBillHandler(s service.BillService) *BillHandler {
	return &BillHandler{service: s}
}

func (h *BillHandler) CreateBill(c *gin.Context) {
	var req model.Bill
	if errs := bindStrict(c, &req); len(errs) > 0 {
		unprocessable(c, errs...)
		return
	}

	bill, err := h.service.CreateBill(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Bill created successfully",
		"bill":    bill,
	})
}

func (h *BillHandler) PurchaseHistory(c *gin.Context) {
	bills, err := h.service.PurchaseHistory(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bills)
}

// RegisterBillRoutes registers bill routes
func (h *BillHandler) RegisterBillRoutes(r gin.IRouter) {
	r.POST("/bills/", h.CreateBill)
	r.GET("/customers/:id/purchase_history", h.PurchaseHistory)
}
