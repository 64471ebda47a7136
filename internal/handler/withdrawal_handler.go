package handler

import (
	"net/http"

	"coinadmin/internal/repository"
	"coinadmin/internal/service"

	"github.com/gin-gonic/gin"
)

type WithdrawalHandler struct {
	withdrawalRepo *repository.WithdrawalRepository
	settlementSvc  *service.SettlementService
}

func NewWithdrawalHandler(withdrawalRepo *repository.WithdrawalRepository, settlementSvc *service.SettlementService) *WithdrawalHandler {
	return &WithdrawalHandler{withdrawalRepo: withdrawalRepo, settlementSvc: settlementSvc}
}

// List handles GET /withdrawals.
func (h *WithdrawalHandler) List(c *gin.Context) {
	status := c.Query("status")
	page, limit := parsePagination(c)
	withdrawals, total, err := h.withdrawalRepo.List(status, page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list withdrawals"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": withdrawals, "total": total, "page": page, "limit": limit})
}

// Approve handles POST /withdrawals/:id/approve.
func (h *WithdrawalHandler) Approve(c *gin.Context) {
	if err := h.settlementSvc.ApproveWithdrawal(c.Param("id")); err != nil {
		respondSettlementError(c, "withdrawal", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Reject handles POST /withdrawals/:id/reject. A non-empty reason is
// required; rejecting refunds the reserved amount.
func (h *WithdrawalHandler) Reject(c *gin.Context) {
	var req struct {
		Reason string `json:"reason" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "reason is required"})
		return
	}
	if err := h.settlementSvc.RejectWithdrawal(c.Param("id"), req.Reason); err != nil {
		respondSettlementError(c, "withdrawal", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
