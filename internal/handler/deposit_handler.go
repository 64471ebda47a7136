package handler

import (
	"errors"
	"net/http"

	"coinadmin/internal/repository"
	"coinadmin/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type DepositHandler struct {
	depositRepo   *repository.DepositRepository
	settlementSvc *service.SettlementService
}

func NewDepositHandler(depositRepo *repository.DepositRepository, settlementSvc *service.SettlementService) *DepositHandler {
	return &DepositHandler{depositRepo: depositRepo, settlementSvc: settlementSvc}
}

// List handles GET /deposits.
func (h *DepositHandler) List(c *gin.Context) {
	status := c.Query("status")
	page, limit := parsePagination(c)
	deposits, total, err := h.depositRepo.List(status, page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list deposits"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": deposits, "total": total, "page": page, "limit": limit})
}

// Approve handles POST /deposits/:id/approve.
func (h *DepositHandler) Approve(c *gin.Context) {
	if err := h.settlementSvc.ApproveDeposit(c.Param("id")); err != nil {
		respondSettlementError(c, "deposit", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Reject handles POST /deposits/:id/reject. A non-empty reason is required.
func (h *DepositHandler) Reject(c *gin.Context) {
	var req struct {
		Reason string `json:"reason" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "reason is required"})
		return
	}
	if err := h.settlementSvc.RejectDeposit(c.Param("id"), req.Reason); err != nil {
		respondSettlementError(c, "deposit", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// respondSettlementError maps settlement sentinels onto HTTP codes. Anything
// unexpected is logged and hidden behind a generic server error.
func respondSettlementError(c *gin.Context, entity string, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": entity + " not found"})
	case errors.Is(err, service.ErrAlreadyProcessed):
		c.JSON(http.StatusBadRequest, gin.H{"error": entity + " already processed"})
	default:
		zap.L().Error("settlement failed", zap.String("entity", entity), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
	}
}
