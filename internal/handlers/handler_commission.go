package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/imovelhub/imovel_finance/internal/core/ports/services"
	"github.com/imovelhub/imovel_finance/internal/dto"
	"github.com/imovelhub/imovel_finance/internal/middleware"
)

// commissionHandler handles HTTP requests for the commission ledger.
type commissionHandler struct {
	commissionService portssvc.CommissionSvcFacade
}

func newCommissionHandler(cs portssvc.CommissionSvcFacade) *commissionHandler {
	return &commissionHandler{commissionService: cs}
}

// registerCommissionRoutes registers routes related to commissions.
func registerCommissionRoutes(rg *gin.RouterGroup, commissionService portssvc.CommissionSvcFacade) {
	h := newCommissionHandler(commissionService)

	commissions := rg.Group("/commissions")
	{
		commissions.POST("", h.createCommission)
		commissions.GET("/:id", h.getCommission)
		commissions.GET("", h.listCommissions)
		commissions.PUT("/:id", h.updateCommission)
		commissions.POST("/:id/approve", h.approveCommission)
		commissions.POST("/:id/pay", h.payCommission)
		commissions.POST("/:id/cancel", h.cancelCommission)
		commissions.DELETE("/:id", h.deleteCommission)
	}
}

// createCommission godoc
// @Summary Create a new commission
// @Description Registers an agent commission for a contract; the person must have the AGENT role
// @Tags commissions
// @Accept  json
// @Produce  json
// @Param   commission body dto.CreateCommissionRequest true "Commission details"
// @Success 201 {object} dto.CommissionResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 404 {object} map[string]string "Referenced person not found"
// @Failure 422 {object} map[string]string "Person is not an agent"
// @Failure 500 {object} map[string]string "Failed to create commission"
// @Router /commissions [post]
func (h *commissionHandler) createCommission(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateCommissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateCommission", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID := actorID(c)
	logger = logger.With(slog.String("creator_user_id", creatorUserID))

	newCommission, err := h.commissionService.CreateCommission(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondError(c, logger, err, "Failed to create commission")
		return
	}

	logger.Info("Commission created successfully", slog.String("commission_id", newCommission.CommissionID))
	c.JSON(http.StatusCreated, dto.ToCommissionResponse(newCommission))
}

// getCommission godoc
// @Summary Get a commission by ID
// @Description Retrieves a commission with its agent, contract and type embedded
// @Tags commissions
// @Produce  json
// @Param   id path string true "Commission ID"
// @Success 200 {object} dto.CommissionResponse
// @Failure 404 {object} map[string]string "Commission not found"
// @Failure 500 {object} map[string]string "Failed to retrieve commission"
// @Router /commissions/{id} [get]
func (h *commissionHandler) getCommission(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	commissionID := c.Param("id")
	logger = logger.With(slog.String("commission_id", commissionID))

	commission, err := h.commissionService.GetCommissionByID(c.Request.Context(), commissionID)
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve commission")
		return
	}

	c.JSON(http.StatusOK, dto.ToCommissionResponse(commission))
}

// listCommissions godoc
// @Summary List commissions
// @Description Lists commissions filtered by status, agent and contract
// @Tags commissions
// @Produce  json
// @Param   limit query int false "Page size" default(20)
// @Param   nextToken query string false "Opaque pagination token"
// @Param   status query string false "Filter by status"
// @Success 200 {object} dto.ListCommissionsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to list commissions"
// @Router /commissions [get]
func (h *commissionHandler) listCommissions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListCommissionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for ListCommissions", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	resp, err := h.commissionService.ListCommissions(c.Request.Context(), params)
	if err != nil {
		respondError(c, logger, err, "Failed to list commissions")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// updateCommission godoc
// @Summary Update a commission
// @Description Edits a non-paid commission; paid commissions are immutable
// @Tags commissions
// @Accept  json
// @Produce  json
// @Param   id path string true "Commission ID"
// @Param   commission body dto.UpdateCommissionRequest true "Fields to update"
// @Success 200 {object} dto.CommissionResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 404 {object} map[string]string "Commission not found"
// @Failure 409 {object} map[string]string "Commission has been paid"
// @Failure 500 {object} map[string]string "Failed to update commission"
// @Router /commissions/{id} [put]
func (h *commissionHandler) updateCommission(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	commissionID := c.Param("id")
	logger = logger.With(slog.String("commission_id", commissionID))

	var req dto.UpdateCommissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateCommission", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updated, err := h.commissionService.UpdateCommission(c.Request.Context(), commissionID, req, actorID(c))
	if err != nil {
		respondError(c, logger, err, "Failed to update commission")
		return
	}

	logger.Info("Commission updated successfully")
	c.JSON(http.StatusOK, dto.ToCommissionResponse(updated))
}

// approveCommission godoc
// @Summary Approve a commission
// @Description Moves a pending commission to APPROVED
// @Tags commissions
// @Produce  json
// @Param   id path string true "Commission ID"
// @Success 200 {object} dto.CommissionResponse
// @Failure 404 {object} map[string]string "Commission not found"
// @Failure 409 {object} map[string]string "Commission is not pending"
// @Failure 500 {object} map[string]string "Failed to approve commission"
// @Router /commissions/{id}/approve [post]
func (h *commissionHandler) approveCommission(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	commissionID := c.Param("id")
	logger = logger.With(slog.String("commission_id", commissionID))

	approved, err := h.commissionService.ApproveCommission(c.Request.Context(), commissionID, actorID(c))
	if err != nil {
		respondError(c, logger, err, "Failed to approve commission")
		return
	}

	logger.Info("Commission approved")
	c.JSON(http.StatusOK, dto.ToCommissionResponse(approved))
}

// payCommission godoc
// @Summary Pay a commission
// @Description Moves an approved commission to PAID, setting paid_at
// @Tags commissions
// @Accept  json
// @Produce  json
// @Param   id path string true "Commission ID"
// @Param   payment body dto.PayCommissionRequest false "Payment details"
// @Success 200 {object} dto.CommissionResponse
// @Failure 404 {object} map[string]string "Commission not found"
// @Failure 409 {object} map[string]string "Commission is not approved"
// @Failure 500 {object} map[string]string "Failed to pay commission"
// @Router /commissions/{id}/pay [post]
func (h *commissionHandler) payCommission(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	commissionID := c.Param("id")
	logger = logger.With(slog.String("commission_id", commissionID))

	var req dto.PayCommissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for PayCommission", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	paid, err := h.commissionService.PayCommission(c.Request.Context(), commissionID, req, actorID(c))
	if err != nil {
		respondError(c, logger, err, "Failed to pay commission")
		return
	}

	logger.Info("Commission paid")
	c.JSON(http.StatusOK, dto.ToCommissionResponse(paid))
}

// cancelCommission godoc
// @Summary Cancel a commission
// @Description Cancels a pending or approved commission, appending the reason to its description
// @Tags commissions
// @Accept  json
// @Produce  json
// @Param   id path string true "Commission ID"
// @Param   cancellation body dto.CancelCommissionRequest false "Cancellation reason"
// @Success 200 {object} dto.CommissionResponse
// @Failure 404 {object} map[string]string "Commission not found"
// @Failure 409 {object} map[string]string "Commission is in a terminal state"
// @Failure 500 {object} map[string]string "Failed to cancel commission"
// @Router /commissions/{id}/cancel [post]
func (h *commissionHandler) cancelCommission(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	commissionID := c.Param("id")
	logger = logger.With(slog.String("commission_id", commissionID))

	var req dto.CancelCommissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CancelCommission", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	cancelled, err := h.commissionService.CancelCommission(c.Request.Context(), commissionID, req, actorID(c))
	if err != nil {
		respondError(c, logger, err, "Failed to cancel commission")
		return
	}

	logger.Info("Commission cancelled")
	c.JSON(http.StatusOK, dto.ToCommissionResponse(cancelled))
}

// deleteCommission godoc
// @Summary Delete a commission
// @Description Removes a commission; paid commissions cannot be deleted
// @Tags commissions
// @Param   id path string true "Commission ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Commission not found"
// @Failure 409 {object} map[string]string "Commission has been paid"
// @Failure 500 {object} map[string]string "Failed to delete commission"
// @Router /commissions/{id} [delete]
func (h *commissionHandler) deleteCommission(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	commissionID := c.Param("id")
	logger = logger.With(slog.String("commission_id", commissionID))

	if err := h.commissionService.DeleteCommission(c.Request.Context(), commissionID); err != nil {
		respondError(c, logger, err, "Failed to delete commission")
		return
	}

	logger.Info("Commission deleted")
	c.Status(http.StatusNoContent)
}
