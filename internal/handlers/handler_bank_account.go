package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/imovelhub/imovel_finance/internal/core/ports/services"
	"github.com/imovelhub/imovel_finance/internal/dto"
	"github.com/imovelhub/imovel_finance/internal/middleware"
)

// bankAccountHandler handles HTTP requests for the bank account registry.
type bankAccountHandler struct {
	bankAccountService portssvc.BankAccountSvcFacade
}

func newBankAccountHandler(bs portssvc.BankAccountSvcFacade) *bankAccountHandler {
	return &bankAccountHandler{bankAccountService: bs}
}

// registerBankAccountRoutes registers routes related to bank accounts.
func registerBankAccountRoutes(rg *gin.RouterGroup, bankAccountService portssvc.BankAccountSvcFacade) {
	h := newBankAccountHandler(bankAccountService)

	accounts := rg.Group("/bank-accounts")
	{
		accounts.POST("", h.createBankAccount)
		accounts.GET("/:id", h.getBankAccount)
		accounts.GET("", h.listBankAccounts)
		accounts.PUT("/:id", h.updateBankAccount)
		accounts.POST("/:id/default", h.setDefaultBankAccount)
		accounts.DELETE("/:id", h.deleteBankAccount)
	}
}

// createBankAccount godoc
// @Summary Register a bank account
// @Description Registers an account; setting isDefault clears the person's previous default
// @Tags bank-accounts
// @Accept  json
// @Produce  json
// @Param   account body dto.CreateBankAccountRequest true "Account details"
// @Success 201 {object} dto.BankAccountResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 404 {object} map[string]string "Referenced person not found"
// @Failure 500 {object} map[string]string "Failed to create bank account"
// @Router /bank-accounts [post]
func (h *bankAccountHandler) createBankAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateBankAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateBankAccount", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID := actorID(c)
	logger = logger.With(slog.String("creator_user_id", creatorUserID))

	newAccount, err := h.bankAccountService.CreateBankAccount(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondError(c, logger, err, "Failed to create bank account")
		return
	}

	logger.Info("Bank account created successfully", slog.String("bank_account_id", newAccount.BankAccountID))
	c.JSON(http.StatusCreated, dto.ToBankAccountResponse(newAccount))
}

// getBankAccount godoc
// @Summary Get a bank account by ID
// @Description Retrieves an account with its bank and owner embedded
// @Tags bank-accounts
// @Produce  json
// @Param   id path string true "Bank account ID"
// @Success 200 {object} dto.BankAccountResponse
// @Failure 404 {object} map[string]string "Bank account not found"
// @Failure 500 {object} map[string]string "Failed to retrieve bank account"
// @Router /bank-accounts/{id} [get]
func (h *bankAccountHandler) getBankAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	bankAccountID := c.Param("id")
	logger = logger.With(slog.String("bank_account_id", bankAccountID))

	account, err := h.bankAccountService.GetBankAccountByID(c.Request.Context(), bankAccountID)
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve bank account")
		return
	}

	c.JSON(http.StatusOK, dto.ToBankAccountResponse(account))
}

// listBankAccounts godoc
// @Summary List bank accounts
// @Description Lists accounts filtered by owner and bank, defaults first
// @Tags bank-accounts
// @Produce  json
// @Param   limit query int false "Page size" default(20)
// @Param   offset query int false "Page offset" default(0)
// @Param   personID query string false "Filter by owner"
// @Param   bankID query string false "Filter by bank"
// @Success 200 {array} dto.BankAccountResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to list bank accounts"
// @Router /bank-accounts [get]
func (h *bankAccountHandler) listBankAccounts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListBankAccountsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for ListBankAccounts", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	accounts, err := h.bankAccountService.ListBankAccounts(c.Request.Context(), params)
	if err != nil {
		respondError(c, logger, err, "Failed to list bank accounts")
		return
	}

	c.JSON(http.StatusOK, dto.ToBankAccountResponses(accounts))
}

// updateBankAccount godoc
// @Summary Update a bank account
// @Description Edits an account; turning isDefault on clears the person's previous default atomically
// @Tags bank-accounts
// @Accept  json
// @Produce  json
// @Param   id path string true "Bank account ID"
// @Param   account body dto.UpdateBankAccountRequest true "Fields to update"
// @Success 200 {object} dto.BankAccountResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 404 {object} map[string]string "Bank account not found"
// @Failure 500 {object} map[string]string "Failed to update bank account"
// @Router /bank-accounts/{id} [put]
func (h *bankAccountHandler) updateBankAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	bankAccountID := c.Param("id")
	logger = logger.With(slog.String("bank_account_id", bankAccountID))

	var req dto.UpdateBankAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateBankAccount", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updated, err := h.bankAccountService.UpdateBankAccount(c.Request.Context(), bankAccountID, req, actorID(c))
	if err != nil {
		respondError(c, logger, err, "Failed to update bank account")
		return
	}

	logger.Info("Bank account updated successfully")
	c.JSON(http.StatusOK, dto.ToBankAccountResponse(updated))
}

// setDefaultBankAccount godoc
// @Summary Set the default bank account
// @Description Atomically makes this the person's only default account
// @Tags bank-accounts
// @Produce  json
// @Param   id path string true "Bank account ID"
// @Success 200 {object} dto.BankAccountResponse
// @Failure 404 {object} map[string]string "Bank account not found"
// @Failure 409 {object} map[string]string "Account does not belong to a person"
// @Failure 500 {object} map[string]string "Failed to set default bank account"
// @Router /bank-accounts/{id}/default [post]
func (h *bankAccountHandler) setDefaultBankAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	bankAccountID := c.Param("id")
	logger = logger.With(slog.String("bank_account_id", bankAccountID))

	account, err := h.bankAccountService.SetDefaultBankAccount(c.Request.Context(), bankAccountID, actorID(c))
	if err != nil {
		respondError(c, logger, err, "Failed to set default bank account")
		return
	}

	logger.Info("Default bank account set")
	c.JSON(http.StatusOK, dto.ToBankAccountResponse(account))
}

// deleteBankAccount godoc
// @Summary Delete a bank account
// @Description Removes an account unless transactions reference it
// @Tags bank-accounts
// @Param   id path string true "Bank account ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Bank account not found"
// @Failure 409 {object} map[string]string "Account is referenced by transactions"
// @Failure 500 {object} map[string]string "Failed to delete bank account"
// @Router /bank-accounts/{id} [delete]
func (h *bankAccountHandler) deleteBankAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	bankAccountID := c.Param("id")
	logger = logger.With(slog.String("bank_account_id", bankAccountID))

	if err := h.bankAccountService.DeleteBankAccount(c.Request.Context(), bankAccountID); err != nil {
		respondError(c, logger, err, "Failed to delete bank account")
		return
	}

	logger.Info("Bank account deleted")
	c.Status(http.StatusNoContent)
}
