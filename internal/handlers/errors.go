package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/imovelhub/imovel_finance/internal/apperrors"
)

// actorHeader carries the acting user's identity, resolved upstream by the
// API gateway. The ledger core trusts it for audit attribution only.
const actorHeader = "X-Actor-ID"

// actorID returns the acting user for audit fields, defaulting to "system"
// when the gateway did not forward one.
func actorID(c *gin.Context) string {
	if id := c.GetHeader(actorHeader); id != "" {
		return id
	}
	return "system"
}

// respondError maps service errors to HTTP responses. ValidationError
// payloads include the per-field message map so frontends can annotate
// forms; everything unrecognized becomes an opaque 500.
func respondError(c *gin.Context, logger *slog.Logger, err error, fallback string) {
	var validationErr *apperrors.ValidationError
	if errors.As(err, &validationErr) {
		logger.Warn("Validation failed", slog.String("error", validationErr.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error(), "fields": validationErr.Fields})
		return
	}

	var counterpartyErr *apperrors.InvalidCounterpartyError
	if errors.As(err, &counterpartyErr) {
		logger.Warn("Invalid counterparty", slog.String("error", counterpartyErr.Error()))
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": counterpartyErr.Error()})
		return
	}

	var transitionErr *apperrors.InvalidTransitionError
	if errors.As(err, &transitionErr) {
		logger.Warn("Invalid state transition", slog.String("error", transitionErr.Error()))
		c.JSON(http.StatusConflict, gin.H{"error": transitionErr.Error()})
		return
	}

	var immutableErr *apperrors.ImmutableStateError
	if errors.As(err, &immutableErr) {
		logger.Warn("Entity is immutable", slog.String("error", immutableErr.Error()))
		c.JSON(http.StatusConflict, gin.H{"error": immutableErr.Error()})
		return
	}

	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Entity not found", slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrConflict):
		logger.Warn("Conflicting request", slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Invalid request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		logger.Error("Unexpected service error", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}
