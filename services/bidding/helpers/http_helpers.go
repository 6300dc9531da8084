package helpers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"auctions/internal/biddingerrors"
	model "auctions/internal/models"
	"auctions/utils"

	"github.com/gin-gonic/gin"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// ParseAuctionID reads the :auction_id path parameter
func ParseAuctionID(c *gin.Context) (model.AuctionID, error) {
	raw := c.Param("auction_id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("auction id %q: %w", raw, biddingerrors.ErrInvalidInput)
	}
	return model.AuctionID(id), nil
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, biddingerrors.ErrAuctionNotFound):
		return http.StatusNotFound, "auction not found"
	case errors.Is(err, biddingerrors.ErrInvalidInput),
		errors.Is(err, biddingerrors.ErrInvalidAmount),
		errors.Is(err, biddingerrors.ErrCurrencyMismatch):
		return http.StatusBadRequest, "invalid request"
	case errors.Is(err, biddingerrors.ErrConflict):
		return http.StatusConflict, "auction was modified concurrently, retry"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
