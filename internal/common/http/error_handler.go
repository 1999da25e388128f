package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/fintechlabs/go-wallet-gate/internal/common"
)

// StatusCodeFromError maps domain errors to HTTP status codes. Contract
// violations surface as 409 so buggy callers notice instead of silently
// retrying.
func StatusCodeFromError(err error) int {
	switch {
	case errors.Is(err, common.ErrInvalidIntent),
		errors.Is(err, common.ErrPinFormatInvalid),
		errors.Is(err, common.ErrInvalidAmount),
		errors.Is(err, common.ErrInvalidTransactionKind),
		errors.Is(err, common.ErrMissingCurrencyPair),
		errors.Is(err, common.ErrUnsupportedWalletProvider):
		return fiber.StatusBadRequest
	case errors.Is(err, common.ErrSessionAlreadyActive),
		errors.Is(err, common.ErrIllegalCancellation):
		return fiber.StatusConflict
	case errors.Is(err, common.ErrSessionNotFound),
		errors.Is(err, common.ErrDataNotFound),
		errors.Is(err, common.ErrBalanceAccountNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, common.ErrCommitFailed),
		errors.Is(err, common.ErrTransferRejected):
		return fiber.StatusBadGateway
	case errors.Is(err, common.ErrWalletUnavailable),
		errors.Is(err, common.ErrNoWalletConnected),
		errors.Is(err, common.ErrConnectionRejected),
		errors.Is(err, common.ErrDataSourceUnavailable):
		return fiber.StatusServiceUnavailable
	default:
		return fiber.StatusInternalServerError
	}
}

// HandleServiceError translates a service error into the standard error body.
func HandleServiceError(c *fiber.Ctx, err error) error {
	if err == nil {
		return nil
	}

	return RestErrorResponse(c, StatusCodeFromError(err), err)
}
