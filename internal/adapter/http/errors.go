package http

import (
	"errors"
	"net/http"

	auctionDomain "coopvault-backend/internal/domain/auction"
	investmentDomain "coopvault-backend/internal/domain/investment"
	loanDomain "coopvault-backend/internal/domain/loan"
	repaymentDomain "coopvault-backend/internal/domain/repayment"
	settingsDomain "coopvault-backend/internal/domain/settings"
	userDomain "coopvault-backend/internal/domain/user"
	"coopvault-backend/internal/usecase/loancalc"

	"github.com/labstack/echo/v4"
)

// httpStatus maps domain sentinel errors onto HTTP codes. Anything
// unrecognized is an internal error; raw persistence errors never reach the
// client body.
func httpStatus(err error) int {
	switch {
	case errors.Is(err, loanDomain.ErrNotFound),
		errors.Is(err, repaymentDomain.ErrNotFound),
		errors.Is(err, auctionDomain.ErrNotFound),
		errors.Is(err, auctionDomain.ErrBidNotFound),
		errors.Is(err, userDomain.ErrNotFound),
		errors.Is(err, investmentDomain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, auctionDomain.ErrOwnBid):
		return http.StatusForbidden
	case errors.Is(err, auctionDomain.ErrNotOwner):
		return http.StatusForbidden
	case errors.Is(err, loanDomain.ErrInvalidTransition),
		errors.Is(err, repaymentDomain.ErrAlreadyReviewed),
		errors.Is(err, auctionDomain.ErrNotActive),
		errors.Is(err, auctionDomain.ErrEnded),
		errors.Is(err, auctionDomain.ErrHasBids):
		return http.StatusConflict
	case errors.Is(err, loanDomain.ErrInvalidInput),
		errors.Is(err, auctionDomain.ErrInvalidInput),
		errors.Is(err, auctionDomain.ErrBelowReserve),
		errors.Is(err, auctionDomain.ErrBidTooLow),
		errors.Is(err, settingsDomain.ErrInvalidRates),
		errors.Is(err, loancalc.ErrInvalidPrincipal),
		errors.Is(err, loancalc.ErrInvalidDuration),
		errors.Is(err, userDomain.ErrInsufficientFunds):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func jsonError(c echo.Context, err error) error {
	code := httpStatus(err)
	msg := err.Error()
	if code == http.StatusInternalServerError {
		msg = "internal error"
	}
	return c.JSON(code, ErrorResponse{Error: msg})
}
