package http

import (
	"net/http"
	"strings"

	"coopvault-backend/internal/usecase/repayment"

	"github.com/labstack/echo/v4"
)

type RepaymentHandler struct{ uc *repayment.Usecase }

func NewRepaymentHandler(uc *repayment.Usecase) *RepaymentHandler {
	return &RepaymentHandler{uc: uc}
}

type submitRepaymentReq struct {
	LoanID   string  `json:"loan_id"   validate:"required,hex32"`
	Amount   float64 `json:"amount"    validate:"required,gt=0,dec2"`
	ProofURL string  `json:"proof_url" validate:"omitempty,url"`
}

func (h *RepaymentHandler) Submit(c echo.Context) error {
	var req submitRepaymentReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Submit(c.Request().Context(), repayment.SubmitInput{
		LoanID:   req.LoanID,
		Amount:   req.Amount,
		ProofURL: req.ProofURL,
	})
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

type reviewRepaymentReq struct {
	Notes string `json:"notes"`
}

func (h *RepaymentHandler) Approve(c echo.Context) error {
	var req reviewRepaymentReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	dto, err := h.uc.Approve(c.Request().Context(), repayment.ReviewInput{
		RepaymentID: c.Param("repayment_id"),
		ReviewerID:  actorID(c),
		Notes:       req.Notes,
	})
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *RepaymentHandler) Reject(c echo.Context) error {
	var req reviewRepaymentReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	dto, err := h.uc.Reject(c.Request().Context(), repayment.ReviewInput{
		RepaymentID: c.Param("repayment_id"),
		ReviewerID:  actorID(c),
		Notes:       req.Notes,
	})
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *RepaymentHandler) Get(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), c.Param("repayment_id"))
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

// actorID reads the acting member/staff id from the Ax-Actor-Id header.
// Authentication itself is handled upstream.
func actorID(c echo.Context) string {
	return strings.TrimSpace(c.Request().Header.Get("Ax-Actor-Id"))
}
