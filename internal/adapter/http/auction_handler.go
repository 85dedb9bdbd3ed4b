package http

import (
	"net/http"
	"time"

	"coopvault-backend/internal/usecase/auction"

	"github.com/labstack/echo/v4"
)

type AuctionHandler struct{ uc *auction.Usecase }

func NewAuctionHandler(uc *auction.Usecase) *AuctionHandler { return &AuctionHandler{uc: uc} }

type createAuctionReq struct {
	Name         string    `json:"name"          validate:"required"`
	InvestmentID string    `json:"investment_id" validate:"required,hex32"`
	ReservePrice float64   `json:"reserve_price" validate:"required,gt=0,dec2"`
	EndDate      time.Time `json:"end_date"      validate:"required"`
}

func (h *AuctionHandler) Create(c echo.Context) error {
	var req createAuctionReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Create(c.Request().Context(), auction.CreateInput{
		OwnerID:      actorID(c),
		Name:         req.Name,
		InvestmentID: req.InvestmentID,
		ReservePrice: req.ReservePrice,
		EndDate:      req.EndDate,
	})
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *AuctionHandler) Get(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), c.Param("auction_id"))
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *AuctionHandler) ListActive(c echo.Context) error {
	dtos, err := h.uc.ListActive(c.Request().Context())
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, dtos)
}

type placeBidReq struct {
	Amount float64 `json:"amount" validate:"required,gt=0,dec2"`
}

func (h *AuctionHandler) PlaceBid(c echo.Context) error {
	var req placeBidReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.PlaceBid(c.Request().Context(), c.Param("auction_id"), actorID(c), req.Amount)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *AuctionHandler) Close(c echo.Context) error {
	dto, err := h.uc.Close(c.Request().Context(), c.Param("auction_id"))
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *AuctionHandler) Cancel(c echo.Context) error {
	dto, err := h.uc.Cancel(c.Request().Context(), c.Param("auction_id"))
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
