package http

import (
	"net/http"

	"coopvault-backend/internal/usecase/member"
	"coopvault-backend/internal/usecase/settings"

	"github.com/labstack/echo/v4"
)

type SettingsHandler struct{ uc *settings.Usecase }

func NewSettingsHandler(uc *settings.Usecase) *SettingsHandler { return &SettingsHandler{uc: uc} }

func (h *SettingsHandler) GetRates(c echo.Context) error {
	dto, err := h.uc.Current(c.Request().Context())
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

type updateRatesReq struct {
	InterestRatePercent      float64 `json:"interest_rate_percent"       validate:"gte=0,lte=100,dec2"`
	ProcessingFeeRatePercent float64 `json:"processing_fee_rate_percent" validate:"gte=0,lte=100,dec2"`
}

func (h *SettingsHandler) UpdateRates(c echo.Context) error {
	var req updateRatesReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Update(c.Request().Context(), settings.UpdateInput{
		InterestRatePercent:      req.InterestRatePercent,
		ProcessingFeeRatePercent: req.ProcessingFeeRatePercent,
		UpdatedBy:                actorID(c),
	})
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

type MemberHandler struct{ uc *member.Usecase }

func NewMemberHandler(uc *member.Usecase) *MemberHandler { return &MemberHandler{uc: uc} }

func (h *MemberHandler) GuarantorScore(c echo.Context) error {
	dto, err := h.uc.GuarantorScore(c.Request().Context(), c.Param("user_id"))
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
