package rest

import (
	"context"
	"errors"
	"net/http"
	"time"

	"salesreco/business/reco"
	"salesreco/domain"
	"salesreco/pkg/logger"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// ResponseError is the error envelope of the API.
type ResponseError struct {
	Message string `json:"message"`
}

// RecommendService computes the ordered sales listing for one visit.
type RecommendService interface {
	Recommend(ctx context.Context, uid string, ongoing []domain.SaleID) (domain.SalesList, error)
}

type RecoHandler struct {
	baseService         RecommendService
	alertsService       RecommendService
	personalisedService RecommendService
	validator           *validator.Validate
	timeout             time.Duration
}

func NewRecoHandler(base, alerts, personalised RecommendService) *RecoHandler {
	return &RecoHandler{
		baseService:         base,
		alertsService:       alerts,
		personalisedService: personalised,
		validator:           validator.New(),
		timeout:             10 * time.Second,
	}
}

type RecommendRequest struct {
	Ongoing []string `json:"ongoing" validate:"required,min=1,dive,required"`
}

func (h *RecoHandler) Recommend(c echo.Context) error {
	return h.recommend(c, h.baseService)
}

func (h *RecoHandler) RecommendWithAlerts(c echo.Context) error {
	return h.recommend(c, h.alertsService)
}

func (h *RecoHandler) RecommendPersonalised(c echo.Context) error {
	return h.recommend(c, h.personalisedService)
}

func (h *RecoHandler) recommend(c echo.Context, service RecommendService) error {
	uid := c.Param("uid")
	if uid == "" {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "uid is required"})
	}

	var req RecommendRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind recommend request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate recommend request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ongoing := make([]domain.SaleID, 0, len(req.Ongoing))
	for _, id := range req.Ongoing {
		ongoing = append(ongoing, domain.SaleID(id))
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	listing, err := service.Recommend(ctx, uid, ongoing)
	if err != nil {
		logger.Error("Failed to compute sales recommendation", err, "user_id", uid)
		switch {
		case errors.Is(err, reco.ErrCatalogUnavailable):
			return c.JSON(http.StatusServiceUnavailable, ResponseError{Message: "catalog unavailable"})
		case errors.Is(err, reco.ErrScoring):
			return c.JSON(http.StatusBadGateway, ResponseError{Message: "scoring unavailable"})
		case errors.Is(err, reco.ErrMalformedPayload):
			return c.JSON(http.StatusInternalServerError, ResponseError{Message: "malformed cached state"})
		default:
			return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
		}
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(listing))
}
