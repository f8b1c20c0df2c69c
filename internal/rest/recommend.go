package rest

import (
	"context"
	"errors"
	"net/http"
	"time"

	"myShopRecs/business/recommend"
	"myShopRecs/domain"
	"myShopRecs/pkg/logger"
	"myShopRecs/pkg/metrics"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type (
	RecommendHandler struct {
		validate     *validator.Validate
		recoService  RecommendationService
		defaultK     int
		defaultAlpha float64
		timeout      time.Duration
	}

	RecommendationService interface {
		GetRecommendations(ctx context.Context, q recommend.Query) (*domain.RecommendationPage, error)
	}

	// RecommendRequest uses pointers so an absent k/alpha can fall back to
	// the configured defaults (alpha=0 is a valid value).
	RecommendRequest struct {
		ProductID string   `query:"product_id" validate:"required"`
		K         *int     `query:"k" validate:"omitempty,min=1,max=100"`
		Alpha     *float64 `query:"alpha" validate:"omitempty,gte=0,lte=1"`
		Cursor    string   `query:"cursor"`
		Diversify bool     `query:"diversify"`
	}
)

func NewRecommendHandler(svc RecommendationService, defaultK int, defaultAlpha float64) *RecommendHandler {
	return &RecommendHandler{
		validate:     validator.New(),
		recoService:  svc,
		defaultK:     defaultK,
		defaultAlpha: defaultAlpha,
		timeout:      10 * time.Second,
	}
}

// GET /api/v1/recommendations?product_id=...&k=10&alpha=0.6&cursor=...&diversify=false
func (h *RecommendHandler) GetRecommendations(c echo.Context) error {
	start := time.Now()
	defer func() {
		metrics.RecommendLatency.Observe(time.Since(start).Seconds())
	}()
	metrics.RecommendRequests.Inc()

	var req RecommendRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	k := h.defaultK
	if req.K != nil {
		k = *req.K
	}
	alpha := h.defaultAlpha
	if req.Alpha != nil {
		alpha = *req.Alpha
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	page, err := h.recoService.GetRecommendations(ctx, recommend.Query{
		ProductID: req.ProductID,
		K:         k,
		Alpha:     alpha,
		Cursor:    req.Cursor,
		Diversify: req.Diversify,
	})
	if err != nil {
		if errors.Is(err, recommend.ErrUnknownProduct) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "product_id not found"})
		}
		if errors.Is(err, recommend.ErrInvalidCursor) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		logger.Error("failed to get recommendations", "product_id", req.ProductID, "error", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, page)
}
