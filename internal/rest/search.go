package rest

import (
	"context"
	"errors"
	"net/http"
	"time"

	"myShopRecs/business/recommend"
	"myShopRecs/business/search"
	"myShopRecs/domain"
	"myShopRecs/pkg/logger"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type (
	SearchHandler struct {
		validate      *validator.Validate
		searchService SearchService
		defaultK      int
		defaultAlpha  float64
		timeout       time.Duration
	}

	SearchService interface {
		Search(ctx context.Context, query string, k int) ([]domain.Item, error)
		SearchAndRecommend(ctx context.Context, query string, k int, alpha float64) (*domain.Item, *domain.RecommendationPage, error)
	}

	SearchRequest struct {
		Q string `query:"q" validate:"required"`
		K *int   `query:"k" validate:"omitempty,min=1,max=100"`
	}

	SearchRecommendRequest struct {
		Q     string   `query:"q" validate:"required"`
		K     *int     `query:"k" validate:"omitempty,min=1,max=100"`
		Alpha *float64 `query:"alpha" validate:"omitempty,gte=0,lte=1"`
	}
)

func NewSearchHandler(svc SearchService, defaultK int, defaultAlpha float64) *SearchHandler {
	return &SearchHandler{
		validate:      validator.New(),
		searchService: svc,
		defaultK:      defaultK,
		defaultAlpha:  defaultAlpha,
		timeout:       10 * time.Second,
	}
}

// GET /api/v1/search?q=...&k=10
func (h *SearchHandler) Search(c echo.Context) error {
	var req SearchRequest
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

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	items, err := h.searchService.Search(ctx, req.Q, k)
	if err != nil {
		logger.Error("catalog search failed", "q", req.Q, "error", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, items)
}

// GET /api/v1/search-recommend?q=...&k=10&alpha=0.6
func (h *SearchHandler) SearchAndRecommend(c echo.Context) error {
	var req SearchRecommendRequest
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

	match, page, err := h.searchService.SearchAndRecommend(ctx, req.Q, k, alpha)
	if err != nil {
		if errors.Is(err, search.ErrNoMatch) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "no match found"})
		}
		if errors.Is(err, recommend.ErrUnknownProduct) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "product_id not found"})
		}
		logger.Error("search-recommend failed", "q", req.Q, "error", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"match":           match,
		"recommendations": page,
	})
}
