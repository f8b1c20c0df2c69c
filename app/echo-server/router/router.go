package router

import (
	"net/http"

	"myShopRecs/internal/rest"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupRecommendationRoutes(api *echo.Group, handler *rest.RecommendHandler) {
	reco := api.Group("/recommendations")
	reco.GET("", handler.GetRecommendations)
}

func SetupSearchRoutes(api *echo.Group, handler *rest.SearchHandler) {
	api.GET("/search", handler.Search)
	api.GET("/search-recommend", handler.SearchAndRecommend)
}

func SetupOpsRoutes(e *echo.Echo) {
	e.GET("/health", healthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
}

func healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"status": "healthy"})
}
