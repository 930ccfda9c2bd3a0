package router

import (
	"strconv"
	"time"

	"salesreco/app/echo-server/metrics"
	"salesreco/internal/rest"

	"github.com/labstack/echo/v4"
)

// observe records latency and status for one recommendation variant.
func observe(variant string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			metrics.RecommendDuration.WithLabelValues(variant).Observe(time.Since(start).Seconds())
			metrics.RecommendTotal.WithLabelValues(variant, strconv.Itoa(c.Response().Status)).Inc()
			return err
		}
	}
}

func SetRecommendationRoutes(api *echo.Group, handler *rest.RecoHandler) {
	reco := api.Group("/recommendations")

	reco.POST("/:uid", handler.Recommend, observe("base"))
	reco.POST("/:uid/alerts", handler.RecommendWithAlerts, observe("alerts"))
	reco.POST("/:uid/personalised", handler.RecommendPersonalised, observe("personalised"))
}
