package main

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

func RegisterOrderHandlers(r *gin.Engine, logger zerolog.Logger) {
	r.GET("/orders", func(c *gin.Context) {
		store, ok := storeFrom(c)
		if !ok {
			logger.Error().Msg("no database handle on request")
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}
		orders, err := store.FindOrders(c.Request.Context())
		if err != nil {
			logger.Error().Err(err).Str("rid", c.GetString("X-Request-ID")).Msg("list orders failed")
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}
		if orders == nil {
			orders = []Document{}
		}
		// encode before the status goes out so a bad document still yields a 500
		body, err := json.Marshal(orders)
		if err != nil {
			logger.Error().Err(err).Str("rid", c.GetString("X-Request-ID")).Msg("encode orders failed")
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}
		c.Data(http.StatusOK, "application/json; charset=utf-8", body)
	})
}
