package main

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// NewRouter wires the middleware chain in front of the orders endpoint.
// The request log sits before the gate so gate failures are logged too.
func NewRouter(conn *Connection, logger zerolog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggingMiddleware(logger))
	r.Use(CORSMiddleware())
	r.Use(conn.Gate())

	RegisterOrderHandlers(r, logger)
	return r
}
