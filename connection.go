package main

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"
)

const storeKey = "orders_store"

// Store is a live handle onto the orders database.
type Store interface {
	FindOrders(ctx context.Context) ([]Document, error)
}

// DialFunc makes exactly one connection attempt.
type DialFunc func(ctx context.Context, url string) (Store, error)

// Connection owns the process-wide database handle. The slot starts empty,
// is filled by the first successful attempt and is replaced, never closed,
// by later ones.
type Connection struct {
	url     string
	dial    DialFunc
	timeout time.Duration
	logger  zerolog.Logger

	mu    sync.RWMutex
	store Store

	inflight singleflight.Group
}

func NewConnection(url string, dial DialFunc, timeout time.Duration, logger zerolog.Logger) *Connection {
	return &Connection{url: url, dial: dial, timeout: timeout, logger: logger}
}

// Store returns the current handle, or nil if none was ever established.
func (c *Connection) Store() Store {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.store
}

func (c *Connection) setStore(s Store) {
	c.mu.Lock()
	c.store = s
	c.mu.Unlock()
}

// Start fires the startup attempt in the background. The returned channel
// receives its result once; a failure is logged and is not fatal.
func (c *Connection) Start() <-chan error {
	done := make(chan error, 1)
	go func() {
		_, err := c.Connect(context.Background())
		done <- err
	}()
	return done
}

// Connect makes one attempt and stores the handle on success. Callers that
// arrive while an attempt is running share its result.
func (c *Connection) Connect(ctx context.Context) (Store, error) {
	v, err, _ := c.inflight.Do("connect", func() (interface{}, error) {
		// shared by every waiting caller, so no single request may cancel it
		attemptCtx := context.WithoutCancel(ctx)
		if c.timeout > 0 {
			var cancel context.CancelFunc
			attemptCtx, cancel = context.WithTimeout(attemptCtx, c.timeout)
			defer cancel()
		}
		s, err := c.dial(attemptCtx, c.url)
		if err != nil {
			c.logger.Error().Err(err).Msg("database connection failed")
			return nil, err
		}
		c.setStore(s)
		c.logger.Info().Msg("database connected")
		return s, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(Store), nil
}

// Gate makes sure a handle exists before the request reaches a handler.
// A held handle is trusted without a health check; a missing one gets a
// single reconnect attempt, and the request fails with 500 if that fails.
func (c *Connection) Gate() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		s := c.Store()
		if s == nil {
			var err error
			s, err = c.Connect(ctx.Request.Context())
			if err != nil {
				ctx.AbortWithStatus(http.StatusInternalServerError)
				return
			}
		}
		ctx.Set(storeKey, s)
		ctx.Next()
	}
}

func storeFrom(c *gin.Context) (Store, bool) {
	v, ok := c.Get(storeKey)
	if !ok {
		return nil, false
	}
	s, ok := v.(Store)
	return s, ok
}
