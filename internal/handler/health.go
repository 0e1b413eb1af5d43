package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	amqp "github.com/rabbitmq/amqp091-go"
)

type HealthHandler struct {
	dbPool   *pgxpool.Pool
	amqpConn *amqp.Connection
}

func NewHealthHandler(dbPool *pgxpool.Pool, amqpConn *amqp.Connection) *HealthHandler {
	return &HealthHandler{dbPool: dbPool, amqpConn: amqpConn}
}

func (h *HealthHandler) Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *HealthHandler) Readyz(c *gin.Context) {
	if err := h.dbPool.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "postgres": "unavailable"})
		return
	}
	if h.amqpConn != nil && h.amqpConn.IsClosed() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "rabbitmq": "unavailable"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok", "postgres": "connected", "rabbitmq": "connected"})
}
