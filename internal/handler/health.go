package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type HealthHandler struct {
	db *gorm.DB
}

func NewHealthHandler(db *gorm.DB) *HealthHandler { return &HealthHandler{db: db} }

// Check reports liveness plus database reachability.
func (h *HealthHandler) Check(c *gin.Context) {
	estado := gin.H{"status": "ok"}

	sqlDB, err := h.db.DB()
	if err != nil || sqlDB.PingContext(c.Request.Context()) != nil {
		estado["status"] = "degraded"
		estado["database"] = "unreachable"
		c.JSON(http.StatusServiceUnavailable, estado)
		return
	}
	estado["database"] = "ok"
	c.JSON(http.StatusOK, estado)
}
