package punchfile

import (
	"database/sql"
	"net"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"shiftbook.com.au/shiftbook/infrastructure/devops"
	"shiftbook.com.au/shiftbook/store"
)

type Endpoint struct {
	dm  *store.DatabaseManager
	cfg *devops.AppConfig
}

func Register(r *gin.RouterGroup, dm *store.DatabaseManager, cfg *devops.AppConfig) {
	ep := &Endpoint{dm: dm, cfg: cfg}
	r.POST("/punchfiles", ep.Upload)
	r.POST("/punchfiles/:batchId/process", ep.Process)
	r.GET("/punchfiles/:batchId/export", ep.Export)
	r.POST("/shifts/search", ep.Search)
}

func (ep *Endpoint) getDB(c *gin.Context) (*gorm.DB, *sql.Conn, error) {
	host := c.Request.Host
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}
	return ep.dm.GetDB(c.Request.Context(), store.SchemaFromHost(host))
}
