package punchfile

import (
	"errors"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"shiftbook.com.au/shiftbook/punch/core"
	"shiftbook.com.au/shiftbook/punch/ingest"
	"shiftbook.com.au/shiftbook/store"
	web "shiftbook.com.au/shiftbook/web/common"
)

// Upload ingests a punch document (.txt page text, .csv or .xlsx) and
// persists the extracted punches as a pending batch. Lines or rows that do
// not yield a punch are dropped silently; an unresolvable tabular header is
// a client error.
func (ep *Endpoint) Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse("missing file"))
		return
	}

	switch strings.ToLower(filepath.Ext(file.Filename)) {
	case ".txt", ".text", ".csv", ".xlsx", ".xls":
	default:
		c.JSON(http.StatusBadRequest, web.NewErrorResponse("unsupported file type"))
		return
	}

	src, err := file.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}
	defer src.Close()

	records, err := ingest.File(file.Filename, src)
	if err != nil {
		var ucErr *core.UnresolvedColumnsError
		if errors.As(err, &ucErr) {
			c.JSON(http.StatusBadRequest, web.NewErrorResponse(ucErr.Error()))
			return
		}
		c.JSON(http.StatusBadRequest, web.NewErrorResponse(err.Error()))
		return
	}

	db, conn, err := ep.getDB(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}
	defer conn.Close()

	batchID, err := store.SavePunchBatch(db, records)
	if err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, web.NewSuccessResponse(gin.H{
		"batchId": batchID,
		"records": len(records),
	}))
}
