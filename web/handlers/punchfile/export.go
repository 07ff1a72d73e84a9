package punchfile

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"shiftbook.com.au/shiftbook/infrastructure/filesystem"
	"shiftbook.com.au/shiftbook/punch/export"
	"shiftbook.com.au/shiftbook/store"
	web "shiftbook.com.au/shiftbook/web/common"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Export streams a batch's reconciled shifts as a workbook and, when an
// export bucket is configured, archives a copy next to the batch id.
func (ep *Endpoint) Export(c *gin.Context) {
	batchID := c.Param("batchId")

	db, conn, err := ep.getDB(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}
	defer conn.Close()

	records, _, err := store.SearchShifts(db, store.SearchOptions{BatchID: batchID})
	if err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}

	var buf bytes.Buffer
	if err := export.Write(records, &buf); err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}

	if ep.cfg != nil && ep.cfg.ExportBucket != "" {
		key := fmt.Sprintf("exports/%s.xlsx", batchID)
		if err := filesystem.WriteFile(ep.cfg.ExportBucket, key, c.Request.Context(), buf.Bytes()); err != nil {
			fmt.Printf("[ERROR] failed to archive export %s: %v\n", key, err)
		}
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="shifts-%s.xlsx"`, batchID))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
