package punchfile

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"shiftbook.com.au/shiftbook/punch/core"
	"shiftbook.com.au/shiftbook/punch/model"
	"shiftbook.com.au/shiftbook/store"
	web "shiftbook.com.au/shiftbook/web/common"
)

// Process reconciles a batch's punches into shift records. An empty or fully
// unparseable batch produces zero shift rows, which is a success.
func (ep *Endpoint) Process(c *gin.Context) {
	batchID := c.Param("batchId")

	db, conn, err := ep.getDB(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}
	defer conn.Close()

	punches, err := store.BatchPunches(db, batchID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}

	shifts := core.Reconcile(punches)

	if err := store.SaveShiftRecords(db, batchID, shifts); err != nil {
		if markErr := store.MarkBatch(db, batchID, model.StatusError); markErr != nil {
			fmt.Printf("[ERROR] failed to mark batch %s: %v\n", batchID, markErr)
		}
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}

	if err := store.MarkBatch(db, batchID, model.StatusProcessed); err != nil {
		fmt.Printf("[ERROR] failed to mark batch %s: %v\n", batchID, err)
	}

	c.JSON(http.StatusOK, web.NewSuccessResponse(gin.H{
		"batchId": batchID,
		"punches": len(punches),
		"shifts":  len(shifts),
	}))
}
