package punchfile

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"shiftbook.com.au/shiftbook/store"
	web "shiftbook.com.au/shiftbook/web/common"
)

type SearchParams struct {
	BatchID   string        `json:"batchId"`
	Users     []string      `json:"users"`
	StartDate *web.DateOnly `json:"startDate"`
	EndDate   *web.DateOnly `json:"endDate"`
}

func (ep *Endpoint) Search(c *gin.Context) {
	var params SearchParams
	if err := c.ShouldBindJSON(&params); err != nil {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse(web.FormatBindingError(err)))
		return
	}

	limit := 1000
	offset := 0
	if val, err := strconv.Atoi(c.Query("limit")); err == nil {
		limit = val
	}
	if val, err := strconv.Atoi(c.Query("offset")); err == nil {
		offset = val
	}

	opts := store.SearchOptions{
		BatchID: params.BatchID,
		UserIDs: params.Users,
		Limit:   limit,
		Offset:  offset,
	}
	if params.StartDate != nil && !params.StartDate.IsZero() {
		opts.From = &params.StartDate.Time
	}
	if params.EndDate != nil && !params.EndDate.IsZero() {
		opts.To = &params.EndDate.Time
	}

	db, conn, err := ep.getDB(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}
	defer conn.Close()

	records, total, err := store.SearchShifts(db, opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, web.NewSearchResponse(records, total))
}
