package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbershop-api/internal/httperr"
)

// writeError maps core errors onto HTTP responses. Unrecognized errors
// are storage-level failures; the caller may retry those, we do not.
func writeError(c *gin.Context, err error) {
	var nf httperr.NotFoundError
	if errors.As(err, &nf) {
		httperr.NotFound(c, nf.Error(), "Referenced "+nf.Entity+" does not exist.")
		return
	}

	var be httperr.BusinessError
	if errors.As(err, &be) {
		switch be.Code {
		case "scheduling_conflict":
			httperr.Conflict(c, be.Code, "The barber already has an appointment in that interval.")
		case "outside_availability":
			httperr.BadRequest(c, be.Code, "The requested time is outside the barber's availability.")
		case "invalid_transition":
			httperr.BadRequest(c, be.Code, "The appointment cannot change to that status.")
		default:
			httperr.BadRequest(c, be.Code, "Request rejected.")
		}
		return
	}

	httperr.Internal(c, "storage_error", "Storage operation failed.")
}

// stripImmutable drops identity and bookkeeping keys from a partial
// update map before it reaches the store.
func stripImmutable(fields map[string]any, keys ...string) {
	for _, k := range keys {
		delete(fields, k)
	}
	delete(fields, "created_at")
	delete(fields, "updated_at")
}

func limitParam(c *gin.Context, def int) int {
	limit := def
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}
	if limit > 500 {
		limit = 500
	}
	return limit
}
