package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/hostalia/roomservice-api/internal/presentation/http/dto/response"
	"github.com/hostalia/roomservice-api/pkg/pagination"
)

// parseUUIDParam parses a UUID path parameter, answering the request itself
// when the value is malformed
func parseUUIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		response.BadRequest(c, "Invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}

// getPagination reads page/per_page query parameters
func getPagination(c *gin.Context) *pagination.PaginationParams {
	params := pagination.DefaultPagination()
	if page, err := strconv.Atoi(c.Query("page")); err == nil {
		params.Page = page
	}
	if perPage, err := strconv.Atoi(c.Query("per_page")); err == nil {
		params.PerPage = perPage
	}
	params.Validate()
	return params
}

// getDateQuery parses a YYYY-MM-DD query parameter, falling back to the
// given default
func getDateQuery(c *gin.Context, name string, fallback time.Time) time.Time {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return fallback
	}
	return t
}
