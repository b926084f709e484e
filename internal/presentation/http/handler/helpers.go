package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rajshree/shopbill-api/internal/presentation/http/dto/response"
)

// parseIDParam extracts and parses a UUID path parameter, responding with a
// 400 itself when the value is malformed. The bool reports success.
func parseIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		response.BadRequest(c, "Invalid "+name+" format")
		return uuid.Nil, false
	}
	return id, true
}
