package handlers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/storeratings/internal/domain/model"
	"github.com/polkiloo/storeratings/internal/server/http/middleware"
)

// CurrentPrincipal extracts authenticated principal from context.
func CurrentPrincipal(c *gin.Context) model.Principal {
	return middleware.Principal(c)
}

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func descending(c *gin.Context) bool {
	return strings.EqualFold(c.Query("order"), "desc")
}
