package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/greencycle/recyclemart/models"
	"github.com/greencycle/recyclemart/server/response"
)

func (s *Server) handleCraftIdeas() gin.HandlerFunc {
	return func(c *gin.Context) {
		category := strings.ToLower(c.Param("category"))
		ideas := models.CraftIdeasByCategory[category]
		if ideas == nil {
			// Unknown category reads as an empty list, not an error.
			ideas = []models.CraftIdea{}
		}
		response.JSON(c, "", http.StatusOK, ideas, nil)
	}
}
