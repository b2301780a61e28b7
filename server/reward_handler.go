package server

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	errs "github.com/greencycle/recyclemart/errors"
	"github.com/greencycle/recyclemart/server/response"
)

func (s *Server) handleRewardStats() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := userIDFromContext(c)
		if !ok {
			response.JSON(c, "", http.StatusUnauthorized, nil, errs.New("Unauthorized", http.StatusUnauthorized))
			return
		}

		stats, err := s.RewardService.Stats(userID)
		if err != nil {
			log.Printf("Error getting reward stats: %v", err)
			response.JSON(c, "", http.StatusInternalServerError, nil, errs.ErrInternalServerError)
			return
		}
		response.JSON(c, "", http.StatusOK, stats, nil)
	}
}

func (s *Server) handleRewardActivities() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := userIDFromContext(c)
		if !ok {
			response.JSON(c, "", http.StatusUnauthorized, nil, errs.New("Unauthorized", http.StatusUnauthorized))
			return
		}

		activities, err := s.RewardService.Activities(userID)
		if err != nil {
			log.Printf("Error getting activities: %v", err)
			response.JSON(c, "", http.StatusInternalServerError, nil, errs.ErrInternalServerError)
			return
		}
		response.JSON(c, "", http.StatusOK, activities, nil)
	}
}

func (s *Server) handleRewardCatalog() gin.HandlerFunc {
	return func(c *gin.Context) {
		response.JSON(c, "", http.StatusOK, s.RewardService.Catalog(), nil)
	}
}

func (s *Server) handleRedeemReward() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := userIDFromContext(c)
		if !ok {
			response.JSON(c, "", http.StatusUnauthorized, nil, errs.New("Unauthorized", http.StatusUnauthorized))
			return
		}

		redemption, apiErr := s.RewardService.Redeem(userID, c.Param("rewardID"))
		if apiErr != nil {
			response.JSON(c, "", apiErr.Status, nil, apiErr)
			return
		}
		response.JSON(c, "Reward redeemed successfully", http.StatusOK, redemption, nil)
	}
}
