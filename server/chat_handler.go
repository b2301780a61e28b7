package server

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	errs "github.com/greencycle/recyclemart/errors"
	"github.com/greencycle/recyclemart/models"
	"github.com/greencycle/recyclemart/server/response"
	jwtPackage "github.com/greencycle/recyclemart/services/jwt"
)

// handleChatToken mints a chat token for the authenticated user.
func (s *Server) handleChatToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := userIDFromContext(c)
		if !ok {
			response.JSON(c, "", http.StatusUnauthorized, nil, errs.New("Unauthorized", http.StatusUnauthorized))
			return
		}

		token, err := jwtPackage.GenerateChatToken(userID, s.Config.JWTSecret)
		if err != nil {
			log.Printf("Error generating chat token: %v", err)
			response.JSON(c, "", http.StatusInternalServerError, nil, errs.ErrInternalServerError)
			return
		}
		response.JSON(c, "", http.StatusOK, models.ChatTokenResponse{Token: token}, nil)
	}
}

type sendMessageRequest struct {
	Text string `json:"text"`
}

func (s *Server) handleSendMessage() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := userIDFromContext(c)
		if !ok {
			response.JSON(c, "", http.StatusUnauthorized, nil, errs.New("Unauthorized", http.StatusUnauthorized))
			return
		}

		var req sendMessageRequest
		if err := decode(c, &req); err != nil {
			response.JSON(c, "", http.StatusBadRequest, nil, err)
			return
		}

		// Blank input is a silent no-op: nothing is appended and no reply
		// is scheduled.
		message, accepted := s.ChatService.Send(userID, c.Param("itemId"), req.Text)
		if !accepted {
			response.JSON(c, "", http.StatusOK, gin.H{"accepted": false}, nil)
			return
		}
		response.JSON(c, "", http.StatusOK, gin.H{"accepted": true, "message": message}, nil)
	}
}

func (s *Server) handleGetMessages() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := userIDFromContext(c)
		if !ok {
			response.JSON(c, "", http.StatusUnauthorized, nil, errs.New("Unauthorized", http.StatusUnauthorized))
			return
		}

		messages, item, found := s.ChatService.Messages(userID, c.Param("itemId"))
		data := gin.H{"messages": messages}
		if found {
			data["item"] = item
		}
		response.JSON(c, "", http.StatusOK, data, nil)
	}
}

func (s *Server) handleEndConversation() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := userIDFromContext(c)
		if !ok {
			response.JSON(c, "", http.StatusUnauthorized, nil, errs.New("Unauthorized", http.StatusUnauthorized))
			return
		}

		s.ChatService.EndConversation(userID, c.Param("itemId"))
		response.JSON(c, "Conversation ended. Starting a new chat.", http.StatusOK, nil, nil)
	}
}

var chatUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// handleChatStream pushes message appends for one conversation over a
// websocket. The client authenticates with a chat token in the query
// string, since browsers cannot set headers on websocket dials.
func (s *Server) handleChatStream() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.Query("token")
		claims, err := jwtPackage.ValidateAndGetClaims(token, s.Config.JWTSecret)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid chat token"})
			return
		}
		sub, _ := claims["sub"].(string)
		id, err := strconv.ParseUint(sub, 10, 64)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid chat token"})
			return
		}
		userID := uint(id)

		conn, err := chatUpgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			log.Printf("websocket upgrade failed: %v", err)
			return
		}

		session := s.ChatService.Session(userID, c.Param("itemId"))
		messages, cancel := session.Subscribe()

		// Reader goroutine: detect the peer going away.
		done := make(chan struct{})
		go func() {
			defer close(done)
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}()

		defer func() {
			cancel()
			conn.Close()
		}()
		for {
			select {
			case message, open := <-messages:
				if !open {
					conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, "session closed"))
					return
				}
				if err := conn.WriteJSON(message); err != nil {
					return
				}
			case <-done:
				return
			}
		}
	}
}
