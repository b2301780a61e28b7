package server

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	oauth2api "google.golang.org/api/oauth2/v2"
	"google.golang.org/api/option"
)

func (s *Server) googleOauthConfig() *oauth2.Config {
	return &oauth2.Config{
		ClientID:     s.Config.GoogleClientID,
		ClientSecret: s.Config.GoogleClientSecret,
		RedirectURL:  s.Config.GoogleRedirectURL,
		Endpoint:     google.Endpoint,
		Scopes: []string{
			"https://www.googleapis.com/auth/userinfo.email",
			"https://www.googleapis.com/auth/userinfo.profile",
		},
	}
}

func (s *Server) HandleGoogleLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		state, err := generateJWTState(s.Config.JWTSecret)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate state"})
			return
		}

		authURL := s.googleOauthConfig().AuthCodeURL(state, oauth2.AccessTypeOffline)
		c.Redirect(http.StatusTemporaryRedirect, authURL)
	}
}

func (s *Server) HandleGoogleCallback() gin.HandlerFunc {
	return func(c *gin.Context) {
		code := c.Query("code")
		state := c.Query("state")

		// Verify the state parameter to prevent CSRF.
		if !verifyState(state, s.Config.JWTSecret) {
			log.Println("Invalid or expired state")
			c.JSON(http.StatusForbidden, gin.H{"error": "Invalid or expired state"})
			return
		}

		ctx := c.Request.Context()
		conf := s.googleOauthConfig()
		token, err := conf.Exchange(ctx, code)
		if err != nil {
			log.Printf("Token exchange failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token exchange failed"})
			return
		}

		oauthService, err := oauth2api.NewService(ctx, option.WithTokenSource(conf.TokenSource(ctx, token)))
		if err != nil {
			log.Printf("Failed to create oauth service: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch user information"})
			return
		}
		userInfo, err := oauthService.Userinfo.Get().Do()
		if err != nil || userInfo.Email == "" {
			log.Printf("Failed to fetch user information: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch user information"})
			return
		}

		loginResponse, apiErr := s.AuthService.SocialLoginUser(userInfo.Email, userInfo.Name, userInfo.Picture)
		if apiErr != nil {
			log.Printf("Error processing user: %v", apiErr)
			c.JSON(apiErr.Status, gin.H{"error": "Failed to process user"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"token": loginResponse.AccessToken,
			"user": gin.H{
				"email":   loginResponse.Email,
				"name":    loginResponse.Fullname,
				"picture": loginResponse.ThumbNailURL,
			},
		})
	}
}

func generateJWTState(secret string) (string, error) {
	claims := jwt.MapClaims{
		"nonce": time.Now().UnixNano(),
		"exp":   time.Now().Add(10 * time.Minute).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func verifyState(state string, secret string) bool {
	token, err := jwt.Parse(state, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	return err == nil && token.Valid
}
