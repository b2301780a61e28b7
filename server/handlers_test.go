package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greencycle/recyclemart/config"
	"github.com/greencycle/recyclemart/models"
	"github.com/greencycle/recyclemart/services"
	"github.com/greencycle/recyclemart/services/chat"
	"github.com/greencycle/recyclemart/services/jwt"
)

// fakeAuthRepo satisfies db.AuthRepository with a single known user.
type fakeAuthRepo struct {
	user *models.User
}

func (f *fakeAuthRepo) CreateUser(user *models.User) (*models.User, error) { return user, nil }
func (f *fakeAuthRepo) IsEmailExist(string) error                          { return nil }
func (f *fakeAuthRepo) IsUsernameExist(string) error                       { return nil }
func (f *fakeAuthRepo) FindUserByEmail(string) (*models.User, error)       { return f.user, nil }
func (f *fakeAuthRepo) FindUserByID(id uint) (*models.User, error) {
	if f.user != nil && f.user.ID == id {
		return f.user, nil
	}
	return nil, fmt.Errorf("user not found")
}
func (f *fakeAuthRepo) UpdateUser(*models.User) error               { return nil }
func (f *fakeAuthRepo) AddToBlackList(*models.Blacklist) error      { return nil }
func (f *fakeAuthRepo) IsTokenInBlacklist(string) bool              { return false }
func (f *fakeAuthRepo) FindRoleByName(string) (*models.Role, error) { return nil, nil }

func newTestServer(t *testing.T) (*Server, *gin.Engine) {
	t.Helper()
	t.Setenv("GIN_MODE", "test")

	conf := &config.Config{JWTSecret: "test-secret", ChatReplyDelayMS: 60_000}
	user := &models.User{Username: "ada"}
	user.ID = 1

	s := &Server{
		Config:         conf,
		AuthRepository: &fakeAuthRepo{user: user},
		ChatService:    services.NewChatService(chat.NewMemoryStore(), nil, conf),
		RewardService:  services.NewRewardService(nil, conf),
	}
	t.Cleanup(s.ChatService.Close)
	return s, s.setupRouter()
}

func bearerFor(t *testing.T, userID uint, secret string) string {
	t.Helper()
	token, err := jwt.GenerateToken(userID, secret)
	require.NoError(t, err)
	return "Bearer " + token
}

func doRequest(router *gin.Engine, method, path, auth string, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCraftIdeasEndpoint(t *testing.T) {
	_, router := newTestServer(t)

	w := doRequest(router, http.MethodGet, "/api/v1/crafts/plastic", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Bottle Planters")

	// Unknown categories read as an empty list.
	w = doRequest(router, http.MethodGet, "/api/v1/crafts/uranium", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"data":[]`)
}

func TestRewardCatalogEndpoint(t *testing.T) {
	_, router := newTestServer(t)

	w := doRequest(router, http.MethodGet, "/api/v1/rewards/catalog", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Plant a Tree")
}

func TestChatEndpointsRequireAuth(t *testing.T) {
	_, router := newTestServer(t)

	w := doRequest(router, http.MethodGet, "/api/v1/chat/1/messages", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doRequest(router, http.MethodGet, "/api/v1/chat/token", "Bearer not-a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestChatTokenEndpoint(t *testing.T) {
	s, router := newTestServer(t)
	auth := bearerFor(t, 1, s.Config.JWTSecret)

	w := doRequest(router, http.MethodGet, "/api/v1/chat/token", auth, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var envelope struct {
		Data models.ChatTokenResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	require.NotEmpty(t, envelope.Data.Token)

	claims, err := jwt.ValidateAndGetClaims(envelope.Data.Token, s.Config.JWTSecret)
	require.NoError(t, err)
	assert.Equal(t, "1", claims["sub"])
}

func TestChatMessageFlow(t *testing.T) {
	s, router := newTestServer(t)
	auth := bearerFor(t, 1, s.Config.JWTSecret)

	// Item "1" resolves from the built-in catalog; first touch seeds the
	// welcome message.
	w := doRequest(router, http.MethodGet, "/api/v1/chat/1/messages", auth, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Plastic Bottle")

	body, _ := json.Marshal(map[string]string{"text": "is it available?"})
	w = doRequest(router, http.MethodPost, "/api/v1/chat/1/messages", auth, body)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"accepted":true`)

	// Blank input is acknowledged but appends nothing.
	body, _ = json.Marshal(map[string]string{"text": "   "})
	w = doRequest(router, http.MethodPost, "/api/v1/chat/1/messages", auth, body)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"accepted":false`)

	messages, _, _ := s.ChatService.Messages(1, "1")
	assert.Len(t, messages, 2, "welcome plus the one accepted message")

	// Ending the conversation resets it to a fresh welcome.
	w = doRequest(router, http.MethodDelete, "/api/v1/chat/1", auth, nil)
	require.Equal(t, http.StatusOK, w.Code)

	messages, _, _ = s.ChatService.Messages(1, "1")
	assert.Len(t, messages, 1)
}
