package services

import (
	"log"
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"github.com/greencycle/recyclemart/config"
	"github.com/greencycle/recyclemart/db"
	apiError "github.com/greencycle/recyclemart/errors"
	"github.com/greencycle/recyclemart/models"
	"github.com/greencycle/recyclemart/services/jwt"
)

// AuthService interface
type AuthService interface {
	SignupUser(user *models.User) (*models.User, error)
	LoginUser(loginRequest *models.LoginRequest) (*models.LoginResponse, *apiError.Error)
	SocialLoginUser(email, fullname, picture string) (*models.LoginResponse, *apiError.Error)
	GetUserProfile(userID uint) (*models.User, error)
	GetRoleByName(name string) (*models.Role, error)
}

// authService struct
type authService struct {
	Config   *config.Config
	authRepo db.AuthRepository
}

// NewAuthService instantiate an authService
func NewAuthService(authRepo db.AuthRepository, conf *config.Config) AuthService {
	return &authService{
		Config:   conf,
		authRepo: authRepo,
	}
}

func (s *authService) SignupUser(user *models.User) (*models.User, error) {
	if err := s.authRepo.IsEmailExist(user.Email); err != nil {
		log.Printf("SignupUser error: %v", err)
		return nil, apiError.GetUniqueContraintError(err)
	}
	if err := s.authRepo.IsUsernameExist(user.Username); err != nil {
		log.Printf("SignupUser error: %v", err)
		return nil, apiError.GetUniqueContraintError(err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("SignupUser error hashing password: %v", err)
		return nil, apiError.ErrInternalServerError
	}
	user.HashedPassword = string(hashedPassword)
	user.Password = ""

	user, err = s.authRepo.CreateUser(user)
	if err != nil {
		log.Printf("SignupUser error creating user: %v", err)
		return nil, apiError.ErrInternalServerError
	}
	return user, nil
}

func (s *authService) LoginUser(loginRequest *models.LoginRequest) (*models.LoginResponse, *apiError.Error) {
	user, err := s.authRepo.FindUserByEmail(loginRequest.Email)
	if err != nil {
		return nil, apiError.New("invalid email or password", http.StatusUnauthorized)
	}

	if err := user.VerifyPassword(loginRequest.Password); err != nil {
		return nil, apiError.New("invalid email or password", http.StatusUnauthorized)
	}

	accessToken, err := jwt.GenerateToken(user.ID, s.Config.JWTSecret)
	if err != nil {
		log.Printf("LoginUser error generating token: %v", err)
		return nil, apiError.ErrInternalServerError
	}

	return user.LoginResponse(accessToken), nil
}

// SocialLoginUser finds or provisions a user authenticated by an OAuth
// provider and returns a login response for them.
func (s *authService) SocialLoginUser(email, fullname, picture string) (*models.LoginResponse, *apiError.Error) {
	user, err := s.authRepo.FindUserByEmail(email)
	if err != nil {
		user = &models.User{
			Fullname:     fullname,
			Username:     email,
			Email:        email,
			IsSocial:     true,
			ThumbNailURL: picture,
		}
		user, err = s.authRepo.CreateUser(user)
		if err != nil {
			log.Printf("SocialLoginUser error creating user: %v", err)
			return nil, apiError.ErrInternalServerError
		}
	}

	accessToken, err := jwt.GenerateToken(user.ID, s.Config.JWTSecret)
	if err != nil {
		log.Printf("SocialLoginUser error generating token: %v", err)
		return nil, apiError.ErrInternalServerError
	}
	return user.LoginResponse(accessToken), nil
}

func (s *authService) GetUserProfile(userID uint) (*models.User, error) {
	return s.authRepo.FindUserByID(userID)
}

func (s *authService) GetRoleByName(name string) (*models.Role, error) {
	return s.authRepo.FindRoleByName(name)
}
