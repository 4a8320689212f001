package services

import (
	"errors"
	"strings"

	"github.com/collabhub-dev/collabhub/internal/apperr"
	"github.com/collabhub-dev/collabhub/internal/auth"
	"github.com/collabhub-dev/collabhub/internal/models"
	"gorm.io/gorm"
)

type RegisterInput struct {
	Name       string `json:"name" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required,min=6"`
	Department string `json:"department" binding:"required"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthService struct {
	db     *gorm.DB
	tokens *auth.TokenManager
}

func NewAuthService(db *gorm.DB, tokens *auth.TokenManager) *AuthService {
	return &AuthService{db: db, tokens: tokens}
}

// Register creates the account with the default role and a generated avatar,
// then signs a token for it.
func (s *AuthService) Register(in RegisterInput) (string, *models.User, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))

	var user models.User

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var existing models.User
		err := tx.Where("email = ?", email).First(&existing).Error
		if err == nil {
			return apperr.BadRequest("Email is already registered")
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		hash, err := auth.HashPassword(in.Password)
		if err != nil {
			return err
		}

		user = models.User{
			Name:         in.Name,
			Email:        email,
			PasswordHash: hash,
			Role:         models.RoleUser,
			Department:   in.Department,
			Avatar:       models.DefaultAvatarURL(in.Name),
		}

		return tx.Create(&user).Error
	})

	if err != nil {
		return "", nil, err
	}

	token, err := s.tokens.Generate(user.ID, user.Email)
	if err != nil {
		return "", nil, err
	}

	return token, &user, nil
}

func (s *AuthService) Login(in LoginInput) (string, *models.User, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))

	var user models.User
	err := s.db.Where("email = ?", email).First(&user).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, apperr.Unauthorized("Invalid email or password")
		}
		return "", nil, err
	}

	if !auth.CheckPassword(user.PasswordHash, in.Password) {
		return "", nil, apperr.Unauthorized("Invalid email or password")
	}

	token, err := s.tokens.Generate(user.ID, user.Email)
	if err != nil {
		return "", nil, err
	}

	return token, &user, nil
}
