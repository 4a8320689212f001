package services

import (
	"github.com/collabhub-dev/collabhub/internal/auth"
	"github.com/collabhub-dev/collabhub/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserUpdateInput struct {
	Name       *string `json:"name"`
	Department *string `json:"department"`
	Role       *string `json:"role"`
	Avatar     *string `json:"avatar"`
	Password   *string `json:"password"`
}

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

func (s *UserService) FindAll() ([]models.User, error) {
	var users []models.User
	if err := s.db.Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (s *UserService) GetByID(id uuid.UUID) (*models.User, error) {
	return findUser(s.db, id)
}

// Update applies only the fields present in the request. A present, non-blank
// password is re-hashed before storage.
func (s *UserService) Update(id uuid.UUID, in UserUpdateInput) (*models.User, error) {
	var user *models.User

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var err error
		user, err = findUser(tx, id)
		if err != nil {
			return err
		}

		if in.Name != nil {
			user.Name = *in.Name
		}
		if in.Department != nil {
			user.Department = *in.Department
		}
		if in.Role != nil {
			user.Role = *in.Role
		}
		if in.Avatar != nil {
			user.Avatar = *in.Avatar
		}
		if in.Password != nil && *in.Password != "" {
			hash, err := auth.HashPassword(*in.Password)
			if err != nil {
				return err
			}
			user.PasswordHash = hash
		}

		return tx.Save(user).Error
	})

	if err != nil {
		return nil, err
	}

	return user, nil
}
