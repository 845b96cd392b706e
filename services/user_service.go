package services

import (
	"errors"
	"os"
	"time"

	"gorm.io/gorm"

	"github.com/jonathanRossato/treino-app/models"
)

type UserService struct{ db *gorm.DB }

func NewUserService(db *gorm.DB) *UserService { return &UserService{db: db} }

type UpsertUserInput struct {
	OpenID      string  `json:"openId" binding:"required"`
	Name        *string `json:"name"`
	Email       *string `json:"email"`
	LoginMethod *string `json:"loginMethod"`
}

// Upsert creates the user on first external sign-in and refreshes
// lastSignedIn plus any provided profile fields on every subsequent login.
// The configured owner openId is promoted to admin.
func (s *UserService) Upsert(in UpsertUserInput) (*models.User, error) {
	now := time.Now()

	var user models.User
	err := s.db.Where("open_id = ?", in.OpenID).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		user = models.User{
			OpenID:       in.OpenID,
			Name:         in.Name,
			Email:        in.Email,
			LoginMethod:  in.LoginMethod,
			Role:         models.RoleUser,
			LastSignedIn: now,
		}
		if in.OpenID == os.Getenv("OWNER_OPEN_ID") {
			user.Role = models.RoleAdmin
		}
		if err := s.db.Create(&user).Error; err != nil {
			return nil, err
		}
		return &user, nil
	}
	if err != nil {
		return nil, err
	}

	fields := map[string]interface{}{"last_signed_in": now}
	if in.Name != nil {
		fields["name"] = *in.Name
	}
	if in.Email != nil {
		fields["email"] = *in.Email
	}
	if in.LoginMethod != nil {
		fields["login_method"] = *in.LoginMethod
	}
	if in.OpenID == os.Getenv("OWNER_OPEN_ID") {
		fields["role"] = models.RoleAdmin
	}
	if err := s.db.Model(&user).Updates(fields).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *UserService) GetByOpenID(openID string) (*models.User, error) {
	var user models.User
	err := s.db.Where("open_id = ?", openID).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *UserService) GetByID(id uint) (*models.User, error) {
	var user models.User
	err := s.db.First(&user, id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}
