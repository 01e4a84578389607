package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"finbot/dto"
	"finbot/models"

	"golang.org/x/crypto/bcrypt"
	"google.golang.org/api/idtoken"
	"gorm.io/gorm"
)

func HashPassword(password string) (string, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashedPassword), nil
}

func GetUserByEmail(db *gorm.DB, email string) (models.User, error) {
	var user models.User
	result := db.Where("email = ?", email).First(&user)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return user, fmt.Errorf("no user with email %s", email)
	}

	if result.Error != nil {
		return user, result.Error
	}

	return user, nil
}

// CreateUser registers a new account. Email must be unused; the password
// is stored bcrypt-hashed.
func CreateUser(db *gorm.DB, input models.User) (models.User, error) {
	if input.Email == "" || input.Password == "" {
		return models.User{}, errors.New("email and password must not be empty")
	}

	input.Email = strings.ToLower(input.Email)

	existing, err := GetUserByEmail(db, input.Email)
	if err == nil {
		return models.User{}, fmt.Errorf("email %s is already in use", existing.Email)
	}

	hashedPassword, err := HashPassword(input.Password)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		Name:      input.Name,
		Email:     input.Email,
		Password:  hashedPassword,
		Role:      input.Role,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if result := db.Create(&user); result.Error != nil {
		return user, result.Error
	}

	return user, nil
}

// VerifyGoogleIDToken validates a Google id_token against our client ID
// and returns the profile carried in its claims.
func VerifyGoogleIDToken(ctx context.Context, rawToken string) (*dto.GoogleUser, error) {
	audience := os.Getenv("GOOGLE_CLIENT_ID")
	payload, err := idtoken.Validate(ctx, rawToken, audience)
	if err != nil {
		return nil, fmt.Errorf("invalid Google token: %w", err)
	}

	googleUser := &dto.GoogleUser{}
	if email, ok := payload.Claims["email"].(string); ok {
		googleUser.Email = strings.ToLower(email)
	}
	if name, ok := payload.Claims["name"].(string); ok {
		googleUser.Name = name
	}
	if picture, ok := payload.Claims["picture"].(string); ok {
		googleUser.Picture = picture
	}

	if googleUser.Email == "" {
		return nil, errors.New("Google token carries no email claim")
	}
	return googleUser, nil
}

// FindOrCreateGoogleUser looks the Google account up by email, creating a
// local user on first sign-in.
func FindOrCreateGoogleUser(db *gorm.DB, googleUser *dto.GoogleUser) (models.User, error) {
	user, err := GetUserByEmail(db, googleUser.Email)
	if err == nil {
		return user, nil
	}

	user = models.User{
		Name:      googleUser.Name,
		Email:     googleUser.Email,
		Avatar:    googleUser.Picture,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if result := db.Create(&user); result.Error != nil {
		return user, result.Error
	}
	return user, nil
}
