package services

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/srad/geosink/database"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthenticationRequest struct {
	Username string `json:"username" valid:"Required"`
	Password string `json:"password" valid:"Required;MinSize(6)"`
}

func CreateUser(auth AuthenticationRequest) error {
	if err := database.ExistsUsername(auth.Username); err != nil {
		return err
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(auth.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return database.CreateUser(&database.User{
		Username: auth.Username,
		Password: string(passwordHash),
	})
}

// AuthenticateUser returns a signed JWT if the credentials check out.
func AuthenticateUser(auth AuthenticationRequest) (string, error) {
	user, err := database.FindUserByUsername(auth.Username)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", errors.New("user not found")
	}
	if err != nil {
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(auth.Password)); err != nil {
		return "", errors.New("invalid credentials")
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":  user.UserId,
		"exp": time.Now().Add(24 * time.Hour).Unix(),
	})

	return token.SignedString([]byte(os.Getenv("SECRET")))
}

func GetUserById(id uint) (*database.User, error) {
	return database.FindUserById(id)
}
