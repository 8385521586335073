package utils

import (
	"context"
	"os"
	"time"

	"rentease-server/models"
	"rentease-server/storage"

	"github.com/kataras/iris/v12/middleware/jwt"
)

var bgContext = context.Background()

type AccessToken struct {
	ID         string `json:"id"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	RoomNumber int    `json:"roomNumber,omitempty"`
}

type RefreshTokenInput struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

func CreateTokenPair(user models.SessionUser) (*jwt.TokenPair, error) {
	accessTokenSigner := jwt.NewSigner(jwt.HS256, os.Getenv("ACCESS_TOKEN_SECRET"), 24*time.Hour)
	refreshTokenSigner := jwt.NewSigner(jwt.HS256, os.Getenv("REFRESH_TOKEN_SECRET"), 365*24*time.Hour)

	accessTokenClaims := AccessToken{
		ID:         user.ID,
		Email:      user.Email,
		Role:       user.Role,
		RoomNumber: user.RoomNumber,
	}
	refreshClaims := jwt.Claims{Subject: user.ID}

	accessToken, err := accessTokenSigner.Sign(accessTokenClaims)
	if err != nil {
		return nil, err
	}

	refreshToken, err := refreshTokenSigner.Sign(refreshClaims)
	if err != nil {
		return nil, err
	}

	var tokenPair jwt.TokenPair
	tokenPair.AccessToken = accessToken
	tokenPair.RefreshToken = refreshToken

	if storage.Redis != nil {
		storage.Redis.Set(bgContext, string(refreshToken), "true", 365*24*time.Hour+5*time.Minute)
	}

	return &tokenPair, nil
}

// ConsumeRefreshToken checks the whitelist and removes the token so it can
// only be redeemed once. Without Redis configured every token passes.
func ConsumeRefreshToken(token string) bool {
	if storage.Redis == nil {
		return true
	}
	valid, err := storage.Redis.Get(bgContext, token).Result()
	if err != nil || valid != "true" {
		return false
	}
	storage.Redis.Del(bgContext, token)
	return true
}
