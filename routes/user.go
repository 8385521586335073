package routes

import (
	"rentease-server/utils"

	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/middleware/jwt"
)

func Login(ctx iris.Context) {
	var userInput LoginUserInput
	err := ctx.ReadJSON(&userInput)
	if err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	user, ok := auth.Login(userInput.Email, userInput.Password)
	if !ok {
		utils.CreateError(iris.StatusUnauthorized, "Credentials Error", "Invalid email or password.", ctx)
		return
	}

	tokenPair, tokenErr := utils.CreateTokenPair(user)
	if tokenErr != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(iris.Map{
		"user":         user,
		"accessToken":  string(tokenPair.AccessToken),
		"refreshToken": string(tokenPair.RefreshToken),
	})
}

func Logout(ctx iris.Context) {
	auth.Logout()
	ctx.StatusCode(iris.StatusNoContent)
}

// GetSession returns the persisted signed-in user so a client can restore
// its state after a reload.
func GetSession(ctx iris.Context) {
	user, ok := auth.CurrentSession()
	if !ok {
		utils.CreateNotFound(ctx)
		return
	}
	ctx.JSON(iris.Map{"user": user})
}

// RefreshToken redeems a whitelisted refresh token for a fresh pair. The
// persisted session must still belong to the token's subject.
func RefreshToken(ctx iris.Context) {
	token := jwt.GetVerifiedToken(ctx)
	if !utils.ConsumeRefreshToken(string(token.Token)) {
		ctx.StatusCode(iris.StatusForbidden)
		return
	}

	user, ok := auth.CurrentSession()
	if !ok || user.ID != token.StandardClaims.Subject {
		utils.CreateNotFound(ctx)
		return
	}

	tokenPair, tokenErr := utils.CreateTokenPair(user)
	if tokenErr != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(iris.Map{
		"accessToken":  string(tokenPair.AccessToken),
		"refreshToken": string(tokenPair.RefreshToken),
	})
}
