package auth_controller

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/mercato-shop/mercato-backend/config"
	"github.com/mercato-shop/mercato-backend/models"
	"github.com/mercato-shop/mercato-backend/services"
)

const oauthStateCookie = "oauth_state"

// GoogleLogin redirects the client to the Google consent screen.
func GoogleLogin(c *gin.Context) {
	if config.GoogleOAuthConfig == nil {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse("Google login is not configured"))
		return
	}

	state := uuid.NewString()
	c.SetCookie(oauthStateCookie, state, 600, "/", "", false, true)
	c.Redirect(http.StatusTemporaryRedirect, config.GoogleOAuthConfig.AuthCodeURL(state))
}

// GoogleCallback handles the OAuth redirect: verifies state, exchanges the
// code, verifies the ID token and logs the matching user in. Accounts are
// not auto-created here; an unknown email is rejected like the password flow.
func GoogleCallback(c *gin.Context) {
	if config.GoogleOAuthConfig == nil || config.OIDCVerifier == nil {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse("Google login is not configured"))
		return
	}

	savedState, err := c.Cookie(oauthStateCookie)
	if err != nil || savedState == "" || c.Query("state") != savedState {
		c.JSON(http.StatusBadRequest, models.ErrorResponse("Invalid state"))
		return
	}

	code := c.Query("code")
	if code == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse("Invalid code"))
		return
	}

	ctx, cancel := config.WithRequestTimeout(c.Request.Context())
	defer cancel()

	oauthToken, err := config.GoogleOAuthConfig.Exchange(ctx, code)
	if err != nil {
		log.Printf("google code exchange failed: %v", err)
		redirectWithError(c, "Invalid code")
		return
	}

	rawIDToken, ok := oauthToken.Extra("id_token").(string)
	if !ok {
		redirectWithError(c, "Invalid code")
		return
	}
	idToken, err := config.OIDCVerifier.Verify(ctx, rawIDToken)
	if err != nil {
		log.Printf("google id token verification failed: %v", err)
		redirectWithError(c, "Invalid code")
		return
	}

	var claims struct {
		Email string `json:"email"`
	}
	if err := idToken.Claims(&claims); err != nil || claims.Email == "" {
		redirectWithError(c, "Invalid code")
		return
	}

	var user models.User
	if err := config.Users.FindOne(ctx, bson.M{"email": strings.ToLower(claims.Email)}).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("User not found"))
			return
		}
		log.Printf("google login lookup failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse("Failed to login"))
		return
	}

	token, err := services.GetJWTService().GenerateToken(user.ID.Hex(), user.Email)
	if err != nil {
		log.Printf("token generation failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse("Failed to login"))
		return
	}

	c.Redirect(http.StatusTemporaryRedirect, config.GetFrontendURL()+"/login?ok=true&token="+token)
}

func redirectWithError(c *gin.Context, message string) {
	c.Redirect(http.StatusTemporaryRedirect, config.GetFrontendURL()+"/login?error="+message)
}
