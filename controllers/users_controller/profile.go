package users_controller

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/mercato-shop/mercato-backend/config"
	"github.com/mercato-shop/mercato-backend/middleware"
	"github.com/mercato-shop/mercato-backend/models"
)

// GetMe returns the authenticated user's profile.
func GetMe(c *gin.Context) {
	user, ok := middleware.GetUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse("Please login to continue!"))
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(user))
}

// UpdateProfileInput carries the self-editable profile fields. Email,
// password and role are deliberately not updatable through this endpoint.
type UpdateProfileInput struct {
	FirstName        *string `json:"firstName"`
	LastName         *string `json:"lastName"`
	Phone            *string `json:"phone"`
	ImageLink        *string `json:"imageLink"`
	StateOfResidence *string `json:"stateOfResidence"`
	EducationLevel   *string `json:"educationLevel"`
	Gender           *string `json:"gender"`
	Language         *string `json:"language"`
	CurrencyCode     *string `json:"currencyCode"`
	CountryCode      *string `json:"countryCode"`
	CityName         *string `json:"cityName"`
}

// UpdateProfile applies a partial update to the authenticated user.
func UpdateProfile(c *gin.Context) {
	user, ok := middleware.GetUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse("Please login to continue!"))
		return
	}

	var input UpdateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
		return
	}

	set := bson.M{"updatedAt": time.Now()}
	if input.FirstName != nil {
		set["firstName"] = *input.FirstName
	}
	if input.LastName != nil {
		set["lastName"] = *input.LastName
	}
	if input.Phone != nil {
		set["phone"] = *input.Phone
	}
	if input.ImageLink != nil {
		set["imageLink"] = *input.ImageLink
	}
	if input.StateOfResidence != nil {
		set["stateOfResidence"] = *input.StateOfResidence
	}
	if input.EducationLevel != nil {
		set["educationLevel"] = *input.EducationLevel
	}
	if input.Gender != nil {
		set["gender"] = *input.Gender
	}
	if input.Language != nil {
		set["language"] = *input.Language
	}
	if input.CurrencyCode != nil {
		set["currencyCode"] = *input.CurrencyCode
	}
	if input.CountryCode != nil {
		set["countryCode"] = *input.CountryCode
	}
	if input.CityName != nil {
		set["cityName"] = *input.CityName
	}

	ctx, cancel := config.WithRequestTimeout(c.Request.Context())
	defer cancel()

	if _, err := config.Users.UpdateOne(ctx, bson.M{"_id": user.ID}, bson.M{"$set": set}); err != nil {
		log.Printf("profile update failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse("Failed to update profile"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(set))
}

type UpdatePfpInput struct {
	ImageLink string `json:"imageLink" binding:"required"`
}

// UpdatePfp updates only the profile picture link.
func UpdatePfp(c *gin.Context) {
	user, ok := middleware.GetUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse("Please login to continue!"))
		return
	}

	var input UpdatePfpInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse("Invalid user or image link"))
		return
	}

	ctx, cancel := config.WithRequestTimeout(c.Request.Context())
	defer cancel()

	update := bson.M{"$set": bson.M{"imageLink": input.ImageLink, "updatedAt": time.Now()}}
	if _, err := config.Users.UpdateOne(ctx, bson.M{"_id": user.ID}, update); err != nil {
		log.Printf("pfp update failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse("Failed to update profile picture"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(gin.H{"imageLink": input.ImageLink}))
}
