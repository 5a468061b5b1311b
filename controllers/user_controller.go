package controllers

import (
	"net/http"
	"strings"

	"github.com/Abhibhav1976/MacroTracker/services"
	"github.com/Abhibhav1976/MacroTracker/utils"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	users *services.UserService
}

func NewUserController(users *services.UserService) *UserController {
	return &UserController{users: users}
}

func (ctl *UserController) GetProfile(c *gin.Context) {
	userID := c.GetUint("userID")

	user, err := ctl.users.FindByID(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User not found."})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"userId":           user.ID,
		"username":         user.Username,
		"displayName":      user.DisplayName,
		"email":            user.Email,
		"age":              user.Age,
		"currentWeight":    user.CurrentWeight,
		"targetWeight":     user.TargetWeight,
		"requiredCalories": user.RequiredCalories,
		"height":           user.Height,
		"activityLevel":    user.ActivityLevel,
		"gender":           user.Gender,
		"goalType":         user.GoalType,
		"profilePicture":   user.ProfilePicture,
		"memberType":       user.MemberType,
		"streak":           user.Streak,
		"lastLoggedDate":   user.LastLoggedDate,
	})
}

type ProfileUpdateInput struct {
	Age              *int     `form:"age" json:"age"`
	CurrentWeight    *float64 `form:"currentWeight" json:"currentWeight"`
	TargetWeight     *float64 `form:"targetWeight" json:"targetWeight"`
	RequiredCalories *int     `form:"requiredCalories" json:"requiredCalories"`
	Height           *float64 `form:"height" json:"height"`
	ActivityLevel    *string  `form:"activityLevel" json:"activityLevel"`
	Gender           *string  `form:"gender" json:"gender"`
	GoalType         *string  `form:"goalType" json:"goalType"`
	ProfilePicture   *string  `form:"profilePicture" json:"profilePicture"`
}

func (ctl *UserController) UpdateProfile(c *gin.Context) {
	userID := c.GetUint("userID")

	var input ProfileUpdateInput
	if err := c.ShouldBind(&input); err != nil {
		failure(c, http.StatusBadRequest, err.Error(), "/profile?error=invalid")
		return
	}

	upd := services.ProfileUpdate{
		Age:              input.Age,
		CurrentWeight:    input.CurrentWeight,
		TargetWeight:     input.TargetWeight,
		RequiredCalories: input.RequiredCalories,
		Height:           input.Height,
		ActivityLevel:    input.ActivityLevel,
		Gender:           input.Gender,
		GoalType:         input.GoalType,
		ProfilePicture:   input.ProfilePicture,
	}

	// A data-URI picture goes to S3 first; the row stores the URL.
	if input.ProfilePicture != nil && strings.HasPrefix(*input.ProfilePicture, "data:") {
		url, err := utils.UploadBase64ImageToS3(*input.ProfilePicture, "profile-pictures")
		if err != nil {
			failure(c, http.StatusInternalServerError, "Failed to upload profile picture.", "/profile?error=upload")
			return
		}
		upd.ProfilePicture = &url
	}

	ok, err := ctl.users.UpdateProfile(userID, upd)
	if err != nil {
		failure(c, http.StatusInternalServerError, "Server error while updating profile.", "/profile?error=server")
		return
	}
	if !ok {
		failure(c, http.StatusOK, "No fields were updated. Please check your input.", "/profile?error=empty")
		return
	}

	user, err := ctl.users.FindByID(userID)
	if err != nil {
		failure(c, http.StatusInternalServerError, "Failed to retrieve updated user details.", "/profile?error=server")
		return
	}

	if isMobile(c) {
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Profile updated successfully.",
			"data": gin.H{
				"age":              user.Age,
				"currentWeight":    user.CurrentWeight,
				"targetWeight":     user.TargetWeight,
				"requiredCalories": user.RequiredCalories,
				"height":           user.Height,
				"activityLevel":    user.ActivityLevel,
				"gender":           user.Gender,
				"goalType":         user.GoalType,
				"profilePicture":   user.ProfilePicture,
			},
		})
		return
	}
	c.Redirect(http.StatusFound, "/profile")
}
