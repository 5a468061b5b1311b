package controllers

import (
	"log"
	"net/http"

	"github.com/Abhibhav1976/MacroTracker/services"
	"github.com/Abhibhav1976/MacroTracker/utils"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	users *services.UserService
}

func NewAuthController(users *services.UserService) *AuthController {
	return &AuthController{users: users}
}

type SignupInput struct {
	Username    string `form:"username" json:"username" binding:"required"`
	Email       string `form:"email" json:"email" binding:"required,email"`
	Password    string `form:"password" json:"password" binding:"required"`
	DisplayName string `form:"displayName" json:"displayName"`
}

func (ctl *AuthController) Signup(c *gin.Context) {
	var input SignupInput
	if err := c.ShouldBind(&input); err != nil {
		failure(c, http.StatusBadRequest, err.Error(), "/signup?error=invalid")
		return
	}

	registered, err := ctl.users.IsEmailRegistered(input.Email)
	if err != nil {
		failure(c, http.StatusInternalServerError, "Error occurred during signup.", "/signup?error=server")
		return
	}
	if registered {
		failure(c, http.StatusOK, "Email already registered!", "/signup?error=email")
		return
	}

	ok, err := ctl.users.CreateAccount(input.Username, input.Email, input.Password, input.DisplayName)
	if err != nil {
		failure(c, http.StatusInternalServerError, "Error occurred during signup.", "/signup?error=server")
		return
	}
	if !ok {
		// username or email raced into existence since the check
		failure(c, http.StatusOK, "Email already registered!", "/signup?error=email")
		return
	}

	if err := utils.SendWelcomeEmail(input.Email, input.DisplayName); err != nil {
		log.Printf("welcome email to %s failed: %v", input.Email, err)
	}

	if isMobile(c) {
		c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Signup successful!"})
		return
	}
	c.Redirect(http.StatusFound, "/login")
}

type LoginInput struct {
	Username string `form:"username" json:"username" binding:"required"`
	Password string `form:"password" json:"password" binding:"required"`
}

func (ctl *AuthController) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBind(&input); err != nil {
		failure(c, http.StatusBadRequest, err.Error(), "/login?error=invalid")
		return
	}

	user, err := ctl.users.Authenticate(input.Username, input.Password)
	if err != nil {
		failure(c, http.StatusInternalServerError, "Server error during login.", "/login?error=server")
		return
	}
	if user == nil {
		failure(c, http.StatusUnauthorized, "Invalid username or password", "/login?error=1")
		return
	}

	token, err := utils.GenerateJWT(user.ID, user.Username)
	if err != nil {
		failure(c, http.StatusInternalServerError, "Could not generate token", "/login?error=server")
		return
	}

	if isMobile(c) {
		c.JSON(http.StatusOK, gin.H{
			"success":          true,
			"token":            token,
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
		return
	}

	c.SetCookie("token", token, 72*3600, "/", "", false, true)
	c.Redirect(http.StatusFound, "/dashboard")
}
