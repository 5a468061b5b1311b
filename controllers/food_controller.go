package controllers

import (
	"net/http"

	"github.com/Abhibhav1976/MacroTracker/models"
	"github.com/Abhibhav1976/MacroTracker/services"

	"github.com/gin-gonic/gin"
)

type FoodController struct {
	foods *services.FoodService
}

func NewFoodController(foods *services.FoodService) *FoodController {
	return &FoodController{foods: foods}
}

type ScanFoodInput struct {
	Barcode  string   `form:"barcode" json:"barcode" binding:"required"`
	FoodName string   `form:"foodName" json:"foodName"`
	Calories *int     `form:"calories" json:"calories"`
	Carbs    *float64 `form:"carbs" json:"carbs"`
	Protein  *float64 `form:"protein" json:"protein"`
	Fat      *float64 `form:"fat" json:"fat"`
}

// ScanFood resolves a barcode to the user's recorded nutrition facts.
// A known barcode answers with the stored food; an unknown one needs
// the full details in the same request and records them, first write
// winning.
func (ctl *FoodController) ScanFood(c *gin.Context) {
	userID := c.GetUint("userID")

	var input ScanFoodInput
	if err := c.ShouldBind(&input); err != nil {
		failure(c, http.StatusBadRequest, "Barcode is required.", "/scan?error=invalid")
		return
	}

	existing, err := ctl.foods.Lookup(userID, input.Barcode)
	if err != nil {
		failure(c, http.StatusInternalServerError, "Server error while processing the request.", "/scan?error=server")
		return
	}
	if existing != nil {
		ctl.respondExisting(c, existing)
		return
	}

	if input.FoodName == "" || input.Calories == nil || input.Carbs == nil || input.Protein == nil || input.Fat == nil {
		failure(c, http.StatusOK, "Barcode does not exist. Full food details required.", "/scan?error=details")
		return
	}

	created, err := ctl.foods.RecordIfAbsent(userID, input.Barcode, input.FoodName,
		*input.Calories, *input.Carbs, *input.Protein, *input.Fat)
	if err != nil {
		failure(c, http.StatusInternalServerError, "Server error while processing the request.", "/scan?error=server")
		return
	}
	if !created {
		// Lost a race with another scan of the same barcode; the first
		// write won, so answer with what is stored.
		existing, err := ctl.foods.Lookup(userID, input.Barcode)
		if err != nil || existing == nil {
			failure(c, http.StatusInternalServerError, "Server error while processing the request.", "/scan?error=server")
			return
		}
		ctl.respondExisting(c, existing)
		return
	}

	if isMobile(c) {
		c.JSON(http.StatusOK, gin.H{
			"success":  true,
			"message":  "Food saved successfully.",
			"foodName": input.FoodName,
		})
		return
	}
	c.Redirect(http.StatusFound, "/scan?saved=1")
}

func (ctl *FoodController) respondExisting(c *gin.Context, food *models.ScannedFood) {
	if isMobile(c) {
		c.JSON(http.StatusOK, gin.H{
			"success":     true,
			"message":     "Food already scanned.",
			"foodName":    food.FoodName,
			"calories":    food.Calories,
			"carbs":       food.Carbs,
			"protein":     food.Protein,
			"fat":         food.Fat,
			"scannedDate": food.CreatedAt,
		})
		return
	}
	c.Redirect(http.StatusFound, "/food?barcode="+food.Barcode)
}
