package controllers

import (
	"net/http"

	"github.com/Abhibhav1976/MacroTracker/services"

	"github.com/gin-gonic/gin"
)

type MacroController struct {
	macros *services.MacroService
}

func NewMacroController(macros *services.MacroService) *MacroController {
	return &MacroController{macros: macros}
}

type MacroInput struct {
	EntryDate string  `form:"entryDate" json:"entryDate" binding:"required"`
	MealType  string  `form:"mealType" json:"mealType" binding:"required"`
	Calories  int     `form:"calories" json:"calories"`
	Carbs     float64 `form:"carbs" json:"carbs"`
	Protein   float64 `form:"protein" json:"protein"`
	Fat       float64 `form:"fat" json:"fat"`
}

func (ctl *MacroController) LogMacro(c *gin.Context) {
	userID := c.GetUint("userID")

	var input MacroInput
	if err := c.ShouldBind(&input); err != nil {
		failure(c, http.StatusBadRequest, err.Error(), "/log?error=invalid")
		return
	}
	date, ok := parseEntryDate(input.EntryDate)
	if !ok {
		failure(c, http.StatusBadRequest, "entryDate must be YYYY-MM-DD", "/log?error=invalid")
		return
	}

	logged, streak, err := ctl.macros.LogEntryWithStreak(userID, date, input.MealType,
		input.Calories, input.Carbs, input.Protein, input.Fat)
	if err != nil {
		failure(c, http.StatusInternalServerError, "Database error while logging macro", "/log?error=server")
		return
	}
	if !logged {
		failure(c, http.StatusOK, "Failed to log macros.", "/log?error=failed")
		return
	}

	if isMobile(c) {
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Macro logged successfully!",
			"streak":  streak,
		})
		return
	}
	c.Redirect(http.StatusFound, "/dashboard")
}

func (ctl *MacroController) EditMacro(c *gin.Context) {
	userID := c.GetUint("userID")

	var input MacroInput
	if err := c.ShouldBind(&input); err != nil {
		failure(c, http.StatusBadRequest, err.Error(), "/log?error=invalid")
		return
	}
	date, ok := parseEntryDate(input.EntryDate)
	if !ok {
		failure(c, http.StatusBadRequest, "entryDate must be YYYY-MM-DD", "/log?error=invalid")
		return
	}

	edited, err := ctl.macros.EditEntry(userID, date, input.MealType,
		input.Calories, input.Carbs, input.Protein, input.Fat)
	if err != nil {
		failure(c, http.StatusInternalServerError, "Database error while editing macro", "/log?error=server")
		return
	}
	if !edited {
		failure(c, http.StatusOK, "Macro edit failed", "/log?error=notfound")
		return
	}

	if isMobile(c) {
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Macro edited successfully"})
		return
	}
	c.Redirect(http.StatusFound, "/dashboard")
}

func (ctl *MacroController) FindMacros(c *gin.Context) {
	userID := c.GetUint("userID")

	date, ok := parseEntryDate(c.Query("date"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "date must be YYYY-MM-DD"})
		return
	}

	entries, err := ctl.macros.FindEntries(userID, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Database error while fetching macros"})
		return
	}

	results := make([]gin.H, 0, len(entries))
	for _, e := range entries {
		results = append(results, gin.H{
			"entryDate": e.EntryDate.Format(dateLayout),
			"mealType":  e.MealType,
			"calories":  e.Calories,
			"carbs":     e.Carbs,
			"protein":   e.Protein,
			"fat":       e.Fat,
		})
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "entries": results})
}
