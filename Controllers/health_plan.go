package Controllers

import (
	"net/http"

	"CotadorSaude/Models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func FetchHealthPlans(c *gin.Context) {
	var plans []Models.HealthPlan
	if err := Models.DB.Model(&Models.HealthPlan{}).Order("id asc").Find(&plans).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, plans)
}

func AddHealthPlan(c *gin.Context) {
	var input Models.HealthPlan
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.ExternalID == "" {
		input.ExternalID = uuid.NewString()
	}
	if err := Models.DB.Create(&input).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Plan Created Successfully",
	})
}

func EditHealthPlan(c *gin.Context) {
	var input Models.HealthPlan
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := Models.DB.Save(&input).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Plan Edited Successfully",
	})
}

func DeleteHealthPlan(c *gin.Context) {
	var input struct {
		ID uint `json:"id"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := Models.DB.Delete(&Models.HealthPlan{}, input.ID).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Plan Deleted Successfully",
	})
}
