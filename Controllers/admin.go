package Controllers

import (
	"log"
	"net/http"
	"time"

	"CotadorSaude/Models"

	"github.com/gin-gonic/gin"
)

func FetchBrokers(c *gin.Context) {
	var users []Models.User
	if err := Models.DB.Model(&Models.User{}).Where("permission < ?", 2).Order("created_at desc").Find(&users).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	for index := range users {
		users[index].PrepareGive()
	}
	c.JSON(http.StatusOK, users)
}

type brokerStatusInput struct {
	ID         uint   `json:"id" binding:"required"`
	AccessPlan string `json:"access_plan"`
}

// ApproveBroker grants access and starts the plan window. Defaults to the
// monthly plan when the admin does not pick one.
func ApproveBroker(c *gin.Context) {
	var input brokerStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	accessPlan := input.AccessPlan
	if accessPlan != Models.AccessPlanQuarterly {
		accessPlan = Models.AccessPlanMonthly
	}

	now := time.Now()
	updates := map[string]interface{}{
		"status":      Models.StatusApproved,
		"access_plan": accessPlan,
		"approved_at": &now,
	}
	if err := Models.DB.Model(&Models.User{}).Where("id = ?", input.ID).Updates(updates).Error; err != nil {
		log.Println(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Broker Approved Successfully"})
}

func RejectBroker(c *gin.Context) {
	var input brokerStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := Models.DB.Model(&Models.User{}).Where("id = ?", input.ID).Update("status", Models.StatusRejected).Error; err != nil {
		log.Println(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Broker Rejected Successfully"})
}

func SetBrokerAccessPlan(c *gin.Context) {
	var input brokerStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.AccessPlan != Models.AccessPlanMonthly && input.AccessPlan != Models.AccessPlanQuarterly {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown access plan"})
		return
	}

	if err := Models.DB.Model(&Models.User{}).Where("id = ?", input.ID).Update("access_plan", input.AccessPlan).Error; err != nil {
		log.Println(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Access Plan Updated Successfully"})
}
