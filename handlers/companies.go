package handlers

import (
	"net/http"
	"strconv"
	"time"

	"esg-analytics/database"
	"esg-analytics/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CreateCompanyRequest struct {
	Name          string  `json:"name" binding:"required"`
	TickerSymbol  string  `json:"ticker_symbol"`
	Industry      string  `json:"industry"`
	Sector        string  `json:"sector"`
	Region        string  `json:"region"`
	Headquarters  string  `json:"headquarters"`
	Website       string  `json:"website"`
	Description   string  `json:"description"`
	EmployeeCount int     `json:"employee_count"`
	RevenueUSD    float64 `json:"revenue_usd"`
}

func CreateCompany(c *gin.Context) {
	var req CreateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	company := models.Company{
		ID:            uuid.NewString(),
		Name:          req.Name,
		TickerSymbol:  req.TickerSymbol,
		Industry:      req.Industry,
		Sector:        req.Sector,
		Region:        req.Region,
		Headquarters:  req.Headquarters,
		Website:       req.Website,
		Description:   req.Description,
		EmployeeCount: req.EmployeeCount,
		RevenueUSD:    req.RevenueUSD,
		CreatedAt:     time.Now().UTC().Format(time.RFC3339),
	}

	if err := database.GetDB().Create(&company).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save company"})
		return
	}

	c.JSON(http.StatusOK, company)
}

func GetCompanies(c *gin.Context) {
	db := database.GetDB()

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	sector := c.Query("sector")
	region := c.Query("region")
	industry := c.Query("industry")

	query := db.Model(&models.Company{})

	if sector != "" {
		query = query.Where("sector = ?", sector)
	}
	if region != "" {
		query = query.Where("region = ?", region)
	}
	if industry != "" {
		query = query.Where("industry = ?", industry)
	}

	var companies []models.Company
	if err := query.Order("name").Limit(limit).Find(&companies).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, companies)
}

// GetCompanyScores returns the score history for one company, newest first.
func GetCompanyScores(c *gin.Context) {
	companyID := c.Param("company_id")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	var scores []models.ESGScore
	err := database.GetDB().
		Where("company_id = ?", companyID).
		Order("calculated_at DESC").
		Limit(limit).
		Find(&scores).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, scores)
}

func GetFlags(c *gin.Context) {
	db := database.GetDB()

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	companyID := c.Query("company_id")
	status := c.Query("status")

	query := db.Model(&models.GreenwashingFlag{})

	if companyID != "" {
		query = query.Where("company_id = ?", companyID)
	}
	if status == "resolved" || status == "unresolved" {
		query = query.Where("resolved = ?", status == "resolved")
	}

	var flags []models.GreenwashingFlag
	if err := query.Order("created_at DESC").Limit(limit).Find(&flags).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, flags)
}

type ResolveFlagRequest struct {
	ResolutionNotes string `json:"resolution_notes"`
}

// ResolveFlag toggles a flag's resolved state; optional notes are stored
// alongside. Flags are only ever mutated through this human action.
func ResolveFlag(c *gin.Context) {
	flagID := c.Param("flag_id")

	var req ResolveFlagRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}
	}

	db := database.GetDB()
	var flag models.GreenwashingFlag

	if err := db.Where("id = ?", flagID).First(&flag).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Flag not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	flag.Resolved = !flag.Resolved
	if req.ResolutionNotes != "" {
		flag.ResolutionNotes = req.ResolutionNotes
	}

	if err := db.Save(&flag).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update flag"})
		return
	}

	c.JSON(http.StatusOK, flag)
}

func GetAlerts(c *gin.Context) {
	db := database.GetDB()

	userID := c.Query("user_id")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	query := db.Model(&models.Alert{}).Where("user_id = ?", userID)
	if c.Query("unread_only") == "true" {
		query = query.Where("read = ?", false)
	}

	var alerts []models.Alert
	if err := query.Order("created_at DESC").Limit(limit).Find(&alerts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, alerts)
}

func MarkAlertRead(c *gin.Context) {
	alertID := c.Param("alert_id")

	db := database.GetDB()
	result := db.Model(&models.Alert{}).Where("id = ?", alertID).Update("read", true)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update alert"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Alert not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

type SubscribeRequest struct {
	UserID    string `json:"user_id" binding:"required"`
	CompanyID string `json:"company_id" binding:"required"`
}

// Subscribe adds a company to a user's watch list.
func Subscribe(c *gin.Context) {
	var req SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	sub := models.Subscription{UserID: req.UserID, CompanyID: req.CompanyID}
	if err := database.GetDB().Create(&sub).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save subscription"})
		return
	}

	c.JSON(http.StatusOK, sub)
}
