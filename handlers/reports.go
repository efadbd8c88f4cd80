package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"esg-analytics/analysis"
	"esg-analytics/database"
	"esg-analytics/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AnalyzeRequest struct {
	ReportID   string `json:"reportId" binding:"required"`
	ReportText string `json:"reportText" binding:"required"`
	CompanyID  string `json:"companyId" binding:"required"`
}

type RegisterReportRequest struct {
	CompanyID  string `json:"company_id" binding:"required"`
	Title      string `json:"title" binding:"required"`
	ReportType string `json:"report_type"`
	ReportYear int    `json:"report_year"`
	SourceType string `json:"source_type"`
	SourceURL  string `json:"source_url"`
	RawText    string `json:"raw_text"`
}

// RegisterReport stores an uploaded report in processing state, ahead of
// analysis.
func RegisterReport(c *gin.Context) {
	var req RegisterReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	report := models.Report{
		ID:               uuid.NewString(),
		CompanyID:        req.CompanyID,
		Title:            req.Title,
		ReportType:       req.ReportType,
		ReportYear:       req.ReportYear,
		SourceType:       req.SourceType,
		SourceURL:        req.SourceURL,
		RawText:          req.RawText,
		ProcessingStatus: "processing",
		UploadedAt:       time.Now().UTC().Format(time.RFC3339),
	}

	if err := database.GetDB().Create(&report).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save report"})
		return
	}

	c.JSON(http.StatusOK, report)
}

// AnalyzeReport runs the report pipeline: extract indicators, detect
// greenwashing, aggregate the score, persist everything, then mark the
// report completed. No rollback on partial failure; the report stays in
// processing state and the caller may retry. Reanalysis inserts fresh rows
// rather than deduplicating.
func AnalyzeReport(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	db := database.GetDB()

	indicators := analysis.ExtractIndicators(req.ReportText)
	for _, ind := range indicators {
		row := models.Indicator{
			ID:               uuid.NewString(),
			ReportID:         req.ReportID,
			CompanyID:        req.CompanyID,
			Category:         ind.Category,
			Subcategory:      ind.Subcategory,
			IndicatorName:    ind.Name,
			IndicatorValue:   ind.Value,
			Unit:             ind.Unit,
			Context:          ind.Context,
			Sentiment:        ind.Sentiment,
			CredibilityScore: ind.Credibility,
			SourcePage:       ind.SourcePage,
		}
		if err := db.Create(&row).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save indicator"})
			return
		}
	}

	flags := analysis.DetectGreenwashing(req.ReportText, indicators)
	now := time.Now().UTC().Format(time.RFC3339)
	for _, flag := range flags {
		evidence, err := json.Marshal(flag.Evidence)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to encode flag evidence"})
			return
		}
		row := models.GreenwashingFlag{
			ID:           uuid.NewString(),
			CompanyID:    req.CompanyID,
			ReportID:     req.ReportID,
			FlagType:     flag.Type,
			Severity:     flag.Severity,
			Description:  flag.Description,
			EvidenceJSON: string(evidence),
			CreatedAt:    now,
		}
		if err := db.Create(&row).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save greenwashing flag"})
			return
		}
	}

	score := analysis.CalculateScore(indicators)
	scoreRow := models.ESGScore{
		ID:                      uuid.NewString(),
		CompanyID:               req.CompanyID,
		ReportID:                req.ReportID,
		OverallScore:            score.Overall,
		EnvironmentalScore:      score.Environmental,
		SocialScore:             score.Social,
		GovernanceScore:         score.Governance,
		RiskLevel:               score.RiskLevel,
		FrameworkUsed:           "HYBRID",
		ConfidenceScore:         score.Confidence,
		TotalIndicators:         score.Metrics.Total,
		EnvironmentalIndicators: score.Metrics.Environmental,
		SocialIndicators:        score.Metrics.Social,
		GovernanceIndicators:    score.Metrics.Governance,
		CalculatedAt:            now,
	}
	if err := db.Create(&scoreRow).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save score"})
		return
	}

	err := db.Model(&models.Report{}).Where("id = ?", req.ReportID).Updates(map[string]interface{}{
		"processing_status": "completed",
		"processed_at":      now,
	}).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update report status"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":            true,
		"indicators":         len(indicators),
		"greenwashing_flags": len(flags),
		"score":              scoreRow,
	})
}
