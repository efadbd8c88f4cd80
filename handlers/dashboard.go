package handlers

import (
	"net/http"

	"esg-analytics/database"
	"esg-analytics/models"

	"github.com/gin-gonic/gin"
)

// GetStats aggregates dashboard numbers across the whole store.
func GetStats(c *gin.Context) {
	db := database.GetDB()

	var companies int64
	var reports int64
	var completedReports int64
	var indicators int64
	var unresolvedFlags int64
	var highSeverityFlags int64
	var unreadAlerts int64
	var avgOverall float64

	db.Model(&models.Company{}).Count(&companies)

	db.Model(&models.Report{}).Count(&reports)
	db.Model(&models.Report{}).Where("processing_status = ?", "completed").Count(&completedReports)

	db.Model(&models.Indicator{}).Count(&indicators)

	db.Model(&models.GreenwashingFlag{}).Where("resolved = ?", false).Count(&unresolvedFlags)
	db.Model(&models.GreenwashingFlag{}).Where("resolved = ? AND severity = ?", false, "HIGH").Count(&highSeverityFlags)

	db.Model(&models.Alert{}).Where("read = ?", false).Count(&unreadAlerts)

	db.Model(&models.ESGScore{}).Select("AVG(overall_score)").Scan(&avgOverall)

	// Risk distribution over all computed scores.
	risk := gin.H{}
	for _, level := range []string{"LOW", "MEDIUM", "HIGH", "CRITICAL"} {
		var n int64
		db.Model(&models.ESGScore{}).Where("risk_level = ?", level).Count(&n)
		risk[level] = n
	}

	c.JSON(http.StatusOK, gin.H{
		"companies":           companies,
		"reports":             reports,
		"completed_reports":   completedReports,
		"indicators":          indicators,
		"unresolved_flags":    unresolvedFlags,
		"high_severity_flags": highSeverityFlags,
		"unread_alerts":       unreadAlerts,
		"avg_overall_score":   avgOverall,
		"risk_distribution":   risk,
	})
}
