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

type NewsArticleRequest struct {
	CompanyID   string `json:"companyId" binding:"required"`
	Title       string `json:"title" binding:"required"`
	Content     string `json:"content" binding:"required"`
	Source      string `json:"source"`
	SourceURL   string `json:"sourceUrl"`
	PublishedAt string `json:"publishedAt"`
}

// ProcessNewsArticle runs the news pipeline: sentiment, ESG relevance and
// topics, persists the article, then fans alerts out to watching
// subscribers when the signal is negative enough. Alert emission is not
// deduplicated across replays.
func ProcessNewsArticle(c *gin.Context) {
	var req NewsArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	db := database.GetDB()

	sig := analysis.AnalyzeArticle(req.Title, req.Content)

	topics, err := json.Marshal(sig.Topics)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to encode topics"})
		return
	}

	article := models.NewsArticle{
		ID:               uuid.NewString(),
		CompanyID:        req.CompanyID,
		Title:            req.Title,
		Content:          req.Content,
		Source:           req.Source,
		SourceURL:        req.SourceURL,
		PublishedAt:      req.PublishedAt,
		Sentiment:        sig.Sentiment,
		ESGRelevance:     sig.ESGRelevance,
		TopicsJSON:       string(topics),
		ProcessingStatus: "completed",
	}
	if err := db.Create(&article).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save article"})
		return
	}

	if analysis.ShouldAlert(sig) {
		var company models.Company
		db.Where("id = ?", req.CompanyID).First(&company)

		var subs []models.Subscription
		if err := db.Where("company_id = ?", req.CompanyID).Find(&subs).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load subscribers"})
			return
		}

		subscriberIDs := make([]string, len(subs))
		for i, sub := range subs {
			subscriberIDs[i] = sub.UserID
		}

		commands := analysis.TriggerAlerts(sig, company.Name, article.ID, req.Title, req.Source, subscriberIDs)
		now := time.Now().UTC().Format(time.RFC3339)
		for _, cmd := range commands {
			data, err := json.Marshal(cmd.Data)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to encode alert data"})
				return
			}
			row := models.Alert{
				ID:        uuid.NewString(),
				UserID:    cmd.UserID,
				CompanyID: req.CompanyID,
				AlertType: cmd.Type,
				Severity:  cmd.Severity,
				Title:     cmd.Title,
				Message:   cmd.Message,
				DataJSON:  string(data),
				CreatedAt: now,
			}
			if err := db.Create(&row).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save alert"})
				return
			}
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"article": article,
		"analysis": gin.H{
			"sentiment":     sig.Sentiment,
			"esg_relevance": sig.ESGRelevance,
			"topics":        sig.Topics,
		},
	})
}
