package main

import (
	"log"

	"esg-analytics/config"
	"esg-analytics/database"
	"esg-analytics/handlers"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load(config.GetConfigPath())
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	database.InitDB(cfg.DBPath)

	gin.SetMode(cfg.GinMode)
	r := gin.Default()

	api := r.Group("/api")
	{
		api.POST("/companies", handlers.CreateCompany)
		api.GET("/companies", handlers.GetCompanies)
		api.GET("/companies/:company_id/scores", handlers.GetCompanyScores)

		api.POST("/reports", handlers.RegisterReport)
		api.POST("/analyze-report", handlers.AnalyzeReport)

		api.POST("/news", handlers.ProcessNewsArticle)

		api.GET("/flags", handlers.GetFlags)
		api.POST("/flags/:flag_id/resolve", handlers.ResolveFlag)

		api.GET("/alerts", handlers.GetAlerts)
		api.POST("/alerts/:alert_id/read", handlers.MarkAlertRead)
		api.POST("/subscriptions", handlers.Subscribe)

		api.GET("/stats", handlers.GetStats)
	}

	log.Println("Starting ESG Analytics Server on", cfg.ListenAddr)

	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
