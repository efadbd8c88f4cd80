package models

type Company struct {
	ID            string  `json:"id" gorm:"primaryKey"`
	Name          string  `json:"name"`
	TickerSymbol  string  `json:"ticker_symbol"`
	Industry      string  `json:"industry"`
	Sector        string  `json:"sector"`
	Region        string  `json:"region"`
	Headquarters  string  `json:"headquarters"`
	Website       string  `json:"website"`
	Description   string  `json:"description"`
	EmployeeCount int     `json:"employee_count"`
	RevenueUSD    float64 `json:"revenue_usd"`
	CreatedAt     string  `json:"created_at"`
}

type Report struct {
	ID               string `json:"id" gorm:"primaryKey"`
	CompanyID        string `json:"company_id" gorm:"index"`
	Title            string `json:"title"`
	ReportType       string `json:"report_type"`
	ReportYear       int    `json:"report_year"`
	SourceType       string `json:"source_type"`
	SourceURL        string `json:"source_url"`
	RawText          string `json:"raw_text"`
	ProcessingStatus string `json:"processing_status"`
	UploadedAt       string `json:"uploaded_at"`
	ProcessedAt      string `json:"processed_at"`
}

type Indicator struct {
	ID               string  `json:"id" gorm:"primaryKey"`
	ReportID         string  `json:"report_id" gorm:"index"`
	CompanyID        string  `json:"company_id" gorm:"index"`
	Category         string  `json:"category"`
	Subcategory      string  `json:"subcategory"`
	IndicatorName    string  `json:"indicator_name"`
	IndicatorValue   string  `json:"indicator_value"`
	Unit             string  `json:"unit"`
	Context          string  `json:"context"`
	Sentiment        float64 `json:"sentiment"`
	CredibilityScore float64 `json:"credibility_score"`
	SourcePage       int     `json:"source_page"`
}

type GreenwashingFlag struct {
	ID              string `json:"id" gorm:"primaryKey"`
	CompanyID       string `json:"company_id" gorm:"index"`
	ReportID        string `json:"report_id" gorm:"index"`
	FlagType        string `json:"flag_type"`
	Severity        string `json:"severity"`
	Description     string `json:"description"`
	EvidenceJSON    string `json:"evidence_json"`
	Resolved        bool   `json:"resolved"`
	ResolutionNotes string `json:"resolution_notes"`
	CreatedAt       string `json:"created_at"`
}

type ESGScore struct {
	ID                      string  `json:"id" gorm:"primaryKey"`
	CompanyID               string  `json:"company_id" gorm:"index"`
	ReportID                string  `json:"report_id" gorm:"index"`
	OverallScore            float64 `json:"overall_score"`
	EnvironmentalScore      float64 `json:"environmental_score"`
	SocialScore             float64 `json:"social_score"`
	GovernanceScore         float64 `json:"governance_score"`
	RiskLevel               string  `json:"risk_level"`
	FrameworkUsed           string  `json:"framework_used"`
	ConfidenceScore         float64 `json:"confidence_score"`
	TotalIndicators         int     `json:"total_indicators"`
	EnvironmentalIndicators int     `json:"environmental_indicators"`
	SocialIndicators        int     `json:"social_indicators"`
	GovernanceIndicators    int     `json:"governance_indicators"`
	CalculatedAt            string  `json:"calculated_at"`
}

type NewsArticle struct {
	ID               string  `json:"id" gorm:"primaryKey"`
	CompanyID        string  `json:"company_id" gorm:"index"`
	Title            string  `json:"title"`
	Content          string  `json:"content"`
	Source           string  `json:"source"`
	SourceURL        string  `json:"source_url"`
	PublishedAt      string  `json:"published_at"`
	Sentiment        float64 `json:"sentiment"`
	ESGRelevance     float64 `json:"esg_relevance"`
	TopicsJSON       string  `json:"topics_json"`
	ProcessingStatus string  `json:"processing_status"`
}

type Alert struct {
	ID        string `json:"id" gorm:"primaryKey"`
	UserID    string `json:"user_id" gorm:"index"`
	CompanyID string `json:"company_id" gorm:"index"`
	AlertType string `json:"alert_type"`
	Severity  string `json:"severity"`
	Title     string `json:"title"`
	Message   string `json:"message"`
	DataJSON  string `json:"data_json"`
	Read      bool   `json:"read"`
	CreatedAt string `json:"created_at"`
}

type Subscription struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	UserID    string `json:"user_id" gorm:"index"`
	CompanyID string `json:"company_id" gorm:"index"`
}
