package analysis

// Indicator is a single ESG data point extracted from one source sentence.
type Indicator struct {
	Category    string
	Subcategory string
	Name        string
	Value       string
	Unit        string
	Context     string
	Sentiment   float64
	Credibility float64
	SourcePage  int
}

// Flag is a greenwashing warning raised against a document.
type Flag struct {
	Type        string
	Severity    string
	Description string
	Evidence    map[string]int
}

// ScoreMetrics carries the indicator counts behind a score.
type ScoreMetrics struct {
	Total         int
	Environmental int
	Social        int
	Governance    int
}

// Score is the aggregate ESG result for one analysis run.
type Score struct {
	Overall       float64
	Environmental float64
	Social        float64
	Governance    float64
	RiskLevel     string
	Confidence    float64
	Metrics       ScoreMetrics
}

// NewsSignal is the computed analysis of one news article.
type NewsSignal struct {
	Sentiment    float64
	ESGRelevance float64
	Topics       []string
}

// AlertData is the structured evidence attached to an alert.
type AlertData struct {
	ArticleID string  `json:"article_id"`
	Sentiment float64 `json:"sentiment"`
	Source    string  `json:"source"`
}

// AlertCommand describes one alert to be persisted for one subscriber.
type AlertCommand struct {
	UserID   string
	Type     string
	Severity string
	Title    string
	Message  string
	Data     AlertData
}

const (
	CategoryEnvironmental = "environmental"
	CategorySocial        = "social"
	CategoryGovernance    = "governance"

	FlagVagueClaim    = "VAGUE_CLAIM"
	FlagInconsistency = "INCONSISTENCY"
	FlagMissingData   = "MISSING_DATA"

	SeverityLow      = "LOW"
	SeverityMedium   = "MEDIUM"
	SeverityHigh     = "HIGH"
	SeverityCritical = "CRITICAL"
	SeverityWarning  = "WARNING"

	AlertTypeNewReport = "NEW_REPORT"
)
