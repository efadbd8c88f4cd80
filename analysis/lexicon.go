package analysis

import "regexp"

// The tables below are the fixed vocabulary of the engine. They are loaded
// once and never mutated at runtime.

type categoryRule struct {
	category    string
	subcategory string
	pattern     *regexp.Regexp
}

// categoryRules is scanned in order for every retained sentence; emission
// order of indicators depends on this ordering.
var categoryRules = []categoryRule{
	{CategoryEnvironmental, "carbon_emissions", regexp.MustCompile(`(?i)carbon emission|co2 emission|greenhouse gas|ghg`)},
	{CategoryEnvironmental, "renewable_energy", regexp.MustCompile(`(?i)renewable energy|solar|wind power`)},
	{CategoryEnvironmental, "water_management", regexp.MustCompile(`(?i)water consumption|water usage`)},
	{CategoryEnvironmental, "waste_management", regexp.MustCompile(`(?i)waste reduction|recycling|circular economy`)},
	{CategoryEnvironmental, "biodiversity", regexp.MustCompile(`(?i)biodiversity|ecosystem|deforestation`)},
	{CategorySocial, "labor_practices", regexp.MustCompile(`(?i)employee|worker|labor`)},
	{CategorySocial, "diversity_inclusion", regexp.MustCompile(`(?i)diversity|inclusion|equity`)},
	{CategorySocial, "health_safety", regexp.MustCompile(`(?i)safety|health|wellbeing`)},
	{CategorySocial, "community_engagement", regexp.MustCompile(`(?i)community|local engagement`)},
	{CategorySocial, "human_rights", regexp.MustCompile(`(?i)human rights|fair trade`)},
	{CategoryGovernance, "board_structure", regexp.MustCompile(`(?i)board|director|governance`)},
	{CategoryGovernance, "ethics_compliance", regexp.MustCompile(`(?i)ethics|compliance|integrity`)},
	{CategoryGovernance, "transparency", regexp.MustCompile(`(?i)transparency|disclosure|reporting`)},
	{CategoryGovernance, "risk_management", regexp.MustCompile(`(?i)risk management|risk assessment`)},
	{CategoryGovernance, "stakeholder_engagement", regexp.MustCompile(`(?i)shareholder|stakeholder`)},
}

var (
	numberPattern = regexp.MustCompile(`\d+\.?\d*`)
	unitPattern   = regexp.MustCompile(`(?i)tonnes?|kg|kwh|mwh|percent|%|employees?|hours?`)
)

// Sentence-level sentiment vocabulary (report pipeline).
var (
	sentencePositive = []string{
		"improved", "increased", "reduced emissions", "enhanced",
		"achieved", "succeeded", "committed", "progress",
	}
	sentenceNegative = []string{
		"failed", "decreased performance", "violation", "incident",
		"penalty", "lawsuit", "delayed",
	}
)

// Document-level sentiment vocabulary (news pipeline).
var (
	documentPositive = []string{
		"improved", "increased", "success", "achievement", "leader", "innovation",
		"sustainable", "commitment", "progress", "excellence", "award", "recognition",
		"certified", "verified", "transparent", "responsible", "ethical",
	}
	documentNegative = []string{
		"scandal", "violation", "lawsuit", "penalty", "fine", "investigation",
		"controversy", "criticism", "failure", "decline", "loss", "breach",
		"pollution", "discrimination", "corruption", "greenwashing", "misleading",
	}
)

// Credibility vocabulary.
var (
	verificationPattern = regexp.MustCompile(`(?i)verified|certified|audited|third[- ]party`)
	hedgingPattern      = regexp.MustCompile(`(?i)approximately|around|roughly`)
	specificityPattern  = regexp.MustCompile(`(?i)\d{4}|specific|measured`)
	intentPattern       = regexp.MustCompile(`(?i)aim to|plan to|intend to`)
)

// Greenwashing vocabulary.
var (
	vagueClaimPattern  = regexp.MustCompile(`(?i)eco[- ]friendly|green|sustainable|environmentally[- ]conscious`)
	futureClaimPattern = regexp.MustCompile(`(?i)will reduce|plan to|committed to|by 2030|by 2050`)
)

// esgKeywords drives relevance scoring; multi-word entries contribute their
// word count once per article when present.
var esgKeywords = []string{
	"environmental", "social", "governance", "esg", "sustainability",
	"climate", "carbon", "emission", "renewable", "energy",
	"diversity", "inclusion", "labor", "human rights", "community",
	"ethics", "compliance", "transparency", "board", "stakeholder",
	"supply chain", "circular economy", "biodiversity", "water",
	"waste", "recycling", "safety", "health", "wellbeing",
}

type topicRule struct {
	topic    string
	keywords []string
}

// topicRules is evaluated in order; output topics keep this ordering.
var topicRules = []topicRule{
	{"Climate Change", []string{"climate", "global warming", "carbon", "emission"}},
	{"Renewable Energy", []string{"solar", "wind", "renewable energy", "clean energy"}},
	{"Diversity & Inclusion", []string{"diversity", "inclusion", "equity", "dei"}},
	{"Labor Practices", []string{"labor", "worker", "employee rights", "union"}},
	{"Corporate Governance", []string{"governance", "board", "executive", "shareholder"}},
	{"Supply Chain", []string{"supply chain", "sourcing", "supplier", "procurement"}},
	{"Water Management", []string{"water", "drought", "water scarcity"}},
	{"Waste & Recycling", []string{"waste", "recycling", "circular economy"}},
	{"Human Rights", []string{"human rights", "forced labor", "child labor"}},
	{"Transparency", []string{"transparency", "disclosure", "reporting"}},
	{"Biodiversity", []string{"biodiversity", "ecosystem", "deforestation"}},
	{"Health & Safety", []string{"safety", "health", "accident", "injury"}},
}
