package analytics

// ActionRule maps a problem keyword (substring match against a recommendation
// area) to a concrete operational remediation.
type ActionRule struct {
	Match     string
	Action    string
	Owner     string
	Timeframe string
	KPI       string
}

// Lexicon bundles the static word tables the engine depends on: stopwords,
// the aspect taxonomy, and the keyword-to-action mapping. It is built once at
// startup and passed by reference; tests may substitute alternate tables.
type Lexicon struct {
	Stopwords map[string]struct{}
	// AspectNames fixes the iteration order of Aspects so output stays
	// deterministic.
	AspectNames []string
	Aspects     map[string][]string
	Actions     []ActionRule
	Fallback    ActionRule
}

// DefaultLexicon returns the built-in English tables.
func DefaultLexicon() *Lexicon {
	lx := &Lexicon{
		Stopwords: make(map[string]struct{}),
		AspectNames: []string{
			"Service", "Speed", "Price", "Cleanliness",
			"Quality", "Availability", "Environment", "Digital",
		},
		Aspects: map[string][]string{
			"Service":      {"service", "staff", "waiter", "waitress", "manager", "helpful", "rude", "attitude"},
			"Speed":        {"wait", "waiting", "slow", "fast", "quick", "queue", "delay", "late"},
			"Price":        {"price", "prices", "expensive", "cheap", "cost", "overpriced", "value"},
			"Cleanliness":  {"clean", "dirty", "hygiene", "messy", "filthy", "spotless", "smell"},
			"Quality":      {"quality", "fresh", "stale", "broken", "taste", "delicious", "terrible", "poor"},
			"Availability": {"stock", "unavailable", "available", "sold", "shortage", "closed", "empty"},
			"Environment":  {"noise", "noisy", "loud", "crowded", "atmosphere", "ambience", "seating", "parking"},
			"Digital":      {"app", "website", "online", "booking", "checkout", "payment", "card"},
		},
		Actions: []ActionRule{
			{Match: "wait", Action: "Optimize peak-hour staffing and introduce queue management", Owner: "Operations Manager", Timeframe: "2 weeks", KPI: "Average wait time"},
			{Match: "queue", Action: "Optimize peak-hour staffing and introduce queue management", Owner: "Operations Manager", Timeframe: "2 weeks", KPI: "Average wait time"},
			{Match: "slow", Action: "Map the slowest service steps and remove bottlenecks", Owner: "Operations Manager", Timeframe: "2 weeks", KPI: "Order-to-delivery time"},
			{Match: "speed", Action: "Map the slowest service steps and remove bottlenecks", Owner: "Operations Manager", Timeframe: "2 weeks", KPI: "Order-to-delivery time"},
			{Match: "late", Action: "Audit scheduling and delivery handoffs for chronic delays", Owner: "Operations Manager", Timeframe: "2 weeks", KPI: "On-time rate"},
			{Match: "rude", Action: "Run customer-service coaching for front-line staff", Owner: "Shift Lead", Timeframe: "1 week", KPI: "Negative service mentions"},
			{Match: "staff", Action: "Refresh service training and clarify escalation paths", Owner: "Shift Lead", Timeframe: "2 weeks", KPI: "Negative service mentions"},
			{Match: "service", Action: "Refresh service training and clarify escalation paths", Owner: "Shift Lead", Timeframe: "2 weeks", KPI: "Negative service mentions"},
			{Match: "price", Action: "Benchmark pricing against local competitors and publish it transparently", Owner: "General Manager", Timeframe: "1 month", KPI: "Price-related complaints"},
			{Match: "expensive", Action: "Benchmark pricing against local competitors and publish it transparently", Owner: "General Manager", Timeframe: "1 month", KPI: "Price-related complaints"},
			{Match: "charge", Action: "Review billing accuracy and surprise fees", Owner: "General Manager", Timeframe: "2 weeks", KPI: "Billing disputes"},
			{Match: "clean", Action: "Tighten the cleaning rota and add spot inspections", Owner: "Facilities Lead", Timeframe: "1 week", KPI: "Cleanliness mentions"},
			{Match: "dirty", Action: "Tighten the cleaning rota and add spot inspections", Owner: "Facilities Lead", Timeframe: "1 week", KPI: "Cleanliness mentions"},
			{Match: "hygiene", Action: "Schedule a hygiene audit and retrain on standards", Owner: "Facilities Lead", Timeframe: "1 week", KPI: "Hygiene incidents"},
			{Match: "quality", Action: "Audit suppliers and tighten quality-control checks", Owner: "Quality Lead", Timeframe: "1 month", KPI: "Defect rate"},
			{Match: "broken", Action: "Audit suppliers and tighten quality-control checks", Owner: "Quality Lead", Timeframe: "1 month", KPI: "Defect rate"},
			{Match: "stale", Action: "Review stock rotation and freshness checks", Owner: "Quality Lead", Timeframe: "2 weeks", KPI: "Freshness complaints"},
			{Match: "stock", Action: "Improve inventory forecasting for high-demand items", Owner: "Inventory Lead", Timeframe: "1 month", KPI: "Out-of-stock rate"},
			{Match: "availab", Action: "Improve inventory forecasting for high-demand items", Owner: "Inventory Lead", Timeframe: "1 month", KPI: "Out-of-stock rate"},
			{Match: "sold", Action: "Improve inventory forecasting for high-demand items", Owner: "Inventory Lead", Timeframe: "1 month", KPI: "Out-of-stock rate"},
			{Match: "noise", Action: "Rework seating and peak capacity to cut noise and crowding", Owner: "Facilities Lead", Timeframe: "1 month", KPI: "Environment mentions"},
			{Match: "crowd", Action: "Rework seating and peak capacity to cut noise and crowding", Owner: "Facilities Lead", Timeframe: "1 month", KPI: "Environment mentions"},
			{Match: "environment", Action: "Rework seating and peak capacity to cut noise and crowding", Owner: "Facilities Lead", Timeframe: "1 month", KPI: "Environment mentions"},
			{Match: "parking", Action: "Publish parking guidance and validate nearby options", Owner: "Facilities Lead", Timeframe: "2 weeks", KPI: "Parking complaints"},
			{Match: "payment", Action: "Fix payment terminal issues and add contactless options", Owner: "Digital Lead", Timeframe: "2 weeks", KPI: "Failed payments"},
			{Match: "app", Action: "Prioritize fixes for the digital ordering flow", Owner: "Digital Lead", Timeframe: "1 month", KPI: "Digital complaint rate"},
			{Match: "website", Action: "Prioritize fixes for the digital ordering flow", Owner: "Digital Lead", Timeframe: "1 month", KPI: "Digital complaint rate"},
			{Match: "digital", Action: "Prioritize fixes for the digital ordering flow", Owner: "Digital Lead", Timeframe: "1 month", KPI: "Digital complaint rate"},
		},
		Fallback: ActionRule{
			Action:    "Run a root-cause analysis on recurring complaints in this area",
			Owner:     "General Manager",
			Timeframe: "1 month",
			KPI:       "Negative mention count",
		},
	}

	for _, w := range defaultStopwords {
		lx.Stopwords[w] = struct{}{}
	}
	return lx
}

// LookupAction resolves a recommendation area to its remediation via
// substring matching, falling back to the generic root-cause action.
func (lx *Lexicon) LookupAction(area string) ActionRule {
	for _, rule := range lx.Actions {
		if containsFold(area, rule.Match) {
			return rule
		}
	}
	return lx.Fallback
}

var defaultStopwords = []string{
	"the", "and", "for", "are", "but", "not", "was", "were", "has", "had",
	"have", "this", "that", "these", "those", "with", "from", "they", "them",
	"their", "there", "here", "you", "your", "our", "his", "her", "she", "him",
	"its", "been", "being", "very", "too", "just", "than", "then", "when",
	"what", "which", "who", "how", "all", "any", "can", "will", "would",
	"about", "into", "out",
}
