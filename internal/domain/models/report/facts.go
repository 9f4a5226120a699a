package report

// Input collections for the report aggregator. These mirror the dashboard's
// underlying mock datasets; the aggregator treats every number as an opaque
// fact.

type LeadSource struct {
	Source string `yaml:"source"`
	Count  int    `yaml:"count"`
}

type LeadStatus struct {
	Status string `yaml:"status"`
	Count  int    `yaml:"count"`
}

type PropertyViews struct {
	Property  string `yaml:"property"`
	Views     int    `yaml:"views"`
	Inquiries int    `yaml:"inquiries"`
}

type MonthlyCommission struct {
	Month   string `yaml:"month"`
	Earned  int64  `yaml:"earned"`
	Pending int64  `yaml:"pending"`
}

type VisitStats struct {
	TotalScheduled     int `yaml:"total_scheduled"`
	Completed          int `yaml:"completed"`
	Canceled           int `yaml:"canceled"`
	AverageTimeToClose int `yaml:"average_time_to_close"` // days
}

type MarketingStats struct {
	EmailsSent     int   `yaml:"emails_sent"`
	EmailsOpened   int   `yaml:"emails_opened"`
	SocialShares   int   `yaml:"social_shares"`
	AdSpend        int64 `yaml:"ad_spend"`
	LeadsGenerated int   `yaml:"leads_generated"`
}

// Inputs is everything the aggregator reads. Identical inputs always produce
// an identical FactSet.
type Inputs struct {
	TotalProperties      int                 `yaml:"total_properties"`
	SoldProperties       int                 `yaml:"sold_properties"`
	RentedProperties     int                 `yaml:"rented_properties"`
	ConversionRate       float64             `yaml:"conversion_rate"`
	MonthlyGrowthPercent float64             `yaml:"monthly_growth_percent"`
	LeadSources          []LeadSource        `yaml:"lead_sources"`
	LeadStatuses         []LeadStatus        `yaml:"lead_statuses"`
	PropertyViews        []PropertyViews     `yaml:"property_views"`
	MonthlyCommissions   []MonthlyCommission `yaml:"monthly_commissions"`
	Visits               VisitStats          `yaml:"visits"`
	Marketing            MarketingStats      `yaml:"marketing"`
}

// Derived facts, recomputed per render. Percentages carry one decimal of
// precision; a breakdown's percentages need not sum to exactly 100 after
// independent rounding.

type LeadSourceFact struct {
	Source     string
	Count      int
	Percentage float64
}

type LeadStatusFact struct {
	Status     string
	Count      int
	Percentage float64
}

type PropertyViewFact struct {
	Property  string
	Views     int
	Inquiries int
	// InquiryRate is a display string like "5.1%", or "N/A" when the
	// property has no views.
	InquiryRate string
}

type CommissionFact struct {
	Month   string
	Earned  int64
	Pending int64
	Total   int64
}

// FactSet is the ephemeral mapping of metric name to derived value produced
// by the aggregator.
type FactSet struct {
	TotalProperties  int
	SoldProperties   int
	RentedProperties int
	TotalLeads       int
	ConversionRate   float64

	LeadSources   []LeadSourceFact
	LeadStatuses  []LeadStatusFact
	PropertyViews []PropertyViewFact
	Commissions   []CommissionFact

	TotalEarned          int64
	TotalPending         int64
	TotalCommission      int64
	MonthlyGrowthPercent float64
	Forecast             float64

	Visits    VisitStats
	Marketing MarketingStats
}
