package export

import (
	"fmt"
	"strings"
	"text/template"
	"time"

	"github.com/dustin/go-humanize"

	models "propvault/internal/domain/models/report"
)

// reportTemplate is the fixed free-text analytics report. Plain text, no
// structured markup.
const reportTemplate = `AGENT DASHBOARD - ANALYTICS REPORT
Generated on: {{.GeneratedOn}}

SALES & PERFORMANCE
- Total Properties: {{.TotalProperties}}
- Sold Properties: {{.SoldProperties}}
- Rented Properties: {{.RentedProperties}}
- Conversion Rate: {{.ConversionRate}}%
- Total Commission: {{.TotalCommission}}

LEADS & CLIENTS
- Total Leads: {{.TotalLeads}}
- Hot Leads: {{.HotLeads}}
- Conversion Rate: {{.ConversionRate}}%

PROPERTY INSIGHTS
- Most Viewed: {{.MostViewed}}

COMMISSION ANALYSIS
- Monthly Growth: {{.MonthlyGrowth}}%
- Pending Amount: {{.TotalPending}}
- Forecast: {{.Forecast}}
`

type reportData struct {
	GeneratedOn      string
	TotalProperties  int
	SoldProperties   int
	RentedProperties int
	ConversionRate   string
	TotalCommission  string
	TotalLeads       int
	HotLeads         int
	MostViewed       string
	MonthlyGrowth    string
	TotalPending     string
	Forecast         string
}

var reportTmpl = template.Must(template.New("analytics_report").Parse(reportTemplate))

// ReportArtifact renders the plain-text analytics report.
func ReportArtifact(fs models.FactSet, now time.Time) (Artifact, error) {
	data := reportData{
		GeneratedOn:      stamp(now),
		TotalProperties:  fs.TotalProperties,
		SoldProperties:   fs.SoldProperties,
		RentedProperties: fs.RentedProperties,
		ConversionRate:   fmt.Sprintf("%.1f", fs.ConversionRate),
		TotalCommission:  money(fs.TotalCommission),
		TotalLeads:       fs.TotalLeads,
		MostViewed:       "none",
		MonthlyGrowth:    fmt.Sprintf("%.1f", fs.MonthlyGrowthPercent),
		TotalPending:     money(fs.TotalPending),
		Forecast:         "₹" + humanize.Commaf(fs.Forecast),
	}
	if len(fs.LeadStatuses) > 0 {
		data.HotLeads = fs.LeadStatuses[0].Count
	}
	if len(fs.PropertyViews) > 0 {
		top := fs.PropertyViews[0]
		data.MostViewed = fmt.Sprintf("%s (%d views)", top.Property, top.Views)
	}

	var b strings.Builder
	if err := reportTmpl.Execute(&b, data); err != nil {
		return Artifact{}, fmt.Errorf("render analytics report: %w", err)
	}
	return Artifact{
		Name:    fmt.Sprintf("Analytics_Report_%s.txt", stamp(now)),
		Content: b.String(),
	}, nil
}
