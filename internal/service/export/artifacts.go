package export

import (
	"fmt"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"

	models "propvault/internal/domain/models/report"
)

// Artifact is one generated downloadable file.
type Artifact struct {
	Name    string
	Content string
}

// Sheet is one tab of the spreadsheet export. Each sheet is rendered as its
// own delimited-text artifact.
type Sheet struct {
	Name    string
	Headers []string
	Rows    [][]string
}

// stamp is the ISO calendar date embedded in artifact filenames.
func stamp(t time.Time) string {
	return t.Format("2006-01-02")
}

// money renders a rupee amount with thousands separators, e.g. "₹125,000".
func money(v int64) string {
	return "₹" + humanize.Comma(v)
}

// LeadSourcesArtifact renders the lead-source breakdown, one row per source
// with its count and one-decimal percentage.
func LeadSourcesArtifact(fs models.FactSet, now time.Time) Artifact {
	rows := make([][]string, 0, len(fs.LeadSources))
	for _, src := range fs.LeadSources {
		rows = append(rows, []string{
			src.Source,
			strconv.Itoa(src.Count),
			fmt.Sprintf("%.1f%%", src.Percentage),
		})
	}
	return Artifact{
		Name:    fmt.Sprintf("Lead_Sources_Analysis_%s.csv", stamp(now)),
		Content: RenderDelimited([]string{"Source", "Count", "Percentage"}, rows),
	}
}

// PropertyPerformanceArtifact renders views, inquiries, and the derived
// inquiry rate per property.
func PropertyPerformanceArtifact(fs models.FactSet, now time.Time) Artifact {
	rows := make([][]string, 0, len(fs.PropertyViews))
	for _, pv := range fs.PropertyViews {
		rows = append(rows, []string{
			pv.Property,
			strconv.Itoa(pv.Views),
			strconv.Itoa(pv.Inquiries),
			pv.InquiryRate,
		})
	}
	return Artifact{
		Name:    fmt.Sprintf("Property_Performance_Analysis_%s.csv", stamp(now)),
		Content: RenderDelimited([]string{"Property", "Views", "Inquiries", "Inquiry Rate"}, rows),
	}
}

// CommissionArtifact renders the monthly commission rollup.
func CommissionArtifact(fs models.FactSet, now time.Time) Artifact {
	rows := make([][]string, 0, len(fs.Commissions))
	for _, c := range fs.Commissions {
		rows = append(rows, []string{
			c.Month,
			money(c.Earned),
			money(c.Pending),
			money(c.Total),
		})
	}
	return Artifact{
		Name:    fmt.Sprintf("Commission_Analysis_%s.csv", stamp(now)),
		Content: RenderDelimited([]string{"Month", "Earned", "Pending", "Total"}, rows),
	}
}

// WorkbookSheets builds the four-sheet spreadsheet view of the fact set.
func WorkbookSheets(fs models.FactSet) []Sheet {
	sales := Sheet{
		Name:    "Sales & Performance",
		Headers: []string{"Metric", "Value", "Growth"},
		Rows: [][]string{
			{"Total Properties", strconv.Itoa(fs.TotalProperties), ""},
			{"Sold Properties", strconv.Itoa(fs.SoldProperties), "+12%"},
			{"Rented Properties", strconv.Itoa(fs.RentedProperties), "+8%"},
			{"Conversion Rate", fmt.Sprintf("%.1f%%", fs.ConversionRate), "+2.3%"},
			{"Total Commission", money(fs.TotalCommission), fmt.Sprintf("+%.1f%%", fs.MonthlyGrowthPercent)},
		},
	}

	leads := Sheet{
		Name:    "Leads & Clients",
		Headers: []string{"Source", "Count", "Percentage"},
	}
	for _, src := range fs.LeadSources {
		leads.Rows = append(leads.Rows, []string{
			src.Source, strconv.Itoa(src.Count), fmt.Sprintf("%.1f%%", src.Percentage),
		})
	}

	properties := Sheet{
		Name:    "Property Insights",
		Headers: []string{"Property", "Views", "Inquiries", "Inquiry Rate"},
	}
	for _, pv := range fs.PropertyViews {
		properties.Rows = append(properties.Rows, []string{
			pv.Property, strconv.Itoa(pv.Views), strconv.Itoa(pv.Inquiries), pv.InquiryRate,
		})
	}

	commissions := Sheet{
		Name:    "Commission Details",
		Headers: []string{"Month", "Earned", "Pending", "Total"},
	}
	for _, c := range fs.Commissions {
		commissions.Rows = append(commissions.Rows, []string{
			c.Month, money(c.Earned), money(c.Pending), money(c.Total),
		})
	}

	return []Sheet{sales, leads, properties, commissions}
}

// SheetArtifact renders one workbook sheet as a delimited-text artifact
// named after the sheet.
func SheetArtifact(sheet Sheet, now time.Time) Artifact {
	return Artifact{
		Name:    fmt.Sprintf("%s_%s.csv", sheet.Name, stamp(now)),
		Content: RenderDelimited(sheet.Headers, sheet.Rows),
	}
}
