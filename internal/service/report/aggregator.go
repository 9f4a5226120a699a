package report

import (
	"fmt"
	"math"

	models "propvault/internal/domain/models/report"
)

// Aggregate computes the derived fact set from the input collections. It is
// a pure function: identical inputs always yield an identical FactSet, and
// nothing is cached between calls.
//
// Percentages are rounded independently to one decimal, so a breakdown's
// percentages may not sum to exactly 100; that matches the dashboard's
// observed behavior and is left uncorrected. A property with zero views
// reports an inquiry rate of "N/A" instead of dividing by zero.
func Aggregate(in models.Inputs) models.FactSet {
	fs := models.FactSet{
		TotalProperties:      in.TotalProperties,
		SoldProperties:       in.SoldProperties,
		RentedProperties:     in.RentedProperties,
		ConversionRate:       in.ConversionRate,
		MonthlyGrowthPercent: in.MonthlyGrowthPercent,
		Visits:               in.Visits,
		Marketing:            in.Marketing,
	}

	totalLeads := 0
	for _, src := range in.LeadSources {
		totalLeads += src.Count
	}
	fs.TotalLeads = totalLeads

	fs.LeadSources = make([]models.LeadSourceFact, 0, len(in.LeadSources))
	for _, src := range in.LeadSources {
		fs.LeadSources = append(fs.LeadSources, models.LeadSourceFact{
			Source:     src.Source,
			Count:      src.Count,
			Percentage: percentage(src.Count, totalLeads),
		})
	}

	statusTotal := 0
	for _, st := range in.LeadStatuses {
		statusTotal += st.Count
	}
	fs.LeadStatuses = make([]models.LeadStatusFact, 0, len(in.LeadStatuses))
	for _, st := range in.LeadStatuses {
		fs.LeadStatuses = append(fs.LeadStatuses, models.LeadStatusFact{
			Status:     st.Status,
			Count:      st.Count,
			Percentage: percentage(st.Count, statusTotal),
		})
	}

	fs.PropertyViews = make([]models.PropertyViewFact, 0, len(in.PropertyViews))
	for _, pv := range in.PropertyViews {
		fs.PropertyViews = append(fs.PropertyViews, models.PropertyViewFact{
			Property:    pv.Property,
			Views:       pv.Views,
			Inquiries:   pv.Inquiries,
			InquiryRate: inquiryRate(pv.Inquiries, pv.Views),
		})
	}

	fs.Commissions = make([]models.CommissionFact, 0, len(in.MonthlyCommissions))
	for _, mc := range in.MonthlyCommissions {
		total := mc.Earned + mc.Pending
		fs.Commissions = append(fs.Commissions, models.CommissionFact{
			Month:   mc.Month,
			Earned:  mc.Earned,
			Pending: mc.Pending,
			Total:   total,
		})
		fs.TotalEarned += mc.Earned
		fs.TotalPending += mc.Pending
		fs.TotalCommission += total
	}

	fs.Forecast = float64(fs.TotalCommission) * (1 + in.MonthlyGrowthPercent/100)
	return fs
}

// percentage computes count/total*100 rounded half away from zero to one
// decimal. A zero total yields 0.
func percentage(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return round1(float64(count) / float64(total) * 100)
}

// inquiryRate formats inquiries/views*100 to one decimal, or "N/A" when
// there are no views.
func inquiryRate(inquiries, views int) string {
	if views == 0 {
		return "N/A"
	}
	return fmt.Sprintf("%.1f%%", round1(float64(inquiries)/float64(views)*100))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
