package export

import (
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"
	"testing"
	"time"

	models "propvault/internal/domain/models/report"
	"propvault/internal/service/report"
)

func TestRenderDelimited(t *testing.T) {
	tests := []struct {
		name    string
		headers []string
		rows    [][]string
		want    string
	}{
		{
			name:    "plain fields",
			headers: []string{"Source", "Count"},
			rows:    [][]string{{"Website", "45"}},
			want:    "Source,Count\nWebsite,45",
		},
		{
			name:    "field containing the delimiter is quoted",
			headers: []string{"Property", "Views"},
			rows:    [][]string{{"3BHK Apartment, Bandra West", "234"}},
			want:    "Property,Views\n\"3BHK Apartment, Bandra West\",234",
		},
		{
			name:    "header only",
			headers: []string{"Metric", "Value"},
			rows:    nil,
			want:    "Metric,Value",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RenderDelimited(tt.headers, tt.rows); got != tt.want {
				t.Errorf("RenderDelimited() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLeadSourcesRoundTrip(t *testing.T) {
	in := models.Inputs{
		LeadSources: []models.LeadSource{
			{Source: "Website", Count: 45},
			{Source: "Referrals, Friends", Count: 32}, // delimiter inside a field
			{Source: "Walk-ins", Count: 16},
		},
	}
	fs := report.Aggregate(in)
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	artifact := LeadSourcesArtifact(fs, now)

	if artifact.Name != "Lead_Sources_Analysis_2024-06-01.csv" {
		t.Errorf("artifact name = %q", artifact.Name)
	}

	records, err := csv.NewReader(strings.NewReader(artifact.Content)).ReadAll()
	if err != nil {
		t.Fatalf("parse artifact: %v", err)
	}
	if len(records) != len(fs.LeadSources)+1 {
		t.Fatalf("parsed %d records, want %d", len(records), len(fs.LeadSources)+1)
	}

	for i, fact := range fs.LeadSources {
		row := records[i+1]
		if row[0] != fact.Source {
			t.Errorf("row %d source = %q, want %q", i, row[0], fact.Source)
		}
		count, err := strconv.Atoi(row[1])
		if err != nil || count != fact.Count {
			t.Errorf("row %d count = %q, want %d", i, row[1], fact.Count)
		}
		if want := fmt.Sprintf("%.1f%%", fact.Percentage); row[2] != want {
			t.Errorf("row %d percentage = %q, want %q", i, row[2], want)
		}
	}
}

func TestWorkbookSheets(t *testing.T) {
	fs := report.Aggregate(models.Inputs{
		TotalProperties: 24,
		MonthlyCommissions: []models.MonthlyCommission{
			{Month: "Jun", Earned: 125000, Pending: 25000},
		},
	})
	sheets := WorkbookSheets(fs)

	wantNames := []string{"Sales & Performance", "Leads & Clients", "Property Insights", "Commission Details"}
	if len(sheets) != len(wantNames) {
		t.Fatalf("got %d sheets, want %d", len(sheets), len(wantNames))
	}
	for i, want := range wantNames {
		if sheets[i].Name != want {
			t.Errorf("sheet %d = %q, want %q", i, sheets[i].Name, want)
		}
	}

	// Money fields carry thousands separators, so they are quoted in the
	// rendered sheet
	commission := SheetArtifact(sheets[3], time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))
	if commission.Name != "Commission Details_2024-06-01.csv" {
		t.Errorf("sheet artifact name = %q", commission.Name)
	}
	if !strings.Contains(commission.Content, `"₹125,000"`) {
		t.Errorf("commission sheet missing quoted money field:\n%s", commission.Content)
	}
}

func TestReportArtifact(t *testing.T) {
	fs := report.Aggregate(models.Inputs{
		TotalProperties:      24,
		SoldProperties:       12,
		ConversionRate:       23.5,
		MonthlyGrowthPercent: 15.2,
		LeadStatuses:         []models.LeadStatus{{Status: "Hot", Count: 45}},
		PropertyViews:        []models.PropertyViews{{Property: "3BHK Luxury Apartment", Views: 234, Inquiries: 12}},
		MonthlyCommissions:   []models.MonthlyCommission{{Month: "Jun", Earned: 125000, Pending: 25000}},
	})
	artifact, err := ReportArtifact(fs, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("ReportArtifact() error = %v", err)
	}
	if artifact.Name != "Analytics_Report_2024-06-01.txt" {
		t.Errorf("artifact name = %q", artifact.Name)
	}

	for _, want := range []string{
		"AGENT DASHBOARD - ANALYTICS REPORT",
		"Generated on: 2024-06-01",
		"Total Properties: 24",
		"Hot Leads: 45",
		"Most Viewed: 3BHK Luxury Apartment (234 views)",
		"Monthly Growth: 15.2%",
	} {
		if !strings.Contains(artifact.Content, want) {
			t.Errorf("report missing %q:\n%s", want, artifact.Content)
		}
	}
}
