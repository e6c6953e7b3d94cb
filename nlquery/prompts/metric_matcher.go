package prompts

import (
	"strings"
)

// MetricMatcher maps question keywords to the tables and views that
// can answer them, so prompts and fallbacks target the right dataset.
type MetricMatcher struct {
	datasets map[string][]string // table/view -> keywords
}

// NewMetricMatcher creates a matcher over the project datasets
func NewMetricMatcher() *MetricMatcher {
	return &MetricMatcher{
		datasets: map[string][]string{
			"chocolate_sales_clean": {
				"sales", "sale", "chocolate", "salesperson", "seller",
				"revenue", "amount", "boxes", "product", "country",
			},
			"covid_deaths": {
				"covid", "death", "deaths", "cases", "infection",
				"infected", "population", "mortality", "icu",
			},
			"covid_vaccinations": {
				"vaccination", "vaccinations", "vaccinated", "vaccine",
				"rolling", "shots", "doses",
			},
			"ecommerce_reviews": {
				"review", "reviews", "score", "satisfaction", "csat",
				"delivery", "freight", "order", "category", "customer",
			},
			"quality_flags": {
				"flag", "flagged", "outlier", "outliers", "duplicate",
				"duplicates", "missing", "unparsed", "quality",
			},
		},
	}
}

// FindTargetTables returns the tables that keywords in the query point
// at, most likely first. Unknown queries return nil.
func (mm *MetricMatcher) FindTargetTables(query string) []string {
	query = strings.ToLower(query)

	hits := make(map[string]int)
	for table, keywords := range mm.datasets {
		for _, keyword := range keywords {
			if strings.Contains(query, keyword) {
				hits[table]++
			}
		}
	}

	var tables []string
	for table := range hits {
		tables = append(tables, table)
	}

	// Order by hit count, ties broken by name for stable output
	for i := 0; i < len(tables); i++ {
		for j := i + 1; j < len(tables); j++ {
			if hits[tables[j]] > hits[tables[i]] ||
				(hits[tables[j]] == hits[tables[i]] && tables[j] < tables[i]) {
				tables[i], tables[j] = tables[j], tables[i]
			}
		}
	}

	return tables
}
