package reports

import (
	"strings"
	"testing"
)

func TestSalesQueriesReadCleanView(t *testing.T) {
	queries := map[string]string{
		"sales by country": QuerySalesByCountry,
		"top salespersons": QueryTopSalespersons,
		"monthly trend":    QueryMonthlySalesTrend,
		"product mix":      QueryProductMix,
	}

	for name, q := range queries {
		if !strings.Contains(q, "chocolate_sales_clean") {
			t.Errorf("%s should read from the clean view", name)
		}
		if strings.Contains(q, "FROM chocolate_sales\n") {
			t.Errorf("%s reads the raw table", name)
		}
	}
}

func TestQueriesAreReadOnly(t *testing.T) {
	queries := []string{
		QuerySalesByCountry, QueryTopSalespersons, QueryMonthlySalesTrend, QueryProductMix,
		QueryCovidDeathPercentage, QueryCovidInfectionRate,
		QueryCovidRollingVaccinations, QueryCovidPopVsVac,
		QueryReviewScoreDistribution, QueryCSAT,
		QueryDeliveryDaysByScore, QueryCSATByCategory,
	}

	for i, q := range queries {
		upper := strings.ToUpper(q)
		head := strings.TrimSpace(upper)
		if !strings.HasPrefix(head, "SELECT") && !strings.HasPrefix(head, "WITH") {
			t.Errorf("query %d does not start with SELECT or WITH", i)
		}
		for _, verb := range []string{"INSERT ", "UPDATE ", "DELETE ", "DROP ", "ALTER "} {
			if strings.Contains(upper, verb) {
				t.Errorf("query %d contains %q", i, strings.TrimSpace(verb))
			}
		}
	}
}
