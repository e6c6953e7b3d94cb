package nlquery

import (
	"fmt"
	"strings"

	"github.com/wunmi-ade/analytics_db/nlquery/prompts"
)

// GenerateSQL is the pattern-based fallback used when the model cannot
// produce a query. It only covers the common question shapes.
func GenerateSQL(query string) (string, error) {
	query = strings.ToLower(query)

	tables := prompts.NewMetricMatcher().FindTargetTables(query)
	if len(tables) == 0 {
		return "", fmt.Errorf("could not generate SQL for query: %s", query)
	}

	wantsTop := strings.Contains(query, "top") || strings.Contains(query, "best") ||
		strings.Contains(query, "highest")

	switch tables[0] {
	case "chocolate_sales_clean":
		if wantsTop || strings.Contains(query, "salesperson") || strings.Contains(query, "seller") {
			return `
			SELECT salesperson, SUM(amount_value) AS total_amount, SUM(boxes_shipped) AS boxes
			FROM chocolate_sales_clean
			GROUP BY salesperson
			ORDER BY total_amount DESC
			LIMIT 10;`, nil
		}
		return `
		SELECT country, COUNT(*) AS sales, SUM(amount_value) AS total_amount
		FROM chocolate_sales_clean
		GROUP BY country
		ORDER BY total_amount DESC;`, nil

	case "covid_deaths":
		return `
		SELECT location,
		       MAX(total_cases) AS total_cases,
		       MAX(total_deaths) AS total_deaths,
		       MAX(total_deaths)::float / NULLIF(MAX(total_cases), 0) * 100 AS death_percentage
		FROM covid_deaths
		WHERE continent IS NOT NULL
		GROUP BY location
		ORDER BY death_percentage DESC NULLS LAST
		LIMIT 20;`, nil

	case "covid_vaccinations":
		return `
		SELECT location, MAX(total_vaccinations) AS total_vaccinations
		FROM covid_vaccinations
		WHERE continent IS NOT NULL
		GROUP BY location
		ORDER BY total_vaccinations DESC NULLS LAST
		LIMIT 20;`, nil

	case "ecommerce_reviews":
		return `
		SELECT review_score, COUNT(*) AS reviews
		FROM ecommerce_reviews
		WHERE review_score IS NOT NULL
		GROUP BY review_score
		ORDER BY review_score DESC;`, nil

	case "quality_flags":
		return `
		SELECT rule, COUNT(*) AS flagged_rows
		FROM quality_flags
		GROUP BY rule
		ORDER BY flagged_rows DESC;`, nil
	}

	return "", fmt.Errorf("could not generate SQL for query: %s", query)
}
