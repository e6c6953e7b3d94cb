// Package reports holds the analytic queries served by the CLI. Sales
// queries read from the published clean view, never the raw table.
package reports

// Sales by Country
const QuerySalesByCountry = `
SELECT country,
       COUNT(*) AS sales,
       SUM(amount_value) AS total_amount,
       ROUND(AVG(amount_value)::numeric, 2) AS avg_amount,
       SUM(boxes_shipped) AS boxes
FROM chocolate_sales_clean
GROUP BY country
ORDER BY total_amount DESC
`

// Top Salespersons
const QueryTopSalespersons = `
SELECT salesperson,
       COUNT(*) AS sales,
       SUM(amount_value) AS total_amount,
       SUM(boxes_shipped) AS boxes
FROM chocolate_sales_clean
GROUP BY salesperson
ORDER BY total_amount DESC
LIMIT 10
`

// Monthly Sales Trend with a running total
const QueryMonthlySalesTrend = `
WITH monthly AS (
    SELECT DATE_TRUNC('month', sale_date)::date AS month,
           COUNT(*) AS sales,
           SUM(amount_value) AS total_amount
    FROM chocolate_sales_clean
    GROUP BY DATE_TRUNC('month', sale_date)
)
SELECT month,
       sales,
       total_amount,
       SUM(total_amount) OVER (ORDER BY month) AS running_total
FROM monthly
ORDER BY month
`

// Product Mix: share of revenue per product
const QueryProductMix = `
SELECT product,
       COUNT(*) AS sales,
       SUM(amount_value) AS total_amount,
       ROUND((SUM(amount_value) / SUM(SUM(amount_value)) OVER () * 100)::numeric, 2) AS revenue_share
FROM chocolate_sales_clean
GROUP BY product
ORDER BY total_amount DESC
`

// COVID Death Percentage: likelihood of dying if infected, by location
const QueryCovidDeathPercentage = `
SELECT location,
       MAX(total_cases) AS total_cases,
       MAX(total_deaths) AS total_deaths,
       ROUND((MAX(total_deaths)::float / NULLIF(MAX(total_cases), 0) * 100)::numeric, 2) AS death_percentage
FROM covid_deaths
WHERE continent IS NOT NULL
GROUP BY location
HAVING MAX(total_cases) > 0
ORDER BY death_percentage DESC
LIMIT 20
`

// COVID Infection Rate: percent of population infected, by location
const QueryCovidInfectionRate = `
SELECT location,
       MAX(population) AS population,
       MAX(total_cases) AS total_cases,
       ROUND((MAX(total_cases)::float / NULLIF(MAX(population), 0) * 100)::numeric, 2) AS percent_infected
FROM covid_deaths
WHERE continent IS NOT NULL
GROUP BY location
HAVING MAX(population) > 0
ORDER BY percent_infected DESC
LIMIT 20
`

// COVID Rolling Vaccinations: running vaccination count per location
const QueryCovidRollingVaccinations = `
SELECT d.location,
       d.report_date,
       v.new_vaccinations,
       SUM(v.new_vaccinations) OVER (
           PARTITION BY d.location
           ORDER BY d.report_date
       ) AS rolling_vaccinated
FROM covid_deaths d
JOIN covid_vaccinations v
  ON d.location = v.location AND d.report_date = v.report_date
WHERE d.continent IS NOT NULL AND d.location = $1
ORDER BY d.report_date
`

// COVID Population vs Vaccination: CTE computing percent vaccinated
const QueryCovidPopVsVac = `
WITH pop_vs_vac AS (
    SELECT d.location,
           d.report_date,
           d.population,
           SUM(v.new_vaccinations) OVER (
               PARTITION BY d.location
               ORDER BY d.report_date
           ) AS rolling_vaccinated
    FROM covid_deaths d
    JOIN covid_vaccinations v
      ON d.location = v.location AND d.report_date = v.report_date
    WHERE d.continent IS NOT NULL
)
SELECT location,
       MAX(population) AS population,
       MAX(rolling_vaccinated) AS vaccinated,
       ROUND((MAX(rolling_vaccinated)::float / NULLIF(MAX(population), 0) * 100)::numeric, 2) AS percent_vaccinated
FROM pop_vs_vac
GROUP BY location
HAVING MAX(population) > 0 AND MAX(rolling_vaccinated) IS NOT NULL
ORDER BY percent_vaccinated DESC
LIMIT 20
`

// Review Score Distribution
const QueryReviewScoreDistribution = `
SELECT review_score,
       COUNT(*) AS reviews,
       ROUND((COUNT(*)::float / SUM(COUNT(*)) OVER () * 100)::numeric, 2) AS share
FROM ecommerce_reviews
WHERE review_score IS NOT NULL
GROUP BY review_score
ORDER BY review_score DESC
`

// CSAT: share of reviews scoring 4 or 5
const QueryCSAT = `
SELECT COUNT(*) AS total_reviews,
       COUNT(*) FILTER (WHERE review_score >= 4) AS satisfied,
       ROUND((COUNT(*) FILTER (WHERE review_score >= 4)::float / NULLIF(COUNT(*), 0) * 100)::numeric, 2) AS csat_percent
FROM ecommerce_reviews
WHERE review_score IS NOT NULL
`

// Delivery Days by Score: does slow delivery track low scores
const QueryDeliveryDaysByScore = `
SELECT review_score,
       COUNT(*) AS reviews,
       ROUND(AVG(delivery_days)::numeric, 1) AS avg_delivery_days,
       PERCENTILE_CONT(0.5) WITHIN GROUP (ORDER BY delivery_days) AS median_delivery_days
FROM ecommerce_reviews
WHERE review_score IS NOT NULL AND delivery_days IS NOT NULL
GROUP BY review_score
ORDER BY review_score DESC
`

// CSAT by Product Category
const QueryCSATByCategory = `
SELECT product_category,
       COUNT(*) AS reviews,
       ROUND(AVG(review_score)::numeric, 2) AS avg_score,
       ROUND((COUNT(*) FILTER (WHERE review_score >= 4)::float / NULLIF(COUNT(*), 0) * 100)::numeric, 2) AS csat_percent
FROM ecommerce_reviews
WHERE review_score IS NOT NULL AND product_category IS NOT NULL
GROUP BY product_category
HAVING COUNT(*) >= 20
ORDER BY csat_percent DESC
LIMIT 20
`
