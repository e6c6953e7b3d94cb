package prompts

const SchemaContext = `Database Schema:

1. Tables and Their Relationships:
   - chocolate_sales (raw imported sales, may contain unparsed values)
     * Primary Key: id (serial)
     * Columns:
       - salesperson: Seller name (varchar(100))
       - country: Market country (varchar(60))
       - product: Product name (varchar(100))
       - sale_date_raw: Date as imported, e.g. "04-Jan-22" (varchar(20))
       - amount_raw: Amount as imported, e.g. "$5,320" (varchar(20))
       - boxes_shipped: Boxes shipped (integer, nullable)
       - sale_date: Parsed date, added by the cleaning pipeline (date, nullable)
       - amount_value: Parsed amount, added by the cleaning pipeline (numeric, nullable)

   - chocolate_sales_clean (VIEW over chocolate_sales)
     * One row per natural key (salesperson, country, product, sale_date, amount_value)
     * Only rows with parsed date and positive amount, dates between 2000-01-01 and today
     * IMPORTANT: prefer this view over chocolate_sales for analytics

   - covid_deaths
     * Unique Key: (location, report_date)
     * Columns: iso_code, continent, location, report_date (date), population,
       total_cases, new_cases, total_deaths, new_deaths, icu_patients
     * Rows where continent IS NULL are aggregates (e.g. "World", "Africa"), filter them out

   - covid_vaccinations
     * Unique Key: (location, report_date)
     * Columns: iso_code, continent, location, report_date (date),
       new_vaccinations, total_vaccinations
     * Joins to covid_deaths on (location, report_date)

   - ecommerce_reviews
     * Primary Key: review_id (varchar(40))
     * Columns: order_id, product_category, review_score (1-5),
       price, freight_value, purchase_date (timestamp),
       delivered_date (timestamp), delivery_days (integer)

   - quality_flags (rows flagged by the cleaning pipeline)
     * Columns: table_name, row_id, rule, detail, flagged_at
     * rule values: duplicate_row, missing_required, unparsed_amount,
       unparsed_date, nonpositive_amount, negative_boxes,
       date_out_of_range, amount_outlier

2. Conventions:
   - Dates are DATE or TIMESTAMP columns, compare with DATE '2022-01-15' literals
   - Use LOWER() for string matching: LOWER(country) = LOWER('India')
   - CSAT means the share of reviews with review_score >= 4
`

const QueryExamples = `Example Queries:

1. "total chocolate sales by country"
   SELECT country, SUM(amount_value) AS total_amount
   FROM chocolate_sales_clean
   GROUP BY country
   ORDER BY total_amount DESC;

2. "top salesperson in india"
   SELECT salesperson, SUM(amount_value) AS total_amount
   FROM chocolate_sales_clean
   WHERE LOWER(country) = LOWER('India')
   GROUP BY salesperson
   ORDER BY total_amount DESC
   LIMIT 1;

3. "death percentage in nigeria"
   SELECT location, MAX(total_deaths)::float / NULLIF(MAX(total_cases), 0) * 100 AS death_percentage
   FROM covid_deaths
   WHERE LOWER(location) = LOWER('Nigeria')
   GROUP BY location;

4. "rolling vaccinations for germany"
   SELECT d.report_date,
          SUM(v.new_vaccinations) OVER (PARTITION BY d.location ORDER BY d.report_date) AS rolling_vaccinated
   FROM covid_deaths d
   JOIN covid_vaccinations v ON d.location = v.location AND d.report_date = v.report_date
   WHERE LOWER(d.location) = LOWER('Germany')
   ORDER BY d.report_date;

5. "csat for electronics"
   SELECT COUNT(*) FILTER (WHERE review_score >= 4)::float / NULLIF(COUNT(*), 0) * 100 AS csat_percent
   FROM ecommerce_reviews
   WHERE LOWER(product_category) = LOWER('electronics');

6. "how many rows were flagged as outliers"
   SELECT COUNT(*) FROM quality_flags WHERE rule = 'amount_outlier';
`
