package main

import (
	"bufio"
	"context"
	"database/sql"
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/olekukonko/tablewriter"

	"github.com/wunmi-ade/analytics_db/cleaner"
	"github.com/wunmi-ade/analytics_db/importer"
	"github.com/wunmi-ade/analytics_db/migrations"
	"github.com/wunmi-ade/analytics_db/models"
	"github.com/wunmi-ade/analytics_db/nlquery"
	"github.com/wunmi-ade/analytics_db/profiler"
	"github.com/wunmi-ade/analytics_db/reports"
)

func init() {
	// Load .env file
	err := godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file")
	}
}

func main() {
	// Connect to database using environment variables
	psqlInfo := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"))

	db, err := sql.Open("postgres", psqlInfo)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	// Test connection
	err = db.Ping()
	if err != nil {
		log.Fatal(err)
	}

	// Initialize database schema
	if err := migrations.InitSchema(db); err != nil {
		log.Printf("Warning: Error initializing schema: %v", err)
	}

	ctx := context.Background()

	for {
		displayMenu()
		choice := readChoice()

		switch choice {
		case "1":
			handleImport(ctx, db, "chocolate sales", importer.SalesConfig)
		case "2":
			handleImport(ctx, db, "covid deaths", importer.CovidDeathsConfig)
		case "3":
			handleImport(ctx, db, "covid vaccinations", importer.CovidVaccinationsConfig)
		case "4":
			handleReviewsImport(ctx, db)
		case "5":
			handleAnalyzeFailedImports(db)
		case "6":
			runCleaningPipeline(ctx, db)
		case "7":
			runPipelineStep(ctx, db, choice)
		case "8":
			runPipelineStep(ctx, db, choice)
		case "9":
			runPipelineStep(ctx, db, choice)
		case "10":
			runPipelineStep(ctx, db, choice)
		case "11":
			handleProfileTable(ctx, db)
		case "12":
			displaySalesByCountry(db)
		case "13":
			displayTopSalespersons(db)
		case "14":
			displayMonthlySalesTrend(db)
		case "15":
			displayProductMix(db)
		case "16":
			displayCovidDeathPercentage(db)
		case "17":
			displayCovidInfectionRate(db)
		case "18":
			displayRollingVaccinations(db)
		case "19":
			displayPopVsVac(db)
		case "20":
			displayReviewScoreDistribution(db)
		case "21":
			displayCSAT(db)
		case "22":
			displayDeliveryDaysByScore(db)
		case "23":
			displayCSATByCategory(db)
		case "24":
			displayQualityFlags(db)
		case "25":
			handleBrowseSample(db)
		case "26":
			handleNaturalLanguageQuery(ctx, db)
		case "27":
			color.Green("Thank you for using the Analytics DB console!")
			return
		default:
			color.Red("Invalid choice. Please try again.")
		}
	}
}

func displayMenu() {
	color.Cyan("\n=== Analytics DB Console ===")
	fmt.Println("1. Import Chocolate Sales Data")
	fmt.Println("2. Import COVID Deaths Data")
	fmt.Println("3. Import COVID Vaccinations Data")
	fmt.Println("4. Import E-commerce Reviews Data")
	fmt.Println("5. Analyze Failed Imports")
	fmt.Println("6. Run Cleaning Pipeline (all steps)")
	fmt.Println("7. Inspect Chocolate Sales")
	fmt.Println("8. Transform Chocolate Sales")
	fmt.Println("9. Validate + Flag Outliers")
	fmt.Println("10. Publish Clean View")
	fmt.Println("11. Profile a Table")
	fmt.Println("12. Sales by Country")
	fmt.Println("13. Top Salespersons")
	fmt.Println("14. Monthly Sales Trend")
	fmt.Println("15. Product Mix")
	fmt.Println("16. COVID Death Percentage")
	fmt.Println("17. COVID Infection Rate")
	fmt.Println("18. Rolling Vaccinations by Location")
	fmt.Println("19. Population vs Vaccination")
	fmt.Println("20. Review Score Distribution")
	fmt.Println("21. Customer Satisfaction (CSAT)")
	fmt.Println("22. Delivery Days by Review Score")
	fmt.Println("23. CSAT by Product Category")
	fmt.Println("24. View Quality Flags")
	fmt.Println("25. Browse a Dataset Sample")
	fmt.Println("26. Ask a Question (natural language)")
	fmt.Println("27. Exit")
	fmt.Print("\nEnter your choice (1-27): ")
}

func handleImport(ctx context.Context, db *sql.DB, label string, buildConfig func(string) importer.ImportConfig) {
	fmt.Printf("Enter the %s CSV file path: ", label)
	filename := readString()

	workerCount := importer.DefaultWorkerCount
	if envWorkerCount := os.Getenv("WORKER_COUNT"); envWorkerCount != "" {
		if count, err := strconv.Atoi(envWorkerCount); err == nil && count > 0 {
			workerCount = count
		}
	}

	fmt.Printf("\nReady to import %s data from %s using %d workers\n", label, filename, workerCount)
	fmt.Print("Proceed with import? (y/n): ")
	if strings.ToLower(readString()) != "y" {
		fmt.Println("Import cancelled.")
		return
	}

	file, err := os.Open(filename)
	if err != nil {
		color.Red("Error opening file: %v", err)
		return
	}
	defer file.Close()

	reader := csv.NewReader(file)

	config := buildConfig(filename)
	config.WorkerCount = workerCount

	if err := importer.ImportData(ctx, db, config, reader); err != nil {
		color.Red("Error importing data: %v", err)
	} else {
		color.Green("Import completed successfully!")
	}
}

func handleReviewsImport(ctx context.Context, db *sql.DB) {
	handleImport(ctx, db, "e-commerce reviews", importer.ReviewsConfig)

	// Derive delivery_days for rows that have both timestamps
	updated, err := importer.ComputeDeliveryDays(ctx, db)
	if err != nil {
		color.Red("Error computing delivery days: %v", err)
		return
	}
	fmt.Printf("Computed delivery_days for %d rows\n", updated)
}

func handleAnalyzeFailedImports(db *sql.DB) {
	fmt.Print("Enter the path to the CSV file to analyze: ")
	filename := readString()

	workerCount := importer.DefaultWorkerCount
	if envWorkerCount := os.Getenv("WORKER_COUNT"); envWorkerCount != "" {
		if count, err := strconv.Atoi(envWorkerCount); err == nil && count > 0 {
			workerCount = count
		}
	}

	fmt.Printf("\nUsing %d workers for parallel processing\n", workerCount)

	config := importer.SalesConfig(filename)
	config.WorkerCount = workerCount
	imp := importer.NewDataImporter(db, config)

	if _, err := imp.AnalyzeFailedImports(filename); err != nil {
		color.Red("Error analyzing imports: %v", err)
	}
}

func runCleaningPipeline(ctx context.Context, db *sql.DB) {
	if err := cleaner.NewPipeline(db).Run(ctx); err != nil {
		color.Red("Cleaning pipeline failed: %v", err)
	}
}

func runPipelineStep(ctx context.Context, db *sql.DB, choice string) {
	p := cleaner.NewPipeline(db)

	var err error
	switch choice {
	case "7":
		err = p.Inspect(ctx)
	case "8":
		err = p.Transform(ctx)
	case "9":
		if _, err = p.Validate(ctx); err == nil {
			_, err = p.FlagOutliers(ctx)
		}
	case "10":
		err = p.Publish(ctx)
	}

	if err != nil {
		color.Red("Step failed: %v", err)
	}
}

func handleProfileTable(ctx context.Context, db *sql.DB) {
	fmt.Print("Enter table name to profile: ")
	table := readString()

	profiles, err := profiler.ProfileTable(ctx, db, table)
	if err != nil {
		color.Red("Error profiling table: %v", err)
		return
	}

	profiler.Render(table, profiles, 0)
}

func displaySalesByCountry(db *sql.DB) {
	rows, err := db.Query(reports.QuerySalesByCountry)
	if err != nil {
		log.Printf("Error getting sales by country: %v", err)
		return
	}
	defer rows.Close()

	color.Yellow("\nChocolate Sales by Country")
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Country", "Sales", "Total Amount", "Avg Amount", "Boxes"})

	for rows.Next() {
		var country string
		var sales int
		var totalAmount, avgAmount float64
		var boxes sql.NullInt64

		if err := rows.Scan(&country, &sales, &totalAmount, &avgAmount, &boxes); err != nil {
			log.Printf("Error scanning row: %v", err)
			continue
		}

		table.Append([]string{
			country,
			fmt.Sprintf("%d", sales),
			fmt.Sprintf("%.2f", totalAmount),
			fmt.Sprintf("%.2f", avgAmount),
			fmt.Sprintf("%d", getInt64(boxes)),
		})
	}

	table.Render()
}

func displayTopSalespersons(db *sql.DB) {
	rows, err := db.Query(reports.QueryTopSalespersons)
	if err != nil {
		log.Printf("Error getting top salespersons: %v", err)
		return
	}
	defer rows.Close()

	color.Yellow("\nTop 10 Salespersons by Revenue")
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Rank", "Salesperson", "Sales", "Total Amount", "Boxes"})

	rank := 1
	for rows.Next() {
		var salesperson string
		var sales int
		var totalAmount float64
		var boxes sql.NullInt64

		if err := rows.Scan(&salesperson, &sales, &totalAmount, &boxes); err != nil {
			continue
		}

		table.Append([]string{
			fmt.Sprintf("%d", rank),
			salesperson,
			fmt.Sprintf("%d", sales),
			fmt.Sprintf("%.2f", totalAmount),
			fmt.Sprintf("%d", getInt64(boxes)),
		})
		rank++
	}

	table.Render()
}

func displayMonthlySalesTrend(db *sql.DB) {
	rows, err := db.Query(reports.QueryMonthlySalesTrend)
	if err != nil {
		log.Printf("Error getting monthly trend: %v", err)
		return
	}
	defer rows.Close()

	color.Yellow("\nMonthly Sales Trend")
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Month", "Sales", "Total Amount", "Running Total"})

	for rows.Next() {
		var month time.Time
		var sales int
		var totalAmount, runningTotal float64

		if err := rows.Scan(&month, &sales, &totalAmount, &runningTotal); err != nil {
			continue
		}

		table.Append([]string{
			month.Format("2006-01"),
			fmt.Sprintf("%d", sales),
			fmt.Sprintf("%.2f", totalAmount),
			fmt.Sprintf("%.2f", runningTotal),
		})
	}

	table.Render()
}

func displayProductMix(db *sql.DB) {
	rows, err := db.Query(reports.QueryProductMix)
	if err != nil {
		log.Printf("Error getting product mix: %v", err)
		return
	}
	defer rows.Close()

	color.Yellow("\nProduct Revenue Mix")
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Product", "Sales", "Total Amount", "Revenue Share (%)"})

	for rows.Next() {
		var product string
		var sales int
		var totalAmount, share float64

		if err := rows.Scan(&product, &sales, &totalAmount, &share); err != nil {
			continue
		}

		table.Append([]string{
			product,
			fmt.Sprintf("%d", sales),
			fmt.Sprintf("%.2f", totalAmount),
			fmt.Sprintf("%.2f%%", share),
		})
	}

	table.Render()
}

func displayCovidDeathPercentage(db *sql.DB) {
	rows, err := db.Query(reports.QueryCovidDeathPercentage)
	if err != nil {
		log.Printf("Error getting death percentage: %v", err)
		return
	}
	defer rows.Close()

	color.Yellow("\nCOVID Death Percentage by Location")
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Location", "Total Cases", "Total Deaths", "Death %"})

	for rows.Next() {
		var location string
		var totalCases, totalDeaths sql.NullInt64
		var deathPct sql.NullFloat64

		if err := rows.Scan(&location, &totalCases, &totalDeaths, &deathPct); err != nil {
			continue
		}

		table.Append([]string{
			location,
			fmt.Sprintf("%d", getInt64(totalCases)),
			fmt.Sprintf("%d", getInt64(totalDeaths)),
			fmtNullFloat(deathPct),
		})
	}

	table.Render()
}

func displayCovidInfectionRate(db *sql.DB) {
	rows, err := db.Query(reports.QueryCovidInfectionRate)
	if err != nil {
		log.Printf("Error getting infection rate: %v", err)
		return
	}
	defer rows.Close()

	color.Yellow("\nPercent of Population Infected")
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Location", "Population", "Total Cases", "Infected %"})

	for rows.Next() {
		var location string
		var population, totalCases sql.NullInt64
		var infectedPct sql.NullFloat64

		if err := rows.Scan(&location, &population, &totalCases, &infectedPct); err != nil {
			continue
		}

		table.Append([]string{
			location,
			fmt.Sprintf("%d", getInt64(population)),
			fmt.Sprintf("%d", getInt64(totalCases)),
			fmtNullFloat(infectedPct),
		})
	}

	table.Render()
}

func displayRollingVaccinations(db *sql.DB) {
	fmt.Print("Enter location (e.g. Germany): ")
	location := readString()

	rows, err := db.Query(reports.QueryCovidRollingVaccinations, location)
	if err != nil {
		log.Printf("Error getting rolling vaccinations: %v", err)
		return
	}
	defer rows.Close()

	color.Yellow("\nRolling Vaccinations: %s", location)
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Location", "Date", "New Vaccinations", "Rolling Total"})

	for rows.Next() {
		var loc string
		var date time.Time
		var newVax sql.NullInt64
		var rolling sql.NullFloat64

		if err := rows.Scan(&loc, &date, &newVax, &rolling); err != nil {
			continue
		}

		table.Append([]string{
			loc,
			date.Format("2006-01-02"),
			fmt.Sprintf("%d", getInt64(newVax)),
			fmtNullFloat(rolling),
		})
	}

	table.Render()
}

func displayPopVsVac(db *sql.DB) {
	rows, err := db.Query(reports.QueryCovidPopVsVac)
	if err != nil {
		log.Printf("Error getting population vs vaccination: %v", err)
		return
	}
	defer rows.Close()

	color.Yellow("\nPercent of Population Vaccinated")
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Location", "Population", "Vaccinated", "Vaccinated %"})

	for rows.Next() {
		var location string
		var population sql.NullInt64
		var vaccinated, vaccinatedPct sql.NullFloat64

		if err := rows.Scan(&location, &population, &vaccinated, &vaccinatedPct); err != nil {
			continue
		}

		table.Append([]string{
			location,
			fmt.Sprintf("%d", getInt64(population)),
			fmtNullFloat(vaccinated),
			fmtNullFloat(vaccinatedPct),
		})
	}

	table.Render()
}

func displayReviewScoreDistribution(db *sql.DB) {
	rows, err := db.Query(reports.QueryReviewScoreDistribution)
	if err != nil {
		log.Printf("Error getting review score distribution: %v", err)
		return
	}
	defer rows.Close()

	color.Yellow("\nReview Score Distribution")
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Score", "Reviews", "Share (%)"})

	for rows.Next() {
		var score, reviews int
		var share float64

		if err := rows.Scan(&score, &reviews, &share); err != nil {
			continue
		}

		table.Append([]string{
			fmt.Sprintf("%d", score),
			fmt.Sprintf("%d", reviews),
			fmt.Sprintf("%.2f%%", share),
		})
	}

	table.Render()
}

func displayCSAT(db *sql.DB) {
	var totalReviews, satisfied int
	var csat sql.NullFloat64

	err := db.QueryRow(reports.QueryCSAT).Scan(&totalReviews, &satisfied, &csat)
	if err != nil {
		log.Printf("Error getting CSAT: %v", err)
		return
	}

	color.Yellow("\nCustomer Satisfaction")
	fmt.Printf("Total reviews: %d\n", totalReviews)
	fmt.Printf("Satisfied (score >= 4): %d\n", satisfied)
	fmt.Printf("CSAT: %s%%\n", fmtNullFloat(csat))
}

func displayDeliveryDaysByScore(db *sql.DB) {
	rows, err := db.Query(reports.QueryDeliveryDaysByScore)
	if err != nil {
		log.Printf("Error getting delivery days by score: %v", err)
		return
	}
	defer rows.Close()

	color.Yellow("\nDelivery Days by Review Score")
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Score", "Reviews", "Avg Delivery Days", "Median Delivery Days"})

	for rows.Next() {
		var score, reviews int
		var avgDays, medianDays sql.NullFloat64

		if err := rows.Scan(&score, &reviews, &avgDays, &medianDays); err != nil {
			continue
		}

		table.Append([]string{
			fmt.Sprintf("%d", score),
			fmt.Sprintf("%d", reviews),
			fmtNullFloat(avgDays),
			fmtNullFloat(medianDays),
		})
	}

	table.Render()
}

func displayCSATByCategory(db *sql.DB) {
	rows, err := db.Query(reports.QueryCSATByCategory)
	if err != nil {
		log.Printf("Error getting CSAT by category: %v", err)
		return
	}
	defer rows.Close()

	color.Yellow("\nCSAT by Product Category")
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Category", "Reviews", "Avg Score", "CSAT (%)"})

	for rows.Next() {
		var category string
		var reviews int
		var avgScore, csat sql.NullFloat64

		if err := rows.Scan(&category, &reviews, &avgScore, &csat); err != nil {
			continue
		}

		table.Append([]string{
			category,
			fmt.Sprintf("%d", reviews),
			fmtNullFloat(avgScore),
			fmtNullFloat(csat),
		})
	}

	table.Render()
}

func displayQualityFlags(db *sql.DB) {
	rows, err := db.Query(`
		SELECT id, table_name, row_id, rule, detail, flagged_at
		FROM quality_flags
		ORDER BY flagged_at DESC, id DESC
		LIMIT 50
	`)
	if err != nil {
		log.Printf("Error getting quality flags: %v", err)
		return
	}
	defer rows.Close()

	color.Yellow("\nMost Recent Quality Flags")
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"ID", "Table", "Row", "Rule", "Detail", "Flagged At"})

	for rows.Next() {
		var flag models.QualityFlag

		if err := rows.Scan(&flag.ID, &flag.TableName, &flag.RowID,
			&flag.Rule, &flag.Detail, &flag.FlaggedAt); err != nil {
			log.Printf("Error scanning row: %v", err)
			continue
		}

		detail := "N/A"
		if flag.Detail.Valid {
			detail = flag.Detail.String
		}

		table.Append([]string{
			fmt.Sprintf("%d", flag.ID),
			flag.TableName,
			fmt.Sprintf("%d", flag.RowID),
			flag.Rule,
			detail,
			flag.FlaggedAt.Format("2006-01-02 15:04"),
		})
	}

	table.Render()
}

func handleBrowseSample(db *sql.DB) {
	fmt.Println("1. COVID Deaths")
	fmt.Println("2. COVID Vaccinations")
	fmt.Println("3. E-commerce Reviews")
	fmt.Print("Pick a dataset (1-3): ")

	switch readChoice() {
	case "1":
		browseCovidDeaths(db)
	case "2":
		browseCovidVaccinations(db)
	case "3":
		browseReviews(db)
	default:
		color.Red("Invalid choice.")
	}
}

func browseCovidDeaths(db *sql.DB) {
	rows, err := db.Query(`
		SELECT id, iso_code, continent, location, report_date,
		       population, total_cases, new_cases, total_deaths, new_deaths, icu_patients
		FROM covid_deaths
		ORDER BY report_date DESC
		LIMIT 10
	`)
	if err != nil {
		log.Printf("Error reading covid_deaths: %v", err)
		return
	}
	defer rows.Close()

	color.Yellow("\ncovid_deaths: latest rows")
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Location", "Date", "Population", "Total Cases", "New Cases", "Total Deaths"})

	for rows.Next() {
		var d models.CovidDeaths

		if err := rows.Scan(&d.ID, &d.ISOCode, &d.Continent, &d.Location, &d.ReportDate,
			&d.Population, &d.TotalCases, &d.NewCases, &d.TotalDeaths, &d.NewDeaths, &d.ICUPatients); err != nil {
			continue
		}

		table.Append([]string{
			d.Location,
			d.ReportDate.Format("2006-01-02"),
			fmt.Sprintf("%d", getInt64(d.Population)),
			fmt.Sprintf("%d", getInt64(d.TotalCases)),
			fmt.Sprintf("%d", getInt64(d.NewCases)),
			fmt.Sprintf("%d", getInt64(d.TotalDeaths)),
		})
	}

	table.Render()
}

func browseCovidVaccinations(db *sql.DB) {
	rows, err := db.Query(`
		SELECT id, iso_code, continent, location, report_date,
		       new_vaccinations, total_vaccinations
		FROM covid_vaccinations
		ORDER BY report_date DESC
		LIMIT 10
	`)
	if err != nil {
		log.Printf("Error reading covid_vaccinations: %v", err)
		return
	}
	defer rows.Close()

	color.Yellow("\ncovid_vaccinations: latest rows")
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Location", "Date", "New Vaccinations", "Total Vaccinations"})

	for rows.Next() {
		var v models.CovidVaccinations

		if err := rows.Scan(&v.ID, &v.ISOCode, &v.Continent, &v.Location, &v.ReportDate,
			&v.NewVaccinations, &v.TotalVaccinations); err != nil {
			continue
		}

		table.Append([]string{
			v.Location,
			v.ReportDate.Format("2006-01-02"),
			fmt.Sprintf("%d", getInt64(v.NewVaccinations)),
			fmt.Sprintf("%d", getInt64(v.TotalVaccinations)),
		})
	}

	table.Render()
}

func browseReviews(db *sql.DB) {
	rows, err := db.Query(`
		SELECT review_id, order_id, product_category, review_score,
		       price, freight_value, purchase_date, delivered_date, delivery_days
		FROM ecommerce_reviews
		ORDER BY purchase_date DESC NULLS LAST
		LIMIT 10
	`)
	if err != nil {
		log.Printf("Error reading ecommerce_reviews: %v", err)
		return
	}
	defer rows.Close()

	color.Yellow("\necommerce_reviews: latest rows")
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Review ID", "Category", "Score", "Price", "Delivery Days"})

	for rows.Next() {
		var r models.Review

		if err := rows.Scan(&r.ReviewID, &r.OrderID, &r.ProductCategory, &r.ReviewScore,
			&r.Price, &r.FreightValue, &r.PurchaseDate, &r.DeliveredDate, &r.DeliveryDays); err != nil {
			continue
		}

		category := "N/A"
		if r.ProductCategory.Valid {
			category = r.ProductCategory.String
		}

		table.Append([]string{
			r.ReviewID,
			category,
			fmt.Sprintf("%d", getInt64(r.ReviewScore)),
			fmtNullFloat(r.Price),
			fmt.Sprintf("%d", getInt64(r.DeliveryDays)),
		})
	}

	table.Render()
}

func handleNaturalLanguageQuery(ctx context.Context, db *sql.DB) {
	engine, err := nlquery.NewNLQueryEngine(db)
	if err != nil {
		color.Red("Error starting query engine: %v", err)
		return
	}
	defer engine.Close()

	fmt.Print("Ask a question about the data: ")
	question := readString()
	if question == "" {
		return
	}

	if err := engine.ProcessQuery(ctx, question); err != nil {
		color.Red("%v", err)
	}
}

func readChoice() string {
	var input string
	fmt.Scanln(&input)
	return strings.TrimSpace(input)
}

func readString() string {
	scanner := bufio.NewScanner(os.Stdin)
	scanner.Scan()
	return strings.TrimSpace(scanner.Text())
}

// Helper functions
func getInt64(i sql.NullInt64) int64 {
	if i.Valid {
		return i.Int64
	}
	return 0
}

func fmtNullFloat(f sql.NullFloat64) string {
	if f.Valid {
		return fmt.Sprintf("%.2f", f.Float64)
	}
	return "N/A"
}
