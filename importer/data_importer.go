package importer

import (
	"context"
	"database/sql"
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

// Constants for configuration
const (
	DefaultBatchSize   = 1000
	DefaultWorkerCount = 4
	MaxRetries         = 3
)

// ColumnMapping defines how source columns map to destination columns
type ColumnMapping struct {
	SourceColumn      string
	DestinationColumn string
	TransformFunc     func(string) (interface{}, error)
}

// ImportConfig holds the configuration for a dataset import
type ImportConfig struct {
	Table           string
	SourceFile      string
	RequiredColumns []string
	BatchSize       int
	ValidateOnly    bool
	ColumnMappings  []ColumnMapping
	WorkerCount     int // Number of parallel workers to use
	ConflictKey     []string
}

// DataImporter handles the import process for one dataset
type DataImporter struct {
	db            *sql.DB
	config        ImportConfig
	failedIndices map[int]error // Track failed record indices
	failedRecords [][]string    // Raw rows behind failedIndices, same order
	mu            sync.Mutex    // Protect concurrent access to failedIndices
	columnMapping map[string]string
}

func NewDataImporter(db *sql.DB, config ImportConfig) *DataImporter {
	return &DataImporter{
		db:            db,
		config:        config,
		failedIndices: make(map[int]error),
	}
}

// ColumnMatch represents a potential column match with confidence score
type ColumnMatch struct {
	SourceColumn      string
	DestinationColumn string
	Confidence        float64
}

// findBestColumnMatch uses fuzzy matching to find the best column match
func (d *DataImporter) findBestColumnMatch(sourceColumn string, candidates []string) []ColumnMatch {
	matches := make([]ColumnMatch, 0)

	normalizedSource := normalizeColumnName(sourceColumn)

	for _, destColumn := range candidates {
		normalizedDest := normalizeColumnName(destColumn)

		distance := levenshteinDistance(normalizedSource, normalizedDest)
		maxLen := float64(max(len(normalizedSource), len(normalizedDest)))
		confidence := 1.0 - float64(distance)/maxLen

		if confidence > 0.6 { // Only consider matches with >60% confidence
			matches = append(matches, ColumnMatch{
				SourceColumn:      sourceColumn,
				DestinationColumn: destColumn,
				Confidence:        confidence,
			})
		}
	}

	sort.Slice(matches, func(i, j int) bool {
		return matches[i].Confidence > matches[j].Confidence
	})

	return matches
}

func normalizeColumnName(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, "_", "")
	s = strings.ReplaceAll(s, " ", "")
	return s
}

// validateHeaders checks if all required columns are present with user interaction
func (d *DataImporter) validateHeaders(headers []string) error {
	missingColumns := make([]string, 0)
	d.columnMapping = make(map[string]string)

	for _, required := range d.config.RequiredColumns {
		found := false
		exactMatch := getColumnIndex(headers, required) != -1

		if exactMatch {
			d.columnMapping[required] = required
			found = true
			continue
		}

		// Try fuzzy matching
		matches := d.findBestColumnMatch(required, headers)
		if len(matches) > 0 {
			// Ask user for confirmation if multiple matches found
			if len(matches) > 1 {
				fmt.Printf("\nMultiple potential matches found for column '%s':\n", required)
				for i, match := range matches {
					fmt.Printf("%d. %s (confidence: %.2f%%)\n", i+1, match.SourceColumn, match.Confidence*100)
				}
				fmt.Print("Enter number to select match (0 to skip): ")
				var choice int
				fmt.Scanln(&choice)

				if choice > 0 && choice <= len(matches) {
					d.columnMapping[required] = matches[choice-1].SourceColumn
					found = true
				}
			} else if matches[0].Confidence > 0.8 { // Auto-accept high confidence matches
				d.columnMapping[required] = matches[0].SourceColumn
				found = true
				fmt.Printf("Automatically mapped '%s' to '%s' (%.2f%% confidence)\n",
					required, matches[0].SourceColumn, matches[0].Confidence*100)
			} else {
				// Ask for confirmation for lower confidence matches
				fmt.Printf("\nPotential match found for column '%s':\n", required)
				fmt.Printf("'%s' (confidence: %.2f%%)\n", matches[0].SourceColumn, matches[0].Confidence*100)
				fmt.Print("Accept this match? (y/n): ")
				var response string
				fmt.Scanln(&response)
				if strings.ToLower(response) == "y" {
					d.columnMapping[required] = matches[0].SourceColumn
					found = true
				}
			}
		}

		if !found {
			missingColumns = append(missingColumns, required)
		}
	}

	if len(missingColumns) > 0 {
		return fmt.Errorf("missing required columns: %v", missingColumns)
	}

	return nil
}

// ImportResult represents the result of importing a chunk of records
type ImportResult struct {
	SuccessCount int
	FailedCount  int
	ChunkIndex   int
	Errors       []error
}

func ImportData(ctx context.Context, db *sql.DB, config ImportConfig, reader *csv.Reader) error {
	imp := NewDataImporter(db, config)

	if len(config.ColumnMappings) == 0 {
		return fmt.Errorf("no column mappings configured for table %s", config.Table)
	}

	return imp.ImportData(ctx, reader)
}

func (d *DataImporter) ImportData(ctx context.Context, reader *csv.Reader) error {
	// Check if context is cancelled
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	// Read headers
	headers, err := reader.Read()
	if err != nil {
		return fmt.Errorf("error reading headers: %w", err)
	}

	// Validate headers
	if err := d.validateHeaders(headers); err != nil {
		return fmt.Errorf("header validation failed: %w", err)
	}

	// Start transaction
	tx, err := d.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}
	defer tx.Rollback()

	// Prepare insert statement
	stmt, err := d.prepareInsertStatement(tx)
	if err != nil {
		return fmt.Errorf("error preparing statement: %w", err)
	}
	defer stmt.Close()

	// Process records in batches
	batchSize := d.config.BatchSize
	if batchSize == 0 {
		batchSize = DefaultBatchSize
	}

	records := make([][]string, 0, batchSize)
	recordIndex := 0
	var totalSuccess, totalFailed int
	var allErrors []error

	for {
		// Check context before reading next record
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Printf("Error reading record: %v", err)
			continue
		}

		records = append(records, record)
		recordIndex++

		if len(records) >= batchSize {
			result := d.processBatch(ctx, records, headers, recordIndex-len(records), stmt)
			totalSuccess += result.SuccessCount
			totalFailed += result.FailedCount
			allErrors = append(allErrors, result.Errors...)
			records = records[:0]
		}
	}

	// Process remaining records
	if len(records) > 0 {
		result := d.processBatch(ctx, records, headers, recordIndex-len(records), stmt)
		totalSuccess += result.SuccessCount
		totalFailed += result.FailedCount
		allErrors = append(allErrors, result.Errors...)
	}

	// Commit transaction
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("error committing transaction: %w", err)
	}

	// Print summary
	d.printImportSummary(totalSuccess, totalFailed, allErrors)

	if totalFailed > 0 {
		if err := d.SaveFailedRecords(d.failedRecords, headers, d.failedIndices); err != nil {
			log.Printf("Error saving failed records: %v", err)
		}
		return fmt.Errorf("import completed with %d failures", totalFailed)
	}

	return nil
}

func (d *DataImporter) processBatch(ctx context.Context, records [][]string, headers []string, startIndex int, stmt *sql.Stmt) ImportResult {
	result := ImportResult{
		ChunkIndex: startIndex,
	}

	for i, record := range records {
		select {
		case <-ctx.Done():
			return result
		default:
			if err := d.processRecord(ctx, record, headers, stmt); err != nil {
				result.FailedCount++
				result.Errors = append(result.Errors, fmt.Errorf("row %d: %v", startIndex+i+1, err))
				d.mu.Lock()
				d.failedIndices[len(d.failedRecords)] = err
				d.failedRecords = append(d.failedRecords, record)
				d.mu.Unlock()
			} else {
				result.SuccessCount++
			}
		}
	}

	return result
}

func (d *DataImporter) processRecord(ctx context.Context, record []string, headers []string, stmt *sql.Stmt) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		values, err := d.transformRecord(headers, record)
		if err != nil {
			return err
		}

		if d.config.ValidateOnly {
			return nil
		}

		for i := 0; i < MaxRetries; i++ {
			if err := d.executeInsert(stmt, values); err != nil {
				if i == MaxRetries-1 {
					return err
				}
				time.Sleep(time.Duration(i+1) * 100 * time.Millisecond)
				continue
			}
			break
		}

		return nil
	}
}

func (d *DataImporter) executeInsert(stmt *sql.Stmt, values []interface{}) error {
	_, err := stmt.Exec(values...)
	if err != nil {
		return &ImportError{
			Code:    "INSERT_FAILED",
			Message: err.Error(),
			Context: map[string]string{
				"values": fmt.Sprintf("%v", values),
			},
		}
	}
	return nil
}

type ChunkResult struct {
	FailedImports []FailedImport
	ProcessedRows int
	ChunkIndex    int
}

func (d *DataImporter) processChunk(records [][]string, headers []string, startIndex int) ChunkResult {
	result := ChunkResult{
		ChunkIndex: startIndex,
	}

	for i, record := range records {
		result.ProcessedRows++

		// Try to transform the record
		_, err := d.transformRecord(headers, record)
		if err != nil {
			result.FailedImports = append(result.FailedImports, FailedImport{
				RowNumber:  startIndex + i + 1,
				SourceFile: d.config.SourceFile,
				FailReason: err.Error(),
				Timestamp:  time.Now(),
				RowData:    record,
			})
		}
	}

	return result
}

// AnalyzeFailedImports re-runs the transform pass over a CSV without
// inserting anything and reports which rows would be rejected and why.
func (d *DataImporter) AnalyzeFailedImports(filename string) ([]FailedImport, error) {
	if len(d.config.ColumnMappings) == 0 {
		return nil, fmt.Errorf("no column mappings configured for table %s", d.config.Table)
	}

	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("error opening file: %v", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	headers, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("error reading headers: %v", err)
	}

	// Read all records
	allRecords, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("error reading records: %v", err)
	}

	// Use configured worker count or default to 4
	workerCount := d.config.WorkerCount
	if workerCount <= 0 {
		workerCount = DefaultWorkerCount
	}

	recordsPerWorker := (len(allRecords) + workerCount - 1) / workerCount

	// Create channels for results and errors
	results := make(chan ChunkResult, workerCount)
	var wg sync.WaitGroup

	// Process chunks in parallel
	for i := 0; i < workerCount; i++ {
		start := i * recordsPerWorker
		end := start + recordsPerWorker
		if end > len(allRecords) {
			end = len(allRecords)
		}

		if start >= len(allRecords) {
			break
		}

		chunk := allRecords[start:end]
		wg.Add(1)

		go func(chunk [][]string, startIndex int) {
			defer wg.Done()
			result := d.processChunk(chunk, headers, startIndex)
			results <- result
		}(chunk, start)
	}

	// Start a goroutine to close results channel after all workers are done
	go func() {
		wg.Wait()
		close(results)
	}()

	// Collect results
	var allFailedImports []FailedImport
	totalProcessed := 0

	for result := range results {
		allFailedImports = append(allFailedImports, result.FailedImports...)
		totalProcessed += result.ProcessedRows
	}

	// Print analysis
	stats := NewImportStats()
	stats.TotalProcessed = totalProcessed
	stats.ValidRecords = totalProcessed - len(allFailedImports)
	for _, f := range allFailedImports {
		stats.AddError(f.FailReason)
	}
	stats.PrintSummary()

	if len(allFailedImports) > 0 {
		// Show sample of failed records
		log.Printf("\nSample Failed Records (up to 10):")
		for i := 0; i < min(10, len(allFailedImports)); i++ {
			f := allFailedImports[i]
			log.Printf("Row %d:", f.RowNumber)
			log.Printf("  Data: %s", strings.Join(f.RowData, ", "))
			log.Printf("  Reason: %s\n", f.FailReason)
		}
	} else {
		log.Printf("\nNo failed imports found in the file.")
	}

	return allFailedImports, nil
}

type FailedImport struct {
	RowNumber  int
	SourceFile string
	FailReason string
	ErrorCode  string
	Timestamp  time.Time
	RowData    []string
}

type ImportError struct {
	Code      string
	Message   string
	Timestamp time.Time
	Context   map[string]string
}

func (e *ImportError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (d *DataImporter) SaveFailedRecords(records [][]string, headers []string, failedIndices map[int]error) error {
	if len(failedIndices) == 0 {
		return nil
	}

	// Create failed records directory if it doesn't exist
	failedDir := "failed_imports"
	if err := os.MkdirAll(failedDir, 0755); err != nil {
		return fmt.Errorf("error creating failed_imports directory: %v", err)
	}

	// Create failed records file with timestamp
	timestamp := time.Now().Format("20060102_150405")
	failedFile := filepath.Join(failedDir, fmt.Sprintf("failed_records_%s.csv", timestamp))

	file, err := os.Create(failedFile)
	if err != nil {
		return fmt.Errorf("error creating failed records file: %v", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	// Write headers
	if err := writer.Write(append(headers, "Error")); err != nil {
		return fmt.Errorf("error writing headers: %v", err)
	}

	// Write failed records with error messages
	for idx, failErr := range failedIndices {
		if idx < len(records) {
			record := append(records[idx], failErr.Error())
			if err := writer.Write(record); err != nil {
				return fmt.Errorf("error writing record: %v", err)
			}
		}
	}

	log.Printf("Failed records saved to: %s", failedFile)
	return nil
}

type ImportStats struct {
	TotalProcessed int
	ValidRecords   int
	SkippedRecords int
	ErrorsByType   map[string]int
}

func NewImportStats() *ImportStats {
	return &ImportStats{
		ErrorsByType: make(map[string]int),
	}
}

func (s *ImportStats) AddError(errType string) {
	s.ErrorsByType[errType]++
	s.SkippedRecords++
}

func (s *ImportStats) PrintSummary() {
	log.Printf("\nImport Statistics:")
	log.Printf("Total Records Processed: %d", s.TotalProcessed)
	log.Printf("Successfully Imported: %d", s.ValidRecords)
	log.Printf("Skipped Records: %d", s.SkippedRecords)

	if len(s.ErrorsByType) > 0 {
		log.Printf("\nErrors by Type:")
		for errType, count := range s.ErrorsByType {
			log.Printf("- %s: %d occurrences", errType, count)
		}
	}
}

func levenshteinDistance(s1, s2 string) int {
	if len(s1) == 0 {
		return len(s2)
	}
	if len(s2) == 0 {
		return len(s1)
	}

	// Create matrix
	matrix := make([][]int, len(s1)+1)
	for i := range matrix {
		matrix[i] = make([]int, len(s2)+1)
	}

	// Initialize first row and column
	for i := 0; i <= len(s1); i++ {
		matrix[i][0] = i
	}
	for j := 0; j <= len(s2); j++ {
		matrix[0][j] = j
	}

	// Fill in the rest of the matrix
	for i := 1; i <= len(s1); i++ {
		for j := 1; j <= len(s2); j++ {
			if s1[i-1] == s2[j-1] {
				matrix[i][j] = matrix[i-1][j-1]
			} else {
				matrix[i][j] = min(
					matrix[i-1][j]+1,   // deletion
					matrix[i][j-1]+1,   // insertion
					matrix[i-1][j-1]+1, // substitution
				)
			}
		}
	}

	return matrix[len(s1)][len(s2)]
}

func min(numbers ...int) int {
	if len(numbers) == 0 {
		return 0
	}
	result := numbers[0]
	for _, num := range numbers[1:] {
		if num < result {
			result = num
		}
	}
	return result
}

func (d *DataImporter) destinationColumns() []string {
	columns := make([]string, 0, len(d.config.ColumnMappings))
	for _, mapping := range d.config.ColumnMappings {
		columns = append(columns, mapping.DestinationColumn)
	}
	return columns
}

func (d *DataImporter) prepareInsertStatement(tx *sql.Tx) (*sql.Stmt, error) {
	columns := d.destinationColumns()

	placeholders := make([]string, len(columns))
	for i := range columns {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}

	query := fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s)",
		d.config.Table,
		strings.Join(columns, ", "),
		strings.Join(placeholders, ", "))

	if len(d.config.ConflictKey) > 0 {
		query += fmt.Sprintf(" ON CONFLICT (%s) DO UPDATE SET %s",
			strings.Join(d.config.ConflictKey, ", "),
			buildUpdateClause(columns, d.config.ConflictKey))
	}

	return tx.Prepare(query)
}

func (d *DataImporter) transformRecord(headers []string, record []string) ([]interface{}, error) {
	values := make([]interface{}, 0, len(d.config.ColumnMappings))

	// Add values in the same order as the columns in prepareInsertStatement
	for _, mapping := range d.config.ColumnMappings {
		source := mapping.SourceColumn
		if mapped, ok := d.columnMapping[source]; ok {
			source = mapped
		}

		idx := getColumnIndex(headers, source)
		if idx == -1 || idx >= len(record) {
			values = append(values, nil)
			continue
		}

		value, err := mapping.TransformFunc(record[idx])
		if err != nil {
			return nil, fmt.Errorf("error transforming %s: %v", mapping.SourceColumn, err)
		}
		values = append(values, value)
	}

	return values, nil
}

func (d *DataImporter) printImportSummary(successCount, failedCount int, errors []error) {
	log.Printf("\nImport Summary:")
	log.Printf("Total Records Processed: %d", successCount+failedCount)
	log.Printf("Successfully Imported: %d (%.2f%%)",
		successCount,
		float64(successCount)/float64(successCount+failedCount)*100)
	log.Printf("Failed Records: %d (%.2f%%)",
		failedCount,
		float64(failedCount)/float64(successCount+failedCount)*100)

	if len(errors) > 0 {
		log.Printf("\nSample of Import Errors (up to 10):")
		for i := 0; i < min(10, len(errors)); i++ {
			log.Printf("- %v", errors[i])
		}
	}
}

func buildUpdateClause(columns, conflictKey []string) string {
	keySet := make(map[string]bool, len(conflictKey))
	for _, col := range conflictKey {
		keySet[col] = true
	}

	updates := make([]string, 0, len(columns))
	for _, col := range columns {
		if !keySet[col] {
			updates = append(updates, fmt.Sprintf("%s = EXCLUDED.%s", col, col))
		}
	}
	return strings.Join(updates, ", ")
}

// getColumnIndex returns the index of a column in headers
func getColumnIndex(headers []string, columnName string) int {
	for i, header := range headers {
		// Normalize both strings for comparison
		normalizedHeader := strings.ToLower(strings.TrimSpace(header))
		normalizedColumn := strings.ToLower(strings.TrimSpace(columnName))

		// Try exact match first
		if normalizedHeader == normalizedColumn {
			return i
		}

		// Try with common variations
		headerNoSpace := strings.ReplaceAll(normalizedHeader, " ", "")
		columnNoSpace := strings.ReplaceAll(normalizedColumn, " ", "")
		if headerNoSpace == columnNoSpace {
			return i
		}

		headerNoUnderscore := strings.ReplaceAll(normalizedHeader, "_", "")
		columnNoUnderscore := strings.ReplaceAll(normalizedColumn, "_", "")
		if headerNoUnderscore == columnNoUnderscore {
			return i
		}
	}
	return -1
}

// max returns the maximum of two integers
func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
