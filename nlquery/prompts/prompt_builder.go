package prompts

import (
	"fmt"
)

// PromptBuilder handles the construction of prompts for the LLM
type PromptBuilder struct {
	baseContext string
	examples    string
}

// NewPromptBuilder creates a new PromptBuilder with schema context
func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{
		baseContext: SchemaContext,
		examples:    QueryExamples,
	}
}

// BuildQueryPrompt creates a prompt for SQL query generation
func (pb *PromptBuilder) BuildQueryPrompt(query string) string {
	return fmt.Sprintf(`You are a PostgreSQL query generator for an analytics database. Follow these rules strictly:

%s

Query Rules:
1. Generate exactly one SELECT statement, no DDL or DML
2. For chocolate sales analytics, read from chocolate_sales_clean, never chocolate_sales
3. Exclude aggregate rows from covid tables with: continent IS NOT NULL
4. Use LOWER() for string comparisons against user-supplied names
5. Guard divisions with NULLIF(denominator, 0)
6. Add LIMIT 50 unless the question asks for a single value

%s

Now generate a SQL query for this question: %s`, pb.baseContext, pb.examples, query)
}

// BuildValidationPrompt creates a prompt for validating generated SQL
func (pb *PromptBuilder) BuildValidationPrompt(query, sql string) string {
	return fmt.Sprintf(`You are a SQL query validator. Your task is to validate if the generated SQL query correctly answers the user's question.
Rules:
1. The query must be a single SELECT statement (a WITH clause is fine)
2. Chocolate sales analytics must read from chocolate_sales_clean
3. Covid queries must filter continent IS NOT NULL unless the question asks about aggregates
4. For counting queries, verify proper use of COUNT and GROUP BY
5. Verify WHERE clause conditions match the question

User Question: %s
Generated SQL: %s

Respond with:
- "VALID" if the query is correct
- "INVALID: <reason>" if the query is incorrect, explaining why
`, query, sql)
}

// BuildErrorPrompt creates a prompt for generating user-friendly error messages
func (pb *PromptBuilder) BuildErrorPrompt(query string, err error) string {
	return fmt.Sprintf(`Generate a user-friendly error message for this failed query:

Question: "%s"

Error: %v

Requirements:
1. Explain the issue in simple terms
2. Suggest how to rephrase the question
3. Keep the message concise and helpful

Error Message:`, query, err)
}
