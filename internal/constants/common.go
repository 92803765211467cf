package constants

// Common string constants used throughout the codebase
const (
	// Log levels
	ErrorLevel = "error"

	// Environments
	ProdEnvironment = "prod"

	// Program name used on documents and in email subjects
	ProgramName = "High School Program"
)
