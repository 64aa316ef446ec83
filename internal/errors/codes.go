package errors

// ErrorCode represents a standardized error code used by the assessment binaries
// to classify which stage of a run failed.
type ErrorCode string

// Configuration error codes (CONFIG_*)
const (
	ConfigMissingVariable ErrorCode = "CONFIG_001"
	ConfigInvalidValue    ErrorCode = "CONFIG_002"
)

// Ingest error codes (INGEST_*)
const (
	IngestFileNotFound  ErrorCode = "INGEST_001"
	IngestMalformedRow  ErrorCode = "INGEST_002"
	IngestInvalidHeader ErrorCode = "INGEST_003"
	IngestEmptyFile     ErrorCode = "INGEST_004"
)

// Database error codes (DATABASE_*)
const (
	DatabaseConnectionFailed ErrorCode = "DATABASE_001"
	DatabaseMigrationFailed  ErrorCode = "DATABASE_002"
	DatabaseInsertFailed     ErrorCode = "DATABASE_003"
	DatabaseQueryFailed      ErrorCode = "DATABASE_004"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError   ErrorCode = "SYSTEM_001"
	SystemUnexpectedError ErrorCode = "SYSTEM_002"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	ConfigMissingVariable: "Required configuration variable is missing",
	ConfigInvalidValue:    "Configuration variable has an invalid value",

	IngestFileNotFound:  "Input CSV file not found",
	IngestMalformedRow:  "CSV row could not be parsed",
	IngestInvalidHeader: "CSV header does not match the expected columns",
	IngestEmptyFile:     "CSV file contains no data rows",

	DatabaseConnectionFailed: "Database connection error",
	DatabaseMigrationFailed:  "Database migration failed",
	DatabaseInsertFailed:     "Failed to insert rows into the database",
	DatabaseQueryFailed:      "Analytical query failed",

	SystemInternalError:   "An unexpected error occurred",
	SystemUnexpectedError: "An unexpected error occurred",
}

// GetErrorMessage returns the default message for a given error code.
// If the error code is not found, it returns a generic error message.
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
