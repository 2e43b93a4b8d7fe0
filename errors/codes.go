package errors

// ErrorCode identifies an error class in API responses
type ErrorCode int

const (
	ErrorCode_HTTP_OK ErrorCode = 0

	// General
	ErrorCode_INTERNAL          ErrorCode = 1000
	ErrorCode_INVALID_ARGUMENT  ErrorCode = 1001
	ErrorCode_NOT_FOUND         ErrorCode = 1002
	ErrorCode_INVALID_PAYLOAD   ErrorCode = 1003
	ErrorCode_VALIDATION_FAILED ErrorCode = 1004

	// Database
	ErrorCode_DB_UNAVAILABLE  ErrorCode = 2000
	ErrorCode_DB_QUERY_FAILED ErrorCode = 2001

	// AI
	ErrorCode_AI_SERVICE_UNAVAILABLE ErrorCode = 3000
	ErrorCode_AI_EXTRACTION_FAILED   ErrorCode = 3001
)

var errorCodeNames = map[ErrorCode]string{
	ErrorCode_HTTP_OK:                "HTTP_OK",
	ErrorCode_INTERNAL:               "INTERNAL",
	ErrorCode_INVALID_ARGUMENT:       "INVALID_ARGUMENT",
	ErrorCode_NOT_FOUND:              "NOT_FOUND",
	ErrorCode_INVALID_PAYLOAD:        "INVALID_PAYLOAD",
	ErrorCode_VALIDATION_FAILED:      "VALIDATION_FAILED",
	ErrorCode_DB_UNAVAILABLE:         "DB_UNAVAILABLE",
	ErrorCode_DB_QUERY_FAILED:        "DB_QUERY_FAILED",
	ErrorCode_AI_SERVICE_UNAVAILABLE: "AI_SERVICE_UNAVAILABLE",
	ErrorCode_AI_EXTRACTION_FAILED:   "AI_EXTRACTION_FAILED",
}

// String returns the wire name of the code
func (c ErrorCode) String() string {
	if name, ok := errorCodeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}

// MarshalText renders the code by name in JSON bodies
func (c ErrorCode) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}
