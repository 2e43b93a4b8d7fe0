package common

// FieldError is one violated constraint reported with a 422 response
type FieldError struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// ErrorResponse represents a standard error response.
// Detail repeats Message for browser clients that read `detail`.
type ErrorResponse struct {
	Code    interface{}  `json:"code"`
	Message string       `json:"message"`
	Detail  string       `json:"detail"`
	Fields  []FieldError `json:"fields,omitempty"`
	Info    string       `json:"info,omitempty"`
}

// MessageResponse carries a single human readable message
type MessageResponse struct {
	Message string `json:"message"`
}

// HealthResponse reports process and collaborator state
type HealthResponse struct {
	Status      string `json:"status"`
	Environment string `json:"environment"`
	Database    string `json:"database"`
	AI          string `json:"ai"`
}
