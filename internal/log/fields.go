package log

// Field names shared by every log line.
const (
	FieldComponent  = "component"
	FieldRequestID  = "request_id"
	FieldClientIP   = "client_ip"
	FieldMethod     = "method"
	FieldPath       = "path"
	FieldStatusCode = "status_code"
	FieldDuration   = "duration_ms"
	FieldError      = "error"
	FieldOperation  = "operation"
	FieldMode       = "mode"
	FieldCount      = "count"
	FieldInvalid    = "invalid"
	FieldWindows    = "windows"
)

// Component names.
const (
	ComponentApp     = "app"
	ComponentHTTP    = "http"
	ComponentSavings = "savings"
	ComponentReturns = "returns"
	ComponentConfig  = "config"
	ComponentCLI     = "cli"
)

// Operation names.
const (
	OpParse    = "parse"
	OpValidate = "validate"
	OpFilter   = "filter"
	OpReturns  = "returns"
	OpStartup  = "startup"
	OpShutdown = "shutdown"
)
