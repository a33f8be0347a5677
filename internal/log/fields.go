package log

// Common field names for structured logging
const (
	FieldComponent = "component"
	FieldError     = "error"
	FieldYear      = "year"
	FieldMonth     = "month"
	FieldSheet     = "sheet"
	FieldRows      = "rows"
	FieldBackend   = "backend"
	FieldFlagged   = "flagged"
)

// Components defines standard component names
const (
	ComponentApp     = "app"
	ComponentLedger  = "ledger"
	ComponentReport  = "report"
	ComponentSheets  = "sheets"
	ComponentStorage = "storage"
	ComponentMail    = "mail"
	ComponentAMQP    = "amqp"
	ComponentBackend = "backend"
)
