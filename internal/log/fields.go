package log

// Common field names for structured logging
const (
	FieldComponent   = "component"
	FieldRequestID   = "request_id"
	FieldClientIP    = "client_ip"
	FieldMethod      = "method"
	FieldPath        = "path"
	FieldStatusCode  = "status_code"
	FieldDuration    = "duration_ms"
	FieldUserAgent   = "user_agent"
	FieldError       = "error"
	FieldOperation   = "operation"
	FieldBackend     = "backend"
	FieldCompanyID   = "company_id"
	FieldBankAccount = "bank_account"
	FieldFromDate    = "from_date"
	FieldToDate      = "to_date"
	FieldEntryCount  = "entry_count"
)

// Components defines standard component names
const (
	ComponentApp       = "app"
	ComponentHTTP      = "http"
	ComponentStorage   = "storage"
	ComponentBackend   = "backend"
	ComponentReport    = "report"
	ComponentRateLimit = "rate_limit"
)

// Operations defines standard operation names
const (
	OpCashFlow       = "cash_flow"
	OpReconciliation = "bank_reconciliation"
	OpOpeningBalance = "opening_balance"
	OpLedgerBalance  = "ledger_balance"
	OpPing           = "ping"
	OpStartup        = "startup"
	OpShutdown       = "shutdown"
)
