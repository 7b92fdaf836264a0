package log

// Common attribute keys for structured logging.
const (
	FieldComponent  = "component"
	FieldError      = "error"
	FieldPath       = "path"
	FieldOperation  = "operation"
	FieldDate       = "date"
	FieldAmount     = "amount"
	FieldCategory   = "category"
	FieldCount      = "count"
	FieldRangeStart = "range_start"
	FieldRangeEnd   = "range_end"
)

// Component names.
const (
	ComponentApp    = "app"
	ComponentStore  = "store"
	ComponentLedger = "ledger"
	ComponentReport = "report"
)

// Operation names.
const (
	OpInitialize = "initialize"
	OpAppend     = "append"
	OpLoad       = "load"
	OpQuery      = "query"
	OpExport     = "export"
)
