package log

// Common field names for structured logging
const (
	FieldRequestID  = "request_id"
	FieldClientIP   = "client_ip"
	FieldMethod     = "method"
	FieldPath       = "path"
	FieldStatusCode = "status_code"
	FieldDuration   = "duration_ms"
	FieldUserAgent  = "user_agent"
	FieldError      = "error"

	FieldCategory    = "category"
	FieldKind        = "kind"
	FieldAmountCents = "amount_cents"
	FieldLimitCents  = "limit_cents"
	FieldRowRef      = "row_ref"
)
