package constvars

type ContextKey string

const (
	ResourceUsers  = "users"
	ResourceAuth   = "auth"
	ResourceMenu   = "menu"
	ResourceOrders = "orders"
	ResourceSlots  = "slots"
	ResourceAdmin  = "admin"
)

const (
	RoleStudent = "student"
	RoleAdmin   = "admin"
)

const (
	CONTEXT_REQUEST_ID_KEY   ContextKey = "request_id"
	CONTEXT_SESSION_DATA_KEY ContextKey = "session_data"
)

const (
	REQUEST_ID_PREFIX = "CHAI_SVC_"
)

const (
	// DateInputLayout is the calendar-date format exchanged with the admin
	// date picker. Instants crossing a process boundary are RFC 3339 instead.
	DateInputLayout = "2006-01-02"

	// SlotTimeLayout carries slot instants over the wire.
	SlotTimeLayout = "2006-01-02T15:04:05Z07:00"
)
