package constvars

type ContextKey string

const (
	ResourceSchedules  = "schedules"
	ResourceWorkRules  = "WorkRule"
	ResourceExceptions = "ScheduleException"
	ResourceBlocks     = "ScheduleBlock"
	ResourceEmployees  = "Employee"
)

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_SESSION_DATA_KEY         ContextKey = "session_data"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_API_KEY_AUTH_KEY         ContextKey = "api_key_auth"
)

const (
	REQUEST_ID_PREFIX = "SLNFLW_SVC_"
)

const (
	MongoCollectionScheduleAudits = "schedule_audits"
)

const (
	RoleOwner        = "owner"
	RoleAdmin        = "admin"
	RoleMaster       = "master"
	RoleReceptionist = "receptionist"
	RoleSuperadmin   = "superadmin"
)
