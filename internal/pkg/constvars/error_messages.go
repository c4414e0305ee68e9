package constvars

// Client-facing messages. These are the only strings an API consumer sees on
// error responses; the paired ErrDev* messages go to logs.
const (
	ErrClientCannotProcessRequest          = "We cannot process your request, please check and try again"
	ErrClientSomethingWrongWithApplication = "Something went wrong with the application, please try again later"
	ErrClientNotAuthorized                 = "You are not authorized to perform this action"
	ErrClientNotLoggedIn                   = "You are not logged in, please log in and try again"
	ErrClientServerLongRespond             = "The server took too long to respond, please try again"
	ErrClientScheduleStoreUnavailable      = "The schedule backend cannot be reached right now, please try again"
	ErrClientInvalidScheduleTemplate       = "The schedule template is invalid, please check the times and try again"
	ErrClientEmptyDateSelection            = "Select at least one date before saving"
	ErrClientCannotEditSchedule            = "You are not allowed to edit this employee's schedule"
)

const (
	ErrDevInvalidInput              = "INVALID_INPUT"
	ErrDevValidationFailed          = "VALIDATION_FAILED"
	ErrDevURLParamValidationFailed  = "URL_PARAM_VALIDATION_FAILED: %s"
	ErrDevCannotParseDate           = "CANNOT_PARSE_DATE"
	ErrDevCannotParseClock          = "CANNOT_PARSE_CLOCK_TIME"
	ErrDevCannotMarshalJSON         = "CANNOT_MARSHAL_JSON"
	ErrDevCannotParseJSON           = "CANNOT_PARSE_JSON"
	ErrDevBuildRequest              = "CANNOT_BUILD_REQUEST"
	ErrDevCreateHTTPRequest         = "CANNOT_CREATE_HTTP_REQUEST"
	ErrDevSendHTTPRequest           = "CANNOT_SEND_HTTP_REQUEST"
	ErrDevDecodeResponse            = "CANNOT_DECODE_RESPONSE: %s"
	ErrDevStoreRequestFailed        = "SCHEDULE_STORE_REQUEST_FAILED: %s"
	ErrDevServerDeadlineExceeded    = "SERVER_DEADLINE_EXCEEDED"
	ErrDevAuthTokenMissing          = "AUTH_TOKEN_MISSING"
	ErrDevAuthTokenInvalid          = "AUTH_TOKEN_INVALID"
	ErrDevAuthTokenInvalidOrExpired = "AUTH_TOKEN_INVALID_OR_EXPIRED"
	ErrDevAuthSigningMethod         = "AUTH_UNEXPECTED_SIGNING_METHOD"
	ErrDevAuthGenerateToken         = "AUTH_CANNOT_GENERATE_TOKEN"
	ErrDevSessionNotFound           = "SESSION_NOT_FOUND"
	ErrDevMissingRequestID          = "MISSING_REQUEST_ID"
	ErrDevMissingSessionData        = "MISSING_SESSION_DATA"
	ErrDevScheduleEditDenied        = "SCHEDULE_EDIT_DENIED"
	ErrDevScheduleTemplateInvalid   = "SCHEDULE_TEMPLATE_INVALID: %s"
	ErrDevEmptyDateSelection        = "EMPTY_DATE_SELECTION"
	ErrDevRedisSet                  = "REDIS_SET_FAILED"
	ErrDevRedisGet                  = "REDIS_GET_FAILED: key=%s"
	ErrDevRedisDelete               = "REDIS_DELETE_FAILED"
	ErrDevMongoDBInsertDocument     = "MONGODB_INSERT_DOCUMENT_FAILED"
	ErrDevMongoDBFindDocument       = "MONGODB_FIND_DOCUMENT_FAILED"
	ErrDevMongoDBIterateDocuments   = "MONGODB_ITERATE_DOCUMENTS_FAILED"
	ErrDevAuditWriteFailed          = "AUDIT_WRITE_FAILED"
	ErrDevQueuePublishFailed        = "QUEUE_PUBLISH_FAILED"
	ErrDevRabbitMQPublishMessage    = "RABBITMQ_PUBLISH_FAILED: queue=%s"
	ErrDevInvalidAPIKey             = "INVALID_API_KEY"
)

const (
	ResponseUnknown = "unknown"
)
