package errors

// ErrorCode identifies an AppError independently of its HTTP status
type ErrorCode int32

const (
	ErrorCode_HTTP_OK          ErrorCode = 0
	ErrorCode_INTERNAL         ErrorCode = 1000
	ErrorCode_INVALID_ARGUMENT ErrorCode = 1001
	ErrorCode_NOT_FOUND        ErrorCode = 1002
	ErrorCode_FORBIDDEN        ErrorCode = 1003
	ErrorCode_UNAUTHENTICATED  ErrorCode = 1004
	ErrorCode_INVALID_PAYLOAD  ErrorCode = 1005

	ErrorCode_AUTH_INVALID_CREDENTIALS ErrorCode = 2000
	ErrorCode_AUTH_INVALID_TOKEN       ErrorCode = 2001

	ErrorCode_MISSING_AUDIO_FILE ErrorCode = 3000
	ErrorCode_MEETING_NOT_FOUND  ErrorCode = 3001
	ErrorCode_PROCESSING_FAILED  ErrorCode = 3002

	ErrorCode_TASK_NOT_FOUND ErrorCode = 4000
	ErrorCode_TASK_LOCKED    ErrorCode = 4001

	ErrorCode_AI_SERVICE_UNAVAILABLE ErrorCode = 5000

	ErrorCode_DB_QUERY_FAILED ErrorCode = 6000
)

var errorCodeNames = map[ErrorCode]string{
	ErrorCode_HTTP_OK:                  "HTTP_OK",
	ErrorCode_INTERNAL:                 "INTERNAL",
	ErrorCode_INVALID_ARGUMENT:         "INVALID_ARGUMENT",
	ErrorCode_NOT_FOUND:                "NOT_FOUND",
	ErrorCode_FORBIDDEN:                "FORBIDDEN",
	ErrorCode_UNAUTHENTICATED:          "UNAUTHENTICATED",
	ErrorCode_INVALID_PAYLOAD:          "INVALID_PAYLOAD",
	ErrorCode_AUTH_INVALID_CREDENTIALS: "AUTH_INVALID_CREDENTIALS",
	ErrorCode_AUTH_INVALID_TOKEN:       "AUTH_INVALID_TOKEN",
	ErrorCode_MISSING_AUDIO_FILE:       "MISSING_AUDIO_FILE",
	ErrorCode_MEETING_NOT_FOUND:        "MEETING_NOT_FOUND",
	ErrorCode_PROCESSING_FAILED:        "PROCESSING_FAILED",
	ErrorCode_TASK_NOT_FOUND:           "TASK_NOT_FOUND",
	ErrorCode_TASK_LOCKED:              "TASK_LOCKED",
	ErrorCode_AI_SERVICE_UNAVAILABLE:   "AI_SERVICE_UNAVAILABLE",
	ErrorCode_DB_QUERY_FAILED:          "DB_QUERY_FAILED",
}

// String returns the symbolic name of the code
func (c ErrorCode) String() string {
	if name, ok := errorCodeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}
