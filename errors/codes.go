package errors

// ErrorCode identifies an application error category
type ErrorCode int

const (
	ErrorCode_INTERNAL ErrorCode = iota + 1
	ErrorCode_INVALID_PAYLOAD
	ErrorCode_MISSING_TRANSCRIPT
	ErrorCode_AI_ANALYSIS_FAILED
	ErrorCode_INTEGRATION_EXTERNAL_API_FAILED
	ErrorCode_LOG_APPEND_FAILED
)

// ErrorCode_HTTP_OK is used by success response envelopes
const ErrorCode_HTTP_OK ErrorCode = 0

// String implements fmt.Stringer
func (c ErrorCode) String() string {
	switch c {
	case ErrorCode_HTTP_OK:
		return "OK"
	case ErrorCode_INTERNAL:
		return "INTERNAL"
	case ErrorCode_INVALID_PAYLOAD:
		return "INVALID_PAYLOAD"
	case ErrorCode_MISSING_TRANSCRIPT:
		return "MISSING_TRANSCRIPT"
	case ErrorCode_AI_ANALYSIS_FAILED:
		return "AI_ANALYSIS_FAILED"
	case ErrorCode_INTEGRATION_EXTERNAL_API_FAILED:
		return "INTEGRATION_EXTERNAL_API_FAILED"
	case ErrorCode_LOG_APPEND_FAILED:
		return "LOG_APPEND_FAILED"
	default:
		return "UNKNOWN"
	}
}
