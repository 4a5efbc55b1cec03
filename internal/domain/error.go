package domain

// ErrorClass represents error classification
type ErrorClass string

const (
	ErrorClassFatal     ErrorClass = "FATAL"
	ErrorClassRetryable ErrorClass = "RETRYABLE"
)

// Error codes
const (
	ErrCodeUnsupportedMedia = "UNSUPPORTED_MEDIA"
	ErrCodeS3AccessDenied   = "S3_ACCESS_DENIED"
	ErrCodeS3NotFound       = "S3_NOT_FOUND"
	ErrCodeS3Timeout        = "S3_TIMEOUT"
	ErrCodeFFprobeFailed    = "FFPROBE_FAILED"
	ErrCodeNetworkError     = "NETWORK_ERROR"
	ErrCodeDatabaseError    = "DATABASE_ERROR"
	ErrCodeInternalError    = "INTERNAL_ERROR"
	ErrCodeTimeout          = "TIMEOUT"
)

// IsRetryable returns true if the error code is retryable
func IsRetryable(code string) bool {
	retryableCodes := map[string]bool{
		ErrCodeS3Timeout:     true,
		ErrCodeNetworkError:  true,
		ErrCodeDatabaseError: true,
		ErrCodeTimeout:       true,
	}
	return retryableCodes[code]
}

// ClassifyError determines the error class based on error code
func ClassifyError(code string) ErrorClass {
	if IsRetryable(code) {
		return ErrorClassRetryable
	}
	return ErrorClassFatal
}
