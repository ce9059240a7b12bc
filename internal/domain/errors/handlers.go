package errors

import "opencircle/internal/errors"

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`              // Business error code, e.g., "ACCOUNT_NOT_FOUND"
	Message string `json:"message"`           // Human-readable error message
	Details any    `json:"details,omitempty"` // Detailed error information (optional)
	Cause   string `json:"cause,omitempty"`   // Full wrapped error chain
}

// InfoOf extracts the AppError carried by err. Errors outside the taxonomy
// are reported as INTERNAL_ERROR.
func InfoOf(err error) *ErrorInfo {
	if err == nil {
		return nil
	}

	var appErr AppError
	if errors.As(err, &appErr) {
		info := &ErrorInfo{
			Code:    appErr.ErrorCode(),
			Message: appErr.Message(),
			Cause:   err.Error(),
		}
		if details := appErr.Details(); details != "" {
			info.Details = details
		}

		return info
	}

	return &ErrorInfo{
		Code:    "INTERNAL_ERROR",
		Message: "internal error",
		Cause:   err.Error(),
	}
}
