package error

import "errors"

// Operation identifies a client operation for error reporting.
type Operation string

const (
	OpCreateAccount        Operation = "create_account"
	OpUpdateAccountBalance Operation = "update_account_balance"
	OpDeleteAccount        Operation = "delete_account"
	OpCreateTransaction    Operation = "create_transaction"
	OpCreateGoal           Operation = "create_goal"
	OpUpdateGoal           Operation = "update_goal"
	OpUpdateGoalProgress   Operation = "update_goal_progress"
	OpDeleteGoal           Operation = "delete_goal"
	OpCreatePlatform       Operation = "create_platform"
	OpLogin                Operation = "login"
	OpRegister             Operation = "register"
	OpCurrentUser          Operation = "current_user"
)

// fallbackMessages are shown when the service gave no detail.
var fallbackMessages = map[Operation]string{
	OpCreateAccount:        "Failed to create account",
	OpUpdateAccountBalance: "Failed to update balance",
	OpDeleteAccount:        "Failed to delete account",
	OpCreateTransaction:    "Failed to create transaction",
	OpCreateGoal:           "Failed to create goal",
	OpUpdateGoal:           "Failed to update goal",
	OpUpdateGoalProgress:   "Failed to update goal progress",
	OpDeleteGoal:           "Failed to delete goal",
	OpCreatePlatform:       "Failed to create platform",
	OpLogin:                "Login failed",
	OpRegister:             "Registration failed",
	OpCurrentUser:          "Failed to fetch user",
}

// FallbackMessage returns the fixed message for op.
func FallbackMessage(op Operation) string {
	if msg, ok := fallbackMessages[op]; ok {
		return msg
	}
	return "Operation failed"
}

// OperationErrorCode defines error codes for failed operations.
// Format: SYN-XXYYYY where XX is category and YYYY is specific error.
type OperationErrorCode string

const (
	// Client errors (01XXXX)
	ErrCodeUnknown OperationErrorCode = "SYN-010001"

	// Remote errors (02XXXX)
	ErrCodeRemoteFailure OperationErrorCode = "SYN-020001"
	ErrCodeUnauthorized  OperationErrorCode = "SYN-020002"
	ErrCodeNotFound      OperationErrorCode = "SYN-020003"

	// Transport errors (03XXXX)
	ErrCodeTransport OperationErrorCode = "SYN-030001"
)

// OperationError is the failure side of every write operation. Message is
// ready for display: the service's detail when present, otherwise the fixed
// per-operation fallback. It is never empty.
type OperationError struct {
	Op      Operation
	Code    OperationErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *OperationError) Error() string {
	return e.Message
}

// Unwrap returns the underlying error.
func (e *OperationError) Unwrap() error {
	return e.Err
}

// NewOperationError classifies err and builds the display message for op.
func NewOperationError(op Operation, err error) *OperationError {
	opErr := &OperationError{
		Op:      op,
		Code:    ErrCodeUnknown,
		Message: FallbackMessage(op),
		Err:     err,
	}

	var remoteErr *RemoteError
	var transportErr *TransportError
	switch {
	case errors.As(err, &remoteErr):
		opErr.Code = ErrCodeRemoteFailure
		if errors.Is(remoteErr, ErrUnauthorized) {
			opErr.Code = ErrCodeUnauthorized
		} else if errors.Is(remoteErr, ErrNotFound) {
			opErr.Code = ErrCodeNotFound
		}
		if remoteErr.Detail != "" {
			opErr.Message = remoteErr.Detail
		}
	case errors.As(err, &transportErr):
		opErr.Code = ErrCodeTransport
	}

	return opErr
}
