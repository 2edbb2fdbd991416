// File: internal/services/chat/errors.go
package chat

import "fmt"

type ErrorType string

const (
    ErrTypeConfig     ErrorType = "CONFIG"
    ErrTypeValidation ErrorType = "VALIDATION"
    ErrTypeNotFound   ErrorType = "NOT_FOUND"
    ErrTypeStorage    ErrorType = "STORAGE"
)

type ChatError struct {
    Type      ErrorType
    Operation string
    Message   string
    Cause     error
}

func (e *ChatError) Error() string {
    if e.Cause != nil {
        return fmt.Sprintf("Chat %s error in %s: %s (caused by: %v)",
            e.Type, e.Operation, e.Message, e.Cause)
    }
    return fmt.Sprintf("Chat %s error in %s: %s", e.Type, e.Operation, e.Message)
}

func (e *ChatError) Unwrap() error {
    return e.Cause
}

func NewValidationError(operation, msg string) *ChatError {
    return &ChatError{Type: ErrTypeValidation, Operation: operation, Message: msg}
}

func NewConfigError(operation, msg string) *ChatError {
    return &ChatError{Type: ErrTypeConfig, Operation: operation, Message: msg}
}

func NewNotFoundError(operation, msg string) *ChatError {
    return &ChatError{Type: ErrTypeNotFound, Operation: operation, Message: msg}
}

func NewStorageError(operation, msg string, cause error) *ChatError {
    return &ChatError{Type: ErrTypeStorage, Operation: operation, Message: msg, Cause: cause}
}

// IsNotFound reports whether err is a thread/message lookup miss.
func IsNotFound(err error) bool {
    chatErr, ok := err.(*ChatError)
    return ok && chatErr.Type == ErrTypeNotFound
}
