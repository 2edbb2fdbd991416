// File: internal/services/medicine/errors.go
package medicine

import "fmt"

type ErrorType string

const (
    ErrTypeConfig     ErrorType = "CONFIG"
    ErrTypeValidation ErrorType = "VALIDATION"
    ErrTypeClassify   ErrorType = "CLASSIFY"
    ErrTypeResolve    ErrorType = "RESOLVE"
    ErrTypeUpstream   ErrorType = "UPSTREAM"
)

// PipelineError is used for construction-time failures only. Operational
// upstream failures never surface as errors from Classify/Resolve; they
// degrade to conservative results instead.
type PipelineError struct {
    Type      ErrorType
    Operation string
    Message   string
    Cause     error
}

func (e *PipelineError) Error() string {
    if e.Cause != nil {
        return fmt.Sprintf("Medicine %s error in %s: %s (caused by: %v)",
            e.Type, e.Operation, e.Message, e.Cause)
    }
    return fmt.Sprintf("Medicine %s error in %s: %s", e.Type, e.Operation, e.Message)
}

func NewValidationError(operation, msg string) *PipelineError {
    return &PipelineError{Type: ErrTypeValidation, Operation: operation, Message: msg}
}

func NewConfigError(operation, msg string) *PipelineError {
    return &PipelineError{Type: ErrTypeConfig, Operation: operation, Message: msg}
}
