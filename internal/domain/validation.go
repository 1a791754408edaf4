package domain

import (
	"fmt"
	"strings"
)

type FieldIssue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries the full list of field-level issues so the client
// can render them next to the offending inputs.
type ValidationError struct {
	Issues []FieldIssue `json:"issues"`
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		parts = append(parts, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func NewValidationError(issues ...FieldIssue) *ValidationError {
	return &ValidationError{Issues: issues}
}

// ModerationRejectedError is returned when the moderation gate flags a
// submission as unsafe. The reason is user-facing.
type ModerationRejectedError struct {
	Reason string
}

func (e *ModerationRejectedError) Error() string {
	return "moderation rejected: " + e.Reason
}
