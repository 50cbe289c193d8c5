// internal/errors/errors.go
package appErrors

import (
	"errors"
	"fmt"
)

// ErrCampaignNotFound is returned when a campaign id has no match
type ErrCampaignNotFound struct {
	CampaignID string
}

func (e *ErrCampaignNotFound) Error() string {
	return fmt.Sprintf("campaign with ID %s not found", e.CampaignID)
}

type ErrTaskNotFound struct {
	TaskID string
}

func (e *ErrTaskNotFound) Error() string {
	return fmt.Sprintf("task with ID %s not found", e.TaskID)
}

type ErrPostNotFound struct {
	PostID string
}

func (e *ErrPostNotFound) Error() string {
	return fmt.Sprintf("scheduled post with ID %s not found", e.PostID)
}

// ValidationError rejects input at the service boundary
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Helper constructors
func NewCampaignNotFound(id string) error {
	return &ErrCampaignNotFound{CampaignID: id}
}

func NewTaskNotFound(id string) error {
	return &ErrTaskNotFound{TaskID: id}
}

func NewPostNotFound(id string) error {
	return &ErrPostNotFound{PostID: id}
}

func NewValidation(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// IsNotFound reports whether err wraps any of the not-found errors.
func IsNotFound(err error) bool {
	var c *ErrCampaignNotFound
	var t *ErrTaskNotFound
	var p *ErrPostNotFound
	return errors.As(err, &c) || errors.As(err, &t) || errors.As(err, &p)
}

func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}
