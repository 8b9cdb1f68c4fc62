package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	ErrMsgPlayerNotFound = "player not found"
	ErrMsgItemNotFound   = "item not found"
	ErrMsgInvalidInput   = "invalid input"
)

// Common domain errors.
// Wrap these with fmt.Errorf("%w: %s", domain.ErrXxx, details) for context.
// Soft game-flow failures (low energy, already claimed) are NOT errors;
// they are normal results carrying an outcome tag.
var (
	ErrPlayerNotFound = errors.New(ErrMsgPlayerNotFound)
	ErrItemNotFound   = errors.New(ErrMsgItemNotFound)
	ErrInvalidInput   = errors.New(ErrMsgInvalidInput)
)
