package handlers

import (
	"errors"
	"fmt"
	"math/big"
)

// ErrInvalidBody is matched by every body that is not an integer
var ErrInvalidBody = errors.New("invalid message body")

// InvalidBodyError reports a message body that could not be converted to an integer
type InvalidBodyError struct {
	Body string
}

func (e *InvalidBodyError) Error() string {
	return fmt.Sprintf("invalid literal for integer with base 10: '%s'", e.Body)
}

func (e *InvalidBodyError) Unwrap() error {
	return ErrInvalidBody
}

// EvenNumberError is raised for a message body holding an even integer
type EvenNumberError struct {
	Value *big.Int
}

func (e *EvenNumberError) Error() string {
	return fmt.Sprintf("Error: %s is an even number", e.Value)
}

// IsEvenNumber returns true if err is or wraps an EvenNumberError
func IsEvenNumber(err error) bool {
	var evenErr *EvenNumberError
	return errors.As(err, &evenErr)
}

// IsInvalidBody returns true if err reports a non-integer body
func IsInvalidBody(err error) bool {
	return errors.Is(err, ErrInvalidBody)
}

// errorType names err the way the Lambda invoke API reports it
func errorType(err error) string {
	switch {
	case IsEvenNumber(err):
		return "EvenNumberError"
	case IsInvalidBody(err):
		return "InvalidBodyError"
	default:
		return "Error"
	}
}
