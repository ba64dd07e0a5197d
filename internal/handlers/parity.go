package handlers

import (
	"context"
	"math/big"
	"net/http"
	"strings"
	"unicode"

	"github.com/aws/aws-lambda-go/events"
	"github.com/sirupsen/logrus"

	"queue-handlers/pkg/lambda"
)

// ParityPayload is the fixed confirmation returned once every record was odd
const ParityPayload = "Processed successfully"

// ParityHandler accepts batches of odd integers and rejects the first even or non-integer body
type ParityHandler struct {
	logger logrus.FieldLogger
}

// NewParityHandler creates a new parity handler
func NewParityHandler(logger logrus.FieldLogger) *ParityHandler {
	return &ParityHandler{
		logger: logger,
	}
}

// ProcessRecord converts the record body to an integer and checks its parity.
// It does not log; the caller decides what to do with the result.
func (h *ParityHandler) ProcessRecord(ctx context.Context, record events.SQSMessage) RecordResult {
	value, err := parseInteger(record.Body)
	if err != nil {
		return failed(record, err)
	}

	if value.Bit(0) == 0 {
		return failed(record, &EvenNumberError{Value: value})
	}

	return succeeded(record, value)
}

// Handle processes the batch in order and aborts on the first failing record.
// The failure is logged once and returned unchanged; no response is built.
func (h *ParityHandler) Handle(ctx context.Context, event events.SQSEvent) (lambda.Response, error) {
	for _, record := range event.Records {
		result := h.ProcessRecord(ctx, record)
		logger := h.logger.WithField("message_id", result.MessageID)

		if result.Failed() {
			logger.Error(result.Err.Error())
			return lambda.Response{}, result.Err
		}

		logger.Infof("Message Body: %s", result.Body)
	}

	return lambda.NewResponse(http.StatusOK, ParityPayload), nil
}

// parseInteger accepts an optionally signed base 10 integer of any magnitude,
// ignoring surrounding whitespace. Digits may be any Unicode decimal digit and
// single underscores may separate them ("1_001").
func parseInteger(body string) (*big.Int, error) {
	digits := strings.TrimSpace(body)

	var b strings.Builder
	if strings.HasPrefix(digits, "+") || strings.HasPrefix(digits, "-") {
		b.WriteByte(digits[0])
		digits = digits[1:]
	}

	afterDigit := false
	for _, r := range digits {
		if r == '_' {
			if !afterDigit {
				return nil, &InvalidBodyError{Body: body}
			}
			afterDigit = false
			continue
		}

		d, ok := decimalValue(r)
		if !ok {
			return nil, &InvalidBodyError{Body: body}
		}
		b.WriteByte(byte('0' + d))
		afterDigit = true
	}

	// empty, sign only, or a trailing underscore
	if !afterDigit {
		return nil, &InvalidBodyError{Body: body}
	}

	value, ok := new(big.Int).SetString(b.String(), 10)
	if !ok {
		return nil, &InvalidBodyError{Body: body}
	}

	return value, nil
}

// decimalValue maps a Unicode decimal digit (category Nd) to its value.
// Nd digits come in contiguous runs of ten starting at zero.
func decimalValue(r rune) (int, bool) {
	if r >= '0' && r <= '9' {
		return int(r - '0'), true
	}
	if !unicode.IsDigit(r) {
		return 0, false
	}

	for _, rng := range unicode.Digit.R16 {
		if lo, hi := rune(rng.Lo), rune(rng.Hi); r >= lo && r <= hi {
			return int(r-lo) % 10, true
		}
	}
	for _, rng := range unicode.Digit.R32 {
		if lo, hi := rune(rng.Lo), rune(rng.Hi); r >= lo && r <= hi {
			return int(r-lo) % 10, true
		}
	}
	return 0, false
}
