package handlers

import (
	"math/big"

	"github.com/aws/aws-lambda-go/events"
)

// RecordResult is the outcome of processing a single queue record
type RecordResult struct {
	MessageID string
	Body      string
	Value     *big.Int
	Err       error
}

// Failed reports whether the record could not be processed
func (r RecordResult) Failed() bool {
	return r.Err != nil
}

func succeeded(record events.SQSMessage, value *big.Int) RecordResult {
	return RecordResult{MessageID: record.MessageId, Body: record.Body, Value: value}
}

func failed(record events.SQSMessage, err error) RecordResult {
	return RecordResult{MessageID: record.MessageId, Body: record.Body, Err: err}
}
