package lambda

import (
	"context"
	"encoding/json"

	"github.com/aws/aws-lambda-go/events"
)

// Response is the payload returned to the invoking platform
type Response struct {
	StatusCode int    `json:"statusCode"`
	Body       string `json:"body"`
}

// SQSHandlerFunc processes one batch of queue messages
type SQSHandlerFunc func(ctx context.Context, event events.SQSEvent) (Response, error)

// NewResponse builds a response whose body is the JSON encoding of payload
func NewResponse(statusCode int, payload string) Response {
	body, _ := json.Marshal(payload)
	return Response{
		StatusCode: statusCode,
		Body:       string(body),
	}
}
