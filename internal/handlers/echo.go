package handlers

import (
	"context"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/sirupsen/logrus"

	"queue-handlers/pkg/lambda"
)

// EchoPayload is the fixed confirmation returned by the echo function
const EchoPayload = "Hello from Lambda!"

// EchoHandler logs every message body and acknowledges the batch
type EchoHandler struct {
	logger logrus.FieldLogger
}

// NewEchoHandler creates a new echo handler
func NewEchoHandler(logger logrus.FieldLogger) *EchoHandler {
	return &EchoHandler{
		logger: logger,
	}
}

// Handle logs one line per record, in order, and never fails.
func (h *EchoHandler) Handle(ctx context.Context, event events.SQSEvent) (lambda.Response, error) {
	for _, record := range event.Records {
		h.logger.WithField("message_id", record.MessageId).Infof("Message Body: %s", record.Body)
	}

	return lambda.NewResponse(http.StatusOK, EchoPayload), nil
}
