package middleware

import (
	"context"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"queue-handlers/pkg/lambda"
)

type requestIDKey struct{}

// RequestIDFromContext returns the invocation request ID stored by WithInvocationLogging
func RequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey{}).(string); ok {
		return id
	}
	return ""
}

// resolveRequestID prefers the runtime's request ID and generates one outside Lambda
func resolveRequestID(ctx context.Context) string {
	if lc, ok := lambdacontext.FromContext(ctx); ok && lc.AwsRequestID != "" {
		return lc.AwsRequestID
	}
	if id := RequestIDFromContext(ctx); id != "" {
		return id
	}
	return uuid.New().String()
}

// WithInvocationLogging wraps next with debug-level invocation logs.
// Handlers log their own records and errors; nothing here is emitted at info level.
func WithInvocationLogging(logger logrus.FieldLogger, function string, next lambda.SQSHandlerFunc) lambda.SQSHandlerFunc {
	return func(ctx context.Context, event events.SQSEvent) (lambda.Response, error) {
		start := time.Now()
		requestID := resolveRequestID(ctx)
		ctx = context.WithValue(ctx, requestIDKey{}, requestID)

		fields := logrus.Fields{
			"request_id": requestID,
			"function":   function,
			"records":    len(event.Records),
		}
		logger.WithFields(fields).Debug("Invocation started")

		resp, err := next(ctx, event)

		fields["latency_ms"] = float64(time.Since(start).Nanoseconds()) / 1000000
		if err != nil {
			fields["error"] = err.Error()
			logger.WithFields(fields).Debug("Invocation failed")
			return resp, err
		}

		fields["status_code"] = resp.StatusCode
		logger.WithFields(fields).Debug("Invocation completed")
		return resp, nil
	}
}
