package server

import (
	"context"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"

	"queue-handlers/internal/config"
)

// TestNewContainer verifies that the container can be created successfully
func TestNewContainer(t *testing.T) {
	cfg := &config.Config{
		Environment: "test",
		Port:        "8080",
		Log: config.LogConfig{
			Level:  "info",
			Format: "text",
		},
	}

	container, err := NewContainer(cfg)
	if err != nil {
		t.Fatalf("Failed to create container: %v", err)
	}

	if container == nil {
		t.Fatal("Container is nil")
	}
	if container.Logger == nil {
		t.Error("Logger is nil")
	}

	names := container.Functions()
	if len(names) != 2 || names[0] != EchoFunction || names[1] != ParityFunction {
		t.Errorf("Expected functions [echo parity], got %v", names)
	}

	if err := container.Close(); err != nil {
		t.Errorf("Failed to close container: %v", err)
	}
}

func TestNewContainerRejectsBadLogLevel(t *testing.T) {
	cfg := &config.Config{
		Log: config.LogConfig{Level: "verbose", Format: "text"},
	}

	if _, err := NewContainer(cfg); err == nil {
		t.Fatal("Expected error for invalid log level")
	}
}

// TestContainerFunctions invokes the wired functions end to end
func TestContainerFunctions(t *testing.T) {
	logger, hook := test.NewNullLogger()
	container := NewContainerWithLogger(&config.Config{}, logger)
	defer container.Close()

	event := events.SQSEvent{Records: []events.SQSMessage{{MessageId: "1", Body: "3"}}}

	for _, name := range []string{EchoFunction, ParityFunction} {
		hook.Reset()
		fn := container.MustFunction(name)

		resp, err := fn(context.Background(), event)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", name, err)
		}
		if resp.StatusCode != 200 {
			t.Errorf("%s: expected status 200, got %d", name, resp.StatusCode)
		}
		if len(hook.AllEntries()) != 1 {
			t.Errorf("%s: expected 1 log entry at info level, got %d", name, len(hook.AllEntries()))
		}
	}

	if _, ok := container.Function("missing"); ok {
		t.Error("Expected missing function lookup to fail")
	}
}

func TestMustFunctionPanicsOnUnknownName(t *testing.T) {
	logger, _ := test.NewNullLogger()
	container := NewContainerWithLogger(&config.Config{}, logger)

	defer func() {
		if recover() == nil {
			t.Error("Expected panic for unknown function")
		}
	}()
	container.MustFunction("missing")
}

func TestNewContainerRejectsLevelAboveInfo(t *testing.T) {
	for _, level := range []string{"warn", "error"} {
		cfg := &config.Config{
			Log: config.LogConfig{Level: level, Format: "text"},
		}

		if _, err := NewContainer(cfg); err == nil {
			t.Errorf("Expected error for log level %s", level)
		}
	}
}

func TestLogColdStart(t *testing.T) {
	t.Setenv("AWS_LAMBDA_FUNCTION_NAME", "parity-fn")
	t.Setenv("AWS_REGION", "eu-west-1")
	t.Setenv("AWS_LAMBDA_FUNCTION_MEMORY_SIZE", "256")

	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	container := NewContainerWithLogger(&config.Config{}, logger)

	container.LogColdStart(ParityFunction)

	entry := hook.LastEntry()
	if entry == nil {
		t.Fatal("Expected a cold start entry")
	}
	if entry.Level != logrus.DebugLevel {
		t.Errorf("Expected debug level, got %s", entry.Level)
	}

	want := logrus.Fields{
		"function":        ParityFunction,
		"deployment_mode": "serverless",
		"function_name":   "parity-fn",
		"region":          "eu-west-1",
		"memory_mb":       256,
	}
	for key, value := range want {
		if entry.Data[key] != value {
			t.Errorf("Expected %s=%v, got %v", key, value, entry.Data[key])
		}
	}
}
