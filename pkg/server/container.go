package server

import (
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"

	"queue-handlers/internal/config"
	"queue-handlers/internal/handlers"
	"queue-handlers/internal/logging"
	"queue-handlers/internal/middleware"
	"queue-handlers/pkg/lambda"
)

// Function names, shared by the Lambda entrypoints and the local invoke API
const (
	EchoFunction   = "echo"
	ParityFunction = "parity"
)

// Container holds all application dependencies
type Container struct {
	Config *config.Config
	Logger *logrus.Logger

	functions map[string]lambda.SQSHandlerFunc
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *config.Config) (*Container, error) {
	logger, err := logging.New(cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	if err := logging.RequireInfoLevel(logger); err != nil {
		return nil, err
	}

	return NewContainerWithLogger(cfg, logger), nil
}

// NewContainerWithLogger creates a container around an existing logger
func NewContainerWithLogger(cfg *config.Config, logger *logrus.Logger) *Container {
	echoHandler := handlers.NewEchoHandler(logger)
	parityHandler := handlers.NewParityHandler(logger)

	return &Container{
		Config: cfg,
		Logger: logger,
		functions: map[string]lambda.SQSHandlerFunc{
			EchoFunction:   middleware.WithInvocationLogging(logger, EchoFunction, echoHandler.Handle),
			ParityFunction: middleware.WithInvocationLogging(logger, ParityFunction, parityHandler.Handle),
		},
	}
}

// LogColdStart records the runtime environment once per execution environment
func (c *Container) LogColdStart(function string) {
	sc := config.GetServerlessConfig()
	c.Logger.WithFields(logrus.Fields{
		"function":        function,
		"deployment_mode": config.GetDeploymentMode(),
		"function_name":   sc.FunctionName,
		"region":          sc.Region,
		"memory_mb":       sc.MemoryMB,
	}).Debug("Cold start")
}

// Function looks up a function by name
func (c *Container) Function(name string) (lambda.SQSHandlerFunc, bool) {
	fn, ok := c.functions[name]
	return fn, ok
}

// MustFunction looks up a function by name and panics if it is not registered
func (c *Container) MustFunction(name string) lambda.SQSHandlerFunc {
	fn, ok := c.Function(name)
	if !ok {
		panic("unknown function: " + name)
	}
	return fn
}

// Functions returns the registered function names in order
func (c *Container) Functions() []string {
	names := make([]string, 0, len(c.functions))
	for name := range c.functions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Close cleans up all resources
func (c *Container) Close() error {
	return nil
}
