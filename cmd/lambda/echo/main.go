package main

import (
	"queue-handlers/internal/config"
	"queue-handlers/pkg/server"

	awslambda "github.com/aws/aws-lambda-go/lambda"
)

var container *server.Container

func init() {
	cfg, err := config.GetOptimizedConfig()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	container, err = server.NewContainer(cfg)
	if err != nil {
		panic("Failed to initialize container: " + err.Error())
	}

	container.LogColdStart(server.EchoFunction)
}

func main() {
	awslambda.Start(container.MustFunction(server.EchoFunction))
}
