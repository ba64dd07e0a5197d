package handlers

import (
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/gin-gonic/gin"

	"queue-handlers/pkg/lambda"
)

// FunctionErrorHeader marks an invocation whose function returned an error
const FunctionErrorHeader = "X-Amz-Function-Error"

// FunctionRegistry resolves a function by name
type FunctionRegistry interface {
	Function(name string) (lambda.SQSHandlerFunc, bool)
}

// InvocationError is the body returned when a function fails
type InvocationError struct {
	ErrorMessage string `json:"errorMessage"`
	ErrorType    string `json:"errorType"`
}

type invokeRequest struct {
	Records []events.SQSMessage `json:"Records" binding:"required"`
}

// SetupRoutes registers the health check and the Lambda invoke API on router
func SetupRoutes(router *gin.Engine, functions FunctionRegistry) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "queue-handlers",
		})
	})

	router.POST("/2015-03-31/functions/:name/invocations", invoke(functions))
}

func invoke(functions FunctionRegistry) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.Param("name")
		fn, ok := functions.Function(name)
		if !ok {
			c.JSON(http.StatusNotFound, ErrorResponse{
				Error:   "ResourceNotFoundException",
				Message: "Function not found: " + name,
			})
			return
		}

		var req invokeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Error:   "InvalidRequestContentException",
				Message: err.Error(),
			})
			return
		}

		resp, err := fn(c.Request.Context(), events.SQSEvent{Records: req.Records})
		if err != nil {
			c.Header(FunctionErrorHeader, "Unhandled")
			c.JSON(http.StatusOK, InvocationError{
				ErrorMessage: err.Error(),
				ErrorType:    errorType(err),
			})
			return
		}

		c.JSON(http.StatusOK, resp)
	}
}

// ErrorResponse represents a request that never reached a function
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
