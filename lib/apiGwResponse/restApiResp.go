package apiGwResponse

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambdacontext"
)

func corsHeaders() map[string]string {
	return map[string]string{
		"Content-Type":                 "application/json",
		"Access-Control-Allow-Origin":  "*",
		"Access-Control-Allow-Methods": "GET, OPTIONS",
		"Access-Control-Allow-Headers": "Content-Type",
	}
}

func OkResponse(response any) (events.APIGatewayProxyResponse, error) {
	responseBody, err := json.Marshal(response)
	if err != nil {
		return events.APIGatewayProxyResponse{}, err
	}
	return events.APIGatewayProxyResponse{
		StatusCode: 200,
		Body:       string(responseBody),
		Headers:    corsHeaders(),
	}, nil
}

func HtmlResponse(body string) (events.APIGatewayProxyResponse, error) {
	return events.APIGatewayProxyResponse{
		StatusCode: 200,
		Body:       body,
		Headers: map[string]string{
			"Content-Type": "text/html",
		},
	}, nil
}

// ErrResponse builds a JSON error body carrying the Lambda execution id,
// so failures in CloudWatch can be matched to what the caller saw.
func ErrResponse(ctx context.Context, status int, errMsg string, message string) (events.APIGatewayProxyResponse, error) {
	lctx, ok := lambdacontext.FromContext(ctx)
	if !ok {
		return events.APIGatewayProxyResponse{}, errors.New("Unable to read Lambda Context")
	}

	responseBody, _ := json.Marshal(map[string]any{
		"success":   false,
		"error":     errMsg,
		"message":   message,
		"execution": lctx.AwsRequestID,
	})
	return events.APIGatewayProxyResponse{
		StatusCode: status,
		Body:       string(responseBody),
		Headers:    corsHeaders(),
	}, nil
}
