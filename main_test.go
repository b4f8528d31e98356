package main

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambdacontext"

	"github.com/r0lodex/luckydex/lib/luckysource"
)

// stubSource stands in for the live spreadsheet integration.
type stubSource struct {
	records    []luckysource.Record
	isMock     bool
	winners    []luckysource.Winner
	winnersErr error
	saveErr    error
	saved      []luckysource.Winner
}

func (s *stubSource) Fetch(ctx context.Context) ([]luckysource.Record, bool) {
	return s.records, s.isMock
}
func (s *stubSource) Winners(ctx context.Context) ([]luckysource.Winner, error) {
	return s.winners, s.winnersErr
}
func (s *stubSource) SaveWinner(ctx context.Context, w luckysource.Winner) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.saved = append(s.saved, w)
	return nil
}

func testContext() context.Context {
	return lambdacontext.NewContext(context.Background(), &lambdacontext.LambdaContext{
		AwsRequestID: "test-request-id",
	})
}

func doRequest(t *testing.T, method string, path string, query map[string]string) (events.APIGatewayProxyResponse, map[string]any) {
	t.Helper()

	resp, err := HandleRequest(testContext(), events.APIGatewayProxyRequest{
		HTTPMethod:            method,
		Path:                  path,
		QueryStringParameters: query,
	})
	if err != nil {
		t.Fatal("HandleRequest returned error: ", err)
	}

	body := map[string]any{}
	if strings.Contains(resp.Headers["Content-Type"], "application/json") {
		if err := json.Unmarshal([]byte(resp.Body), &body); err != nil {
			t.Fatalf("response body is not JSON: %v\n%s", err, resp.Body)
		}
	}
	return resp, body
}

func TestIndexRoute(t *testing.T) {
	resp, body := doRequest(t, "GET", "/", nil)
	if resp.StatusCode != 200 {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if body["message"] != "Welcome to Luckydex API" {
		t.Errorf("unexpected message: %v", body["message"])
	}
	if body["status"] != "healthy" {
		t.Errorf("unexpected status: %v", body["status"])
	}
}

func TestHealthRoute(t *testing.T) {
	resp, body := doRequest(t, "GET", "/health", nil)
	if resp.StatusCode != 200 {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if body["status"] != "healthy" || body["service"] != "luckydex" {
		t.Errorf("unexpected body: %v", body)
	}
}

func TestHomeRoute(t *testing.T) {
	resp, _ := doRequest(t, "GET", "/home", nil)
	if resp.StatusCode != 200 {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if resp.Headers["Content-Type"] != "text/html" {
		t.Errorf("expected text/html, got %s", resp.Headers["Content-Type"])
	}
	if !strings.Contains(resp.Body, "<html") || !strings.Contains(resp.Body, "drawNumber") {
		t.Error("home page missing expected markup")
	}
}

func TestUnknownPath(t *testing.T) {
	resp, body := doRequest(t, "GET", "/nope", nil)
	if resp.StatusCode != 404 {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
	if body["success"] != false {
		t.Errorf("expected success=false, got %v", body["success"])
	}
	if body["execution"] != "test-request-id" {
		t.Errorf("expected execution id in error body, got %v", body["execution"])
	}
}

func TestMethodNotAllowed(t *testing.T) {
	resp, _ := doRequest(t, "POST", "/luckydex", nil)
	if resp.StatusCode != 405 {
		t.Fatalf("expected 405, got %d", resp.StatusCode)
	}
}

func TestCorsHeaders(t *testing.T) {
	resp, _ := doRequest(t, "GET", "/health", nil)
	if resp.Headers["Access-Control-Allow-Origin"] != "*" {
		t.Errorf("missing CORS origin header: %v", resp.Headers)
	}

	resp, _ = doRequest(t, "OPTIONS", "/luckydex", nil)
	if resp.StatusCode != 200 {
		t.Errorf("expected 200 for preflight, got %d", resp.StatusCode)
	}
}
