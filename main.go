package main

import (
	"context"
	"math/rand"
	"os"

	"go.uber.org/zap"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"google.golang.org/api/sheets/v4"

	"github.com/r0lodex/luckydex/lib/apiGwResponse"
	"github.com/r0lodex/luckydex/lib/clientInit"
	"github.com/r0lodex/luckydex/lib/configRead"
	"github.com/r0lodex/luckydex/lib/luckysource"
	"github.com/r0lodex/luckydex/lib/random"
)

type dataSource interface {
	Fetch(ctx context.Context) ([]luckysource.Record, bool)
	Winners(ctx context.Context) ([]luckysource.Winner, error)
	SaveWinner(ctx context.Context, w luckysource.Winner) error
}

var (
	log        *zap.SugaredLogger
	source     dataSource
	sheetCfg   configRead.SheetConfig
	seededRand *rand.Rand = random.NewRandom()
)

func main() {
	lambda.Start(HandleRequest)
}
func init() {
	logConfig := zap.NewProductionConfig()
	logConfig.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	logger, _ := logConfig.Build()
	defer logger.Sync()
	log = logger.Sugar()

	ctx := context.Background()

	sheetCfg = configRead.ReadSheetConfig()
	source = luckysource.NewSource(initSheets(ctx), sheetCfg.SpreadsheetId, sheetCfg.SheetName, sheetCfg.WinnersSheetName, log)
}

// initSheets never fails hard: a missing or broken live integration means
// the service runs on mock data, not that it refuses to start.
func initSheets(ctx context.Context) *sheets.Service {
	var ssmc *ssm.Client
	if os.Getenv("GOOGLE_SHEETS_CREDENTIALS") == "" {
		var err error
		ssmc, _, err = clientInit.InitSSM(ctx, nil)
		if err != nil {
			log.Warn("SSM unavailable: ", err)
		}
	}

	gcpConfig, err := configRead.GcpConfig(ctx, ssmc)
	if err != nil {
		log.Warn("No Google credentials found, serving mock data: ", err)
		return nil
	}

	sheetSvc, _, err := clientInit.InitGSheet(ctx, clientInit.GInit{ConfigJson: &gcpConfig})
	if err != nil {
		log.Warn("Error initializig Google service client, serving mock data: ", err)
		return nil
	}
	return sheetSvc
}

func HandleRequest(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	if req.HTTPMethod == "OPTIONS" {
		return apiGwResponse.OkResponse(map[string]string{})
	}
	if req.HTTPMethod != "" && req.HTTPMethod != "GET" {
		return apiGwResponse.ErrResponse(ctx, 405, "method not allowed", "Only GET is supported")
	}

	switch req.Path {
	case "", "/":
		return apiGwResponse.OkResponse(map[string]string{
			"message": "Welcome to Luckydex API",
			"version": "1.0.0",
			"status":  "healthy",
		})
	case "/health":
		return apiGwResponse.OkResponse(map[string]string{
			"status":  "healthy",
			"service": "luckydex",
		})
	case "/home":
		return handleHome(ctx)
	case "/luckydex":
		return handleLuckydex(ctx, req)
	case "/winners":
		return handleWinners(ctx)
	default:
		return apiGwResponse.ErrResponse(ctx, 404, "not found", "Unknown path: "+req.Path)
	}
}
