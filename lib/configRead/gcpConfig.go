package configRead

import (
	"context"
	"errors"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
)

type SheetConfig struct {
	SpreadsheetId    string
	SheetName        string
	WinnersSheetName string
	Stage            string
}

func ReadSheetConfig() SheetConfig {
	return SheetConfig{
		SpreadsheetId:    os.Getenv("GOOGLE_SPREADSHEET_ID"),
		SheetName:        os.Getenv("GOOGLE_SHEET_NAME"),
		WinnersSheetName: os.Getenv("GOOGLE_WINNERS_SHEET_NAME"),
		Stage:            os.Getenv("STAGE"),
	}
}

// GcpConfig resolves the Google service account JSON. The env variable
// takes precedence; otherwise the parameter named by SSM_GCP_CONFIG is
// read from the Parameter Store.
func GcpConfig(ctx context.Context, ssmc *ssm.Client) (string, error) {
	if creds := os.Getenv("GOOGLE_SHEETS_CREDENTIALS"); creds != "" {
		return creds, nil
	}

	ssmConfigName := os.Getenv("SSM_GCP_CONFIG")
	if ssmConfigName == "" {
		return "", errors.New("env GOOGLE_SHEETS_CREDENTIALS and SSM_GCP_CONFIG both empty")
	}
	if ssmc == nil {
		return "", errors.New("SSM client not initialized")
	}
	param, err := ssmc.GetParameter(ctx, &ssm.GetParameterInput{
		Name:           &ssmConfigName,
		WithDecryption: aws.Bool(true),
	})
	if err != nil {
		return "", err
	}

	result := param.Parameter.Value
	return *result, nil
}
