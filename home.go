package main

import (
	"bytes"
	"context"
	"embed"
	"html/template"

	"github.com/aws/aws-lambda-go/events"

	"github.com/r0lodex/luckydex/lib/apiGwResponse"
)

//go:embed templates/home.html
var templatesFS embed.FS

var homeTemplate = template.Must(template.ParseFS(templatesFS, "templates/home.html"))

func handleHome(ctx context.Context) (events.APIGatewayProxyResponse, error) {
	var buf bytes.Buffer
	err := homeTemplate.Execute(&buf, map[string]string{"ApiUrl": sheetCfg.Stage})
	if err != nil {
		log.Error("Failed to render home page: ", err)
		return apiGwResponse.ErrResponse(ctx, 500, err.Error(), "Failed to render home page")
	}
	return apiGwResponse.HtmlResponse(buf.String())
}
