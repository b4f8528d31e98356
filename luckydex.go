package main

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/google/uuid"

	"github.com/r0lodex/luckydex/lib/apiGwResponse"
	"github.com/r0lodex/luckydex/lib/luckysource"
	"github.com/r0lodex/luckydex/lib/random"
)

const noEligibleMsg = "No eligible entries remaining"

type drawResponse struct {
	Success      bool   `json:"success"`
	Id           int    `json:"id"`
	Number       int    `json:"number"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	TotalEntries int    `json:"total_entries"`
	MockData     bool   `json:"mock_data"`
	WinnerSaved  bool   `json:"winner_saved"`
}

func handleLuckydex(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	excludeIds := splitParam(req.QueryStringParameters["exclude_ids"])
	excludeNumbers := splitParam(req.QueryStringParameters["exclude_numbers"])

	records, isMock := source.Fetch(ctx)
	if len(records) == 0 {
		return apiGwResponse.ErrResponse(ctx, 409, "spreadsheet is empty", noEligibleMsg)
	}

	// Past winners stay excluded across sessions; failure to read them
	// must not block the draw itself.
	if !isMock {
		winners, err := source.Winners(ctx)
		if err != nil {
			log.Warn("Unable to read winners, drawing without winner exclusion: ", err)
		}
		for _, w := range winners {
			excludeIds[strconv.Itoa(w.Id)] = true
		}
	}

	eligible := make([]luckysource.Record, 0, len(records))
	for _, r := range records {
		if excludeIds[strconv.Itoa(r.Id)] || excludeNumbers[strconv.Itoa(r.Number)] {
			continue
		}
		eligible = append(eligible, r)
	}
	if len(eligible) == 0 {
		return apiGwResponse.ErrResponse(ctx, 409, "all entries are excluded", noEligibleMsg)
	}

	entry := random.Pick(seededRand, eligible)
	log.Info("Drew entry id=", entry.Id, " number=", entry.Number, " mock=", isMock)

	saved := false
	if !isMock {
		winner := luckysource.Winner{
			DrawId:      uuid.NewString(),
			Id:          entry.Id,
			Number:      entry.Number,
			Name:        entry.Name,
			Description: entry.Description,
			DrawnAt:     time.Now().UTC().Format(time.RFC3339),
		}
		if err := source.SaveWinner(ctx, winner); err != nil {
			log.Warn("Unable to save winner: ", err)
		} else {
			saved = true
		}
	}

	return apiGwResponse.OkResponse(drawResponse{
		Success:      true,
		Id:           entry.Id,
		Number:       entry.Number,
		Name:         entry.Name,
		Description:  entry.Description,
		TotalEntries: len(eligible),
		MockData:     isMock,
		WinnerSaved:  saved,
	})
}

func handleWinners(ctx context.Context) (events.APIGatewayProxyResponse, error) {
	winners, err := source.Winners(ctx)
	if err != nil {
		log.Error("Failed to fetch winners: ", err)
		return apiGwResponse.ErrResponse(ctx, 500, err.Error(), "Failed to fetch winners")
	}
	return apiGwResponse.OkResponse(map[string]any{
		"success": true,
		"winners": winners,
	})
}

func splitParam(raw string) map[string]bool {
	set := map[string]bool{}
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			set[part] = true
		}
	}
	return set
}
