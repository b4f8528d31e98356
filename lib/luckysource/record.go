// Package luckysource reads draw entries from a Google Spreadsheet and
// hides the live-vs-mock distinction: when the live integration is not
// available for any reason, a fixed fallback list is served instead.
package luckysource

type Record struct {
	Id          int    `json:"id"`
	Number      int    `json:"number"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Winner is one persisted draw outcome, a row in the winners sheet.
type Winner struct {
	DrawId      string `json:"draw_id"`
	Id          int    `json:"id"`
	Number      int    `json:"number"`
	Name        string `json:"name"`
	Description string `json:"description"`
	DrawnAt     string `json:"drawn_at"`
}
