package luckysource

// MockRecords returns the fixed fallback list served when the live
// integration is unavailable. Always the same five entries.
func MockRecords() []Record {
	return []Record{
		{Id: 1, Number: 777, Name: "Lucky Seven", Description: "The luckiest number"},
		{Id: 2, Number: 888, Name: "Fortune Eight", Description: "Symbol of prosperity"},
		{Id: 3, Number: 333, Name: "Triple Three", Description: "Magic number"},
		{Id: 4, Number: 999, Name: "Cloud Nine", Description: "Highest luck"},
		{Id: 5, Number: 111, Name: "New Beginning", Description: "Fresh start"},
	}
}
