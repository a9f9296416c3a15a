// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/budgeteur/backend/internal/domain/valueobject"
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

// DateRangeResponse is a range with its inclusive last day.
type DateRangeResponse struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Label     string `json:"label"`
}

func toDateRangeResponse(r valueobject.DateRange) DateRangeResponse {
	end := r.Start
	if !r.IsEmpty() {
		end = r.LastDay()
	}
	return DateRangeResponse{
		StartDate: formatDate(r.Start),
		EndDate:   formatDate(end),
		Label:     r.Label(),
	}
}

func formatDate(t time.Time) string {
	return t.Format(valueobject.DateLayout)
}

// toAmount converts money to a JSON number with cent precision.
func toAmount(d decimal.Decimal) float64 {
	f, _ := d.Round(2).Float64()
	return f
}
