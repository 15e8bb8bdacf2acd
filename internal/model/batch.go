package model

import "time"

type BatchType string

const (
	BatchTypeSent     BatchType = "sent"
	BatchTypeReceived BatchType = "received"
)

func (t BatchType) Valid() bool {
	return t == BatchTypeSent || t == BatchTypeReceived
}

// Batch is one day's outbound confirmation run (sent) or the inbound
// response collection for that day (received). Dates are zero-padded ISO
// strings, so lexicographic order equals chronological order.
type Batch struct {
	ID            string    `json:"id" db:"id"`
	Date          string    `json:"date" db:"date"`
	Type          BatchType `json:"type" db:"type"`
	FileName      string    `json:"file_name" db:"file_name"`
	Channel       string    `json:"channel" db:"channel"`
	CustomerCount int       `json:"customer_count" db:"customer_count"`
	Confirmed     int       `json:"confirmed" db:"confirmed"`
	NotConfirmed  int       `json:"not_confirmed" db:"not_confirmed"`
	Questions     int       `json:"questions" db:"questions"`
	Other         int       `json:"other" db:"other"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`

	// TotalResponses is derived for received batches when a page is
	// served; it is never stored.
	TotalResponses *int `json:"total_responses,omitempty" db:"-"`
}

// BatchFilters narrows and pages a batch listing. Zero Limit falls back
// to the default page size.
type BatchFilters struct {
	Type     BatchType `json:"type" form:"type"`
	DateFrom string    `json:"date_from" form:"date_from"`
	DateTo   string    `json:"date_to" form:"date_to"`
	Limit    int       `json:"limit" form:"limit"`
	Offset   int       `json:"offset" form:"offset"`
}

// BatchPage is a single page of a filtered listing. Total counts the
// whole filtered set, not the page.
type BatchPage struct {
	Batches []*Batch `json:"batches"`
	Total   int      `json:"total"`
}

type CreateBatchRequest struct {
	Date          string    `json:"date" binding:"required"`
	Type          BatchType `json:"type" binding:"required"`
	FileName      string    `json:"file_name"`
	Channel       string    `json:"channel"`
	CustomerCount int       `json:"customer_count" binding:"min=0"`
	Confirmed     int       `json:"confirmed" binding:"min=0"`
	NotConfirmed  int       `json:"not_confirmed" binding:"min=0"`
	Questions     int       `json:"questions" binding:"min=0"`
	Other         int       `json:"other" binding:"min=0"`
}
