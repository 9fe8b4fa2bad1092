package response

import (
	"fmt"
	"time"

	"parkhub/internal/usecase/commands"
	"parkhub/internal/usecase/queries"

	"github.com/google/uuid"
)

const (
	statusActive         = "Active"
	statusPaymentPending = "Payment Pending"
)

type BookingResponse struct {
	ID              uuid.UUID  `json:"id"`
	SlotID          uuid.UUID  `json:"slot_id"`
	SlotCode        string     `json:"slot_code"`
	SlotLocation    string     `json:"slot_location,omitempty"`
	UserID          uuid.UUID  `json:"user_id"`
	UserEmail       string     `json:"user_email"`
	StartTime       time.Time  `json:"start_time"`
	EndTime         *time.Time `json:"end_time,omitempty"`
	DurationMinutes *int32     `json:"duration_minutes,omitempty"`
	BlocksUsed      *int32     `json:"blocks_used,omitempty"`
	Fare            *int32     `json:"fare,omitempty"`
	Status          string     `json:"status"`
}

type BookingListResponse struct {
	ID              uuid.UUID  `json:"id"`
	SlotCode        string     `json:"slot_code"`
	UserEmail       string     `json:"user_email"`
	StartTime       time.Time  `json:"start_time"`
	EndTime         *time.Time `json:"end_time,omitempty"`
	DurationMinutes *int32     `json:"duration_minutes,omitempty"`
	Fare            *int32     `json:"fare,omitempty"`
	Status          string     `json:"status"`
}

// ExitResponse is the receipt shown at the gate when a booking closes.
type ExitResponse struct {
	BookingID  uuid.UUID `json:"booking_id"`
	SlotCode   string    `json:"slot_code"`
	Duration   string    `json:"duration"`
	BlocksUsed int32     `json:"blocks_used"`
	Fare       string    `json:"fare"`
	Status     string    `json:"status"`
	ExitTime   time.Time `json:"exit_time"`
}

func bookingStatus(active bool) string {
	if active {
		return statusActive
	}
	return statusPaymentPending
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	return &BookingResponse{
		ID:              v.ID,
		SlotID:          v.SlotID,
		SlotCode:        v.SlotCode,
		SlotLocation:    v.SlotLocation,
		UserID:          v.UserID,
		UserEmail:       v.UserEmail,
		StartTime:       v.StartTime,
		EndTime:         v.EndTime,
		DurationMinutes: v.DurationMinutes,
		BlocksUsed:      v.BlocksUsed,
		Fare:            v.Fare,
		Status:          bookingStatus(v.Active),
	}
}

func FromBookingListItem(v *queries.BookingListItem) *BookingListResponse {
	return &BookingListResponse{
		ID:              v.ID,
		SlotCode:        v.SlotCode,
		UserEmail:       v.UserEmail,
		StartTime:       v.StartTime,
		EndTime:         v.EndTime,
		DurationMinutes: v.DurationMinutes,
		Fare:            v.Fare,
		Status:          bookingStatus(v.Active),
	}
}

func FromBookingList(items []*queries.BookingListItem) []*BookingListResponse {
	out := make([]*BookingListResponse, 0, len(items))
	for _, item := range items {
		out = append(out, FromBookingListItem(item))
	}
	return out
}

func FromExitSummary(s *commands.ExitSummary) *ExitResponse {
	return &ExitResponse{
		BookingID:  s.BookingID,
		SlotCode:   s.SlotCode,
		Duration:   fmt.Sprintf("%d minutes", s.DurationMinutes),
		BlocksUsed: s.BlocksUsed,
		Fare:       fmt.Sprintf("₹%d", s.Fare),
		Status:     statusPaymentPending,
		ExitTime:   s.EndTime,
	}
}
