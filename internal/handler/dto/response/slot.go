package response

import (
	"time"

	"parkhub/internal/usecase/queries"

	"github.com/google/uuid"
)

type SlotResponse struct {
	ID               uuid.UUID  `json:"id"`
	Code             string     `json:"code"`
	Status           string     `json:"status"`
	RatePerHour      *int32     `json:"rate_per_hour,omitempty"`
	Reserved         bool       `json:"reserved"`
	Location         string     `json:"location,omitempty"`
	CurrentBookingID *uuid.UUID `json:"current_booking_id,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

type SlotCountsResponse struct {
	Total    int64 `json:"total"`
	Vacant   int64 `json:"vacant"`
	Occupied int64 `json:"occupied"`
	Reserved int64 `json:"reserved"`
}

func FromSlotView(v *queries.SlotView) *SlotResponse {
	return &SlotResponse{
		ID:               v.ID,
		Code:             v.Code,
		Status:           v.Status,
		RatePerHour:      v.RatePerHour,
		Reserved:         v.Reserved,
		Location:         v.Location,
		CurrentBookingID: v.CurrentBookingID,
		CreatedAt:        v.CreatedAt,
		UpdatedAt:        v.UpdatedAt,
	}
}

func FromSlotList(views []*queries.SlotView) []*SlotResponse {
	out := make([]*SlotResponse, 0, len(views))
	for _, v := range views {
		out = append(out, FromSlotView(v))
	}
	return out
}

func FromSlotCounts(c queries.SlotCounts) SlotCountsResponse {
	return SlotCountsResponse{
		Total:    c.Total,
		Vacant:   c.Vacant,
		Occupied: c.Occupied,
		Reserved: c.Reserved,
	}
}
