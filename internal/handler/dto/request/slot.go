package request

import "parkhub/internal/usecase/commands"

type CreateSlotRequest struct {
	Code        string  `json:"code" binding:"required,min=1,max=32"`
	Status      *string `json:"status,omitempty" binding:"omitempty,oneof=vacant occupied reserved"`
	RatePerHour *int32  `json:"rate_per_hour,omitempty" binding:"omitempty,gt=0"`
	Reserved    *bool   `json:"reserved,omitempty"`
	Location    *string `json:"location,omitempty" binding:"omitempty,max=200"`
}

func (r CreateSlotRequest) ToParams() commands.CreateSlotParams {
	return commands.CreateSlotParams{
		Code:        r.Code,
		Status:      r.Status,
		RatePerHour: r.RatePerHour,
		Reserved:    r.Reserved,
		Location:    r.Location,
	}
}

type UpdateSlotRequest struct {
	Code        *string `json:"code,omitempty" binding:"omitempty,min=1,max=32"`
	Status      *string `json:"status,omitempty" binding:"omitempty,oneof=vacant occupied reserved"`
	RatePerHour *int32  `json:"rate_per_hour,omitempty" binding:"omitempty,gt=0"`
	Reserved    *bool   `json:"reserved,omitempty"`
	Location    *string `json:"location,omitempty" binding:"omitempty,max=200"`
}

func (r UpdateSlotRequest) ToParams() commands.UpdateSlotParams {
	return commands.UpdateSlotParams{
		Code:        r.Code,
		Status:      r.Status,
		RatePerHour: r.RatePerHour,
		Reserved:    r.Reserved,
		Location:    r.Location,
	}
}
