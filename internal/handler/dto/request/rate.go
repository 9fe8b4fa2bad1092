package request

type SetRateRequest struct {
	Price    int32 `json:"price" binding:"required,gt=0"`
	Interval int32 `json:"interval" binding:"required,gt=0"`
}
