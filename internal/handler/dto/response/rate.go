package response

import "parkhub/internal/usecase/queries"

type RateResponse struct {
	Price    int32 `json:"price"`
	Interval int32 `json:"interval"`
}

func FromRateView(v queries.RateView) RateResponse {
	return RateResponse{
		Price:    v.Price,
		Interval: v.IntervalMinutes,
	}
}
