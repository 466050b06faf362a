package dto

import (
	"hotel/internal/domains/payment/model"
	"hotel/shared"
	"hotel/shared/timezone"
)

type PaymentResponse struct {
	Date    string  `json:"date"`
	GuestID int     `json:"guest_id"`
	Amount  float64 `json:"amount"`
	Reason  string  `json:"reason"`
}

func (r *PaymentResponse) FromModel(model model.Payment) {
	r.Date = timezone.FormatDate(model.Date)
	r.GuestID = model.GuestID
	r.Amount = model.Amount
	r.Reason = string(model.Reason)
}

type GetPaymentsResponse struct {
	Payments  []PaymentResponse `json:"payments"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetPaymentsResponse) FromModels(models []model.Payment, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Payments = make([]PaymentResponse, len(models))
	for i, mod := range models {
		r.Payments[i].FromModel(mod)
	}
}

// PaymentsReport lists the payments of one day with their net total.
type PaymentsReport struct {
	Date     string            `json:"date"`
	Payments []PaymentResponse `json:"payments"`
	Total    float64           `json:"total"`
}

func (r *PaymentsReport) FromModels(date string, models []model.Payment) {
	r.Date = date
	r.Payments = make([]PaymentResponse, len(models))

	total := 0.0

	for i, mod := range models {
		r.Payments[i].FromModel(mod)
		total += mod.Amount
	}

	r.Total = shared.RoundMoney(total)
}
