package payment

// CreatePaymentRequest mirrors the create-payment wire format. The
// split group fields are checked against split_by in the handler;
// binding tags only cover the unconditional requirements.
type CreatePaymentRequest struct {
	Date       string  `json:"date" binding:"required"`
	Category   string  `json:"category"`
	Amount     float64 `json:"amount" binding:"required,gt=0"`
	PayerID    uint    `json:"payer_id" binding:"required"`
	Note       string  `json:"note"`
	SplitBy    string  `json:"split_by"`
	SplitUsers []uint  `json:"splitUsers"`
	SplitRooms []uint  `json:"splitRooms"`
}
