package request

type CreateTransferRequest struct {
	Title     string  `json:"title" validate:"required"`
	From      string  `json:"from" validate:"required"`
	To        string  `json:"to" validate:"required"`
	Departure string  `json:"departure" validate:"required"`
	Price     float64 `json:"price" validate:"gte=0"`
	Seats     int     `json:"seats" validate:"omitempty,gte=1"`
	Status    string  `json:"status" validate:"omitempty,oneof=active sold"`
}

type UpdateTransferRequest struct {
	Title     string  `json:"title" validate:"required"`
	From      string  `json:"from" validate:"required"`
	To        string  `json:"to" validate:"required"`
	Departure string  `json:"departure" validate:"required"`
	Price     float64 `json:"price" validate:"gte=0"`
	Seats     int     `json:"seats" validate:"omitempty,gte=1"`
	Status    string  `json:"status" validate:"omitempty,oneof=active sold"`
}

type UpdateTransferStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=active sold"`
}
