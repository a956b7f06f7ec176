package order

import "time"

type orderPayload struct {
	Ref       string    `json:"ref"`
	Number    string    `json:"number"`
	StoreName string    `json:"store_name"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}
