package dto

type CreateAppointmentRequest struct {
	Client          string `json:"client"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Device          string `json:"device"`
	Issue           string `json:"issue"`
	Date            string `json:"date"`
	LocationType    string `json:"locationType"`
	LocationAddress string `json:"locationAddress,omitempty"`
}

type EstimateResponse struct {
	Device string  `json:"device"`
	Issue  string  `json:"issue"`
	Price  float64 `json:"price"`
}
