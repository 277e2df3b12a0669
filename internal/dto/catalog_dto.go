package dto

type CreateProductRequest struct {
	Model       string `json:"model"`
	Price       Price  `json:"price"`
	Storage     string `json:"storage"`
	Color       string `json:"color"`
	Condition   string `json:"condition"`
	Description string `json:"description"`
	Image       string `json:"image"`
}
