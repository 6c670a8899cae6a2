package catalog

type CreateRoomRequest struct {
	Number   string  `json:"number" binding:"required"`
	Category string  `json:"category" binding:"required"`
	Price    float64 `json:"price"`
}

type CreateGuestRequest struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}
