package dto

type UpdateEventDateReq struct {
	EventDate string `json:"eventDate" binding:"required"`
}

type AdminLoginReq struct {
	Username string `json:"username"`
	Password string `json:"password" binding:"required"`
}
