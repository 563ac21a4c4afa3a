package vehicleservice

// Vehicle модель транспортного средства из VehicleService
type Vehicle struct {
	ID           int64  `json:"id"`
	UserID       int64  `json:"user_id"`
	Brand        string `json:"brand"`
	Model        string `json:"model"`
	LicensePlate string `json:"license_plate"`
	Color        string `json:"color"`
	IsSelected   bool   `json:"is_selected"`
}

// ErrorResponse модель ошибки от VehicleService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
