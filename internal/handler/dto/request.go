package dto

type TokenRequest struct {
	Email string `json:"email" binding:"required,email"`
	Name  string `json:"name"`
}

type CreateUserRequest struct {
	Email          string `json:"email" binding:"required,email"`
	Name           string `json:"name"`
	PhotoURL       string `json:"photoURL"`
	TelegramChatID *int64 `json:"telegramChatId"`
}

type CreateServiceRequest struct {
	Name        string   `json:"name" binding:"required"`
	Category    string   `json:"category" binding:"required"`
	Price       *float64 `json:"price" binding:"required,gte=0"`
	Unit        string   `json:"unit"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
}

type CreateBookingRequest struct {
	UserEmail   string  `json:"userEmail" binding:"required,email"`
	UserName    string  `json:"userName"`
	ServiceID   string  `json:"serviceId" binding:"required,len=24,hexadecimal"`
	ServiceName string  `json:"serviceName"`
	Price       float64 `json:"price" binding:"gte=0"`
	BookingDate string  `json:"bookingDate"`
	Location    string  `json:"location"`
}

type ConfirmBookingRequest struct {
	DecoratorName string `json:"decoratorName" binding:"required"`
}

type PaymentIntentRequest struct {
	Price float64 `json:"price" binding:"required,gt=0"`
}

type RecordPaymentRequest struct {
	BookingID     string  `json:"bookingId" binding:"required,len=24,hexadecimal"`
	TransactionID string  `json:"transactionId" binding:"required"`
	Price         float64 `json:"price" binding:"required,gt=0"`
	Email         string  `json:"email" binding:"required,email"`
}
