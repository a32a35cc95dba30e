package emailjs

// SendRequest тело запроса к EmailJS
type SendRequest struct {
	ServiceID      string         `json:"service_id"`
	TemplateID     string         `json:"template_id"`
	UserID         string         `json:"user_id"` // публичный ключ
	TemplateParams TemplateParams `json:"template_params"`
}

// TemplateParams параметры шаблона письма
type TemplateParams struct {
	ToName         string `json:"to_name"`
	FromName       string `json:"from_name"`
	BookingName    string `json:"booking_name"`
	BookingGuests  int    `json:"booking_guests"`
	BookingStart   string `json:"booking_start"` // 1.6.2025
	BookingEnd     string `json:"booking_end"`
	BookingDays    int    `json:"booking_days"`
	BookingComment string `json:"booking_comment"`
	NeedsApproval  string `json:"needs_approval"`
	Message        string `json:"message"`
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
