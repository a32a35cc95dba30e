package upload_ticket

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"strings"

	"github.com/m04kA/sommerhus-booking/internal/api/handlers"
)

// UploadTicketResponse HTTP response model
type UploadTicketResponse struct {
	Booking   *handlers.BookingResponse `json:"booking"`
	Persisted bool                      `json:"persisted"`
}

// toDataURL кодирует изображение в data URL, другие типы файлов не принимаются
func toDataURL(data []byte) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("empty file")
	}
	mime := http.DetectContentType(data)
	if !strings.HasPrefix(mime, "image/") {
		return "", fmt.Errorf("unsupported content type %s", mime)
	}
	return fmt.Sprintf("data:%s;base64,%s", mime, base64.StdEncoding.EncodeToString(data)), nil
}
