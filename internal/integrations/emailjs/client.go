package emailjs

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/m04kA/sommerhus-booking/internal/domain"
	"github.com/m04kA/sommerhus-booking/internal/integrations/notifier"
)

const (
	DefaultBaseURL = "https://api.emailjs.com"
	sendPath       = "/api/v1.0/email/send"

	placeholderPrefix = "YOUR_"
)

// Config параметры подключения к EmailJS
type Config struct {
	BaseURL    string
	PublicKey  string
	ServiceID  string
	TemplateID string
	OwnerName  string // имя владельцев дома в письмах
	Timeout    time.Duration
}

// Client клиент для отправки писем через EmailJS
type Client struct {
	cfg        Config
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента EmailJS
func NewClient(cfg Config, log Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		log: log,
	}
}

// Available возвращает true, если ключи EmailJS заданы и не являются заглушками
func (c *Client) Available() bool {
	for _, v := range []string{c.cfg.PublicKey, c.cfg.ServiceID, c.cfg.TemplateID} {
		if v == "" || strings.HasPrefix(v, placeholderPrefix) {
			return false
		}
	}
	return true
}

// Notify отправляет письмо по событию бронирования
func (c *Client) Notify(ctx context.Context, event notifier.Event) error {
	if !c.Available() {
		return ErrNotConfigured
	}

	body, err := json.Marshal(SendRequest{
		ServiceID:      c.cfg.ServiceID,
		TemplateID:     c.cfg.TemplateID,
		UserID:         c.cfg.PublicKey,
		TemplateParams: c.templateParams(event),
	})
	if err != nil {
		return fmt.Errorf("%w: failed to encode request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+sendPath, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK:
		c.log.Info("EmailJS: sent outcome=%s for booking id=%s to %s", event.Outcome, event.Booking.ID, event.Recipient)
		return nil
	case http.StatusBadRequest, http.StatusForbidden:
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: status %d: %s", ErrRejected, resp.StatusCode, string(body))
	default:
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}
}

// templateParams собирает параметры шаблона письма
func (c *Client) templateParams(event notifier.Event) TemplateParams {
	toName, fromName := c.cfg.OwnerName, event.Booking.Name
	if event.Recipient == notifier.RecipientRequester {
		toName, fromName = event.Booking.Name, c.cfg.OwnerName
	}

	return TemplateParams{
		ToName:         toName,
		FromName:       fromName,
		BookingName:    event.Booking.Name,
		BookingGuests:  event.Booking.Guests,
		BookingStart:   domain.FormatDisplayDate(event.Booking.StartDate),
		BookingEnd:     domain.FormatDisplayDate(event.Booking.EndDate),
		BookingDays:    event.Booking.StayLength,
		BookingComment: event.Booking.Comment,
		NeedsApproval:  event.NeedsApproval(),
		Message:        event.Message(),
	}
}
