package bookings

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/m04kA/sommerhus-booking/internal/calendar"
	"github.com/m04kA/sommerhus-booking/internal/domain"
	"github.com/m04kA/sommerhus-booking/internal/integrations/notifier"
	"github.com/m04kA/sommerhus-booking/internal/service/bookings/models"
)

// DefaultNotifyTimeout сколько ждать шлюз уведомлений, если не задано иное
const DefaultNotifyTimeout = 15 * time.Second

// Service движок бронирований - единственный, кто изменяет набор бронирований.
// Каждая изменяющая операция: валидация -> изменение в памяти -> сохранение -> уведомление.
// Ошибки сохранения и уведомления только логируются и не откатывают изменение.
type Service struct {
	mu       sync.RWMutex
	bookings []*domain.Booking

	store         Store
	notifier      NotificationGateway
	metrics       Metrics
	validate      *validator.Validate
	timeProvider  TimeProvider
	newID         func() string
	notifyTimeout time.Duration
	logger        Logger
}

// NewService создает новый экземпляр движка бронирований с пустым набором
func NewService(
	store Store,
	notifier NotificationGateway,
	metrics Metrics,
	notifyTimeout time.Duration,
	logger Logger,
) *Service {
	if metrics == nil {
		metrics = nopMetrics{}
	}
	if notifyTimeout <= 0 {
		notifyTimeout = DefaultNotifyTimeout
	}

	return &Service{
		bookings:      make([]*domain.Booking, 0),
		store:         store,
		notifier:      notifier,
		metrics:       metrics,
		validate:      validator.New(),
		timeProvider:  &RealTimeProvider{},
		newID:         uuid.NewString,
		notifyTimeout: notifyTimeout,
		logger:        logger,
	}
}

// Load загружает набор бронирований из хранилища. Вызывается один раз при старте.
// При ошибке хранилища набор остается пустым, ошибка только логируется.
func (s *Service) Load(ctx context.Context) int {
	loaded, err := s.store.Load(ctx)
	if err != nil {
		s.logger.Warn("Load: failed to load booking set, starting empty: %v", err)
		s.metrics.IncStoreFailure("load")
		loaded = make([]*domain.Booking, 0)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.bookings = loaded
	s.updateGauges()

	s.logger.Info("Load: loaded %d bookings", len(loaded))
	return len(loaded)
}

// Propose создает бронирование на выбранный диапазон дат.
// Бронирования длиннее ApprovalThresholdDays ждут подтверждения владельцев.
func (s *Service) Propose(ctx context.Context, req *models.ProposeRequest) (*models.ProposeResult, error) {
	if err := validateProposeRequest(s.validate, req); err != nil {
		s.logger.Warn("Propose: validation failed: %v", err)
		s.metrics.IncBookingOperation("propose", "invalid")
		return nil, err
	}

	dates := domain.NewDateRange(req.Start, req.End)
	stayLength := dates.Days()
	needsApproval := domain.RequiresApproval(stayLength)

	s.logger.Info("Propose: name=%s, guests=%d, period=%s to %s, days=%d",
		req.Name, req.Guests, domain.FormatDate(dates.Start), domain.FormatDate(dates.End), stayLength)

	s.mu.Lock()

	// Повторная проверка пересечений: выбор дат в календаре - не единственный клиент
	if conflicts := calendar.NewIndex(s.bookings).Conflicts(dates); len(conflicts) > 0 {
		s.mu.Unlock()
		s.logger.Warn("Propose: period %s to %s overlaps booking id=%s",
			domain.FormatDate(dates.Start), domain.FormatDate(dates.End), conflicts[0].ID)
		s.metrics.IncBookingOperation("propose", "conflict")
		return nil, fmt.Errorf("%w: overlaps booking id=%s (%s to %s)", ErrDateConflict,
			conflicts[0].ID, domain.FormatDate(conflicts[0].StartDate), domain.FormatDate(conflicts[0].EndDate))
	}

	now := s.timeProvider.Now()
	status := domain.StatusConfirmed
	if needsApproval {
		status = domain.StatusPending
	}

	booking := &domain.Booking{
		ID:                   s.newID(),
		Name:                 req.Name,
		Guests:               req.Guests,
		Comment:              req.Comment,
		StartDate:            dates.Start,
		EndDate:              dates.End,
		Status:               status,
		FlightTicketDeadline: now.Add(domain.TicketDeadline),
		CreatedAt:            now,
	}

	s.bookings = append(s.bookings, booking)
	snapshot := booking.Clone()
	persisted := s.persist(ctx, "propose")
	s.mu.Unlock()

	outcome := notifier.OutcomeCreatedAutoConfirmed
	if needsApproval {
		outcome = notifier.OutcomeCreatedNeedsApproval
	}
	notified := s.notify(ctx, notifier.RecipientOwner, outcome, snapshot)

	s.metrics.IncBookingOperation("propose", string(status))
	s.logger.Info("Propose: created booking id=%s with status=%s", snapshot.ID, snapshot.Status)

	return &models.ProposeResult{
		Booking:          snapshot,
		StayLength:       stayLength,
		RequiresApproval: needsApproval,
		Persisted:        persisted,
		Notified:         notified,
	}, nil
}

// Approve подтверждает ожидающее бронирование.
// Повторное подтверждение уже подтвержденного бронирования возвращает ErrBookingNotFound.
func (s *Service) Approve(ctx context.Context, id string) (*models.MutationResult, error) {
	s.logger.Info("Approve: approving booking id=%s", id)

	s.mu.Lock()

	booking, _ := s.find(id)
	if booking == nil {
		s.mu.Unlock()
		s.logger.Warn("Approve: booking id=%s not found", id)
		s.metrics.IncBookingOperation("approve", "not_found")
		return nil, ErrBookingNotFound
	}
	if !booking.IsPending() {
		s.mu.Unlock()
		s.logger.Warn("Approve: booking id=%s is not pending, status=%s", id, booking.Status)
		s.metrics.IncBookingOperation("approve", "not_pending")
		return nil, fmt.Errorf("%w: no pending booking with id=%s", ErrBookingNotFound, id)
	}

	booking.Status = domain.StatusConfirmed
	snapshot := booking.Clone()
	persisted := s.persist(ctx, "approve")
	s.mu.Unlock()

	notified := s.notify(ctx, notifier.RecipientRequester, notifier.OutcomeApproved, snapshot)

	s.metrics.IncBookingOperation("approve", "confirmed")
	s.logger.Info("Approve: booking id=%s confirmed", id)

	return &models.MutationResult{Booking: snapshot, Persisted: persisted, Notified: notified}, nil
}

// Reject отклоняет бронирование: сначала уведомление, затем удаление.
// Бронирование удаляется независимо от результата уведомления.
func (s *Service) Reject(ctx context.Context, id string) (*models.MutationResult, error) {
	s.logger.Info("Reject: rejecting booking id=%s", id)

	s.mu.RLock()
	booking, _ := s.find(id)
	var snapshot *domain.Booking
	if booking != nil {
		snapshot = booking.Clone()
	}
	s.mu.RUnlock()

	if snapshot == nil {
		s.logger.Warn("Reject: booking id=%s not found", id)
		s.metrics.IncBookingOperation("reject", "not_found")
		return nil, ErrBookingNotFound
	}

	notified := s.notify(ctx, notifier.RecipientRequester, notifier.OutcomeRejected, snapshot)

	s.mu.Lock()
	persisted := true
	if s.remove(id) {
		persisted = s.persist(ctx, "reject")
	}
	s.mu.Unlock()

	s.metrics.IncBookingOperation("reject", "rejected")
	s.logger.Info("Reject: booking id=%s rejected and deleted", id)

	return &models.MutationResult{Booking: snapshot, Persisted: persisted, Notified: notified}, nil
}

// UploadTicket прикрепляет изображение билета к бронированию.
// Срок загрузки не проверяется - он только отображается.
func (s *Service) UploadTicket(ctx context.Context, id string, image string) (*models.MutationResult, error) {
	s.logger.Info("UploadTicket: uploading ticket for booking id=%s (%d bytes)", id, len(image))

	if err := validateTicketImage(image); err != nil {
		s.logger.Warn("UploadTicket: validation failed for booking id=%s: %v", id, err)
		s.metrics.IncBookingOperation("upload_ticket", "invalid")
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	booking, _ := s.find(id)
	if booking == nil {
		s.logger.Warn("UploadTicket: booking id=%s not found", id)
		s.metrics.IncBookingOperation("upload_ticket", "not_found")
		return nil, ErrBookingNotFound
	}

	if booking.IsTicketOverdue(s.timeProvider.Now()) {
		s.logger.Info("UploadTicket: booking id=%s uploads after deadline %s", id, booking.FlightTicketDeadline.Format(time.RFC3339))
	}

	booking.FlightTicketUploaded = true
	booking.FlightTicketImage = &image
	snapshot := booking.Clone()
	persisted := s.persist(ctx, "upload_ticket")

	s.metrics.IncBookingOperation("upload_ticket", "uploaded")
	s.logger.Info("UploadTicket: ticket stored for booking id=%s", id)

	return &models.MutationResult{Booking: snapshot, Persisted: persisted}, nil
}

// Delete удаляет бронирование в любом статусе.
// Удаление отсутствующего бронирования ничего не делает.
func (s *Service) Delete(ctx context.Context, id string) *models.DeleteResult {
	s.logger.Info("Delete: deleting booking id=%s", id)

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.remove(id) {
		s.logger.Info("Delete: booking id=%s already absent", id)
		s.metrics.IncBookingOperation("delete", "absent")
		return &models.DeleteResult{Deleted: false, Persisted: true}
	}

	persisted := s.persist(ctx, "delete")

	s.metrics.IncBookingOperation("delete", "deleted")
	s.logger.Info("Delete: booking id=%s deleted", id)

	return &models.DeleteResult{Deleted: true, Persisted: persisted}
}

// List возвращает копии всех бронирований, отсортированные по дате заезда
func (s *Service) List() []*domain.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := make([]*domain.Booking, 0, len(s.bookings))
	for _, b := range s.bookings {
		list = append(list, b.Clone())
	}
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].StartDate.Before(list[j].StartDate)
	})
	return list
}

// Get возвращает копию бронирования по ID
func (s *Service) Get(id string) (*domain.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	booking, _ := s.find(id)
	if booking == nil {
		return nil, ErrBookingNotFound
	}
	return booking.Clone(), nil
}

// TicketStatus возвращает состояние загрузки билета на момент now
func (s *Service) TicketStatus(id string, now time.Time) (*models.TicketStatus, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	booking, _ := s.find(id)
	if booking == nil {
		return nil, ErrBookingNotFound
	}
	return &models.TicketStatus{
		Uploaded: booking.FlightTicketUploaded,
		Deadline: booking.FlightTicketDeadline,
		Overdue:  booking.IsTicketOverdue(now),
	}, nil
}

// Occupant возвращает бронирование, занимающее дату
func (s *Service) Occupant(date time.Time) (*domain.Booking, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	booking, ok := calendar.NewIndex(s.bookings).Occupant(date)
	if !ok {
		return nil, false
	}
	return booking.Clone(), true
}

// Month возвращает занятость дней месяца
func (s *Service) Month(year int, month time.Month) []calendar.Day {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return calendar.NewIndex(s.bookings).Month(year, month)
}

// Now возвращает текущее время движка
func (s *Service) Now() time.Time {
	return s.timeProvider.Now()
}

// Вспомогательные методы

// find ищет бронирование по ID, вызывается под блокировкой
func (s *Service) find(id string) (*domain.Booking, int) {
	for i, b := range s.bookings {
		if b.ID == id {
			return b, i
		}
	}
	return nil, -1
}

// remove удаляет бронирование из набора, вызывается под блокировкой
func (s *Service) remove(id string) bool {
	_, idx := s.find(id)
	if idx < 0 {
		return false
	}
	s.bookings = append(s.bookings[:idx:idx], s.bookings[idx+1:]...)
	return true
}

// persist сохраняет набор, вызывается под блокировкой.
// Ошибка сохранения - только предупреждение: состояние в памяти остается главным.
func (s *Service) persist(ctx context.Context, operation string) bool {
	s.updateGauges()

	snapshot := make([]*domain.Booking, 0, len(s.bookings))
	for _, b := range s.bookings {
		snapshot = append(snapshot, b.Clone())
	}

	if err := s.store.Save(context.WithoutCancel(ctx), snapshot); err != nil {
		s.logger.Warn("%s: failed to save booking set, keeping in-memory state: %v", operation, err)
		s.metrics.IncStoreFailure("save")
		return false
	}
	return true
}

// notify отправляет уведомление. Недоступность шлюза - обычный исход, не ошибка.
func (s *Service) notify(ctx context.Context, recipient notifier.Recipient, outcome notifier.Outcome, booking *domain.Booking) bool {
	if s.notifier == nil || !s.notifier.Available() {
		s.logger.Warn("notify: notification gateway unavailable, outcome=%s for booking id=%s not sent", outcome, booking.ID)
		return false
	}

	notifyCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.notifyTimeout)
	defer cancel()

	event := notifier.NewEvent(recipient, outcome, booking, s.timeProvider.Now())
	if err := s.notifier.Notify(notifyCtx, event); err != nil {
		s.logger.Warn("notify: failed to send outcome=%s for booking id=%s: %v", outcome, booking.ID, err)
		return false
	}
	return true
}

// updateGauges обновляет число бронирований по статусам, вызывается под блокировкой
func (s *Service) updateGauges() {
	var pending, confirmed int
	for _, b := range s.bookings {
		if b.IsPending() {
			pending++
		} else {
			confirmed++
		}
	}
	s.metrics.SetBookings(string(domain.StatusPending), pending)
	s.metrics.SetBookings(string(domain.StatusConfirmed), confirmed)
}
