package booking

import (
	"context"
	"sync"
	"time"

	bookingRepo "gamedey/database/repository/booking"
	directoryRepo "gamedey/database/repository/directory"
	userRepo "gamedey/database/repository/user"
	"gamedey/models"
)

// fakeBookingRepo is an in-memory BookingRepository.
type fakeBookingRepo struct {
	mu       sync.Mutex
	bookings map[string]models.Booking
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[string]models.Booking)}
}

func (r *fakeBookingRepo) Create(_ context.Context, b *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bookings[b.ID] = *b
	return nil
}

func (r *fakeBookingRepo) GetByID(_ context.Context, id string) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrNotFound
	}
	return &b, nil
}

func (r *fakeBookingRepo) Update(_ context.Context, b *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.bookings[b.ID]; !ok {
		return bookingRepo.ErrNotFound
	}
	r.bookings[b.ID] = *b
	return nil
}

func (r *fakeBookingRepo) List(_ context.Context, filter bookingRepo.Filter) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Booking
	for _, b := range r.bookings {
		if filter.UserID != "" && b.UserID != filter.UserID {
			continue
		}
		if filter.FacilityID != "" && b.FacilityID != filter.FacilityID {
			continue
		}
		if filter.CoachID != "" && b.CoachID != filter.CoachID {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

func (r *fakeBookingRepo) FindOverlapping(_ context.Context, facilityID, coachID string, start, end time.Time) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Booking
	for _, b := range r.bookings {
		if b.Status != models.BookingStatusPending && b.Status != models.BookingStatusConfirmed {
			continue
		}
		onFacility := facilityID != "" && b.FacilityID == facilityID
		onCoach := coachID != "" && b.CoachID == coachID
		if !onFacility && !onCoach {
			continue
		}
		if b.Overlaps(start, end) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) EnsureIndexes() error { return nil }

// fakeDirectoryRepo serves directory lookups from maps.
type fakeDirectoryRepo struct {
	sports     map[string]models.Sport
	facilities map[string]models.Facility
	coaches    map[string]models.Coach
	packages   map[string]models.SessionPackage
}

func newFakeDirectoryRepo() *fakeDirectoryRepo {
	return &fakeDirectoryRepo{
		sports:     make(map[string]models.Sport),
		facilities: make(map[string]models.Facility),
		coaches:    make(map[string]models.Coach),
		packages:   make(map[string]models.SessionPackage),
	}
}

func (r *fakeDirectoryRepo) FindSport(_ context.Context, id string) (*models.Sport, error) {
	if s, ok := r.sports[id]; ok {
		return &s, nil
	}
	return nil, directoryRepo.ErrNotFound
}

func (r *fakeDirectoryRepo) FindFacility(_ context.Context, id string) (*models.Facility, error) {
	if f, ok := r.facilities[id]; ok {
		return &f, nil
	}
	return nil, directoryRepo.ErrNotFound
}

func (r *fakeDirectoryRepo) FindCoach(_ context.Context, id string) (*models.Coach, error) {
	if c, ok := r.coaches[id]; ok {
		return &c, nil
	}
	return nil, directoryRepo.ErrNotFound
}

func (r *fakeDirectoryRepo) FindPackage(_ context.Context, id string) (*models.SessionPackage, error) {
	if p, ok := r.packages[id]; ok {
		return &p, nil
	}
	return nil, directoryRepo.ErrNotFound
}

func (r *fakeDirectoryRepo) FindCoachByUserID(_ context.Context, userID string) (*models.Coach, error) {
	for _, c := range r.coaches {
		if c.UserID == userID {
			return &c, nil
		}
	}
	return nil, directoryRepo.ErrNotFound
}

func (r *fakeDirectoryRepo) FindFacilityByOwnerID(_ context.Context, userID string) (*models.Facility, error) {
	for _, f := range r.facilities {
		if f.OwnerID == userID {
			return &f, nil
		}
	}
	return nil, directoryRepo.ErrNotFound
}

// fakeUserRepo serves user lookups from a map.
type fakeUserRepo struct {
	mu            sync.Mutex
	users         map[string]models.User
	notifications []models.Notification
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]models.User)}
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[id]; ok {
		return &u, nil
	}
	return nil, userRepo.ErrNotFound
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, userRepo.ErrNotFound
}

func (r *fakeUserRepo) PushNotification(_ context.Context, userID string, n models.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notifications = append(r.notifications, n)
	return nil
}

func (r *fakeUserRepo) UpdateFCMToken(_ context.Context, userID, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u := r.users[userID]
	u.FCMToken = token
	r.users[userID] = u
	return nil
}

func (r *fakeUserRepo) EnsureIndexes() error { return nil }

// recordingNotifier records notification calls.
type recordingNotifier struct {
	mu                 sync.Mutex
	confirmationEmails []string
	inApp              []models.Notification
}

func (n *recordingNotifier) SendBookingConfirmation(_ context.Context, email, _ string, _ models.BookingSummary) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.confirmationEmails = append(n.confirmationEmails, email)
	return nil
}

func (n *recordingNotifier) CreateInAppNotification(_ context.Context, userID, notifType, title, message string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.inApp = append(n.inApp, models.Notification{UserID: userID, Type: notifType, Title: title, Message: message})
	return nil
}

func (n *recordingNotifier) SendUserPushNotification(_ context.Context, _, _, _ string, _ map[string]string) error {
	return nil
}

// recordingProvisioner records provisioned booking ids.
type recordingProvisioner struct {
	mu         sync.Mutex
	bookingIDs []string
}

func (p *recordingProvisioner) EnsureConversations(_ context.Context, bookingID string) (*models.ConversationSet, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.bookingIDs = append(p.bookingIDs, bookingID)
	return &models.ConversationSet{}, nil
}

func (p *recordingProvisioner) GetConversations(_ context.Context, _ string) (*models.ConversationSet, error) {
	return &models.ConversationSet{}, nil
}

// recordingScheduler records scheduled reminders.
type recordingScheduler struct {
	mu        sync.Mutex
	reminders []models.ReminderPayload
	fireTimes []time.Time
}

func (s *recordingScheduler) ScheduleReminder(payload models.ReminderPayload, fireAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reminders = append(s.reminders, payload)
	s.fireTimes = append(s.fireTimes, fireAt)
	return nil
}

// syncDispatcher runs effects inline so tests observe them deterministically.
type syncDispatcher struct{}

func (syncDispatcher) Dispatch(effects []Effect) {
	for _, e := range effects {
		_ = e.Run(context.Background())
	}
}

// fixture wires a booking service against the in-memory fakes with a frozen
// clock and a seeded sport, facility, coach and user.
type fixture struct {
	svc         *DefaultBookingService
	repo        *fakeBookingRepo
	directory   *fakeDirectoryRepo
	users       *fakeUserRepo
	notifier    *recordingNotifier
	provisioner *recordingProvisioner
	scheduler   *recordingScheduler
	now         time.Time
}

func newFixture() *fixture {
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

	directory := newFakeDirectoryRepo()
	directory.sports["sport-1"] = models.Sport{ID: "sport-1", Name: "Tennis"}
	directory.facilities["fac-1"] = models.Facility{
		ID: "fac-1", OwnerID: "owner-1", Name: "Lekki Courts",
		Status: "active", SportIDs: []string{"sport-1"},
		PricePerHour: 5000, Currency: "NGN", AutoConfirm: true,
	}
	directory.coaches["coach-1"] = models.Coach{
		ID: "coach-1", UserID: "coach-user-1", FirstName: "Ada", LastName: "Obi",
		Status: "active", SportIDs: []string{"sport-1"},
		HourlyRate: 3000, Currency: "NGN", AutoConfirm: true,
	}

	users := newFakeUserRepo()
	users.users["user-1"] = models.User{ID: "user-1", Email: "user1@example.com", Username: "user1"}

	f := &fixture{
		repo:        newFakeBookingRepo(),
		directory:   directory,
		users:       users,
		notifier:    &recordingNotifier{},
		provisioner: &recordingProvisioner{},
		scheduler:   &recordingScheduler{},
		now:         now,
	}
	f.svc = &DefaultBookingService{
		Repo:               f.repo,
		Directory:          directory,
		Users:              users,
		Notifier:           f.notifier,
		Conversations:      f.provisioner,
		Reminders:          f.scheduler,
		Effects:            syncDispatcher{},
		ServiceFeeRate:     0.075,
		CancellationCutoff: 24 * time.Hour,
		Now:                func() time.Time { return now },
	}
	return f
}

// slot returns a start/end pair n days from the fixture clock.
func (f *fixture) slot(daysAhead int, hour, durationHours int) (time.Time, time.Time) {
	start := time.Date(f.now.Year(), f.now.Month(), f.now.Day()+daysAhead, hour, 0, 0, 0, time.UTC)
	return start, start.Add(time.Duration(durationHours) * time.Hour)
}
