package service

import (
	"context"
	"sync"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/storefront-support/internal/domain"
	"github.com/spec-kit/storefront-support/internal/events"
	"github.com/spec-kit/storefront-support/internal/repository"
)

// In-memory repository fakes shared across service tests.

type fakeSLARuleRepo struct {
	rules     map[string]domain.SLARule
	created   []domain.SLARule
	createErr error
}

var _ repository.SLARuleRepository = (*fakeSLARuleRepo)(nil)

func (f *fakeSLARuleRepo) Create(_ context.Context, rule *domain.SLARule) error {
	if f.createErr != nil {
		return f.createErr
	}
	rule.ID = "rule-1"
	f.created = append(f.created, *rule)
	return nil
}

func (f *fakeSLARuleRepo) FindByIssueType(_ context.Context, issueType string) (*domain.SLARule, error) {
	rule, ok := f.rules[issueType]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &rule, nil
}

func (f *fakeSLARuleRepo) List(context.Context) ([]domain.SLARule, error) {
	rules := make([]domain.SLARule, 0, len(f.rules))
	for _, rule := range f.rules {
		rules = append(rules, rule)
	}
	return rules, nil
}

type fakeComplaintRepo struct {
	byID          map[string]domain.Complaint
	created       []domain.Complaint
	statusUpdates map[string]domain.ComplaintStatus
	createErr     error
}

var _ repository.ComplaintRepository = (*fakeComplaintRepo)(nil)

func (f *fakeComplaintRepo) Create(_ context.Context, complaint *domain.Complaint) error {
	if f.createErr != nil {
		return f.createErr
	}
	complaint.ID = "complaint-1"
	f.created = append(f.created, *complaint)
	return nil
}

func (f *fakeComplaintRepo) GetByID(_ context.Context, id string) (*domain.Complaint, error) {
	complaint, ok := f.byID[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &complaint, nil
}

func (f *fakeComplaintRepo) List(context.Context) ([]domain.Complaint, error) {
	complaints := make([]domain.Complaint, 0, len(f.byID))
	for _, c := range f.byID {
		complaints = append(complaints, c)
	}
	return complaints, nil
}

func (f *fakeComplaintRepo) ListByDepartment(_ context.Context, department string) ([]domain.Complaint, error) {
	var complaints []domain.Complaint
	for _, c := range f.byID {
		if c.AssignedDepartment == department {
			complaints = append(complaints, c)
		}
	}
	return complaints, nil
}

func (f *fakeComplaintRepo) UpdateStatus(_ context.Context, id string, status domain.ComplaintStatus) error {
	if f.statusUpdates == nil {
		f.statusUpdates = map[string]domain.ComplaintStatus{}
	}
	f.statusUpdates[id] = status
	return nil
}

type fakeQueueRepo struct {
	waiting    []domain.QueueEntry
	enqueueErr error
	takeErr    error
	closeErr   error

	enqueuedComplaint string
	enqueuedReason    string
	takenID           string
	closedID          string
}

var _ repository.QueueRepository = (*fakeQueueRepo)(nil)

func (f *fakeQueueRepo) EnqueueEscalation(_ context.Context, complaintID, reason string) (*domain.QueueTicket, error) {
	if f.enqueueErr != nil {
		return nil, f.enqueueErr
	}
	f.enqueuedComplaint = complaintID
	f.enqueuedReason = reason
	return &domain.QueueTicket{
		ID:          "ticket-1",
		ComplaintID: complaintID,
		UserID:      "user-1",
		Reason:      reason,
		Status:      domain.TicketStatusWaiting,
	}, nil
}

func (f *fakeQueueRepo) ListWaiting(context.Context) ([]domain.QueueEntry, error) {
	return f.waiting, nil
}

func (f *fakeQueueRepo) Take(_ context.Context, ticketID string) error {
	if f.takeErr != nil {
		return f.takeErr
	}
	f.takenID = ticketID
	return nil
}

func (f *fakeQueueRepo) Close(_ context.Context, ticketID string) error {
	if f.closeErr != nil {
		return f.closeErr
	}
	f.closedID = ticketID
	return nil
}

type fakeStoreRepo struct {
	byID     map[string]domain.Store
	filtered []domain.Store
}

var _ repository.StoreRepository = (*fakeStoreRepo)(nil)

func (f *fakeStoreRepo) Create(_ context.Context, store *domain.Store) error {
	store.ID = "store-1"
	if f.byID == nil {
		f.byID = map[string]domain.Store{}
	}
	f.byID[store.ID] = *store
	return nil
}

func (f *fakeStoreRepo) GetByID(_ context.Context, id string) (*domain.Store, error) {
	store, ok := f.byID[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &store, nil
}

func (f *fakeStoreRepo) GetHours(_ context.Context, id string) (*domain.StoreHours, error) {
	store, ok := f.byID[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &domain.StoreHours{
		ID:          store.ID,
		Name:        store.Name,
		OpeningTime: store.OpeningTime,
		ClosingTime: store.ClosingTime,
	}, nil
}

func (f *fakeStoreRepo) List(context.Context) ([]domain.Store, error) {
	stores := make([]domain.Store, 0, len(f.byID))
	for _, s := range f.byID {
		stores = append(stores, s)
	}
	return stores, nil
}

func (f *fakeStoreRepo) FilterByService(context.Context, string) ([]domain.Store, error) {
	return f.filtered, nil
}

type fakeStoreUpdateRepo struct {
	created    []domain.StoreUpdate
	applied    map[string]any
	approveErr error
}

var _ repository.StoreUpdateRepository = (*fakeStoreUpdateRepo)(nil)

func (f *fakeStoreUpdateRepo) Create(_ context.Context, update *domain.StoreUpdate) error {
	update.ID = "update-1"
	f.created = append(f.created, *update)
	return nil
}

func (f *fakeStoreUpdateRepo) Approve(_ context.Context, _, _ string) (map[string]any, error) {
	if f.approveErr != nil {
		return nil, f.approveErr
	}
	return f.applied, nil
}

type fakeSpecialHoursRepo struct {
	created []domain.SpecialHours
}

var _ repository.SpecialHoursRepository = (*fakeSpecialHoursRepo)(nil)

func (f *fakeSpecialHoursRepo) Create(_ context.Context, entry *domain.SpecialHours) error {
	entry.ID = "special-1"
	f.created = append(f.created, *entry)
	return nil
}

func (f *fakeSpecialHoursRepo) ListByStore(_ context.Context, storeID string) ([]domain.SpecialHours, error) {
	var entries []domain.SpecialHours
	for _, e := range f.created {
		if e.StoreID == storeID {
			entries = append(entries, e)
		}
	}
	return entries, nil
}

type fakeWindowRepo struct {
	created []domain.DeliveryWindow
}

var _ repository.DeliveryWindowRepository = (*fakeWindowRepo)(nil)

func (f *fakeWindowRepo) Create(_ context.Context, window *domain.DeliveryWindow) error {
	window.ID = "window-1"
	f.created = append(f.created, *window)
	return nil
}

func (f *fakeWindowRepo) ListByStore(_ context.Context, storeID string) ([]domain.DeliveryWindow, error) {
	var windows []domain.DeliveryWindow
	for _, w := range f.created {
		if w.StoreID == storeID {
			windows = append(windows, w)
		}
	}
	return windows, nil
}

type fakeResponseRepo struct {
	created []domain.ComplaintResponse
}

var _ repository.ComplaintResponseRepository = (*fakeResponseRepo)(nil)

func (f *fakeResponseRepo) Create(_ context.Context, response *domain.ComplaintResponse) error {
	response.ID = "response-1"
	f.created = append(f.created, *response)
	return nil
}

type fakeNotificationRepo struct {
	created   []domain.Notification
	createErr error
	listed    []domain.Notification
	lastLimit int
}

var _ repository.NotificationRepository = (*fakeNotificationRepo)(nil)

func (f *fakeNotificationRepo) Create(_ context.Context, notification *domain.Notification) error {
	if f.createErr != nil {
		return f.createErr
	}
	notification.ID = "notification-1"
	f.created = append(f.created, *notification)
	return nil
}

func (f *fakeNotificationRepo) ListRecent(_ context.Context, limit int) ([]domain.Notification, error) {
	f.lastLimit = limit
	return f.listed, nil
}

type fakeFeedbackRepo struct {
	created []domain.Feedback
}

var _ repository.FeedbackRepository = (*fakeFeedbackRepo)(nil)

func (f *fakeFeedbackRepo) Create(_ context.Context, feedback *domain.Feedback) error {
	feedback.ID = "feedback-1"
	f.created = append(f.created, *feedback)
	return nil
}

type fakeUserRepo struct {
	byEmail map[string]domain.User
}

var _ repository.UserRepository = (*fakeUserRepo)(nil)

func (f *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	user.ID = "user-1"
	if f.byEmail == nil {
		f.byEmail = map[string]domain.User{}
	}
	f.byEmail[user.Email] = *user
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	for _, u := range f.byEmail {
		if u.ID == id {
			return &u, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	user, ok := f.byEmail[email]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &user, nil
}

type fakeChatLogRepo struct {
	created   []domain.ChatLog
	createErr error
}

var _ repository.ChatLogRepository = (*fakeChatLogRepo)(nil)

func (f *fakeChatLogRepo) Create(_ context.Context, log *domain.ChatLog) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, *log)
	return nil
}

// recordingDispatcher captures published events without invoking handlers.
type recordingDispatcher struct {
	mu        sync.Mutex
	published []events.Event
}

var _ events.Dispatcher = (*recordingDispatcher)(nil)

func (d *recordingDispatcher) Publish(_ context.Context, event events.Event) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.published = append(d.published, event)
	return nil
}

func (d *recordingDispatcher) Subscribe(events.EventType, events.EventHandler) {}

func (d *recordingDispatcher) events() []events.Event {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]events.Event{}, d.published...)
}
