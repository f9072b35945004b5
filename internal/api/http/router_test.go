package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/storefront-support/internal/api/http/handlers"
	"github.com/spec-kit/storefront-support/internal/bot"
	"github.com/spec-kit/storefront-support/internal/config"
	"github.com/spec-kit/storefront-support/internal/domain"
	"github.com/spec-kit/storefront-support/internal/events"
	"github.com/spec-kit/storefront-support/internal/observability"
	"github.com/spec-kit/storefront-support/internal/persistence"
	"github.com/spec-kit/storefront-support/internal/service"
)

// Minimal in-memory repositories backing the route-level tests.

type memUserRepo struct{ byEmail map[string]domain.User }

func (m *memUserRepo) Create(_ context.Context, u *domain.User) error {
	u.ID = "user-1"
	m.byEmail[u.Email] = *u
	return nil
}

func (m *memUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	for _, u := range m.byEmail {
		if u.ID == id {
			return &u, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (m *memUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok := m.byEmail[email]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &u, nil
}

type memStoreRepo struct{ byID map[string]domain.Store }

func (m *memStoreRepo) Create(_ context.Context, s *domain.Store) error {
	s.ID = "store-1"
	m.byID[s.ID] = *s
	return nil
}

func (m *memStoreRepo) GetByID(_ context.Context, id string) (*domain.Store, error) {
	s, ok := m.byID[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &s, nil
}

func (m *memStoreRepo) GetHours(_ context.Context, id string) (*domain.StoreHours, error) {
	s, ok := m.byID[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &domain.StoreHours{ID: s.ID, Name: s.Name, OpeningTime: s.OpeningTime, ClosingTime: s.ClosingTime}, nil
}

func (m *memStoreRepo) List(context.Context) ([]domain.Store, error) {
	stores := make([]domain.Store, 0, len(m.byID))
	for _, s := range m.byID {
		stores = append(stores, s)
	}
	return stores, nil
}

func (m *memStoreRepo) FilterByService(context.Context, string) ([]domain.Store, error) {
	return nil, nil
}

type memStoreUpdateRepo struct{}

func (memStoreUpdateRepo) Create(_ context.Context, u *domain.StoreUpdate) error {
	u.ID = "update-1"
	return nil
}

func (memStoreUpdateRepo) Approve(context.Context, string, string) (map[string]any, error) {
	return nil, pgx.ErrNoRows
}

type memSpecialHoursRepo struct{}

func (memSpecialHoursRepo) Create(_ context.Context, e *domain.SpecialHours) error {
	e.ID = "special-1"
	return nil
}

func (memSpecialHoursRepo) ListByStore(context.Context, string) ([]domain.SpecialHours, error) {
	return nil, nil
}

type memWindowRepo struct{}

func (memWindowRepo) Create(_ context.Context, w *domain.DeliveryWindow) error {
	w.ID = "window-1"
	return nil
}

func (memWindowRepo) ListByStore(context.Context, string) ([]domain.DeliveryWindow, error) {
	return nil, nil
}

type memSLARuleRepo struct{}

func (memSLARuleRepo) Create(_ context.Context, r *domain.SLARule) error {
	r.ID = "rule-1"
	return nil
}

func (memSLARuleRepo) FindByIssueType(context.Context, string) (*domain.SLARule, error) {
	return nil, pgx.ErrNoRows
}

func (memSLARuleRepo) List(context.Context) ([]domain.SLARule, error) { return nil, nil }

type memComplaintRepo struct{}

func (memComplaintRepo) Create(_ context.Context, c *domain.Complaint) error {
	c.ID = "complaint-1"
	return nil
}

func (memComplaintRepo) GetByID(context.Context, string) (*domain.Complaint, error) {
	return nil, pgx.ErrNoRows
}

func (memComplaintRepo) List(context.Context) ([]domain.Complaint, error) { return nil, nil }

func (memComplaintRepo) ListByDepartment(context.Context, string) ([]domain.Complaint, error) {
	return nil, nil
}

func (memComplaintRepo) UpdateStatus(context.Context, string, domain.ComplaintStatus) error {
	return nil
}

type memResponseRepo struct{}

func (memResponseRepo) Create(_ context.Context, r *domain.ComplaintResponse) error {
	r.ID = "response-1"
	return nil
}

type memQueueRepo struct{}

func (memQueueRepo) EnqueueEscalation(_ context.Context, complaintID, reason string) (*domain.QueueTicket, error) {
	return &domain.QueueTicket{ID: "ticket-1", ComplaintID: complaintID, UserID: "user-1", Reason: reason, Status: domain.TicketStatusWaiting}, nil
}

func (memQueueRepo) ListWaiting(context.Context) ([]domain.QueueEntry, error) { return nil, nil }

func (memQueueRepo) Take(context.Context, string) error { return nil }

func (memQueueRepo) Close(context.Context, string) error { return nil }

type memNotificationRepo struct{}

func (memNotificationRepo) Create(_ context.Context, n *domain.Notification) error {
	n.ID = "notification-1"
	return nil
}

func (memNotificationRepo) ListRecent(context.Context, int) ([]domain.Notification, error) {
	return nil, nil
}

type memFeedbackRepo struct{}

func (memFeedbackRepo) Create(_ context.Context, f *domain.Feedback) error {
	f.ID = "feedback-1"
	return nil
}

type memChatLogRepo struct{}

func (memChatLogRepo) Create(context.Context, *domain.ChatLog) error { return nil }

type stubBot struct{ reply string }

func (s stubBot) Send(context.Context, string, string, map[string]any) ([]bot.Message, error) {
	return []bot.Message{{Text: s.reply}}, nil
}

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	cfg := config.Config{Auth: config.AuthConfig{JWTSecret: "test-secret", AccessTokenTTLMinutes: 60, BcryptCost: 4}}
	logger := zap.NewNop()
	dispatcher := events.NewInMemoryDispatcher()

	authService := service.NewAuthService(cfg, &memUserRepo{byEmail: map[string]domain.User{}})
	storeService := service.NewStoreService(service.StoreDependencies{
		StoreRepo:        &memStoreRepo{byID: map[string]domain.Store{}},
		StoreUpdateRepo:  memStoreUpdateRepo{},
		SpecialHoursRepo: memSpecialHoursRepo{},
		WindowRepo:       memWindowRepo{},
		Dispatcher:       dispatcher,
	})
	complaintService := service.NewComplaintService(service.ComplaintDependencies{
		ComplaintRepo: memComplaintRepo{},
		SLARuleRepo:   memSLARuleRepo{},
		QueueRepo:     memQueueRepo{},
		Dispatcher:    dispatcher,
	})
	supplierService := service.NewSupplierService(service.SupplierDependencies{
		ComplaintRepo: memComplaintRepo{},
		ResponseRepo:  memResponseRepo{},
		QueueRepo:     memQueueRepo{},
		StoreRepo:     &memStoreRepo{byID: map[string]domain.Store{}},
		WindowRepo:    memWindowRepo{},
		Dispatcher:    dispatcher,
	})
	notificationService := service.NewNotificationService(memNotificationRepo{}, dispatcher, logger)
	chatService := service.NewChatService(stubBot{reply: "hello there"}, authService.TokenManager(), memChatLogRepo{}, logger)

	app := fiber.New()
	RegisterMiddlewares(app, logger, observability.NewMetrics(), 0)
	RegisterRoutes(app, RouteConfig{
		Health:        handlers.NewHealthHandler("storefront-support", "test", &persistence.Postgres{}, &persistence.Redis{}),
		Auth:          handlers.NewAuthHandler(authService),
		Chat:          handlers.NewChatHandler(chatService),
		Stores:        handlers.NewStoresHandler(storeService),
		AdminStores:   handlers.NewAdminStoresHandler(storeService),
		Complaints:    handlers.NewComplaintsHandler(complaintService),
		Supplier:      handlers.NewSupplierHandler(supplierService),
		SLA:           handlers.NewSLAHandler(service.NewSLAService(memSLARuleRepo{})),
		Agent:         handlers.NewAgentHandler(service.NewQueueService(memQueueRepo{})),
		Feedback:      handlers.NewFeedbackHandler(service.NewFeedbackService(memFeedbackRepo{})),
		Notifications: handlers.NewNotificationsHandler(notificationService),
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, body string, header map[string]string) (int, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range header {
		req.Header.Set(k, v)
	}

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	var decoded map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil && err != io.EOF {
		t.Fatalf("decode %s %s: %v", method, path, err)
	}
	return resp.StatusCode, decoded
}

func TestLiveness(t *testing.T) {
	app := newTestApp(t)

	status, body := doJSON(t, app, "GET", "/", "", nil)
	if status != 200 {
		t.Fatalf("status = %d", status)
	}
	if msg, _ := body["message"].(string); !strings.Contains(msg, "running") {
		t.Errorf("message = %q", msg)
	}

	status, body = doJSON(t, app, "GET", "/health", "", nil)
	if status != 200 || body["status"] != "ok" {
		t.Fatalf("health = %d %+v", status, body)
	}
}

func TestReadinessUnavailableDependencies(t *testing.T) {
	app := newTestApp(t)

	status, body := doJSON(t, app, "GET", "/health/ready", "", nil)
	if status != 503 {
		t.Fatalf("status = %d, want 503 with no backing services", status)
	}
	if body["detail"] == nil {
		t.Fatalf("body = %+v", body)
	}
}

func TestSignupLoginFlow(t *testing.T) {
	app := newTestApp(t)

	status, body := doJSON(t, app, "POST", "/auth/signup", `{"email":"a@example.com","password":"hunter2!"}`, nil)
	if status != 201 || body["status"] != "success" {
		t.Fatalf("signup = %d %+v", status, body)
	}

	status, body = doJSON(t, app, "POST", "/auth/login", `{"email":"a@example.com","password":"hunter2!"}`, nil)
	if status != 200 {
		t.Fatalf("login = %d %+v", status, body)
	}
	data, _ := body["data"].(map[string]any)
	if token, _ := data["access_token"].(string); token == "" {
		t.Fatalf("login data = %+v", data)
	}

	status, body = doJSON(t, app, "POST", "/auth/login", `{"email":"a@example.com","password":"wrong"}`, nil)
	if status != 400 || body["detail"] != "Invalid email or password" {
		t.Fatalf("bad login = %d %+v", status, body)
	}

	status, body = doJSON(t, app, "POST", "/auth/logout", "", nil)
	if status != 200 || body["message"] != "Logged out" {
		t.Fatalf("logout = %d %+v", status, body)
	}
}

func TestChatEndpoint(t *testing.T) {
	app := newTestApp(t)

	status, body := doJSON(t, app, "POST", "/chat", `{"message":"hi"}`, nil)
	if status != 200 || body["reply"] != "hello there" {
		t.Fatalf("chat = %d %+v", status, body)
	}

	status, body = doJSON(t, app, "POST", "/chat", `{"message":"hi"}`, map[string]string{"Authorization": "Token abc"})
	if status != 401 || body["detail"] != "Invalid token format" {
		t.Fatalf("chat with bad auth = %d %+v", status, body)
	}

	status, _ = doJSON(t, app, "POST", "/chat", `{"message":"  "}`, nil)
	if status != 400 {
		t.Fatalf("blank message = %d, want 400", status)
	}
}

// The static filter and nearby routes must win over the :id parameter route.
func TestStoreRouteOrdering(t *testing.T) {
	app := newTestApp(t)

	status, body := doJSON(t, app, "GET", "/stores/filter", "", nil)
	if status != 400 {
		t.Fatalf("filter without service = %d %+v, want 400", status, body)
	}
	if detail, _ := body["detail"].(string); !strings.Contains(detail, "service") {
		t.Errorf("detail = %q", detail)
	}

	status, _ = doJSON(t, app, "GET", "/stores/nearby", "", nil)
	if status != 400 {
		t.Fatalf("nearby without coordinates = %d, want 400", status)
	}

	status, _ = doJSON(t, app, "GET", "/stores/missing", "", nil)
	if status != 404 {
		t.Fatalf("unknown store = %d, want 404", status)
	}
}

func TestComplaintAndEscalationRoutes(t *testing.T) {
	app := newTestApp(t)

	status, body := doJSON(t, app, "POST", "/complaints",
		`{"user_id":"u1","store_id":"s1","issue_type":"mystery","description":"something broke"}`, nil)
	if status != 201 {
		t.Fatalf("create = %d %+v", status, body)
	}
	data, _ := body["data"].(map[string]any)
	if data["assigned_department"] != "general_support" {
		t.Errorf("department = %v, want general_support fallback", data["assigned_department"])
	}
	if data["sla_hours"] != float64(24) {
		t.Errorf("sla_hours = %v, want 24", data["sla_hours"])
	}
	if data["priority"] != "medium" {
		t.Errorf("priority = %v, want medium default", data["priority"])
	}

	status, body = doJSON(t, app, "POST", "/complaints/complaint-1/escalate", "", nil)
	if status != 200 {
		t.Fatalf("escalate = %d %+v", status, body)
	}
	data, _ = body["data"].(map[string]any)
	if data["ticket_id"] != "ticket-1" {
		t.Errorf("escalate data = %+v", data)
	}

	status, body = doJSON(t, app, "POST", "/agent/queue/ticket-1/take", "", nil)
	if status != 200 {
		t.Fatalf("take = %d %+v", status, body)
	}
	data, _ = body["data"].(map[string]any)
	if data["status"] != "connected" {
		t.Errorf("take data = %+v", data)
	}
}
