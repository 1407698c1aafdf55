package routes

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	authsvc "github.com/tidynest/tidynest-backend/internal/auth"
	"github.com/tidynest/tidynest-backend/internal/bookings"
	"github.com/tidynest/tidynest-backend/internal/calendar"
	"github.com/tidynest/tidynest-backend/internal/cleaningjobs"
	"github.com/tidynest/tidynest-backend/internal/houses"
	"github.com/tidynest/tidynest-backend/internal/notifications"
	"github.com/tidynest/tidynest-backend/internal/properties"
	"github.com/tidynest/tidynest-backend/internal/store/storetest"
	"github.com/tidynest/tidynest-backend/internal/users"
	pkgauth "github.com/tidynest/tidynest-backend/pkg/auth"
	"github.com/tidynest/tidynest-backend/pkg/config"
	"github.com/tidynest/tidynest-backend/pkg/db/models"
	"github.com/tidynest/tidynest-backend/pkg/enums"
	"github.com/tidynest/tidynest-backend/pkg/logger"
)

type stubPinger struct{}

func (stubPinger) Ping(context.Context) error { return nil }

type stubSessions struct{}

func (stubSessions) Generate(ctx context.Context, accessID string) (string, error) {
	return "refresh-token", nil
}

func (stubSessions) Rotate(ctx context.Context, oldAccessID, provided string) (string, string, error) {
	return "new-access-id", "new-refresh-token", nil
}

func (stubSessions) Revoke(ctx context.Context, accessID string) error { return nil }

func (stubSessions) HasSession(ctx context.Context, accessID string) (bool, error) {
	return true, nil
}

type stubUserFinder struct{}

func (stubUserFinder) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return nil, gorm.ErrRecordNotFound
}

func testConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{Env: "test", Port: "0"},
		JWT: config.JWTConfig{
			Secret:            "secret",
			Issuer:            "issuer",
			ExpirationMinutes: 60,
		},
	}
}

func newTestDeps(t *testing.T, cfg *config.Config) Deps {
	t.Helper()

	logg := logger.New(logger.Options{ServiceName: "test-routing", Level: logger.ParseLevel("debug"), Output: io.Discard})

	usersService, err := users.NewService(&storetest.Backend[models.User]{}, nil, logg)
	if err != nil {
		t.Fatalf("users service: %v", err)
	}
	housesService, err := houses.NewService(&storetest.Backend[models.House]{}, nil, logg)
	if err != nil {
		t.Fatalf("houses service: %v", err)
	}
	propertiesService, err := properties.NewService(&storetest.Backend[models.Property]{}, nil, logg)
	if err != nil {
		t.Fatalf("properties service: %v", err)
	}
	jobsService, err := cleaningjobs.NewService(&storetest.Backend[models.CleaningJob]{}, nil, logg)
	if err != nil {
		t.Fatalf("cleaning jobs service: %v", err)
	}
	bookingsService, err := bookings.NewService(&storetest.Backend[models.HouseBooking]{}, nil, logg)
	if err != nil {
		t.Fatalf("bookings service: %v", err)
	}
	calendarService, err := calendar.NewService(&storetest.Backend[models.CalendarEvent]{}, cfg.Calendar, nil, logg)
	if err != nil {
		t.Fatalf("calendar service: %v", err)
	}
	authService, err := authsvc.NewService(authsvc.ServiceParams{
		UserFinder:     stubUserFinder{},
		UserCreator:    usersService,
		SessionManager: stubSessions{},
		JWTConfig:      cfg.JWT,
		PasswordConfig: cfg.Password,
	})
	if err != nil {
		t.Fatalf("auth service: %v", err)
	}

	queue := notifications.NewQueue(logg)
	t.Cleanup(queue.Close)

	return Deps{
		Config:        cfg,
		Logger:        logg,
		DB:            stubPinger{},
		Redis:         stubPinger{},
		Sessions:      stubSessions{},
		Auth:          authService,
		Users:         usersService,
		Houses:        housesService,
		Properties:    propertiesService,
		CleaningJobs:  jobsService,
		Bookings:      bookingsService,
		Calendar:      calendarService,
		Notifications: queue,
	}
}

func buildToken(t *testing.T, cfg *config.Config) string {
	t.Helper()
	token, err := pkgauth.MintAccessToken(cfg.JWT, time.Now().UTC(), pkgauth.AccessTokenPayload{
		UserID:      uuid.New(),
		Email:       "cleaner@example.com",
		DisplayName: "Cleaner",
		Role:        enums.UserRoleUser,
		JTI:         uuid.NewString(),
	})
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}
	return token
}

func TestPublicPingNeedsNoToken(t *testing.T) {
	router := NewRouter(newTestDeps(t, testConfig()))

	req := httptest.NewRequest(http.MethodGet, "/api/public/ping", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for public ping got %d", resp.Code)
	}
}

func TestHealthLive(t *testing.T) {
	router := NewRouter(newTestDeps(t, testConfig()))

	req := httptest.NewRequest(http.MethodGet, "/health/live", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for health live got %d", resp.Code)
	}
}

func TestPrivateGroupRejectsMissingJWT(t *testing.T) {
	router := NewRouter(newTestDeps(t, testConfig()))

	req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token got %d", resp.Code)
	}
}

func TestPrivateGroupSucceedsWithJWT(t *testing.T) {
	cfg := testConfig()
	router := NewRouter(newTestDeps(t, cfg))

	req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
	req.Header.Set("Authorization", "Bearer "+buildToken(t, cfg))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for private ping got %d", resp.Code)
	}
}

func TestUsersListRequiresToken(t *testing.T) {
	cfg := testConfig()
	router := NewRouter(newTestDeps(t, cfg))

	bare := httptest.NewRequest(http.MethodGet, "/api/v1/users/", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, bare)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token got %d", resp.Code)
	}

	authed := httptest.NewRequest(http.MethodGet, "/api/v1/users/", nil)
	authed.Header.Set("Authorization", "Bearer "+buildToken(t, cfg))
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, authed)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 with token got %d", resp.Code)
	}
}

func TestCalendarEventsRejectsBadFilter(t *testing.T) {
	cfg := testConfig()
	router := NewRouter(newTestDeps(t, cfg))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/calendar/events/?property_id=not-a-uuid", nil)
	req.Header.Set("Authorization", "Bearer "+buildToken(t, cfg))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad filter got %d", resp.Code)
	}
}

func TestNotificationsRoundTrip(t *testing.T) {
	cfg := testConfig()
	router := NewRouter(newTestDeps(t, cfg))
	token := buildToken(t, cfg)

	add := httptest.NewRequest(http.MethodPost, "/api/v1/notifications/",
		strings.NewReader(`{"type":"error","message":"sync failed"}`))
	add.Header.Set("Authorization", "Bearer "+token)
	add.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, add)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201 for add got %d: %s", resp.Code, resp.Body.String())
	}

	var created struct {
		Data notifications.Notification `json:"data"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode add response: %v", err)
	}

	list := httptest.NewRequest(http.MethodGet, "/api/v1/notifications/", nil)
	list.Header.Set("Authorization", "Bearer "+token)
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, list)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for list got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), created.Data.ID.String()) {
		t.Fatalf("expected listed notification %s, got %s", created.Data.ID, resp.Body.String())
	}

	remove := httptest.NewRequest(http.MethodDelete, "/api/v1/notifications/"+created.Data.ID.String(), nil)
	remove.Header.Set("Authorization", "Bearer "+token)
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, remove)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for remove got %d", resp.Code)
	}
}
