package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/team-manager/internal/jwt"
	"github.com/sbilibin2017/team-manager/internal/services"
	"github.com/sbilibin2017/team-manager/internal/storage/memory"
)

// resetFlags resets the global flag.CommandLine to avoid "flag redefined" panic
func resetFlags() {
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
}

func TestParseFlags_Default(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd"}
	assert.Equal(t, "config.env", parseFlags())
}

func TestParseFlags_Custom(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd", "-c", "custom.env"}
	assert.Equal(t, "custom.env", parseFlags())
}

func TestParseConfig_Defaults(t *testing.T) {
	cfg, err := parseConfig(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.AppHost)
	assert.Equal(t, "8080", cfg.AppPort)
	assert.Equal(t, backendMemory, cfg.StorageKind)
	assert.True(t, cfg.SeedFixtures)
	assert.Equal(t, 5432, cfg.PostgresPort)
	assert.Empty(t, cfg.RedisAddr)
	assert.Empty(t, cfg.KafkaBrokers)
	assert.Equal(t, 86400, cfg.JWTExpSecond)
}

func TestParseConfig_FromFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	content := "APP_PORT=9090\nSTORAGE_BACKEND=postgres\nPOSTGRES_PORT=6543\nKAFKA_BROKERS=k1:9092,k2:9092\nREDIS_ADDR=cache:6379\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	// The environment wins over the file.
	t.Setenv("APP_PORT", "7070")
	t.Setenv("JWT_SECRET_KEY", "s3cret")

	t.Cleanup(func() {
		for _, k := range []string{"STORAGE_BACKEND", "POSTGRES_PORT", "KAFKA_BROKERS", "REDIS_ADDR"} {
			os.Unsetenv(k)
		}
	})

	cfg, err := parseConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "7070", cfg.AppPort)
	assert.Equal(t, backendPostgres, cfg.StorageKind)
	assert.Equal(t, 6543, cfg.PostgresPort)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, "cache:6379", cfg.RedisAddr)
	assert.Equal(t, "s3cret", cfg.JWTSecretKey)
}

func TestParseConfig_UnknownBackend(t *testing.T) {
	t.Setenv("STORAGE_BACKEND", "mongo")
	_, err := parseConfig(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}

// newTestServer serves the full router over a seeded in-memory store.
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	store, err := memory.New()
	require.NoError(t, err)

	srv := httptest.NewServer(newRouter(routerDeps{
		store:  store,
		pub:    services.NewPublisher(nil),
		tokens: jwt.New(jwt.WithSecretKey("test"), jwt.WithExpiration(time.Hour)),
	}))
	t.Cleanup(srv.Close)
	return srv
}

func call(t *testing.T, srv *httptest.Server, method, path, token string, body any, out any) int {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, srv.URL+path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

type apiUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	Password string `json:"password"`
}

func login(t *testing.T, srv *httptest.Server, username, password string) (string, apiUser) {
	t.Helper()
	var resp struct {
		Token string  `json:"token"`
		User  apiUser `json:"user"`
	}
	code := call(t, srv, http.MethodPost, "/api/auth/login", "", map[string]string{
		"username": username, "password": password,
	}, &resp)
	require.Equal(t, http.StatusOK, code)
	require.NotEmpty(t, resp.Token)
	return resp.Token, resp.User
}

func TestRouter_Health(t *testing.T) {
	srv := newTestServer(t)
	var body map[string]string
	assert.Equal(t, http.StatusOK, call(t, srv, http.MethodGet, "/health", "", nil, &body))
	assert.Equal(t, "ok", body["status"])
}

func TestRouter_SeededLoginAndMe(t *testing.T) {
	srv := newTestServer(t)

	token, admin := login(t, srv, memory.SeedAdminUsername, memory.SeedAdminPassword)
	assert.Equal(t, "admin", admin.Role)
	assert.Empty(t, admin.Password)

	var me apiUser
	require.Equal(t, http.StatusOK, call(t, srv, http.MethodGet, "/api/auth/me", token, nil, &me))
	assert.Equal(t, admin.ID, me.ID)

	assert.Equal(t, http.StatusUnauthorized, call(t, srv, http.MethodGet, "/api/auth/me", "", nil, nil))
	assert.Equal(t, http.StatusUnauthorized, call(t, srv, http.MethodGet, "/api/auth/me", "garbage", nil, nil))

	var errBody map[string]string
	code := call(t, srv, http.MethodPost, "/api/auth/login", "", map[string]string{
		"username": memory.SeedAdminUsername, "password": "wrong",
	}, &errBody)
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "Invalid username or password", errBody["error"])
}

func TestRouter_RegisterCreatesAthleteProfile(t *testing.T) {
	srv := newTestServer(t)

	var reg struct {
		Message string  `json:"message"`
		User    apiUser `json:"user"`
	}
	code := call(t, srv, http.MethodPost, "/api/auth/register", "", map[string]any{
		"username": "rookie", "password": "rookie123", "email": "rookie@team.com", "fullName": "Rookie One",
	}, &reg)
	require.Equal(t, http.StatusCreated, code)
	assert.Equal(t, "athlete", reg.User.Role)

	var profile struct {
		ID                 string `json:"id"`
		UserID             string `json:"userId"`
		OverallPerformance string `json:"overallPerformance"`
	}
	require.Equal(t, http.StatusOK, call(t, srv, http.MethodGet, "/api/athletes/user/"+reg.User.ID, "", nil, &profile))
	assert.Equal(t, reg.User.ID, profile.UserID)
	assert.Equal(t, "0", profile.OverallPerformance)

	// Same username again.
	code = call(t, srv, http.MethodPost, "/api/auth/register", "", map[string]any{
		"username": "rookie", "password": "rookie123", "email": "other@team.com", "fullName": "Rookie Two",
	}, nil)
	assert.Equal(t, http.StatusBadRequest, code)

	login(t, srv, "rookie", "rookie123")
}

func TestRouter_AthleteScenario(t *testing.T) {
	srv := newTestServer(t)
	_, athleteUser := login(t, srv, memory.SeedAthleteUsername, memory.SeedAthletePassword)

	var list []struct {
		ID                 string   `json:"id"`
		OverallPerformance string   `json:"overallPerformance"`
		User               *apiUser `json:"user"`
	}
	require.Equal(t, http.StatusOK, call(t, srv, http.MethodGet, "/api/athletes", "", nil, &list))
	require.Len(t, list, 1)
	assert.Equal(t, "85", list[0].OverallPerformance)
	require.NotNil(t, list[0].User)
	assert.Equal(t, athleteUser.ID, list[0].User.ID)
	athleteID := list[0].ID

	var updated map[string]any
	require.Equal(t, http.StatusOK, call(t, srv, http.MethodPatch, "/api/athletes/"+athleteID, "",
		map[string]any{"overallPerformance": "92"}, &updated))
	assert.Equal(t, "92", updated["overallPerformance"])
	assert.Equal(t, "185 lbs", updated["weight"])

	// Delete is not cascading and a second delete is a 404.
	assert.Equal(t, http.StatusOK, call(t, srv, http.MethodDelete, "/api/athletes/"+athleteID, "", nil, nil))
	assert.Equal(t, http.StatusNotFound, call(t, srv, http.MethodDelete, "/api/athletes/"+athleteID, "", nil, nil))
	assert.Equal(t, http.StatusNotFound, call(t, srv, http.MethodGet, "/api/athletes/"+athleteID, "", nil, nil))
	assert.Equal(t, http.StatusOK, call(t, srv, http.MethodGet, "/api/users/"+athleteUser.ID, "", nil, nil))
}

func TestRouter_TrainingSessionStampsLastTraining(t *testing.T) {
	srv := newTestServer(t)
	_, admin := login(t, srv, memory.SeedAdminUsername, memory.SeedAdminPassword)

	var athletes []struct {
		ID string `json:"id"`
	}
	require.Equal(t, http.StatusOK, call(t, srv, http.MethodGet, "/api/athletes", "", nil, &athletes))
	require.NotEmpty(t, athletes)

	var ex struct {
		ID string `json:"id"`
	}
	require.Equal(t, http.StatusCreated, call(t, srv, http.MethodPost, "/api/exercises", "", map[string]any{
		"name": "Free throws", "category": "basketball", "createdBy": admin.ID,
		"metrics": map[string]any{"repetitions": 50},
	}, &ex))

	var session struct {
		ID          string    `json:"id"`
		CompletedAt time.Time `json:"completedAt"`
	}
	require.Equal(t, http.StatusCreated, call(t, srv, http.MethodPost, "/api/sessions", "", map[string]any{
		"athleteId": athletes[0].ID, "exerciseId": ex.ID,
		"results": map[string]any{"repetitions": 42, "completed": true},
	}, &session))

	var profile struct {
		LastTraining *time.Time `json:"lastTraining"`
	}
	require.Equal(t, http.StatusOK, call(t, srv, http.MethodGet, "/api/athletes/"+athletes[0].ID, "", nil, &profile))
	require.NotNil(t, profile.LastTraining)
	assert.True(t, session.CompletedAt.Equal(*profile.LastTraining))

	var sessions []map[string]any
	require.Equal(t, http.StatusOK, call(t, srv, http.MethodGet, "/api/athletes/"+athletes[0].ID+"/sessions", "", nil, &sessions))
	assert.Len(t, sessions, 1)

	assert.Equal(t, http.StatusBadRequest, call(t, srv, http.MethodPost, "/api/sessions", "", map[string]any{
		"athleteId": athletes[0].ID, "exerciseId": "missing",
	}, nil))
}

func TestRouter_ExerciseCategoryFilter(t *testing.T) {
	srv := newTestServer(t)
	_, admin := login(t, srv, memory.SeedAdminUsername, memory.SeedAdminPassword)

	for _, c := range []string{"basketball", "strength", "strength"} {
		require.Equal(t, http.StatusCreated, call(t, srv, http.MethodPost, "/api/exercises", "", map[string]any{
			"name": c + " drill", "category": c, "createdBy": admin.ID,
		}, nil))
	}

	var strength []map[string]any
	require.Equal(t, http.StatusOK, call(t, srv, http.MethodGet, "/api/exercises?category=strength", "", nil, &strength))
	assert.Len(t, strength, 2)

	var all []map[string]any
	require.Equal(t, http.StatusOK, call(t, srv, http.MethodGet, "/api/exercises", "", nil, &all))
	assert.Len(t, all, 3)

	assert.Equal(t, http.StatusBadRequest, call(t, srv, http.MethodGet, "/api/exercises?category=yoga", "", nil, nil))
}

func TestRouter_UpcomingEvents(t *testing.T) {
	srv := newTestServer(t)
	_, admin := login(t, srv, memory.SeedAdminUsername, memory.SeedAdminPassword)

	now := time.Now().UTC()
	for i, start := range []time.Time{now.Add(-48 * time.Hour), now.Add(48 * time.Hour)} {
		require.Equal(t, http.StatusCreated, call(t, srv, http.MethodPost, "/api/events", "", map[string]any{
			"title": []string{"Past game", "Next game"}[i], "eventType": "game", "startDate": start, "createdBy": admin.ID,
		}, nil))
	}

	var upcoming []struct {
		Title       string `json:"title"`
		IsMandatory bool   `json:"isMandatory"`
	}
	require.Equal(t, http.StatusOK, call(t, srv, http.MethodGet, "/api/events/upcoming", "", nil, &upcoming))
	require.Len(t, upcoming, 1)
	assert.Equal(t, "Next game", upcoming[0].Title)
	assert.False(t, upcoming[0].IsMandatory)

	assert.Equal(t, http.StatusBadRequest, call(t, srv, http.MethodPost, "/api/events", "", map[string]any{
		"title": "Backwards", "eventType": "meeting", "startDate": now, "endDate": now.Add(-time.Hour), "createdBy": admin.ID,
	}, nil))
}

func TestRouter_GalleryDefaultAlbum(t *testing.T) {
	srv := newTestServer(t)
	_, admin := login(t, srv, memory.SeedAdminUsername, memory.SeedAdminPassword)

	var item struct {
		ID    string `json:"id"`
		Album string `json:"album"`
	}
	require.Equal(t, http.StatusCreated, call(t, srv, http.MethodPost, "/api/gallery", "", map[string]any{
		"title": "Team photo", "type": "image", "url": "https://cdn.team.com/photo.jpg", "uploadedBy": admin.ID,
	}, &item))
	assert.Equal(t, "general", item.Album)

	var general []map[string]any
	require.Equal(t, http.StatusOK, call(t, srv, http.MethodGet, "/api/gallery?album=general", "", nil, &general))
	require.Len(t, general, 1)
	assert.Equal(t, item.ID, general[0]["id"])

	var other []map[string]any
	require.Equal(t, http.StatusOK, call(t, srv, http.MethodGet, "/api/gallery?album=finals", "", nil, &other))
	assert.Empty(t, other)
}

func TestRouter_BestOfWeek(t *testing.T) {
	srv := newTestServer(t)
	_, admin := login(t, srv, memory.SeedAdminUsername, memory.SeedAdminPassword)

	assert.Equal(t, http.StatusNotFound, call(t, srv, http.MethodGet, "/api/best-of-week/current", "", nil, nil))

	var athletes []struct {
		ID string `json:"id"`
	}
	require.Equal(t, http.StatusOK, call(t, srv, http.MethodGet, "/api/athletes", "", nil, &athletes))
	require.NotEmpty(t, athletes)

	require.Equal(t, http.StatusCreated, call(t, srv, http.MethodPost, "/api/best-of-week", "", map[string]any{
		"athleteId": athletes[0].ID, "setBy": admin.ID,
		"achievements": map[string]any{"rebounds": 14, "description": "Double-double in both games"},
	}, nil))

	var featured struct {
		AthleteID string `json:"athleteId"`
		Athlete   *struct {
			ID string `json:"id"`
		} `json:"athlete"`
		User *apiUser `json:"user"`
	}
	require.Equal(t, http.StatusOK, call(t, srv, http.MethodGet, "/api/best-of-week/current", "", nil, &featured))
	assert.Equal(t, athletes[0].ID, featured.AthleteID)
	require.NotNil(t, featured.Athlete)
	require.NotNil(t, featured.User)
	assert.Equal(t, memory.SeedAthleteUsername, featured.User.Username)

	assert.Equal(t, http.StatusBadRequest, call(t, srv, http.MethodPost, "/api/best-of-week", "", map[string]any{
		"athleteId": "ghost", "setBy": admin.ID,
	}, nil))
}

func TestRouter_LiveStreams(t *testing.T) {
	srv := newTestServer(t)
	_, admin := login(t, srv, memory.SeedAdminUsername, memory.SeedAdminPassword)

	var stream struct {
		ID       string `json:"id"`
		IsActive bool   `json:"isActive"`
		Category string `json:"category"`
	}
	require.Equal(t, http.StatusCreated, call(t, srv, http.MethodPost, "/api/live-streams", "", map[string]any{
		"title": "Finals", "youtubeUrl": "https://youtube.com/watch?v=abc", "createdBy": admin.ID,
	}, &stream))
	assert.False(t, stream.IsActive)
	assert.Equal(t, "nbb", stream.Category)

	var active []map[string]any
	require.Equal(t, http.StatusOK, call(t, srv, http.MethodGet, "/api/live-streams/active", "", nil, &active))
	assert.Empty(t, active)

	require.Equal(t, http.StatusOK, call(t, srv, http.MethodPatch, "/api/live-streams/"+stream.ID, "",
		map[string]any{"isActive": true}, nil))
	require.Equal(t, http.StatusOK, call(t, srv, http.MethodGet, "/api/live-streams/active", "", nil, &active))
	assert.Len(t, active, 1)

	assert.Equal(t, http.StatusNotFound, call(t, srv, http.MethodGet, "/api/live-streams/missing", "", nil, nil))
}

func TestRouter_UserUpdateAndDelete(t *testing.T) {
	srv := newTestServer(t)
	_, athlete := login(t, srv, memory.SeedAthleteUsername, memory.SeedAthletePassword)

	var updated apiUser
	require.Equal(t, http.StatusOK, call(t, srv, http.MethodPatch, "/api/users/"+athlete.ID, "",
		map[string]any{"password": "newpass123"}, &updated))
	assert.Equal(t, memory.SeedAthleteUsername, updated.Username)
	login(t, srv, memory.SeedAthleteUsername, "newpass123")

	// Taking the admin's username is rejected.
	assert.Equal(t, http.StatusBadRequest, call(t, srv, http.MethodPatch, "/api/users/"+athlete.ID, "",
		map[string]any{"username": memory.SeedAdminUsername}, nil))

	assert.Equal(t, http.StatusOK, call(t, srv, http.MethodDelete, "/api/users/"+athlete.ID, "", nil, nil))
	assert.Equal(t, http.StatusNotFound, call(t, srv, http.MethodGet, "/api/users/"+athlete.ID, "", nil, nil))
	assert.Equal(t, http.StatusNotFound, call(t, srv, http.MethodPatch, "/api/users/"+athlete.ID, "",
		map[string]any{"fullName": "Ghost"}, nil))
}

func TestRouter_SwaggerDoc(t *testing.T) {
	srv := newTestServer(t)
	resp, err := srv.Client().Get(srv.URL + "/swagger/doc.json")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
