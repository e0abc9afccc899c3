package bootstrap

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/yigit/sporthub/internal/app/models"
	"github.com/yigit/sporthub/internal/app/models/dto"
	"github.com/yigit/sporthub/internal/config"
	"github.com/yigit/sporthub/internal/pkg/logger"
	"github.com/yigit/sporthub/internal/seed"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := &config.Config{}
	cfg.Server.Port = "0"
	cfg.Server.Mode = "test"
	cfg.Server.StoragePath = t.TempDir()
	cfg.Server.PublicPath = "/uploads"
	cfg.Database.Driver = "memory"
	cfg.JWT.Secret = "test-secret"
	cfg.Logging.Level = "error"
	cfg.Logging.Format = "json"
	return cfg
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	cfg := testConfig(t)
	lgr := logger.Nop()

	database, err := SetupDatabase(context.Background(), cfg, lgr)
	if err != nil {
		t.Fatalf("Failed to set up database: %v", err)
	}
	t.Cleanup(database.Close)

	deps, err := BuildDependencies(cfg, database.Repos, lgr)
	if err != nil {
		t.Fatalf("Failed to build dependencies: %v", err)
	}
	return SetupRouter(cfg, deps, lgr)
}

type file struct {
	field       string
	name        string
	contentType string
	content     string
}

func multipartBody(t *testing.T, fields map[string]string, f *file) (io.Reader, string) {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			t.Fatalf("Failed to write field: %v", err)
		}
	}
	if f != nil {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`, f.field, f.name))
		h.Set("Content-Type", f.contentType)
		part, err := w.CreatePart(h)
		if err != nil {
			t.Fatalf("Failed to create part: %v", err)
		}
		if _, err := part.Write([]byte(f.content)); err != nil {
			t.Fatalf("Failed to write part: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Failed to close writer: %v", err)
	}
	return &buf, w.FormDataContentType()
}

func jsonBody(t *testing.T, v any) (io.Reader, string) {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("Failed to marshal body: %v", err)
	}
	return bytes.NewReader(b), "application/json"
}

func do(router *gin.Engine, method, path string, body io.Reader, contentType, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(w.Body.Bytes(), &v); err != nil {
		t.Fatalf("Failed to decode %q: %v", w.Body.String(), err)
	}
	return v
}

func expectStatus(t *testing.T, w *httptest.ResponseRecorder, status int) {
	t.Helper()
	if w.Code != status {
		t.Fatalf("Expected status %d, got %d: %s", status, w.Code, w.Body.String())
	}
}

func expectError(t *testing.T, w *httptest.ResponseRecorder, status int, code dto.ErrorCode, message string) {
	t.Helper()
	expectStatus(t, w, status)
	resp := decode[dto.ErrorResponse](t, w)
	if resp.Code != code {
		t.Errorf("Expected code %s, got %s", code, resp.Code)
	}
	if message != "" && resp.Error != message {
		t.Errorf("Expected error %q, got %q", message, resp.Error)
	}
}

// signup registers a user and returns its id and a token.
func signup(t *testing.T, router *gin.Engine, username string) (int64, string) {
	t.Helper()

	body, ct := jsonBody(t, dto.RegisterRequest{Username: username, Password: "pw123", Email: username + "@x.com"})
	w := do(router, http.MethodPost, "/register", body, ct, "")
	expectStatus(t, w, http.StatusCreated)
	user := decode[dto.RegisterResponse](t, w)

	body, ct = jsonBody(t, dto.LoginRequest{Email: username + "@x.com", Password: "pw123"})
	w = do(router, http.MethodPost, "/login", body, ct, "")
	expectStatus(t, w, http.StatusOK)
	return user.UserID, decode[dto.TokenResponse](t, w).Token
}

func TestSystemEndpoints(t *testing.T) {
	router := newTestRouter(t)

	w := do(router, http.MethodGet, "/test", nil, "", "")
	expectStatus(t, w, http.StatusOK)
	if w.Body.String() != "Hello World!" {
		t.Errorf("Expected Hello World!, got %q", w.Body.String())
	}
	if w.Header().Get("X-Request-ID") == "" {
		t.Error("Expected a request id header")
	}

	w = do(router, http.MethodGet, "/health", nil, "", "")
	expectStatus(t, w, http.StatusOK)
	if resp := decode[dto.HealthResponse](t, w); resp.Status != "ok" {
		t.Errorf("Expected status ok, got %s", resp.Status)
	}

	w = do(router, http.MethodGet, "/metrics", nil, "", "")
	expectStatus(t, w, http.StatusOK)
	if !strings.Contains(w.Body.String(), "sporthub_http_requests_total") {
		t.Errorf("Expected request counter in metrics output")
	}

	w = do(router, http.MethodGet, "/sports", nil, "", "")
	expectStatus(t, w, http.StatusOK)
	if sports := decode[[]models.SportSummary](t, w); len(sports) != len(seed.DefaultSports) {
		t.Errorf("Expected %d seeded sports, got %d", len(seed.DefaultSports), len(sports))
	}
	expectError(t, do(router, http.MethodGet, "/sports/999", nil, "", ""), http.StatusNotFound, dto.ErrorCodeResourceNotFound, "")
}

func TestAuthFlow(t *testing.T) {
	router := newTestRouter(t)
	signup(t, router, "alice")

	body, ct := jsonBody(t, dto.RegisterRequest{Username: "alice", Password: "x", Email: "other@x.com"})
	expectError(t, do(router, http.MethodPost, "/register", body, ct, ""),
		http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "username already taken")

	body, ct = jsonBody(t, dto.RegisterRequest{Username: "bob", Password: "x", Email: "alice@x.com"})
	expectError(t, do(router, http.MethodPost, "/register", body, ct, ""),
		http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "email already taken")

	body, ct = jsonBody(t, dto.LoginRequest{Email: "alice@x.com", Password: "wrong"})
	expectError(t, do(router, http.MethodPost, "/login", body, ct, ""),
		http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials, "")

	body, ct = jsonBody(t, dto.LoginRequest{Email: "nobody@x.com", Password: "pw123"})
	expectError(t, do(router, http.MethodPost, "/login", body, ct, ""),
		http.StatusNotFound, dto.ErrorCodeResourceNotFound, "user not found")

	expectError(t, do(router, http.MethodPost, "/login", strings.NewReader(""), "application/json", ""),
		http.StatusNotFound, dto.ErrorCodeResourceNotFound, "user not found")

	long := strings.Repeat("p", 80)
	body, ct = jsonBody(t, dto.RegisterRequest{Username: "bob", Password: long, Email: "b@x.com"})
	expectStatus(t, do(router, http.MethodPost, "/register", body, ct, ""), http.StatusCreated)
	body, ct = jsonBody(t, dto.LoginRequest{Email: "b@x.com", Password: long})
	w := do(router, http.MethodPost, "/login", body, ct, "")
	expectStatus(t, w, http.StatusOK)
	if decode[dto.TokenResponse](t, w).Token == "" {
		t.Error("Expected a token for the long password")
	}

	body, ct = jsonBody(t, dto.CreateTextPostRequest{Text: "hi", Description: "d"})
	expectError(t, do(router, http.MethodPost, "/posts-txt", body, ct, ""),
		http.StatusUnauthorized, dto.ErrorCodeTokenNotFound, "")

	body, ct = jsonBody(t, dto.CreateTextPostRequest{Text: "hi", Description: "d"})
	expectError(t, do(router, http.MethodPost, "/posts-txt", body, ct, "garbage"),
		http.StatusUnauthorized, dto.ErrorCodeInvalidToken, "")
}

func TestTextPostFlow(t *testing.T) {
	router := newTestRouter(t)
	_, token := signup(t, router, "alice")

	body, ct := jsonBody(t, dto.CreateTextPostRequest{Text: "hi"})
	expectError(t, do(router, http.MethodPost, "/posts-txt", body, ct, token),
		http.StatusBadRequest, dto.ErrorCodeValidationFailed, "text and description are required")

	body, ct = jsonBody(t, dto.CreateTextPostRequest{Text: "hi", Description: "d"})
	w := do(router, http.MethodPost, "/posts-txt", body, ct, token)
	expectStatus(t, w, http.StatusCreated)
	postID := decode[dto.CreateTextPostResponse](t, w).PostID

	likePath := fmt.Sprintf("/posts-txt/%d/like", postID)
	for range 3 {
		expectStatus(t, do(router, http.MethodPost, likePath, nil, "", token), http.StatusOK)
	}
	expectError(t, do(router, http.MethodPost, "/posts-txt/999/like", nil, "", token),
		http.StatusNotFound, dto.ErrorCodeResourceNotFound, "post not found")

	w = do(router, http.MethodGet, fmt.Sprintf("/posts-txt/%d", postID), nil, "", "")
	expectStatus(t, w, http.StatusOK)
	if post := decode[models.TextPost](t, w); post.Likes != 3 || post.Username != "alice" {
		t.Errorf("Expected 3 likes by alice, got %d by %s", post.Likes, post.Username)
	}

	w = do(router, http.MethodGet, "/posts-txt?page=1&limit=1", nil, "", "")
	expectStatus(t, w, http.StatusOK)
	list := decode[dto.TextPostListResponse](t, w)
	if len(list.Posts) != 1 || list.NextPage == nil || *list.NextPage != 2 {
		t.Errorf("Expected one post and nextPage 2, got %d posts, next=%v", len(list.Posts), list.NextPage)
	}

	w = do(router, http.MethodGet, "/posts-txt", nil, "", "")
	expectStatus(t, w, http.StatusOK)
	if !strings.Contains(w.Body.String(), `"nextPage":null`) {
		t.Errorf("Expected nextPage null, got %s", w.Body.String())
	}

	expectError(t, do(router, http.MethodGet, "/posts-txt/abc", nil, "", ""),
		http.StatusNotFound, dto.ErrorCodeResourceNotFound, "post not found")
}

func TestUploadAndMediaFlow(t *testing.T) {
	router := newTestRouter(t)
	userID, token := signup(t, router, "alice")

	body, ct := multipartBody(t, nil, &file{"file", "notes.txt", "text/plain", "x"})
	expectError(t, do(router, http.MethodPost, "/upload", body, ct, token),
		http.StatusBadRequest, dto.ErrorCodeUnsupportedFileType, "")

	body, ct = multipartBody(t, nil, nil)
	expectError(t, do(router, http.MethodPost, "/upload", body, ct, token),
		http.StatusBadRequest, dto.ErrorCodeFileRequired, "")

	mediaPath := fmt.Sprintf("/media/%d", userID)
	expectError(t, do(router, http.MethodGet, mediaPath, nil, "", token),
		http.StatusNotFound, dto.ErrorCodeResourceNotFound, "no media found for this user")

	body, ct = multipartBody(t, nil, &file{"file", "pic.png", "image/png", "png-bytes"})
	w := do(router, http.MethodPost, "/upload", body, ct, token)
	expectStatus(t, w, http.StatusCreated)
	mediaID := decode[dto.UploadResponse](t, w).MediaID

	w = do(router, http.MethodGet, fmt.Sprintf("/media/id/%d", mediaID), nil, "", "")
	expectStatus(t, w, http.StatusOK)
	if w.Body.String() != "png-bytes" {
		t.Errorf("Expected file content, got %q", w.Body.String())
	}

	w = do(router, http.MethodGet, mediaPath, nil, "", token)
	expectStatus(t, w, http.StatusOK)
	media := decode[[]models.Media](t, w)
	if len(media) != 1 || media[0].Filename == nil || media[0].Filepath == nil {
		t.Fatalf("Expected one stored media row, got %+v", media)
	}

	w = do(router, http.MethodGet, "/media/file/"+*media[0].Filename, nil, "", "")
	expectStatus(t, w, http.StatusOK)

	w = do(router, http.MethodGet, *media[0].Filepath, nil, "", "")
	expectStatus(t, w, http.StatusOK)
	if w.Body.String() != "png-bytes" {
		t.Errorf("Expected static file content, got %q", w.Body.String())
	}

	expectError(t, do(router, http.MethodGet, "/media/file/missing.png", nil, "", ""),
		http.StatusNotFound, dto.ErrorCodeResourceNotFound, "file not found")

	fields := map[string]string{"description": "goal"}
	body, ct = multipartBody(t, fields, &file{"file", "goal.mp4", "video/mp4", "mp4"})
	w = do(router, http.MethodPost, "/posts-media", body, ct, token)
	expectStatus(t, w, http.StatusCreated)
	postID := decode[dto.CreateMediaPostResponse](t, w).PostMediaID

	w = do(router, http.MethodGet, fmt.Sprintf("/posts-media/%d", postID), nil, "", "")
	expectStatus(t, w, http.StatusOK)

	article := map[string]string{"titre": "t", "description": "d", "corps": "c", "sport": "tennis", "date": "2024-01-01"}
	body, ct = multipartBody(t, article, &file{"file", "cover.jpg", "image/jpeg", "jpg"})
	w = do(router, http.MethodPost, "/articles", body, ct, token)
	expectStatus(t, w, http.StatusCreated)
	articleID := decode[dto.CreateArticleResponse](t, w).ArticleID

	w = do(router, http.MethodGet, fmt.Sprintf("/articles/%d", articleID), nil, "", "")
	expectStatus(t, w, http.StatusOK)
	if got := decode[models.Article](t, w); got.Auteur != "alice" {
		t.Errorf("Expected auteur alice, got %s", got.Auteur)
	}
}

func createEvent(t *testing.T, router *gin.Engine, token string, capacity int) int64 {
	t.Helper()
	fields := map[string]string{
		"name":                "Sunday run",
		"date":                "2024-06-01",
		"lieu":                "Park",
		"sport":               "running",
		"genre":               "mixed",
		"nb_participants_max": fmt.Sprint(capacity),
		"description":         "10k easy",
	}
	body, ct := multipartBody(t, fields, &file{"file", "cover.png", "image/png", "png"})
	w := do(router, http.MethodPost, "/events", body, ct, token)
	expectStatus(t, w, http.StatusCreated)
	return decode[dto.CreateEventResponse](t, w).EventID
}

func TestEventFlow(t *testing.T) {
	router := newTestRouter(t)
	_, ownerToken := signup(t, router, "alice")
	bobID, bobToken := signup(t, router, "bob")
	_, carolToken := signup(t, router, "carol")

	eventID := createEvent(t, router, ownerToken, 1)
	eventPath := fmt.Sprintf("/events/%d", eventID)
	participantsPath := eventPath + "/participants"

	update := dto.EventRequest{Name: "Hijacked", Date: "2024-06-02", Lieu: "Elsewhere", Sport: "running",
		Genre: "mixed", NbParticipantsMax: 5, Description: "changed"}
	body, ct := jsonBody(t, update)
	expectStatus(t, do(router, http.MethodPut, eventPath, body, ct, bobToken), http.StatusOK)
	expectStatus(t, do(router, http.MethodDelete, eventPath, nil, "", bobToken), http.StatusOK)

	w := do(router, http.MethodGet, eventPath, nil, "", "")
	expectStatus(t, w, http.StatusOK)
	if event := decode[models.Event](t, w); event.Name != "Sunday run" {
		t.Errorf("Expected the event unchanged by a non-owner, got %s", event.Name)
	}

	expectStatus(t, do(router, http.MethodPost, participantsPath, nil, "", bobToken), http.StatusCreated)
	expectError(t, do(router, http.MethodPost, participantsPath, nil, "", bobToken),
		http.StatusBadRequest, dto.ErrorCodeValidationFailed, "user already registered for this event")
	expectError(t, do(router, http.MethodPost, participantsPath, nil, "", carolToken),
		http.StatusBadRequest, dto.ErrorCodeValidationFailed, "maximum number of participants reached")
	expectError(t, do(router, http.MethodPost, "/events/999/participants", nil, "", carolToken),
		http.StatusNotFound, dto.ErrorCodeResourceNotFound, "event not found")

	w = do(router, http.MethodGet, participantsPath+"/count", nil, "", "")
	expectStatus(t, w, http.StatusOK)
	if count := decode[dto.ParticipantCountResponse](t, w); count.Participants != 1 || count.MaxParticipants != 1 {
		t.Errorf("Expected 1/1, got %d/%d", count.Participants, count.MaxParticipants)
	}

	w = do(router, http.MethodGet, participantsPath, nil, "", "")
	expectStatus(t, w, http.StatusOK)
	participants := decode[dto.ParticipantsResponse](t, w).Participants
	if len(participants) != 1 || participants[0].UserID != bobID || participants[0].Username != "bob" {
		t.Errorf("Expected bob as the only participant, got %+v", participants)
	}

	w = do(router, http.MethodGet, "/events/abc/participants", nil, "", "")
	expectStatus(t, w, http.StatusOK)
	if got := decode[dto.ParticipantsResponse](t, w).Participants; len(got) != 0 {
		t.Errorf("Expected no participants for a bad id, got %d", len(got))
	}

	expectStatus(t, do(router, http.MethodDelete, participantsPath, nil, "", bobToken), http.StatusOK)
	expectError(t, do(router, http.MethodDelete, participantsPath, nil, "", bobToken),
		http.StatusNotFound, dto.ErrorCodeResourceNotFound, "participant not found")

	body, ct = jsonBody(t, map[string]any{
		"name": "Monday run", "date": "2024-06-02", "lieu": "Park", "sport": "running",
		"genre": "mixed", "nb_participants_max": "5", "description": "changed",
	})
	expectStatus(t, do(router, http.MethodPut, eventPath, body, ct, ownerToken), http.StatusOK)
	w = do(router, http.MethodGet, eventPath, nil, "", "")
	if event := decode[models.Event](t, w); event.Name != "Monday run" || event.NbParticipantsMax != 5 {
		t.Errorf("Expected the owner's update with capacity 5, got %s/%d", event.Name, event.NbParticipantsMax)
	}

	expectStatus(t, do(router, http.MethodDelete, eventPath, nil, "", ownerToken), http.StatusOK)
	expectError(t, do(router, http.MethodGet, eventPath, nil, "", ""),
		http.StatusNotFound, dto.ErrorCodeResourceNotFound, "event not found")
}

func TestProfileFlow(t *testing.T) {
	router := newTestRouter(t)
	signup(t, router, "alice")

	body, ct := multipartBody(t, map[string]string{"username": "alice", "sports_pratiques": "nope"}, nil)
	expectError(t, do(router, http.MethodPost, "/profil-1-2", body, ct, ""),
		http.StatusBadRequest, dto.ErrorCodeValidationFailed, "")

	body, ct = multipartBody(t, map[string]string{"username": "ghost", "sports_pratiques": `["tennis"]`}, nil)
	expectError(t, do(router, http.MethodPost, "/profil-1-2", body, ct, ""),
		http.StatusNotFound, dto.ErrorCodeResourceNotFound, "user not found")

	body, ct = multipartBody(t, map[string]string{"username": "alice", "sports_pratiques": `["tennis"]`},
		&file{"photo_profil", "me.jpg", "image/jpeg", "jpg"})
	w := do(router, http.MethodPost, "/profil-1-2", body, ct, "")
	expectStatus(t, w, http.StatusCreated)
	if resp := decode[dto.CreateProfileResponse](t, w); resp.ProfilID == 0 {
		t.Error("Expected a profile id")
	}

	body, ct = jsonBody(t, map[string]any{"username": "alice", "sports_suivis": []string{"football"}})
	expectStatus(t, do(router, http.MethodPut, "/profil-2-2", body, ct, ""), http.StatusOK)

	body, ct = jsonBody(t, map[string]any{"username": "ghost", "sports_suivis": []string{"football"}})
	expectStatus(t, do(router, http.MethodPut, "/profil-2-2", body, ct, ""), http.StatusOK)

	body, ct = jsonBody(t, map[string]any{"username": "alice", "sports_suivis": []string{"rugby"}})
	w = do(router, http.MethodPut, "/profil-2-2/", body, ct, "")
	expectStatus(t, w, http.StatusOK)
	if resp := decode[dto.SuccessResponse](t, w); resp.Message != "profile updated successfully" {
		t.Errorf("Expected the update message, got %q", resp.Message)
	}
}
