package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	nethttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/prepai/api/http/handlers"
	"github.com/artem13815/prepai/pkg/apperr"
	"github.com/artem13815/prepai/pkg/auth"
	"github.com/artem13815/prepai/pkg/health"
	"github.com/artem13815/prepai/pkg/interview"
	"github.com/artem13815/prepai/pkg/problem"
	"github.com/artem13815/prepai/pkg/progress"
	"github.com/artem13815/prepai/pkg/resume"
	"github.com/artem13815/prepai/pkg/security/jwt"
	"github.com/artem13815/prepai/pkg/submission"
)

type fakeAuth struct {
	loggedOut string
}

func (f *fakeAuth) Register(_ context.Context, name, email, _ string) (auth.User, error) {
	if email == "taken@example.com" {
		return auth.User{}, auth.ErrUserAlreadyExists
	}
	return auth.User{ID: uuid.New(), Name: name, Email: email}, nil
}

func (f *fakeAuth) Login(_ context.Context, email, password string) (auth.AuthResult, error) {
	if password != "secret1" {
		return auth.AuthResult{}, auth.ErrInvalidCredentials
	}
	return auth.AuthResult{User: auth.User{ID: uuid.New(), Email: email}, Token: "tkn"}, nil
}

func (f *fakeAuth) Logout(_ context.Context, tokenID string, _ time.Time) error {
	f.loggedOut = tokenID
	return nil
}

type fakeProblem struct{}

func (fakeProblem) Generate(_ context.Context, topic, difficulty string) (problem.Problem, error) {
	if _, err := problem.ParseDifficulty(difficulty); err != nil {
		return problem.Problem{}, err
	}
	return problem.Problem{Title: topic + " problem"}, nil
}

type fakeSubmission struct {
	gotUser uuid.UUID
}

func (f *fakeSubmission) Evaluate(_ context.Context, in submission.EvaluateInput) (submission.Submission, error) {
	f.gotUser = in.UserID
	return submission.Submission{
		ID:       uuid.New(),
		UserID:   in.UserID,
		Feedback: submission.Feedback{Correctness: "Correct", TimeComplexity: "O(n)"},
	}, nil
}

func (f *fakeSubmission) History(context.Context, uuid.UUID, int, int) ([]submission.Submission, error) {
	return []submission.Submission{{ID: uuid.New()}}, nil
}

type fakeInterview struct {
	session uuid.UUID
}

func (f *fakeInterview) Reply(_ context.Context, in interview.ChatInput) (interview.Reply, error) {
	if len(in.Messages) == 0 {
		return interview.Reply{}, apperr.Validation("messages must not be empty")
	}
	if in.UserID == uuid.Nil {
		return interview.Reply{Text: "Tell me about yourself."}, nil
	}
	id := f.session
	return interview.Reply{Text: "Thanks, that's all.", Completed: true, SessionID: &id}, nil
}

func (f *fakeInterview) History(context.Context, uuid.UUID, int, int) ([]interview.Session, error) {
	return nil, nil
}

type fakeResume struct{}

func (fakeResume) Review(_ context.Context, in resume.Upload) (resume.Review, error) {
	if err := resume.CheckPDF(in.Filename, in.ContentType, in.Data); err != nil {
		return resume.Review{}, err
	}
	return resume.Review{}, resume.ErrNotAResume
}

func (fakeResume) History(context.Context, uuid.UUID, int, int) ([]resume.Review, error) {
	return []resume.Review{}, nil
}

type fakeProgress struct{}

func (fakeProgress) Overview(context.Context, uuid.UUID) (progress.Overview, error) {
	return progress.Overview{CurrentStreak: 3}, nil
}

func (fakeProgress) RecordActivity(context.Context, uuid.UUID) (int, error) {
	return 4, nil
}

type testServer struct {
	app    *fiber.App
	tokens *jwt.Generator
	auth   *fakeAuth
	submit *fakeSubmission
	chat   *fakeInterview
}

func newTestServer(t *testing.T, opts RouteOptions) *testServer {
	t.Helper()
	ts := &testServer{
		tokens: jwt.NewGenerator("test-secret", "prepai", time.Hour),
		auth:   &fakeAuth{},
		submit: &fakeSubmission{},
		chat:   &fakeInterview{session: uuid.New()},
	}
	h := Handlers{
		Auth:      handlers.NewAuthHandler(ts.auth),
		Health:    handlers.NewHealthHandler(health.NewService()),
		Problem:   handlers.NewProblemHandler(fakeProblem{}),
		Submit:    handlers.NewSubmissionHandler(ts.submit),
		Interview: handlers.NewInterviewHandler(ts.chat),
		Resume:    handlers.NewResumeHandler(fakeResume{}),
		User:      handlers.NewUserHandler(fakeProgress{}, ts.submit, fakeResume{}, ts.chat),
	}
	ts.app = fiber.New()
	Register(ts.app, h, jwt.NewMiddleware(ts.tokens, nil), opts)
	return ts
}

func (ts *testServer) token(t *testing.T, id uuid.UUID) string {
	t.Helper()
	tok, err := ts.tokens.Generate(context.Background(), auth.User{ID: id})
	require.NoError(t, err)
	return tok
}

func (ts *testServer) do(t *testing.T, method, path, token string, body any) (int, map[string]any) {
	t.Helper()
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, r)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return ts.send(t, req)
}

func (ts *testServer) send(t *testing.T, req *nethttp.Request) (int, map[string]any) {
	t.Helper()
	resp, err := ts.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	out := map[string]any{}
	if len(bytes.TrimSpace(raw)) > 0 {
		require.NoError(t, json.Unmarshal(raw, &out), string(raw))
	}
	return resp.StatusCode, out
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t, RouteOptions{})

	status, body := ts.do(t, fiber.MethodGet, "/api/health", "", nil)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "ok", body["status"])

	status, body = ts.do(t, fiber.MethodGet, "/api/ready", "", nil)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "ready", body["status"])
}

func TestSignup(t *testing.T) {
	ts := newTestServer(t, RouteOptions{})

	status, body := ts.do(t, fiber.MethodPost, "/api/auth/signup", "", map[string]string{
		"name": "Ann", "email": "ann@example.com", "password": "secret1",
	})
	assert.Equal(t, fiber.StatusCreated, status)
	assert.Equal(t, "ann@example.com", body["email"])
	assert.NotEmpty(t, body["id"])

	status, body = ts.do(t, fiber.MethodPost, "/api/auth/signup", "", map[string]string{
		"name": "Ann", "email": "taken@example.com", "password": "secret1",
	})
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "user already exists", body["error"])
	assert.Equal(t, "user already exists", body["message"])
}

func TestLogin_InvalidCredentials(t *testing.T) {
	ts := newTestServer(t, RouteOptions{})

	status, body := ts.do(t, fiber.MethodPost, "/api/auth/login", "", map[string]string{
		"email": "ann@example.com", "password": "wrong",
	})
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Equal(t, "invalid credentials", body["message"])
}

func TestLogin_OK(t *testing.T) {
	ts := newTestServer(t, RouteOptions{})

	status, body := ts.do(t, fiber.MethodPost, "/api/auth/login", "", map[string]string{
		"email": "ann@example.com", "password": "secret1",
	})
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "tkn", body["token"])
	assert.NotEmpty(t, body["userId"])
}

func TestLogout_RevokesPresentedToken(t *testing.T) {
	ts := newTestServer(t, RouteOptions{})
	tok := ts.token(t, uuid.New())
	claims, err := ts.tokens.Parse(tok)
	require.NoError(t, err)

	status, _ := ts.do(t, fiber.MethodPost, "/api/auth/logout", tok, nil)
	assert.Equal(t, fiber.StatusNoContent, status)
	assert.Equal(t, claims.ID, ts.auth.loggedOut)
}

func TestGenerateProblem_BadDifficulty(t *testing.T) {
	ts := newTestServer(t, RouteOptions{})

	status, body := ts.do(t, fiber.MethodPost, "/api/generate-problem", "", map[string]string{
		"topic": "Arrays", "difficulty": "Extreme",
	})
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.NotEmpty(t, body["error"])

	status, body = ts.do(t, fiber.MethodPost, "/api/generate-problem", "", map[string]string{
		"topic": "Arrays", "difficulty": "easy",
	})
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "Arrays problem", body["title"])
}

func TestEvaluateCode_RequiresToken(t *testing.T) {
	ts := newTestServer(t, RouteOptions{})
	payload := map[string]any{
		"problem":  map[string]string{"title": "Two Sum", "description": "..."},
		"code":     "return []",
		"language": "python",
	}

	status, _ := ts.do(t, fiber.MethodPost, "/api/evaluate-code", "", payload)
	assert.Equal(t, fiber.StatusUnauthorized, status)

	user := uuid.New()
	status, body := ts.do(t, fiber.MethodPost, "/api/evaluate-code", ts.token(t, user), payload)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "Correct", body["correctness"])
	assert.NotEmpty(t, body["submissionId"])
	assert.Equal(t, user, ts.submit.gotUser)
}

func TestEvaluateCode_GarbageToken(t *testing.T) {
	ts := newTestServer(t, RouteOptions{})

	status, _ := ts.do(t, fiber.MethodPost, "/api/evaluate-code", "not-a-jwt", map[string]any{})
	assert.Equal(t, fiber.StatusUnauthorized, status)
}

func TestBehavioralChat_GuestAndUser(t *testing.T) {
	ts := newTestServer(t, RouteOptions{})
	payload := map[string]any{
		"messages": []map[string]string{{"sender": "user", "text": "Hi"}},
	}

	status, body := ts.do(t, fiber.MethodPost, "/api/behavioral-chat", "", payload)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, false, body["completed"])
	assert.NotContains(t, body, "sessionId")

	status, body = ts.do(t, fiber.MethodPost, "/api/behavioral-chat", ts.token(t, uuid.New()), payload)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, true, body["completed"])
	assert.Equal(t, ts.chat.session.String(), body["sessionId"])
}

func TestBehavioralChat_InvalidTokenRejected(t *testing.T) {
	ts := newTestServer(t, RouteOptions{})

	status, _ := ts.do(t, fiber.MethodPost, "/api/behavioral-chat", "garbage", map[string]any{
		"messages": []map[string]string{{"sender": "user", "text": "Hi"}},
	})
	assert.Equal(t, fiber.StatusUnauthorized, status)
}

func TestBehavioralChat_RequireAuthOption(t *testing.T) {
	ts := newTestServer(t, RouteOptions{ChatRequireAuth: true})

	status, _ := ts.do(t, fiber.MethodPost, "/api/behavioral-chat", "", map[string]any{
		"messages": []map[string]string{{"sender": "user", "text": "Hi"}},
	})
	assert.Equal(t, fiber.StatusUnauthorized, status)
}

func multipartResume(t *testing.T, filename string, data []byte) *nethttp.Request {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("resume", filename)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(fiber.MethodPost, "/api/review-resume", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func TestReviewResume_NotAResume(t *testing.T) {
	ts := newTestServer(t, RouteOptions{})

	status, body := ts.send(t, multipartResume(t, "recipe.pdf", []byte("%PDF-1.4 pancakes")))
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "the uploaded document does not appear to be a resume", body["error"])
}

func TestReviewResume_NotAPDF(t *testing.T) {
	ts := newTestServer(t, RouteOptions{})

	status, body := ts.send(t, multipartResume(t, "notes.txt", []byte("plain text")))
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.NotEmpty(t, body["error"])
}

func TestReviewResume_MissingFile(t *testing.T) {
	ts := newTestServer(t, RouteOptions{})

	status, body := ts.do(t, fiber.MethodPost, "/api/review-resume", "", map[string]any{})
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.True(t, strings.Contains(body["error"].(string), "resume"))
}

func TestUserRoutes(t *testing.T) {
	ts := newTestServer(t, RouteOptions{})
	tok := ts.token(t, uuid.New())

	status, _ := ts.do(t, fiber.MethodGet, "/api/user/progress", "", nil)
	assert.Equal(t, fiber.StatusUnauthorized, status)

	status, body := ts.do(t, fiber.MethodGet, "/api/user/progress", tok, nil)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, float64(3), body["currentStreak"])
	assert.Equal(t, []any{}, body["resumeReviews"])

	status, body = ts.do(t, fiber.MethodPost, "/api/user/record-activity", tok, nil)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, float64(4), body["currentStreak"])

	status, body = ts.do(t, fiber.MethodGet, "/api/user/submissions?limit=500&offset=2", tok, nil)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, float64(20), body["limit"])
	assert.Equal(t, float64(2), body["offset"])
	assert.Len(t, body["items"], 1)
}

type downChecker struct{}

func (downChecker) Name() string                { return "postgres" }
func (downChecker) Check(context.Context) error { return errors.New("connection refused") }

func TestReady_DependencyDown(t *testing.T) {
	app := fiber.New()
	app.Get("/api/ready", handlers.NewHealthHandler(health.NewService(downChecker{})).Ready)

	ts := &testServer{app: app}
	status, body := ts.do(t, fiber.MethodGet, "/api/ready", "", nil)

	assert.Equal(t, fiber.StatusServiceUnavailable, status)
	assert.Equal(t, "not_ready", body["status"])
	assert.Equal(t, map[string]any{"postgres": "connection refused"}, body["checks"])
}
