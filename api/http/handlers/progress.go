package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/prepai/api/http/presenter"
	"github.com/artem13815/prepai/pkg/interview"
	"github.com/artem13815/prepai/pkg/progress"
	"github.com/artem13815/prepai/pkg/resume"
	"github.com/artem13815/prepai/pkg/security/jwt"
	"github.com/artem13815/prepai/pkg/submission"
)

// UserHandler serves the signed-in user's dashboard and history.
type UserHandler struct {
	progress    progress.UseCase
	submissions submission.UseCase
	reviews     resume.UseCase
	interviews  interview.UseCase
}

func NewUserHandler(p progress.UseCase, s submission.UseCase, r resume.UseCase, i interview.UseCase) *UserHandler {
	return &UserHandler{progress: p, submissions: s, reviews: r, interviews: i}
}

type progressResponse struct {
	ResumeReviews  []reviewResponse        `json:"resumeReviews"`
	ChatSessions   []interview.Session     `json:"chatSessions"`
	DsaSubmissions []submission.Submission `json:"dsaSubmissions"`
	CurrentStreak  int                     `json:"currentStreak"`
}

// Progress returns the latest items of each kind and the current streak.
// @Summary     User progress
// @Description Five most recent items of each kind, newest first. currentStreak is 0 once a calendar day has been missed, even though the stored streak is only reset by the next recorded activity.
// @Tags        user
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} progressResponse
// @Failure     401 {object} presenter.ErrorResponse
// @Router   /user/progress [get]
func (h *UserHandler) Progress(c *fiber.Ctx) error {
	userID, ok := jwt.UserID(c)
	if !ok {
		return presenter.Error(c, http.StatusUnauthorized, "authentication required")
	}
	ov, err := h.progress.Overview(c.UserContext(), userID)
	if err != nil {
		return presenter.Fail(c, err, "failed to load progress")
	}
	reviews := make([]reviewResponse, 0, len(ov.ResumeReviews))
	for _, r := range ov.ResumeReviews {
		reviews = append(reviews, toReviewResponse(r))
	}
	return presenter.JSON(c, http.StatusOK, progressResponse{
		ResumeReviews:  reviews,
		ChatSessions:   ov.ChatSessions,
		DsaSubmissions: ov.DsaSubmissions,
		CurrentStreak:  ov.CurrentStreak,
	})
}

// RecordActivity counts today towards the streak.
// @Summary  Record daily activity
// @Tags     user
// @Produce  json
// @Security BearerAuth
// @Success  200 {object} map[string]int
// @Failure  401 {object} presenter.ErrorResponse
// @Router   /user/record-activity [post]
func (h *UserHandler) RecordActivity(c *fiber.Ctx) error {
	userID, ok := jwt.UserID(c)
	if !ok {
		return presenter.Error(c, http.StatusUnauthorized, "authentication required")
	}
	n, err := h.progress.RecordActivity(c.UserContext(), userID)
	if err != nil {
		return presenter.Fail(c, err, "failed to record activity")
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{"currentStreak": n})
}

// Submissions lists the user's graded submissions, newest first.
// @Summary  Submission history
// @Tags     user
// @Produce  json
// @Security BearerAuth
// @Param    limit  query int false "page size (max 100)"
// @Param    offset query int false "offset"
// @Success  200 {object} map[string]any
// @Router   /user/submissions [get]
func (h *UserHandler) Submissions(c *fiber.Ctx) error {
	userID, ok := jwt.UserID(c)
	if !ok {
		return presenter.Error(c, http.StatusUnauthorized, "authentication required")
	}
	p := parsePage(c)
	items, err := h.submissions.History(c.UserContext(), userID, p.Limit, p.Offset)
	if err != nil {
		return presenter.Fail(c, err, "failed to load submissions")
	}
	return presenter.JSON(c, http.StatusOK, pageResponse[submission.Submission]{Items: items, page: p})
}

// ResumeReviews lists the user's stored resume reviews, newest first.
// @Summary  Resume review history
// @Tags     user
// @Produce  json
// @Security BearerAuth
// @Param    limit  query int false "page size (max 100)"
// @Param    offset query int false "offset"
// @Success  200 {object} map[string]any
// @Router   /user/resume-reviews [get]
func (h *UserHandler) ResumeReviews(c *fiber.Ctx) error {
	userID, ok := jwt.UserID(c)
	if !ok {
		return presenter.Error(c, http.StatusUnauthorized, "authentication required")
	}
	p := parsePage(c)
	items, err := h.reviews.History(c.UserContext(), userID, p.Limit, p.Offset)
	if err != nil {
		return presenter.Fail(c, err, "failed to load resume reviews")
	}
	out := make([]reviewResponse, 0, len(items))
	for _, r := range items {
		out = append(out, toReviewResponse(r))
	}
	return presenter.JSON(c, http.StatusOK, pageResponse[reviewResponse]{Items: out, page: p})
}

// ChatSessions lists the user's finished interviews, newest first.
// @Summary  Interview history
// @Tags     user
// @Produce  json
// @Security BearerAuth
// @Param    limit  query int false "page size (max 100)"
// @Param    offset query int false "offset"
// @Success  200 {object} map[string]any
// @Router   /user/chat-sessions [get]
func (h *UserHandler) ChatSessions(c *fiber.Ctx) error {
	userID, ok := jwt.UserID(c)
	if !ok {
		return presenter.Error(c, http.StatusUnauthorized, "authentication required")
	}
	p := parsePage(c)
	items, err := h.interviews.History(c.UserContext(), userID, p.Limit, p.Offset)
	if err != nil {
		return presenter.Fail(c, err, "failed to load chat sessions")
	}
	return presenter.JSON(c, http.StatusOK, pageResponse[interview.Session]{Items: items, page: p})
}
