package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/prepai/api/http/presenter"
	"github.com/artem13815/prepai/pkg/security/jwt"
	"github.com/artem13815/prepai/pkg/submission"
)

type SubmissionHandler struct {
	svc submission.UseCase
}

func NewSubmissionHandler(svc submission.UseCase) *SubmissionHandler {
	return &SubmissionHandler{svc: svc}
}

type evaluateCodeRequest struct {
	Problem  submission.ProblemSnapshot `json:"problem"`
	Code     string                     `json:"code"`
	Language string                     `json:"language"`
	Topic    string                     `json:"topic"`
}

type evaluateCodeResponse struct {
	submission.Feedback
	SubmissionID string `json:"submissionId"`
}

// Evaluate grades the submitted code and stores the submission.
// @Summary  Evaluate code
// @Tags     practice
// @Accept   json
// @Produce  json
// @Security BearerAuth
// @Param    input body evaluateCodeRequest true "problem snapshot, code and language"
// @Success  200 {object} evaluateCodeResponse
// @Failure  400 {object} presenter.ErrorResponse
// @Failure  401 {object} presenter.ErrorResponse
// @Failure  500 {object} presenter.ErrorResponse
// @Router   /evaluate-code [post]
func (h *SubmissionHandler) Evaluate(c *fiber.Ctx) error {
	userID, ok := jwt.UserID(c)
	if !ok {
		return presenter.Error(c, http.StatusUnauthorized, "authentication required")
	}
	var req evaluateCodeRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	sub, err := h.svc.Evaluate(c.UserContext(), submission.EvaluateInput{
		UserID:   userID,
		Problem:  req.Problem,
		Code:     req.Code,
		Language: req.Language,
		Topic:    req.Topic,
	})
	if err != nil {
		return presenter.Fail(c, err, "Failed to evaluate code. Please try again.")
	}
	return presenter.JSON(c, http.StatusOK, evaluateCodeResponse{
		Feedback:     sub.Feedback,
		SubmissionID: sub.ID.String(),
	})
}
