package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/prepai/api/http/presenter"
	"github.com/artem13815/prepai/pkg/interview"
	"github.com/artem13815/prepai/pkg/security/jwt"
)

type InterviewHandler struct {
	svc interview.UseCase
}

func NewInterviewHandler(svc interview.UseCase) *InterviewHandler {
	return &InterviewHandler{svc: svc}
}

type behavioralChatRequest struct {
	Messages         []interview.Message `json:"messages"`
	TargetRole       string              `json:"targetRole"`
	TargetCompany    string              `json:"targetCompany"`
	UseResumeContext bool                `json:"useResumeContext"`
}

type behavioralChatResponse struct {
	Reply     string  `json:"reply"`
	Completed bool    `json:"completed"`
	SessionID *string `json:"sessionId,omitempty"`
}

// Chat returns the interviewer's next message.
// @Summary     Behavioral interview turn
// @Description Guests may chat when the deployment allows it; finished interviews are saved for signed-in users.
// @Tags        interview
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       input body behavioralChatRequest true "conversation so far"
// @Success     200 {object} behavioralChatResponse
// @Failure     400 {object} presenter.ErrorResponse
// @Failure     401 {object} presenter.ErrorResponse
// @Failure     500 {object} presenter.ErrorResponse
// @Router      /behavioral-chat [post]
func (h *InterviewHandler) Chat(c *fiber.Ctx) error {
	var req behavioralChatRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	userID, _ := jwt.UserID(c)
	reply, err := h.svc.Reply(c.UserContext(), interview.ChatInput{
		UserID:           userID,
		Messages:         req.Messages,
		TargetRole:       req.TargetRole,
		TargetCompany:    req.TargetCompany,
		UseResumeContext: req.UseResumeContext,
	})
	if err != nil {
		return presenter.Fail(c, err, "Failed to get a reply from the interviewer. Please try again.")
	}
	resp := behavioralChatResponse{Reply: reply.Text, Completed: reply.Completed}
	if reply.SessionID != nil {
		id := reply.SessionID.String()
		resp.SessionID = &id
	}
	return presenter.JSON(c, http.StatusOK, resp)
}
