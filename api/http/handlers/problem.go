package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/prepai/api/http/presenter"
	"github.com/artem13815/prepai/pkg/problem"
)

type ProblemHandler struct {
	svc problem.UseCase
}

func NewProblemHandler(svc problem.UseCase) *ProblemHandler {
	return &ProblemHandler{svc: svc}
}

type generateProblemRequest struct {
	Topic      string `json:"topic"`
	Difficulty string `json:"difficulty"`
}

// Generate asks the model for a new practice problem.
// @Summary Generate a practice problem
// @Tags    practice
// @Accept  json
// @Produce json
// @Param   input body generateProblemRequest true "topic and difficulty (Easy, Medium, Hard)"
// @Success 200 {object} problem.Problem
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /generate-problem [post]
func (h *ProblemHandler) Generate(c *fiber.Ctx) error {
	var req generateProblemRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	p, err := h.svc.Generate(c.UserContext(), req.Topic, req.Difficulty)
	if err != nil {
		return presenter.Fail(c, err, "Failed to generate problem. Please try again.")
	}
	return presenter.JSON(c, http.StatusOK, p)
}
