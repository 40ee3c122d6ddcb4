package handlers

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/artem13815/prepai/api/http/presenter"
	"github.com/artem13815/prepai/pkg/resume"
	"github.com/artem13815/prepai/pkg/security/jwt"
)

type ResumeHandler struct {
	svc resume.UseCase
	// Limit uploaded file size read into memory (bytes)
	maxBytes int64
}

func NewResumeHandler(svc resume.UseCase) *ResumeHandler {
	return &ResumeHandler{svc: svc, maxBytes: resume.MaxUploadBytes}
}

type reviewResponse struct {
	ID *string `json:"id,omitempty"`
	resume.Analysis
	CreatedAt time.Time `json:"createdAt"`
}

func toReviewResponse(r resume.Review) reviewResponse {
	out := reviewResponse{Analysis: r.Analysis, CreatedAt: r.CreatedAt}
	if r.ID != uuid.Nil {
		id := r.ID.String()
		out.ID = &id
	}
	return out
}

// Review extracts the text of an uploaded PDF and asks the model to review it.
// @Summary     Review resume
// @Description Accepts a PDF under the "resume" field. Reviews are stored only for signed-in users.
// @Tags        resume
// @Accept      multipart/form-data
// @Produce     json
// @Security    BearerAuth
// @Param       resume formData file true "resume (PDF)"
// @Success     200 {object} reviewResponse
// @Failure     400 {object} presenter.ErrorResponse "not a PDF, unreadable, or not a resume"
// @Failure     500 {object} presenter.ErrorResponse
// @Router      /review-resume [post]
func (h *ResumeHandler) Review(c *fiber.Ctx) error {
	fh, err := c.FormFile("resume")
	if err != nil || fh == nil {
		return presenter.Error(c, http.StatusBadRequest, "resume file is required (pdf)")
	}
	if fh.Size > h.maxBytes {
		return presenter.Error(c, http.StatusBadRequest, fmt.Sprintf("file too large: limit is %d bytes", h.maxBytes))
	}
	file, err := fh.Open()
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "failed to open uploaded file")
	}
	defer file.Close()

	data, err := readAtMost(file, h.maxBytes)
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, err.Error())
	}
	userID, _ := jwt.UserID(c)
	review, err := h.svc.Review(c.UserContext(), resume.Upload{
		UserID:      userID,
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Data:        data,
	})
	if err != nil {
		return presenter.Fail(c, err, "Failed to review resume. Please try again.")
	}
	return presenter.JSON(c, http.StatusOK, toReviewResponse(review))
}

func readAtMost(f multipart.File, max int64) ([]byte, error) {
	limited := io.LimitReader(f, max+1)
	b, err := io.ReadAll(limited)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	if int64(len(b)) > max {
		return nil, fmt.Errorf("file too large: limit is %d bytes", max)
	}
	return b, nil
}
