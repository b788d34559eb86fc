package controllers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"fitlead/internal/models/request_models"
	"fitlead/internal/services"
	"fitlead/pkg/utils"
)

type SubmissionController struct {
	submissionService services.SubmissionServiceInterface
}

func NewSubmissionController(submissionService services.SubmissionServiceInterface) *SubmissionController {
	return &SubmissionController{submissionService: submissionService}
}

// CreateSubmission godoc
// @Summary Submit the contact form
// @Tags Submissions
// @Accept json
// @Produce json
// @Param request body request_models.CreateSubmissionRequest true "Lead payload"
// @Success 200 {object} map[string]db_models.Submission
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/submissions [post]
func (s *SubmissionController) CreateSubmission(c *gin.Context) {
	var req request_models.CreateSubmissionRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	submission, err := s.submissionService.Create(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"submission": submission})
}

// ListSubmissions godoc
// @Summary List submissions, newest first
// @Tags Submissions
// @Produce json
// @Success 200 {object} map[string][]db_models.Submission
// @Failure 403 {object} utils.ErrorResponse
// @Router /api/submissions [get]
func (s *SubmissionController) ListSubmissions(c *gin.Context) {
	submissions, err := s.submissionService.List(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"submissions": submissions})
}

// GetSubmission godoc
// @Summary Get a submission
// @Tags Submissions
// @Produce json
// @Param id path string true "Submission ID"
// @Success 200 {object} map[string]db_models.Submission
// @Failure 403 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/submissions/{id} [get]
func (s *SubmissionController) GetSubmission(c *gin.Context) {
	submission, err := s.submissionService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"submission": submission})
}

// UpdateSubmission godoc
// @Summary Patch a submission
// @Description Any non-empty subset of name, phone, email, goal, message, trainer, plan, intent, status. Other keys are ignored.
// @Tags Submissions
// @Accept json
// @Produce json
// @Param id path string true "Submission ID"
// @Param request body request_models.UpdateSubmissionRequest true "Fields to change"
// @Success 200 {object} map[string]db_models.Submission
// @Failure 400 {object} utils.ErrorResponse
// @Failure 403 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/submissions/{id} [put]
func (s *SubmissionController) UpdateSubmission(c *gin.Context) {
	// An empty body is an empty patch and gets the service's message.
	var req request_models.UpdateSubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	submission, err := s.submissionService.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"submission": submission})
}

// DeleteSubmission godoc
// @Summary Delete a submission
// @Description Succeeds even when the submission does not exist.
// @Tags Submissions
// @Produce json
// @Param id path string true "Submission ID"
// @Success 200 {object} map[string]bool
// @Failure 403 {object} utils.ErrorResponse
// @Router /api/submissions/{id} [delete]
func (s *SubmissionController) DeleteSubmission(c *gin.Context) {
	if err := s.submissionService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondOK(c)
}
