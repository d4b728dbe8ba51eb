package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/srstalent/talentconnect/internal/common"
)

func (h *Handler) Jobs(c *gin.Context) {
	jobs, err := h.listings.ListJobs(c.Request.Context())
	if err != nil {
		h.logger.Error(c.Request.Context(), "listing jobs failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, toJobPayloads(jobs))
}

func (h *Handler) Courses(c *gin.Context) {
	courses, err := h.listings.ListCourses(c.Request.Context())
	if err != nil {
		h.logger.Error(c.Request.Context(), "listing courses failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, toCoursePayloads(courses))
}

type applyReq struct {
	JobID string `json:"job_id"`
}

func (h *Handler) Apply(c *gin.Context) {
	var in applyReq
	if err := c.ShouldBindJSON(&in); err != nil || in.JobID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "job_id is required"})
		return
	}

	if _, err := h.listings.Apply(c.Request.Context(), currentUserID(c), in.JobID); err != nil {
		switch {
		case errors.Is(err, common.ErrorNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "job not found"})
		case errors.Is(err, common.ErrorAlreadyExists):
			c.JSON(http.StatusConflict, gin.H{"error": "already applied to this job"})
		default:
			h.logger.Error(c.Request.Context(), "recording application failed", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		}
		return
	}

	c.Status(http.StatusCreated)
}

func (h *Handler) Applications(c *gin.Context) {
	views, err := h.listings.ListApplications(c.Request.Context(), currentUserID(c))
	if err != nil {
		h.logger.Error(c.Request.Context(), "listing applications failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, toApplicationPayloads(views))
}

type enrollReq struct {
	CourseID string `json:"course_id"`
}

func (h *Handler) Enroll(c *gin.Context) {
	var in enrollReq
	if err := c.ShouldBindJSON(&in); err != nil || in.CourseID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "course_id is required"})
		return
	}

	if _, err := h.listings.Enroll(c.Request.Context(), currentUserID(c), in.CourseID); err != nil {
		switch {
		case errors.Is(err, common.ErrorNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "course not found"})
		case errors.Is(err, common.ErrorAlreadyExists):
			c.JSON(http.StatusConflict, gin.H{"error": "already enrolled in this course"})
		default:
			h.logger.Error(c.Request.Context(), "recording enrollment failed", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		}
		return
	}

	c.Status(http.StatusCreated)
}

func (h *Handler) Enrollments(c *gin.Context) {
	views, err := h.listings.ListEnrollments(c.Request.Context(), currentUserID(c))
	if err != nil {
		h.logger.Error(c.Request.Context(), "listing enrollments failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, toEnrollmentPayloads(views))
}
