package api

import (
	"errors"
	"net/http"
	"regexp"

	"github.com/gin-gonic/gin"

	"github.com/srstalent/talentconnect/internal/common"
)

var (
	phoneRe = regexp.MustCompile(`^[0-9]{10}$`)
	codeRe  = regexp.MustCompile(`^[0-9]{6}$`)
)

func validTarget(channel, target string) bool {
	switch channel {
	case "email":
		return emailRe.MatchString(target)
	case "phone":
		return phoneRe.MatchString(target)
	default:
		return false
	}
}

type verificationRequestReq struct {
	Channel string `json:"channel"`
	Target  string `json:"target"`
}

func (h *Handler) RequestCode(c *gin.Context) {
	var in verificationRequestReq
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	if !validTarget(in.Channel, in.Target) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid verification target"})
		return
	}

	if err := h.verification.RequestCode(c.Request.Context(), in.Channel, in.Target); err != nil {
		h.logger.Error(c.Request.Context(), "issuing verification code failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.Status(http.StatusAccepted)
}

type verificationConfirmReq struct {
	Channel string `json:"channel"`
	Target  string `json:"target"`
	Code    string `json:"code"`
}

func (h *Handler) ConfirmCode(c *gin.Context) {
	var in verificationConfirmReq
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	if !validTarget(in.Channel, in.Target) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid verification target"})
		return
	}
	if !codeRe.MatchString(in.Code) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid verification code"})
		return
	}

	if err := h.verification.ConfirmCode(c.Request.Context(), in.Channel, in.Target, in.Code); err != nil {
		switch {
		case errors.Is(err, common.ErrCodeExpired):
			c.JSON(http.StatusGone, gin.H{"error": common.ErrCodeExpired.Error()})
		case errors.Is(err, common.ErrCodeMismatch):
			c.JSON(http.StatusBadRequest, gin.H{"error": common.ErrCodeMismatch.Error()})
		default:
			h.logger.Error(c.Request.Context(), "confirming verification code failed", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		}
		return
	}

	c.Status(http.StatusOK)
}
