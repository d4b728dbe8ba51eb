package api

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/srstalent/talentconnect/internal/server/metrics"
)

func NewRouter(h *Handler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(metrics.Middleware())

	r.GET("/healthz", h.Healthz)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := r.Group("/api/v1")
	v1.POST("/auth/register", h.Register)
	v1.POST("/auth/login", h.Login)
	v1.POST("/auth/refresh", h.Refresh)
	v1.POST("/auth/logout", h.Logout)
	v1.POST("/verification/request", h.RequestCode)
	v1.POST("/verification/confirm", h.ConfirmCode)
	v1.GET("/jobs", h.Jobs)
	v1.GET("/courses", h.Courses)

	authed := v1.Group("", h.requireAuth())
	authed.GET("/auth/me", h.Me)
	authed.PATCH("/auth/me/metadata", h.UpdateMetadata)
	authed.POST("/applications", h.Apply)
	authed.GET("/applications", h.Applications)
	authed.POST("/enrollments", h.Enroll)
	authed.GET("/enrollments", h.Enrollments)
	authed.POST("/storage/:bucket", h.UploadObject)

	return r
}
