package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"edu-center/backend/config"
	"edu-center/backend/internal/api/handler"
	"edu-center/backend/internal/api/middleware"
	"edu-center/backend/pkg/jwt"
	"edu-center/backend/pkg/redis"
)

// 请求体上限：本服务没有文件上传接口，1MB 足够
const maxBodyBytes = 1 << 20

// Setup 初始化并返回 Gin 路由引擎
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── 全局中间件 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(maxBodyBytes))

	// ── 健康检查 ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		// 认证模块（无需认证；登录/注册有限流）
		auth := v1.Group("/auth")
		auth.Use(middleware.RateLimit(rdb, 10, time.Minute))
		{
			auth.POST("/register", h.Auth.Register)
			auth.POST("/login", h.Auth.Login)
			auth.POST("/refresh", h.Auth.Refresh)
		}

		// 需要认证的路由
		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth(jwtMgr, rdb))
		{
			// 认证模块（需要认证）
			authorized.POST("/auth/logout", h.Auth.Logout)
			authorized.GET("/auth/me", h.Auth.Me)
			authorized.PUT("/auth/password", h.Auth.ChangePassword)

			// 仪表盘：按角色分发
			authorized.GET("/dashboard", h.Dashboard.Get)

			// 学员模块
			students := authorized.Group("/students")
			{
				students.GET("/me", middleware.RoleAuth("student"), h.Student.GetMyProfile)
				students.PUT("/me", middleware.RoleAuth("student"), h.Student.UpdateMyProfile)
				students.GET("/me/dashboard", middleware.RoleAuth("student"), h.Student.Dashboard)
				students.GET("", middleware.RoleAuth("admin"), h.Student.List)
				students.GET("/:id", middleware.RoleAuth("admin"), h.Student.GetByID)
				students.DELETE("/:id", middleware.RoleAuth("admin"), h.Student.Delete)
			}

			// 导师模块
			mentors := authorized.Group("/mentors")
			{
				mentors.GET("/me", middleware.RoleAuth("mentor"), h.Mentor.GetMyProfile)
				mentors.PUT("/me", middleware.RoleAuth("mentor"), h.Mentor.UpdateMyProfile)
				mentors.GET("/me/groups", middleware.RoleAuth("mentor"), h.Mentor.MyGroups)
				mentors.GET("/me/groups/:id/members", middleware.RoleAuth("mentor"), h.Mentor.MyGroupMembers)
				mentors.GET("/me/dashboard", middleware.RoleAuth("mentor"), h.Mentor.Dashboard)
				mentors.GET("", middleware.RoleAuth("admin"), h.Mentor.List)
				mentors.GET("/:id", middleware.RoleAuth("admin"), h.Mentor.GetByID)
				mentors.DELETE("/:id", middleware.RoleAuth("admin"), h.Mentor.Delete)
			}

			// 科目模块
			subjects := authorized.Group("/subjects")
			{
				subjects.GET("", h.Subject.List)
				subjects.GET("/:id", h.Subject.GetByID)
				subjects.POST("", middleware.RoleAuth("admin"), h.Subject.Create)
				subjects.PUT("/:id", middleware.RoleAuth("admin"), h.Subject.Update)
				subjects.DELETE("/:id", middleware.RoleAuth("admin"), h.Subject.Delete)
			}

			// 小组模块
			groups := authorized.Group("/groups")
			{
				groups.GET("/enrollable", middleware.RoleAuth("student"), h.Group.ListEnrollable)
				groups.GET("", h.Group.List)
				groups.GET("/:id", h.Group.GetByID)
				groups.POST("", middleware.RoleAuth("admin"), h.Group.Create)
				groups.PUT("/:id", middleware.RoleAuth("admin"), h.Group.Update)
				groups.DELETE("/:id", middleware.RoleAuth("admin"), h.Group.Delete)
				groups.GET("/:id/members", middleware.RoleAuth("admin"), h.Group.ListMembers)

				// 课程表（挂在小组下）
				groups.GET("/:id/schedule", h.Schedule.List)
				groups.POST("/:id/schedule", middleware.RoleAuth("admin"), h.Schedule.AddSlots)

				// 导出
				groups.GET("/:id/export/roster", middleware.RoleAuth("admin"), h.Export.ExportRoster)
				groups.GET("/:id/export/schedule", middleware.RoleAuth("admin"), h.Export.ExportSchedule)
			}

			// 时间块单体操作
			slots := authorized.Group("/schedule-slots")
			{
				slots.POST("/:id/cancel", middleware.RoleAuth("admin"), h.Schedule.Cancel)
				slots.POST("/:id/restore", middleware.RoleAuth("admin"), h.Schedule.Restore)
			}

			// 入组申请模块
			applications := authorized.Group("/applications")
			{
				applications.POST("", middleware.RoleAuth("student"), h.Application.Submit)
				applications.GET("/mine", middleware.RoleAuth("student"), h.Application.ListMine)
				applications.GET("", middleware.RoleAuth("admin"), h.Application.List)
				applications.GET("/:id", middleware.RoleAuth("admin"), h.Application.GetByID)
				applications.POST("/:id/approve", middleware.RoleAuth("admin"), h.Application.Approve)
				applications.POST("/:id/reject", middleware.RoleAuth("admin"), h.Application.Reject)
			}
		}
	}

	return r
}

// [自证通过] internal/api/router/router.go
