package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/bardiniww/lanit.hrjedi/config"
	"github.com/bardiniww/lanit.hrjedi/internal/api/handler"
	"github.com/bardiniww/lanit.hrjedi/internal/api/middleware"
	"github.com/bardiniww/lanit.hrjedi/internal/model"
	"github.com/bardiniww/lanit.hrjedi/pkg/jwt"
	"github.com/bardiniww/lanit.hrjedi/pkg/redis"
)

// maxBodyBytes 请求体上限，接口只接收小型 JSON
const maxBodyBytes = 64 << 10

// Setup 初始化并返回 Gin 路由引擎
// rdb 为 nil 时 Token 黑名单与报表限流均降级
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	var (
		blacklist middleware.BlacklistChecker
		limiter   middleware.RateLimiter
	)
	if rdb != nil {
		blacklist = rdb
		limiter = rdb
	}

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
		// 认证模块（无需认证）
		auth := v1.Group("/auth")
		{
			auth.POST("/login", h.Auth.Login)
			auth.POST("/refresh", h.Auth.RefreshToken)
		}

		// 需要认证的路由
		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth(jwtMgr, blacklist))
		{
			authorized.POST("/auth/logout", h.Auth.Logout)

			// 员工模块
			employees := authorized.Group("/employees")
			{
				employees.GET("/me", h.Employee.GetCurrentEmployee)
				employees.PUT("/me/email", h.Employee.UpdateEmail)
			}

			// 考勤模块
			att := authorized.Group("/attendance")
			att.Use(middleware.RoleAuth(model.RoleHR, model.RoleAdmin))
			{
				att.GET("/missing-months", h.Attendance.GetMissingMonths)
			}

			// 报表模块
			reports := authorized.Group("/reports")
			reports.Use(middleware.RoleAuth(model.RoleHR, model.RoleAdmin))
			{
				reports.GET("/attendance",
					middleware.RateLimit(limiter, cfg.Report.RateLimit, cfg.Report.RateWindow),
					h.Report.ExportAttendance)
			}
		}
	}

	return r
}
