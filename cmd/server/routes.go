package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"nika-sop.backend/internal/interfaces/http/handlers"
	"nika-sop.backend/internal/interfaces/http/middleware"
)

type routeDeps struct {
	authHandler *handlers.AuthHandler
	sopHandler  *handlers.SOPHandler
}

func registerRoutes(r *gin.Engine, d routeDeps) {
	// Public pages
	r.GET("/", d.sopHandler.Home)
	r.GET("/upgrade", d.sopHandler.Upgrade)

	// Auth
	r.GET("/register", d.authHandler.RegisterForm)
	r.POST("/register", d.authHandler.Register)
	r.GET("/activate", d.authHandler.Activate)
	r.GET("/login", d.authHandler.LoginForm)
	r.POST("/login", d.authHandler.Login)
	r.GET("/logout", d.authHandler.Logout)

	// Generation: the form is open to anonymous visitors; the quota gate
	// only applies to identified sessions.
	r.GET("/generate-sop", d.sopHandler.GenerateForm)
	r.POST("/generate-sop", d.sopHandler.Generate)
	r.POST("/download-sop", d.sopHandler.Download)
	r.POST("/email-sop", d.sopHandler.EmailSOP)

	// Session-only pages
	authed := r.Group("/")
	authed.Use(middleware.RequireSession())
	{
		authed.GET("/my-sops", d.sopHandler.MySOPs)
		authed.POST("/email-sop-logged-in", d.sopHandler.EmailSOPLoggedIn)
	}

	registerHealthRoute(r)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

func registerHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
