package main

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/Zachkp/portfolio/internal/common"
	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/search"
	"github.com/Zachkp/portfolio/internal/session"
	"github.com/Zachkp/portfolio/internal/storage"

	"github.com/gin-gonic/gin"
)

func generateAdminToken() string {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		panic("failed to generate admin token: " + err.Error())
	}
	return hex.EncodeToString(bytes)
}

// Hash IP address for privacy (consistent per IP within one process)
func (a *app) hashIP(ip string) string {
	hash := sha256.New()
	hash.Write([]byte(ip + a.ipSalt))
	return hex.EncodeToString(hash.Sum(nil))[:16]
}

// gateFor binds the session gate to the cookies of one request.
func (a *app) gateFor(c *gin.Context) *session.Gate {
	return a.gate.WithStore(storage.NewCookieStorage(c, storage.CookieOptions{
		MaxAge: a.gate.TTL(),
		Path:   "/",
		Secure: a.cfg.Admin.SecureCookie,
	}))
}

func wantsHTML(c *gin.Context) bool {
	return strings.Contains(c.GetHeader("Accept"), "text/html")
}

// Middleware to check admin authentication
func (a *app) adminAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, err := a.gateFor(c).Require(c.Request.Context()); err == nil {
			c.Next()
			return
		}
		if wantsHTML(c) {
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Unauthorized"})
	}
}

type loginRequest struct {
	Password string `json:"password" binding:"required"`
}

type readRequest struct {
	Read *bool `json:"read" binding:"required"`
}

// Setup all admin routes
func (a *app) setupAdminRoutes(r *gin.Engine) {
	adminDir := filepath.Join(a.cfg.StaticDir, "admin")

	// Admin login page
	r.GET("/admin/login", func(c *gin.Context) {
		c.File(filepath.Join(adminDir, "login.html"))
	})

	api := r.Group("/api/admin")

	api.POST("/login", func(c *gin.Context) {
		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Password is required"})
			return
		}

		ctx := c.Request.Context()
		s, err := a.gateFor(c).Login(ctx, req.Password)
		if errors.Is(err, common.ErrInvalidCredentials) {
			a.logger.Warn(ctx, "failed admin login attempt", "client", a.hashIP(c.ClientIP()))
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Invalid password"})
			return
		}
		if err != nil {
			a.logger.Error(ctx, "admin login", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Login failed"})
			return
		}

		a.logger.Info(ctx, "admin login successful", "client", a.hashIP(c.ClientIP()))
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Login successful", "session": s})
	})

	api.POST("/logout", func(c *gin.Context) {
		ctx := c.Request.Context()
		if err := a.gateFor(c).Logout(ctx); err != nil {
			a.logger.Error(ctx, "admin logout", "error", err)
		}
		a.logger.Info(ctx, "admin logout", "client", a.hashIP(c.ClientIP()))
		c.JSON(http.StatusOK, gin.H{"success": true})
	})

	api.GET("/session", func(c *gin.Context) {
		g := a.gateFor(c)
		s := g.Current(c.Request.Context())
		if !g.Check(s) {
			c.JSON(http.StatusOK, gin.H{"authenticated": false})
			return
		}
		c.JSON(http.StatusOK, gin.H{"authenticated": true, "session": s})
	})

	// Protected admin routes group
	protected := api.Group("")
	protected.Use(a.adminAuthMiddleware())

	registerCollection(protected, "/projects", a.catalog.Projects)
	registerCollection(protected, "/services", a.catalog.Services)
	registerCollection(protected, "/experiences", a.catalog.Experiences)

	protected.GET("/messages", func(c *gin.Context) {
		msgs := a.catalog.Messages.List(c.Request.Context())
		c.JSON(http.StatusOK, search.Apply(msgs, search.Query{
			Text:          c.Query("q"),
			TextFields:    []string{"name", "email", "subject", "message"},
			Category:      c.Query("status"),
			CategoryField: "status",
		}))
	})

	protected.PATCH("/messages/:id", func(c *gin.Context) {
		var req readRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, a.catalog.Messages.SetRead(c.Request.Context(), c.Param("id"), *req.Read))
	})

	protected.DELETE("/messages/:id", func(c *gin.Context) {
		c.JSON(http.StatusOK, a.catalog.Messages.Delete(c.Request.Context(), c.Param("id")))
	})

	protected.GET("/settings", func(c *gin.Context) {
		c.JSON(http.StatusOK, a.catalog.Settings.Get(c.Request.Context()))
	})

	protected.PUT("/settings", func(c *gin.Context) {
		var s content.Settings
		if err := c.ShouldBindJSON(&s); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, a.catalog.Settings.Replace(c.Request.Context(), s))
	})

	// Admin front-end
	pages := r.Group("/admin")
	pages.Use(a.adminAuthMiddleware())
	pages.GET("", func(c *gin.Context) {
		c.File(filepath.Join(adminDir, "index.html"))
	})
	pages.GET("/dashboard", func(c *gin.Context) {
		c.File(filepath.Join(adminDir, "index.html"))
	})
}

// registerCollection mounts list, create, update and delete for one
// collection. Every mutation answers with the full resulting list.
func registerCollection[T content.Record[T]](g *gin.RouterGroup, path string, coll *content.Collection[T]) {
	g.GET(path, func(c *gin.Context) {
		c.JSON(http.StatusOK, coll.List(c.Request.Context()))
	})

	g.POST(path, func(c *gin.Context) {
		var item T
		if err := c.ShouldBindJSON(&item); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, coll.Create(c.Request.Context(), item))
	})

	g.PUT(path+"/:id", func(c *gin.Context) {
		var item T
		if err := c.ShouldBindJSON(&item); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
			return
		}
		id := c.Param("id")
		c.JSON(http.StatusOK, coll.Update(c.Request.Context(), id, item.WithRecordID(id)))
	})

	g.DELETE(path+"/:id", func(c *gin.Context) {
		c.JSON(http.StatusOK, coll.Delete(c.Request.Context(), c.Param("id")))
	})
}
