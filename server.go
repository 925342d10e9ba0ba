package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/mail"
	"github.com/Zachkp/portfolio/internal/middleware"
	"github.com/Zachkp/portfolio/internal/search"

	"github.com/gin-gonic/gin"
)

const shutdownTimeout = 10 * time.Second

var (
	projectTextFields    = []string{"title", "description", "longDescription", "tags", "technologies"}
	serviceTextFields    = []string{"title", "description", "features"}
	experienceTextFields = []string{"title", "company", "location", "description", "achievements", "technologies"}
)

func (a *app) routes() *gin.Engine {
	gin.SetMode(a.cfg.Mode)
	r := gin.Default()

	r.Static("/static", a.cfg.StaticDir)
	r.Static("/images", filepath.Join(a.cfg.StaticDir, "images"))

	// Home page
	r.GET("/", func(c *gin.Context) {
		c.File(filepath.Join(a.cfg.StaticDir, "index.html"))
	})

	api := r.Group("/api")

	api.GET("/projects", func(c *gin.Context) {
		c.JSON(http.StatusOK, search.Apply(a.catalog.Projects.List(c.Request.Context()), search.Query{
			Text:          c.Query("q"),
			TextFields:    projectTextFields,
			Category:      c.Query("category"),
			CategoryField: "category",
			Role:          c.Query("role"),
		}))
	})

	api.GET("/services", func(c *gin.Context) {
		c.JSON(http.StatusOK, search.Apply(a.catalog.Services.List(c.Request.Context()), search.Query{
			Text:          c.Query("q"),
			TextFields:    serviceTextFields,
			Category:      c.Query("category"),
			CategoryField: "category",
		}))
	})

	api.GET("/experience", func(c *gin.Context) {
		c.JSON(http.StatusOK, search.Apply(a.catalog.Experiences.List(c.Request.Context()), search.Query{
			Text:          c.Query("q"),
			TextFields:    experienceTextFields,
			Category:      c.Query("type"),
			CategoryField: "type",
		}))
	})

	api.GET("/settings", func(c *gin.Context) {
		c.JSON(http.StatusOK, a.catalog.Settings.Get(c.Request.Context()))
	})

	// Contact form submission
	api.POST("/send-email", middleware.RateLimit(a.limiter), a.handleContact)

	a.setupAdminRoutes(r)
	return r
}

// handleContact mails the submission and records it in the inbox. The
// message is kept even when the mail cannot be sent.
func (a *app) handleContact(c *gin.Context) {
	var sub content.Submission
	if err := c.ShouldBindJSON(&sub); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Please provide your name, a valid email and a message."})
		return
	}

	ctx := c.Request.Context()
	sub = sub.Normalize()
	mailErr := a.mailer.Send(ctx, sub)
	msg, _ := a.catalog.Messages.Receive(ctx, sub)

	if mailErr != nil {
		level := a.logger.Error
		if errors.Is(mailErr, mail.ErrNotConfigured) {
			level = a.logger.Warn
		}
		level(ctx, "contact email not sent", "message_id", msg.ID, "error", mailErr)
		c.JSON(http.StatusBadGateway, gin.H{
			"success": false,
			"error":   "Sorry, there was an error sending your message. Please try again later.",
		})
		return
	}

	a.logger.Info(ctx, "contact email sent", "message_id", msg.ID)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Thank you for your message! I'll get back to you soon.",
	})
}

// serve runs the HTTP server until SIGINT/SIGTERM, then drains it.
func (a *app) serve(ctx context.Context) error {
	srv := &http.Server{
		Addr:              a.cfg.Addr,
		Handler:           a.routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info(ctx, "http server listening", "addr", a.cfg.Addr, "storage", a.cfg.Storage.Type)
		a.logger.Info(ctx, "admin access available at /admin/login")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(stop)

	select {
	case err, ok := <-errCh:
		if ok {
			return err
		}
		return nil
	case <-stop:
	case <-ctx.Done():
	}

	a.logger.Info(ctx, "shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
