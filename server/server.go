package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"floormark/annotate"
	"floormark/controllers"
	"floormark/frontend"
	"floormark/models"
	"floormark/tunnel"
	"floormark/utils"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// Version tag reported by /version and the version command
const Version = "v0.1.0"

// NewRouter Build the gin engine serving the floor plan pages for state.
func NewRouter(state *models.State, style annotate.Style) (*gin.Engine, error) {
	templates, err := frontend.Templates()
	if err != nil {
		return nil, fmt.Errorf("cannot parse templates: %w", err)
	}

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	r.Use(corsMiddleware())
	r.Use(requestIDMiddleware())
	// The annotated png is already compressed
	r.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{"/uploaded_image"})))
	r.SetHTMLTemplate(templates)

	r.GET("/version", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": Version,
		})
	})

	r.GET("/", controllers.Index(state))
	r.POST("/", controllers.Index(state))
	r.GET("/uploaded_image", controllers.GetAnnotatedImage(state, style))
	r.POST("/save_coordinate", controllers.SaveCoordinate(state))
	r.GET("/view_tables", controllers.ViewTables(state))

	// Currently no authentication is used
	v1 := r.Group("/api/v1")
	{
		v1.GET("/marks", controllers.FindMarks(state))
		v1.POST("/marks", controllers.CreateMark(state))
	}

	return r, nil
}

// Run Serve floormark on the configured port, and through an ngrok tunnel when enabled,
// until SIGINT or SIGTERM is received.
func Run(config *utils.Config, debugMode bool) error {
	// Debug mode enables gin-gonic debug mode
	if !debugMode {
		gin.SetMode(gin.ReleaseMode)
	}

	if config.Tunnel.Enabled && config.Tunnel.Authtoken == "" {
		return tunnel.ErrMissingAuthtoken
	}

	style, err := annotate.NewStyle(
		config.Render.HalfWidth,
		config.Render.StrokeWidth,
		annotate.Hex(config.Render.Color),
		annotate.Hex(config.Render.Background))
	if err != nil {
		return fmt.Errorf("invalid render settings: %w", err)
	}

	if err := os.MkdirAll(config.Storage.Directory, 0755); err != nil {
		return fmt.Errorf("cannot use storage directory %s: %w", config.Storage.Directory, err)
	}

	store, err := models.OpenMarkStore(config.Store.Driver)
	if err != nil {
		return err
	}
	state := models.NewState(config.ImagePath(), store)
	defer state.Close()

	r, err := NewRouter(state, style)
	if err != nil {
		return err
	}

	addr := fmt.Sprintf(":%s", config.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  config.Server.ReadTimeout,
		WriteTimeout: config.Server.WriteTimeout,
	}

	errs := make(chan error, 2)
	go func() {
		log.Info(fmt.Sprintf("Listening on %s", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errs <- fmt.Errorf("listen: %w", err)
		}
	}()

	if config.Tunnel.Enabled {
		tun, err := tunnel.Open(context.Background(), config.Tunnel.Authtoken)
		if err != nil {
			srv.Close()
			return err
		}
		go func() {
			if err := srv.Serve(tun); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errs <- fmt.Errorf("tunnel: %w", err)
			}
		}()
	}

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errs:
		srv.Close()
		return err
	case <-quit:
	}
	log.Info("Shutdown Server ...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	log.Info("Server exiting")
	return nil
}
