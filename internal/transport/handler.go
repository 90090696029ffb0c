package transport

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"go-coin-analyzer/internal/config"
	apperrors "go-coin-analyzer/internal/errors"
	"go-coin-analyzer/internal/logger"
	"go-coin-analyzer/internal/observer"
	"go-coin-analyzer/internal/service"
	"go-coin-analyzer/internal/vision"
	"go-coin-analyzer/pkg/models"
)

// NewHandler configures the HTTP routes around the analysis service.
func NewHandler(svc service.CoinAnalysisService, client vision.Client, metrics *observer.MetricsObserver, cfg *config.Config) http.Handler {
	r := gin.Default()

	r.Use(requestSizeLimiter(cfg.MaxRequestBodySize))

	r.GET("/", root)
	r.GET("/health", healthCheck(client))
	r.GET("/debug", debugInfo(client, metrics))
	r.POST("/analyze", analyzeCoin(svc))

	return r
}

func root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Coin Analyzer API is running! 🪙",
	})
}

func healthCheck(client vision.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":              "healthy",
			"provider":            client.Name(),
			"provider_configured": client.Configured(),
			"deployment_name":     client.Model(),
		})
	}
}

// debugInfo exposes credential presence and lengths plus request counters.
// Secret values themselves never appear here.
func debugInfo(client vision.Client, metrics *observer.MetricsObserver) gin.HandlerFunc {
	return func(c *gin.Context) {
		info := gin.H{
			"provider": client.Name(),
			"stats":    metrics.Snapshot(),
		}
		for k, v := range client.DebugInfo() {
			info[k] = v
		}
		c.JSON(http.StatusOK, info)
	}
}

func analyzeCoin(svc service.CoinAnalysisService) gin.HandlerFunc {
	return func(c *gin.Context) {
		startTime := time.Now()

		logger.WithFields(logrus.Fields{
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"user_agent": c.Request.UserAgent(),
			"ip":         c.ClientIP(),
		}).Info("Processing coin analysis request")

		fileHeader, err := c.FormFile("image")
		if err != nil {
			respondError(c, http.StatusBadRequest, "image file is required", err)
			return
		}

		file, err := fileHeader.Open()
		if err != nil {
			respondError(c, http.StatusInternalServerError, "failed to open upload", err)
			return
		}
		defer file.Close()

		data, err := io.ReadAll(file)
		if err != nil {
			respondError(c, http.StatusInternalServerError, "failed to read upload", err)
			return
		}

		report, err := svc.Analyze(c.Request.Context(), vision.Image{
			Data:        data,
			ContentType: fileHeader.Header.Get("Content-Type"),
			Filename:    fileHeader.Filename,
		})
		if err != nil {
			respondError(c, apperrors.GetStatusCode(err), "coin analysis failed", err)
			return
		}

		logger.WithFields(logrus.Fields{
			"filename":           fileHeader.Filename,
			"size_bytes":         len(data),
			"processing_time_ms": time.Since(startTime).Milliseconds(),
		}).Info("Coin analysis request completed")

		c.JSON(http.StatusOK, report)
	}
}

func requestSizeLimiter(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}

func respondError(c *gin.Context, code int, message string, err error) {
	logger.WithError(err).WithFields(logrus.Fields{
		"status_code": code,
		"message":     message,
		"path":        c.Request.URL.Path,
		"method":      c.Request.Method,
		"ip":          c.ClientIP(),
	}).Error("Request failed")

	c.AbortWithStatusJSON(code, models.ErrorResponse{
		Error:   http.StatusText(code),
		Message: fmt.Sprintf("%s: %v", message, err),
	})
}
