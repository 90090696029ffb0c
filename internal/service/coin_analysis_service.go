package service

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"go-coin-analyzer/internal/analysis"
	apperrors "go-coin-analyzer/internal/errors"
	"go-coin-analyzer/internal/inscription"
	"go-coin-analyzer/internal/logger"
	"go-coin-analyzer/internal/observer"
	"go-coin-analyzer/internal/storage"
	"go-coin-analyzer/internal/vision"
	"go-coin-analyzer/pkg/models"
)

// CoinAnalysisService orchestrates one coin analysis: validate the upload,
// make the single bounded call to the vision provider, and salvage the
// completion into the fixed report shape.
type CoinAnalysisService interface {
	Analyze(ctx context.Context, img vision.Image) (*models.CoinReport, error)
}

type coinAnalysisService struct {
	client          vision.Client
	archiver        storage.Archiver
	legendReader    inscription.Reader
	events          observer.Subject
	upstreamTimeout time.Duration
	archiveTimeout  time.Duration
}

// NewCoinAnalysisService creates a new coin analysis service
func NewCoinAnalysisService(
	client vision.Client,
	archiver storage.Archiver,
	legendReader inscription.Reader,
	events observer.Subject,
	upstreamTimeout time.Duration,
	archiveTimeout time.Duration,
) CoinAnalysisService {
	return &coinAnalysisService{
		client:          client,
		archiver:        archiver,
		legendReader:    legendReader,
		events:          events,
		upstreamTimeout: upstreamTimeout,
		archiveTimeout:  archiveTimeout,
	}
}

func (s *coinAnalysisService) Analyze(ctx context.Context, img vision.Image) (*models.CoinReport, error) {
	// Credentials are checked before the upload: a misconfigured service
	// reports 500 even when the request itself is bad.
	if !s.client.Configured() {
		return nil, apperrors.NewConfigurationError(
			fmt.Sprintf("%s credentials are not configured", s.client.Name()), nil)
	}
	if !strings.HasPrefix(img.ContentType, "image/") {
		return nil, apperrors.NewValidationError("file must be an image", nil)
	}

	requestID := uuid.NewString()
	started := time.Now()
	s.events.Notify(ctx, observer.AnalysisEvent{
		EventType: observer.AnalysisStarted,
		Timestamp: started,
		RequestID: requestID,
		Filename:  img.Filename,
		Provider:  s.client.Name(),
	})

	callCtx, cancel := context.WithTimeout(ctx, s.upstreamTimeout)
	defer cancel()

	rawText, err := s.client.Complete(callCtx, img)
	if err != nil {
		var appErr *apperrors.AppError
		if errors.Is(err, context.DeadlineExceeded) {
			appErr = apperrors.NewTimeoutError("model service took too long to respond", err)
		} else {
			appErr = apperrors.NewUpstreamError("error communicating with model service", err)
		}
		s.notifyFailed(ctx, requestID, img.Filename, started, appErr)
		return nil, appErr
	}

	parsed := analysis.Normalize(rawText)
	report := analysis.BuildReport(parsed, s.client.Model(), img.Filename, len(img.Data))

	legend := s.readLegend(img, report)

	// When the structured pass could not identify the coin, re-scan the raw
	// text (plus any OCR legend) against the keyword tables.
	if analysis.NeedsTextFallback(report) {
		logger.WithField("request_id", requestID).Warn("Structured fields unknown, falling back to text analysis")
		scanText := rawText
		if legend != "" {
			scanText += "\n" + legend
		}
		analysis.Enhance(scanText, report)
	}

	s.scoreLegend(legend, report)
	s.archiveAsync(requestID, img)

	s.events.Notify(ctx, observer.AnalysisEvent{
		EventType:      observer.AnalysisCompleted,
		Timestamp:      time.Now(),
		RequestID:      requestID,
		Filename:       img.Filename,
		Provider:       s.client.Name(),
		ProcessingTime: time.Since(started),
		Success:        true,
	})
	return report, nil
}

// readLegend runs the optional local OCR pass. Its output is a hint only:
// recorded in technical details and fed to the keyword fallback.
func (s *coinAnalysisService) readLegend(img vision.Image, report *models.CoinReport) string {
	legend, err := s.legendReader.ReadLegend(img.Data)
	if err != nil {
		logger.WithError(err).Warn("Legend OCR failed")
		return ""
	}
	if legend != "" {
		report.Analysis.TechnicalDetails["legend_text"] = legend
	}
	return legend
}

// scoreLegend records how well the OCR legend corroborates the resolved
// country, once both passes have run.
func (s *coinAnalysisService) scoreLegend(legend string, report *models.CoinReport) {
	if legend == "" {
		return
	}
	country, ok := report.Analysis.BasicInfo.Country.(string)
	if !ok || country == analysis.UnknownValue {
		return
	}
	report.Analysis.TechnicalDetails["legend_match_score"] = inscription.MatchScore(legend, country)
}

// archiveAsync stores a copy of the image off the request path. Failures are
// logged and never affect the response.
func (s *coinAnalysisService) archiveAsync(requestID string, img vision.Image) {
	blobName := requestID + filepath.Ext(img.Filename)
	data := img.Data
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.archiveTimeout)
		defer cancel()
		if err := s.archiver.Archive(ctx, blobName, data); err != nil {
			logger.WithError(err).WithFields(logrus.Fields{
				"request_id": requestID,
				"blob_name":  blobName,
			}).Error("Failed to archive image")
		}
	}()
}

func (s *coinAnalysisService) notifyFailed(ctx context.Context, requestID, filename string, started time.Time, err error) {
	s.events.Notify(ctx, observer.AnalysisEvent{
		EventType:      observer.AnalysisFailed,
		Timestamp:      time.Now(),
		RequestID:      requestID,
		Filename:       filename,
		Provider:       s.client.Name(),
		ProcessingTime: time.Since(started),
		ErrorMessage:   err.Error(),
	})
}
