package internal

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"

	detached "github.com/syrilster/personio-absence-kit/internal/context"
	"github.com/syrilster/personio-absence-kit/internal/report"
	"github.com/syrilster/personio-absence-kit/pkg/personio"
)

const (
	reportSubject      = "Report: Absence balances from Personio"
	reportFilePattern  = "absence-report-*.xlsx"
	bodyNoErrors       = "No errors found while reading absence balances. Please check attached report."
	bodyNoRecordsFound = "No absence records found in the uploaded file."
)

type ReportMailer interface {
	SendReport(ctx context.Context, subject string, body string, attachment string) error
}

type Service struct {
	mailer    ReportMailer
	reportDir string
}

// NewService writes each report next to reportLocation under a name unique to the request.
func NewService(mailer ReportMailer, reportLocation string) *Service {
	return &Service{
		mailer:    mailer,
		reportDir: filepath.Dir(reportLocation),
	}
}

// SummariseAbsences reads the balances in the workbook at xlsPath and returns one line per record plus the problems found
func (service Service) SummariseAbsences(ctx context.Context, xlsPath string) ([]string, []string) {
	ctxLogger := log.WithContext(ctx)
	ctxLogger.Infof("Executing SummariseAbsences service")

	records, errResult := report.ReadSummaryRecords(ctx, xlsPath)
	if len(errResult) > 0 {
		ctxLogger.Infof("There were %v errors during extracting excel data", len(errResult))
	}
	ctxLogger.Info("Absence summary records: ", len(records))

	var lines []string
	for _, r := range records {
		lines = append(lines, r.String())
	}

	attachment := ""
	if len(records) > 0 {
		path, err := service.writeReport(ctx, records)
		if err != nil {
			errResult = append(errResult, fmt.Sprintf("Failed to write the absence report: %v", err))
		} else {
			attachment = path
		}
	}

	service.sendStatusReport(ctx, errResult, attachment)
	return lines, errResult
}

func (service Service) writeReport(ctx context.Context, records []personio.AbsenceSummaryRecord) (string, error) {
	file, err := os.CreateTemp(service.reportDir, reportFilePattern)
	if err != nil {
		return "", err
	}
	path := file.Name()
	file.Close()

	if err := report.WriteSummaryReport(ctx, path, records); err != nil {
		os.Remove(path)
		return "", err
	}
	return path, nil
}

func (service Service) sendStatusReport(ctx context.Context, errResult []string, attachment string) {
	body := strings.Join(errResult, "\n")
	if body == "" {
		body = bodyNoRecordsFound
		if attachment != "" {
			body = bodyNoErrors
		}
	}

	// the request context is cancelled once the response is written
	mailCtx := detached.Detach(ctx)
	go func() {
		if attachment != "" {
			defer os.Remove(attachment)
		}
		err := service.mailer.SendReport(mailCtx, reportSubject, body, attachment)
		if err != nil {
			log.WithContext(mailCtx).WithError(err).Error("Failed to send the absence report")
		}
	}()
}
