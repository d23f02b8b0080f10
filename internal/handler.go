package internal

import (
	"bytes"
	"io"
	"net/http"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"

	"github.com/syrilster/personio-absence-kit/internal/report"
	"github.com/syrilster/personio-absence-kit/internal/util"
)

const (
	supportedFileFormat = ".xlsx"
	uploadFilePattern   = "upload-*" + supportedFileFormat
)

// Handler accepts an absence balance workbook and replies with the summary lines.
// Every upload is saved to its own file next to xlsFileLocation, so concurrent requests never share one.
func Handler(absenceHandler AbsenceAPIHandler, xlsFileLocation string) func(res http.ResponseWriter, req *http.Request) {
	return func(res http.ResponseWriter, req *http.Request) {
		ctx := req.Context()
		contextLogger := log.WithContext(ctx)

		if err := req.ParseMultipartForm(32 << 20); err != nil {
			contextLogger.WithError(err).Error("Failed to parse request body")
			util.WithBodyAndStatus(nil, http.StatusBadRequest, res)
			return
		}

		file, fileHeader, err := req.FormFile("file")
		if err != nil {
			contextLogger.WithError(err).Error("Failed to get the file from request")
			util.WithBodyAndStatus(nil, http.StatusBadRequest, res)
			return
		}
		defer file.Close()

		if filepath.Ext(fileHeader.Filename) != supportedFileFormat {
			contextLogger.Error("Unable to open the uploaded file. Please confirm the file is in .xlsx format.")
			util.WithBodyAndStatus("Only .xlsx files are supported", http.StatusBadRequest, res)
			return
		}

		buf := bytes.NewBuffer(nil)
		if _, err := io.Copy(buf, file); err != nil {
			contextLogger.WithError(err).Error("Failed to copy file contents to buffer")
			util.WithBodyAndStatus(nil, http.StatusInternalServerError, res)
			return
		}

		upload, err := os.CreateTemp(filepath.Dir(xlsFileLocation), uploadFilePattern)
		if err != nil {
			contextLogger.WithError(err).Error("Failed to create the upload file")
			util.WithBodyAndStatus(nil, http.StatusInternalServerError, res)
			return
		}
		uploadPath := upload.Name()
		upload.Close()
		defer os.Remove(uploadPath)

		if err := report.SaveWorkbook(ctx, buf.Bytes(), uploadPath); err != nil {
			util.WithBodyAndStatus("Unable to read the uploaded workbook", http.StatusBadRequest, res)
			return
		}

		lines, errResult := absenceHandler.SummariseAbsences(ctx, uploadPath)
		if len(errResult) > 0 {
			contextLogger.Error("There were some errors during processing absence balances")
			util.WithBodyAndStatus(errResult, http.StatusInternalServerError, res)
			return
		}
		util.WithBodyAndStatus(lines, http.StatusOK, res)
	}
}
