package report

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/tealeg/xlsx"
	"github.com/xuri/excelize/v2"

	"github.com/syrilster/personio-absence-kit/pkg/personio"
)

const (
	colEmployeeID = iota
	colEmployee
	colAbsenceTypeID
	colAbsenceType
	colCategory
	colBalance

	minColumns = colBalance + 1
)

// SaveWorkbook checks that data is an xlsx workbook and stores it at path.
func SaveWorkbook(ctx context.Context, data []byte, path string) error {
	contextLogger := log.WithContext(ctx)
	excelFile, err := xlsx.OpenBinary(data)
	if err != nil {
		contextLogger.WithError(err).Error("Failed to convert bytes to excel file")
		return err
	}

	if err := excelFile.Save(path); err != nil {
		contextLogger.WithError(err).Error("Failed to save excel file to disk")
		return err
	}
	return nil
}

// ReadSummaryRecords reads the absence balances from the active sheet of the workbook at path.
// The first row is the header. Rows that cannot be read are skipped and reported in errResult.
func ReadSummaryRecords(ctx context.Context, path string) (records []personio.AbsenceSummaryRecord, errResult []string) {
	ctxLogger := log.WithContext(ctx)

	f, err := excelize.OpenFile(path)
	if err != nil {
		errStr := fmt.Errorf("Unable to open the uploaded file. Please confirm the file is in xlsx format. ")
		ctxLogger.WithError(err).Error(errStr)
		return nil, append(errResult, errStr.Error())
	}
	defer func() {
		if err := f.Close(); err != nil {
			ctxLogger.WithError(err).Error("Error closing the workbook")
		}
	}()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())
	ctxLogger.Info("SheetName: ", sheet)
	rows, err := f.GetRows(sheet)
	if err != nil {
		errStr := fmt.Errorf("Unable to read rows from sheet %v. ", sheet)
		ctxLogger.WithError(err).Error(errStr)
		return nil, append(errResult, errStr.Error())
	}

	for index, row := range rows {
		// header row
		if index == 0 {
			continue
		}
		if isBlankRow(row) {
			continue
		}

		record, err := parseRow(row)
		if err != nil {
			errStr := fmt.Errorf("Invalid entry in row %v: %v", index+1, err)
			ctxLogger.Error(errStr)
			errResult = append(errResult, errStr.Error())
			continue
		}
		records = append(records, record)
	}
	return records, errResult
}

func parseRow(row []string) (personio.AbsenceSummaryRecord, error) {
	if len(row) < minColumns {
		return personio.AbsenceSummaryRecord{}, fmt.Errorf("expected %v columns, got %v", minColumns, len(row))
	}

	employee := personio.NewBasicEmployee()
	employee.Name = strings.TrimSpace(row[colEmployee])
	if raw := strings.TrimSpace(row[colEmployeeID]); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			return personio.AbsenceSummaryRecord{}, fmt.Errorf("employee id %q is not a number", raw)
		}
		employee.ID = id
	}

	absenceType := &personio.AbsenceType{Name: strings.TrimSpace(row[colAbsenceType])}
	if raw := strings.TrimSpace(row[colAbsenceTypeID]); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			return personio.AbsenceSummaryRecord{}, fmt.Errorf("absence type id %q is not a number", raw)
		}
		absenceType.ID = id
	}

	raw := strings.TrimSpace(row[colBalance])
	balance, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return personio.AbsenceSummaryRecord{}, fmt.Errorf("balance %q is not a number", raw)
	}
	// balances are whole days; rounding would silently misreport half days
	if balance != math.Trunc(balance) || math.Abs(balance) > math.MaxInt32 {
		return personio.AbsenceSummaryRecord{}, fmt.Errorf("balance %q is not a whole number", raw)
	}

	return personio.AbsenceSummaryRecord{
		BaseObject:  row,
		Employee:    employee,
		AbsenceType: absenceType,
		Category:    splitCategories(row[colCategory]),
		Balance:     int(balance),
	}, nil
}

func splitCategories(raw string) []string {
	var categories []string
	for _, c := range strings.Split(raw, ",") {
		if c = strings.TrimSpace(c); c != "" {
			categories = append(categories, c)
		}
	}
	return categories
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
