package report

import (
	"context"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

	"github.com/syrilster/personio-absence-kit/pkg/personio"
)

const sheetName = "Sheet1"

var headers = []string{"Employee ID", "Employee", "Absence Type", "Category", "Balance", "Summary"}

// WriteSummaryReport saves records as an xlsx report at path. Negative balances are highlighted.
func WriteSummaryReport(ctx context.Context, path string, records []personio.AbsenceSummaryRecord) error {
	contextLogger := log.WithContext(ctx)
	f := excelize.NewFile()
	index := f.NewSheet(sheetName)
	_ = f.SetColWidth(sheetName, "A", "A", 14)
	_ = f.SetColWidth(sheetName, "B", "D", 30)
	_ = f.SetColWidth(sheetName, "E", "E", 10)
	_ = f.SetColWidth(sheetName, "F", "F", 50)

	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			contextLogger.WithError(err).Error("Unable to write report header")
			return err
		}
	}

	normalStyle, err := f.NewStyle(`{"font":{"bold":false, "family":"Liberation Serif"}}`)
	if err != nil {
		contextLogger.WithError(err).Errorf("Unable to create column style")
		return err
	}
	negativeStyle, err := f.NewStyle(`{"font":{"color":"#FF0000", "bold":true, "family":"Liberation Serif"}}`)
	if err != nil {
		contextLogger.WithError(err).Errorf("Unable to create column style")
		return err
	}

	for i, r := range records {
		row := strconv.Itoa(i + 2)
		style := normalStyle
		if r.Balance < 0 {
			style = negativeStyle
		}

		values := []interface{}{
			employeeID(r.Employee),
			employeeName(r.Employee),
			absenceTypeName(r.AbsenceType),
			strings.Join(r.Category, ", "),
			r.Balance,
			r.String(),
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				contextLogger.WithError(err).Errorf("Unable to write report row %v", row)
				return err
			}
		}
		if err := f.SetCellStyle(sheetName, "E"+row, "E"+row, style); err != nil {
			contextLogger.WithError(err).Errorf("Unable to set cell style")
			return err
		}
	}

	f.SetActiveSheet(index)
	if err := f.SaveAs(path); err != nil {
		contextLogger.WithError(err).Errorf("Unable to save report to %v", path)
		return err
	}
	return nil
}

func employeeID(e *personio.BasicEmployee) interface{} {
	if e == nil || e.ID == 0 {
		return ""
	}
	return e.ID
}

func employeeName(e *personio.BasicEmployee) string {
	if e == nil {
		return ""
	}
	return e.String()
}

func absenceTypeName(t *personio.AbsenceType) string {
	if t == nil {
		return ""
	}
	return t.String()
}
