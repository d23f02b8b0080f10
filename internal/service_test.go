package internal

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

type sentReport struct {
	ctx        context.Context
	subject    string
	body       string
	attachment string
	// attached reports whether the attachment was readable while the mail was sent
	attached bool
}

type fakeMailer struct {
	sent chan sentReport
}

func newFakeMailer() *fakeMailer {
	return &fakeMailer{sent: make(chan sentReport, 1)}
}

func (m *fakeMailer) SendReport(ctx context.Context, subject string, body string, attachment string) error {
	_, err := os.Stat(attachment)
	m.sent <- sentReport{ctx: ctx, subject: subject, body: body, attachment: attachment, attached: attachment != "" && err == nil}
	return nil
}

func (m *fakeMailer) wait(t *testing.T) sentReport {
	t.Helper()
	select {
	case r := <-m.sent:
		return r
	case <-time.After(5 * time.Second):
		t.Fatal("report mail was not sent")
		return sentReport{}
	}
}

func writeBalances(t *testing.T, path string, rows [][]interface{}) {
	t.Helper()
	f := excelize.NewFile()
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}
	require.NoError(t, f.SaveAs(path))
}

var balanceHeader = []interface{}{"Employee ID", "Employee", "Absence Type ID", "Absence Type", "Category", "Balance"}

func TestSummariseAbsences(t *testing.T) {
	dir := t.TempDir()
	xls := filepath.Join(dir, "balances.xlsx")
	out := filepath.Join(dir, "report.xlsx")
	writeBalances(t, xls, [][]interface{}{
		balanceHeader,
		{1, "Jane Doe", 10, "Vacation", "paid", 5},
		{2, "", 11, "Sick leave", "", 0},
	})

	mailer := newFakeMailer()
	ctx, cancel := context.WithCancel(context.Background())
	lines, errs := NewService(mailer, out).SummariseAbsences(ctx, xls)
	cancel()

	require.Empty(t, errs)
	require.Equal(t, []string{"Jane Doe - Vacation: 5", "2 - Sick leave: 0"}, lines)

	sent := mailer.wait(t)
	require.Equal(t, reportSubject, sent.subject)
	require.Equal(t, dir, filepath.Dir(sent.attachment))
	require.True(t, strings.HasPrefix(filepath.Base(sent.attachment), "absence-report-"))
	require.True(t, sent.attached)
	require.Equal(t, bodyNoErrors, sent.body)
	require.NoError(t, sent.ctx.Err())

	require.Eventually(t, func() bool {
		_, err := os.Stat(sent.attachment)
		return os.IsNotExist(err)
	}, 5*time.Second, 10*time.Millisecond, "report should be removed once mailed")
	require.NoFileExists(t, out)
}

func TestSummariseAbsencesUsesOneReportPerCall(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first.xlsx")
	second := filepath.Join(dir, "second.xlsx")
	writeBalances(t, first, [][]interface{}{balanceHeader, {1, "Jane Doe", 10, "Vacation", "", 5}})
	writeBalances(t, second, [][]interface{}{balanceHeader, {2, "John Roe", 10, "Vacation", "", 3}})

	mailer := &fakeMailer{sent: make(chan sentReport, 2)}
	service := NewService(mailer, filepath.Join(dir, "report.xlsx"))

	var wg sync.WaitGroup
	results := make([][]string, 2)
	for i, xls := range []string{first, second} {
		wg.Add(1)
		go func(i int, xls string) {
			defer wg.Done()
			results[i], _ = service.SummariseAbsences(context.Background(), xls)
		}(i, xls)
	}
	wg.Wait()

	require.Equal(t, []string{"Jane Doe - Vacation: 5"}, results[0])
	require.Equal(t, []string{"John Roe - Vacation: 3"}, results[1])

	a, b := mailer.wait(t), mailer.wait(t)
	require.NotEqual(t, a.attachment, b.attachment)
	require.True(t, a.attached)
	require.True(t, b.attached)
}

func TestSummariseAbsencesHeaderOnly(t *testing.T) {
	dir := t.TempDir()
	xls := filepath.Join(dir, "balances.xlsx")
	writeBalances(t, xls, [][]interface{}{balanceHeader})

	mailer := newFakeMailer()
	lines, errs := NewService(mailer, filepath.Join(dir, "report.xlsx")).SummariseAbsences(context.Background(), xls)
	require.Empty(t, lines)
	require.Empty(t, errs)

	sent := mailer.wait(t)
	require.Empty(t, sent.attachment)
	require.Equal(t, bodyNoRecordsFound, sent.body)
	require.NotContains(t, sent.body, "attached")
}

func TestSummariseAbsencesWithErrors(t *testing.T) {
	dir := t.TempDir()
	xls := filepath.Join(dir, "balances.xlsx")
	writeBalances(t, xls, [][]interface{}{
		balanceHeader,
		{1, "Jane Doe", 10, "Vacation", "paid", "five"},
	})

	mailer := newFakeMailer()
	lines, errs := NewService(mailer, filepath.Join(dir, "report.xlsx")).SummariseAbsences(context.Background(), xls)
	require.Empty(t, lines)
	require.Len(t, errs, 1)

	sent := mailer.wait(t)
	require.Empty(t, sent.attachment)
	require.Equal(t, errs[0], sent.body)
}
