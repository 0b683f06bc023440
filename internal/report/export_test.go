package report

import (
	"bytes"
	"encoding/csv"
	"testing"

	"barbershop-backend/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sampleSummary() (domain.DateRange, Summary) {
	staff := uuid.New()
	entries := []domain.Entry{
		entry(1, day1, staff, "John", domain.PaymentCash, "Haircut"),
		entry(2, day2, staff, "John", domain.PaymentCard, "Beard Trim"),
	}
	return domain.NewDateRange(&day1, &day2), Aggregate(entries, GroupAll)
}

func TestExportCSV(t *testing.T) {
	r, s := sampleSummary()

	data, err := ExportCSV(KindWeekly, r, s)
	require.NoError(t, err)

	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	require.NoError(t, err)

	assert.Equal(t, []string{"metric", "value"}, records[0])
	assert.Contains(t, records, []string{"Total Revenue", "8.00"})
	assert.Contains(t, records, []string{"2024-05-02", "3.00"})
	assert.Contains(t, records, []string{"Haircut", "1"})
}

func TestExportXLSX(t *testing.T) {
	r, s := sampleSummary()

	data, err := ExportXLSX(KindMonthly, r, s)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.ElementsMatch(t, []string{"Summary", "Daily Sales", "Service Usage", "Staff"}, f.GetSheetList())
	v, err := f.GetCellValue("Summary", "B6")
	require.NoError(t, err)
	assert.Equal(t, "8.00", v)
}
