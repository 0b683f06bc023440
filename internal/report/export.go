package report

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"barbershop-backend/internal/domain"
	"github.com/xuri/excelize/v2"
)

type row struct {
	label string
	value string
}

func summaryRows(kind Kind, r domain.DateRange, s Summary) []row {
	return []row{
		{"Report", string(kind)},
		{"Start Date", r.Start.Format(domain.DateLayout)},
		{"End Date", r.End.Format(domain.DateLayout)},
		{"Total Customers", strconv.Itoa(s.TotalEntries)},
		{"Total Revenue", s.TotalRevenue.StringFixed(2)},
		{"Services Performed", strconv.Itoa(s.ServicesPerformed)},
		{"Cash", s.Payments.Cash.StringFixed(2)},
		{"Card", s.Payments.Card.StringFixed(2)},
		{"Apple Pay", s.Payments.ApplePay.StringFixed(2)},
		{"Other", s.Payments.Other.StringFixed(2)},
		{"Pay Later", s.Payments.PayLater.StringFixed(2)},
	}
}

// ExportCSV writes the summary, daily sales and service usage as CSV sections.
func ExportCSV(kind Kind, r domain.DateRange, s Summary) ([]byte, error) {
	buf := new(bytes.Buffer)
	w := csv.NewWriter(buf)
	_ = w.Write([]string{"metric", "value"})
	for _, rw := range summaryRows(kind, r, s) {
		_ = w.Write([]string{rw.label, rw.value})
	}

	if len(s.DailySales) > 0 {
		_ = w.Write(nil)
		_ = w.Write([]string{"date", "revenue"})
		for _, d := range s.DailySales {
			_ = w.Write([]string{d.Date, d.Revenue.StringFixed(2)})
		}
	}
	if len(s.ServiceUsage) > 0 {
		_ = w.Write(nil)
		_ = w.Write([]string{"service", "count"})
		for _, u := range s.ServiceUsage {
			_ = w.Write([]string{u.ServiceName, strconv.Itoa(u.Count)})
		}
	}
	if len(s.StaffRevenue) > 0 {
		_ = w.Write(nil)
		_ = w.Write([]string{"staff", "entries", "revenue"})
		for _, st := range s.StaffRevenue {
			_ = w.Write([]string{st.Name, strconv.Itoa(st.Entries), st.Revenue.StringFixed(2)})
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

// ExportXLSX renders the same sections as separate worksheets.
func ExportXLSX(kind Kind, r domain.DateRange, s Summary) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Summary"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	_ = f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	header, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#1F2937"}, Pattern: 1},
	})

	rows := [][]any{{"Metric", "Value"}}
	for _, rw := range summaryRows(kind, r, s) {
		rows = append(rows, []any{rw.label, rw.value})
	}
	if err := writeSheet(f, sheet, rows, header); err != nil {
		return nil, err
	}
	_ = f.SetColWidth(sheet, "A", "A", 22)
	_ = f.SetColWidth(sheet, "B", "B", 16)

	if len(s.DailySales) > 0 {
		rows := [][]any{{"Date", "Revenue"}}
		for _, d := range s.DailySales {
			rows = append(rows, []any{d.Date, d.Revenue.InexactFloat64()})
		}
		if err := addSheet(f, "Daily Sales", rows, header); err != nil {
			return nil, err
		}
	}
	if len(s.ServiceUsage) > 0 {
		rows := [][]any{{"Service", "Count"}}
		for _, u := range s.ServiceUsage {
			rows = append(rows, []any{u.ServiceName, u.Count})
		}
		if err := addSheet(f, "Service Usage", rows, header); err != nil {
			return nil, err
		}
	}
	if len(s.StaffRevenue) > 0 {
		rows := [][]any{{"Staff", "Entries", "Revenue"}}
		for _, st := range s.StaffRevenue {
			rows = append(rows, []any{st.Name, st.Entries, st.Revenue.InexactFloat64()})
		}
		if err := addSheet(f, "Staff", rows, header); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func addSheet(f *excelize.File, name string, rows [][]any, header int) error {
	if _, err := f.NewSheet(name); err != nil {
		return err
	}
	if err := writeSheet(f, name, rows, header); err != nil {
		return err
	}
	return f.SetColWidth(name, "A", "C", 18)
}

func writeSheet(f *excelize.File, sheet string, rows [][]any, header int) error {
	for r, values := range rows {
		for c, v := range values {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}
	if len(rows) == 0 {
		return nil
	}
	last, _ := excelize.CoordinatesToCellName(len(rows[0]), 1)
	return f.SetCellStyle(sheet, "A1", last, header)
}
