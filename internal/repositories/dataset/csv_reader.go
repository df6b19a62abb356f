// Package dataset reads the static reference datasets that back the dashboards.
package dataset

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/SscSPs/finance_dashboard/internal/apperrors"
	"github.com/SscSPs/finance_dashboard/internal/core/domain"
	portsrepo "github.com/SscSPs/finance_dashboard/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

// File names inside the dataset directory.
const (
	AgriculturalFile = "agriculture.csv"
	CompanyFile      = "company.csv"
	IndividualFile   = "person.csv"
)

// CSVReader loads reference rows from CSV files in a directory. Files are read
// on every call so edits show up without a restart.
type CSVReader struct {
	dir string
}

// NewCSVReader creates a reader over dir.
func NewCSVReader(dir string) *CSVReader {
	return &CSVReader{dir: dir}
}

var _ portsrepo.ReferenceDataReader = (*CSVReader)(nil)

// LoadAgricultural reads the crop rows of AgriculturalFile.
func (r *CSVReader) LoadAgricultural(ctx context.Context) ([]domain.AgriculturalRecord, error) {
	t, err := r.open(ctx, AgriculturalFile)
	if err != nil {
		return nil, err
	}
	rows := make([]domain.AgriculturalRecord, 0, len(t.records))
	for i := range t.records {
		rec := domain.AgriculturalRecord{CropType: t.text(i, "Crop_Type")}
		rec.FarmArea = t.number(i, "Farm_Area(acres)")
		rec.Yield = t.number(i, "Yield(tons)")
		rec.WaterUsage = t.number(i, "Water_Usage(cubic meters)")
		rec.Fertilizer = t.number(i, "Fertilizer_Used(tons)")
		rec.Pesticide = t.number(i, "Pesticide_Used(kg)")
		rows = append(rows, rec)
	}
	if err := t.finish(); err != nil {
		return nil, err
	}
	return rows, nil
}

// LoadCompany reads the monthly rows of CompanyFile.
func (r *CSVReader) LoadCompany(ctx context.Context) ([]domain.CompanyRecord, error) {
	t, err := r.open(ctx, CompanyFile)
	if err != nil {
		return nil, err
	}
	rows := make([]domain.CompanyRecord, 0, len(t.records))
	for i := range t.records {
		rows = append(rows, domain.CompanyRecord{
			Month:                 t.text(i, "Month"),
			TotalRevenue:          t.number(i, "Total Revenue (₹)"),
			Expenses:              t.number(i, "Expenses (₹)"),
			TotalCost:             t.number(i, "Total Cost (₹)"),
			VarianceIncomePercent: t.number(i, "Variance Income %"),
		})
	}
	if err := t.finish(); err != nil {
		return nil, err
	}
	return rows, nil
}

// LoadIndividual reads the monthly household rows of IndividualFile, in file order.
func (r *CSVReader) LoadIndividual(ctx context.Context) ([]domain.IndividualRecord, error) {
	t, err := r.open(ctx, IndividualFile)
	if err != nil {
		return nil, err
	}
	rows := make([]domain.IndividualRecord, 0, len(t.records))
	for i := range t.records {
		rows = append(rows, domain.IndividualRecord{
			Month:            t.text(i, "Month"),
			Salary:           t.number(i, "Salary (₹)"),
			Rent:             t.number(i, "Rent (₹)"),
			ElectricityBill:  t.number(i, "Electricity Bill (₹)"),
			WaterBill:        t.number(i, "Water Bill (₹)"),
			Grocery:          t.number(i, "Grocery (₹)"),
			Transportation:   t.number(i, "Transportation (₹)"),
			Entertainment:    t.number(i, "Entertainment (₹)"),
			Healthcare:       t.number(i, "Healthcare (₹)"),
			Miscellaneous:    t.number(i, "Miscellaneous (₹)"),
			TotalExpenses:    t.number(i, "Total Expenses (₹)"),
			Savings:          t.number(i, "Savings (₹)"),
			SavingsGoal:      t.number(i, "User Savings Goal (₹)"),
			ImprovementTips:  t.optionalText(i, "Savings Improvement Tips"),
			SuggestedChanges: t.optionalText(i, "Suggested Changes"),
		})
	}
	if err := t.finish(); err != nil {
		return nil, err
	}
	return rows, nil
}

// table is a parsed CSV file. Accessors record the first problem they hit
// and finish reports it.
type table struct {
	name    string
	columns map[string]int
	records [][]string
	err     error
}

func (r *CSVReader) open(ctx context.Context, name string) (*table, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := os.Open(filepath.Join(r.dir, name))
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", name, apperrors.ErrDataUnavailable, err)
	}
	defer f.Close()
	return parse(name, f)
}

func parse(name string, src io.Reader) (*table, error) {
	cr := csv.NewReader(src)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%s: %w: empty file", name, apperrors.ErrDataUnavailable)
		}
		return nil, fmt.Errorf("%s: %w: %w", name, apperrors.ErrDataUnavailable, err)
	}
	t := &table{name: name, columns: make(map[string]int, len(header))}
	for i, h := range header {
		if i == 0 {
			h = strings.TrimPrefix(h, "\ufeff")
		}
		t.columns[strings.TrimSpace(h)] = i
	}

	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w: %w", name, apperrors.ErrDataUnavailable, err)
		}
		if isBlank(rec) {
			continue
		}
		t.records = append(t.records, rec)
	}
	if len(t.records) == 0 {
		return nil, fmt.Errorf("%s: %w: no data rows", name, apperrors.ErrDataUnavailable)
	}
	return t, nil
}

func isBlank(rec []string) bool {
	for _, v := range rec {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

func (t *table) fail(format string, args ...any) {
	if t.err == nil {
		t.err = fmt.Errorf("%s: %w: %s", t.name, apperrors.ErrDataUnavailable, fmt.Sprintf(format, args...))
	}
}

func (t *table) cell(row int, column string, required bool) (string, bool) {
	idx, ok := t.columns[column]
	if !ok {
		if required {
			t.fail("missing column %q", column)
		}
		return "", false
	}
	rec := t.records[row]
	if idx >= len(rec) {
		return "", true
	}
	return strings.TrimSpace(rec[idx]), true
}

func (t *table) text(row int, column string) string {
	v, _ := t.cell(row, column, true)
	return v
}

func (t *table) optionalText(row int, column string) string {
	v, _ := t.cell(row, column, false)
	return v
}

// number parses a numeric cell. An empty cell counts as 0.
func (t *table) number(row int, column string) float64 {
	v, ok := t.cell(row, column, true)
	if !ok || v == "" {
		return 0
	}
	d, err := decimal.NewFromString(strings.ReplaceAll(v, ",", ""))
	if err != nil {
		t.fail("row %d column %q: invalid number %q", row+2, column, v)
		return 0
	}
	return d.InexactFloat64()
}

func (t *table) finish() error {
	return t.err
}
