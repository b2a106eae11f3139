package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"rentnest/internal/model"
)

type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// Generate writes pending agreement applications into a single-sheet
// workbook, one row per application.
func (g *Generator) Generate(rows []model.PendingAgreementRow) ([]byte, error) {
	file := excelize.NewFile()

	sheet := "Pending"
	file.SetSheetName("Sheet1", sheet)

	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	set("A1", "Property")
	set("B1", "Tenant")
	set("C1", "Tenant phone")
	set("D1", "Start date")
	set("E1", "End date")
	set("F1", "Rent")
	set("G1", "Status")

	for i, row := range rows {
		line := i + 2
		set(fmt.Sprintf("A%d", line), row.PropertyName)
		set(fmt.Sprintf("B%d", line), row.TenantName)
		set(fmt.Sprintf("C%d", line), row.TenantPhone)
		set(fmt.Sprintf("D%d", line), row.StartDate.Format("2006-01-02"))
		set(fmt.Sprintf("E%d", line), row.EndDate.Format("2006-01-02"))
		set(fmt.Sprintf("F%d", line), row.Rent)
		set(fmt.Sprintf("G%d", line), string(row.Status))
	}

	_ = file.SetColWidth(sheet, "A", "B", 32)
	_ = file.SetColWidth(sheet, "C", "G", 16)

	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
