package inquiries

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

const exportSheet = "Inquiries"

var exportHeaders = []string{"Received", "Name", "Email", "Phone", "Breed interest", "Message"}

// WriteXLSX vuelca las consultas a una planilla, una fila por consulta.
func WriteXLSX(w io.Writer, items []Inquiry) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return err
	}

	for i, h := range exportHeaders {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(exportSheet, cell, h); err != nil {
			return err
		}
	}

	for idx, q := range items {
		row := idx + 2
		values := []any{
			q.CreatedAt.UTC().Format("2006-01-02 15:04"),
			q.Name,
			q.Email,
			q.Phone,
			q.BreedInterest,
			q.Message,
		}
		if err := f.SetSheetRow(exportSheet, fmt.Sprintf("A%d", row), &values); err != nil {
			return err
		}
	}

	// ancho de columnas
	_ = f.SetColWidth(exportSheet, "A", "A", 18)
	_ = f.SetColWidth(exportSheet, "B", "C", 28)
	_ = f.SetColWidth(exportSheet, "D", "E", 16)
	_ = f.SetColWidth(exportSheet, "F", "F", 60)

	return f.Write(w)
}
