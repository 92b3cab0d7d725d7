package serviceImp

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ExportXLSX writes the full catalog to a single-sheet workbook.
func (s *productSvc) ExportXLSX(ctx context.Context) ([]byte, error) {
	views, err := s.loader.Load(ctx)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()
	sheet := "Catalog"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}

	header := []any{"ID", "Name", "Description", "Price", "Category", "Organic", "Farmer"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, err
	}
	for i, v := range views {
		cell := fmt.Sprintf("A%d", i+2)
		row := []any{v.ProductID, v.Name, v.Description, v.Price, v.Category, v.IsOrganic, v.Farmer.Name}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
