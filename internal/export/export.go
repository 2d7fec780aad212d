// Package export renders property search results as spreadsheets.
package export

import (
	"fmt"
	"io"

	"lightbnb/internal/models"

	"github.com/xuri/excelize/v2"
)

const PropertiesSheet = "Properties"

// ContentType is the MIME type of the workbooks written here.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

var propertyHeaders = []string{
	"ID", "Title", "City", "Cost per night", "Bedrooms", "Bathrooms", "Parking spaces", "Average rating",
}

// PropertiesWorkbook writes listings to w as an .xlsx workbook with a single
// sheet, one row per listing below a bold header.
func PropertiesWorkbook(w io.Writer, listings []*models.PropertyListing) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", PropertiesSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#DDEBF7"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("header style: %w", err)
	}

	for i, header := range propertyHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(PropertiesSheet, cell, header)
	}
	lastHeader, _ := excelize.CoordinatesToCellName(len(propertyHeaders), 1)
	_ = f.SetCellStyle(PropertiesSheet, "A1", lastHeader, headerStyle)
	_ = f.SetColWidth(PropertiesSheet, "B", "C", 30)
	_ = f.SetColWidth(PropertiesSheet, "D", "H", 15)

	for i, l := range listings {
		row := i + 2
		values := []interface{}{
			l.ID, l.Title, l.City, l.CostPerNight,
			l.NumberOfBedrooms, l.NumberOfBathrooms, l.ParkingSpaces, l.AverageRating,
		}
		cell, _ := excelize.CoordinatesToCellName(1, row)
		if err := f.SetSheetRow(PropertiesSheet, cell, &values); err != nil {
			return fmt.Errorf("write row %d: %w", row, err)
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}
