package api

import (
	"bytes"
	"encoding/csv"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/foodt/internal/services"
)

// ExportFoodItems streams the catalog as a CSV attachment, one row per item
// ordered by name.
func (handler *Handler) ExportFoodItems(c *fiber.Ctx) error {
	rows, err := handler.reportService.ExportCSVRows()
	if err != nil {
		return err
	}

	var output bytes.Buffer
	writer := csv.NewWriter(&output)
	writer.UseCRLF = true
	if err := writer.Write(services.ExportCSVHeaders()); err != nil {
		return err
	}
	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			return err
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return err
	}

	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename=food_items.csv`)
	return c.Send(output.Bytes())
}
