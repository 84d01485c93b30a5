package excel

import (
	"fmt"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/nurpe/freightops/internal/model"
)

const (
	summarySheet  = "Сводка"
	registrySheet = "Реестр"
)

// Generator renders a request registry into an xlsx workbook with a
// summary sheet and a detail sheet.
type Generator struct {
	currency string
}

func NewGenerator(currency string) *Generator {
	return &Generator{currency: currency}
}

func (g *Generator) Generate(registry model.RequestRegistry) ([]byte, error) {
	file := excelize.NewFile()

	file.SetSheetName("Sheet1", summarySheet)
	if err := g.writeSummary(file, registry); err != nil {
		return nil, err
	}

	if _, err := file.NewSheet(registrySheet); err != nil {
		return nil, err
	}
	if err := g.writeRegistry(file, registry); err != nil {
		return nil, err
	}

	file.SetActiveSheet(0)
	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (g *Generator) writeSummary(file *excelize.File, registry model.RequestRegistry) error {
	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(summarySheet, cell, value)
	}

	set("A1", "Реестр заявок")
	set("A2", "Сформировал")
	set("B2", registry.GeneratedBy.Name)
	set("A3", "Роль")
	set("B3", registry.GeneratedBy.Role.Label())
	set("A4", "Дата формирования")
	set("B4", formatDateTime(registry.GeneratedAt))
	set("A5", "Всего заявок")
	set("B5", len(registry.Requests))
	set("A6", fmt.Sprintf("Суммарная маржа, %s", g.currency))
	set("B6", totalMargin(registry.Requests))

	tableRow := 8
	set(fmt.Sprintf("A%d", tableRow), "Статус")
	set(fmt.Sprintf("B%d", tableRow), "Количество")
	for i, count := range registry.CountByStatus() {
		row := tableRow + 1 + i
		set(fmt.Sprintf("A%d", row), count.Status.Label())
		set(fmt.Sprintf("B%d", row), count.Count)
	}

	_ = file.SetColWidth(summarySheet, "A", "A", 30)
	_ = file.SetColWidth(summarySheet, "B", "B", 24)
	return nil
}

func (g *Generator) writeRegistry(file *excelize.File, registry model.RequestRegistry) error {
	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(registrySheet, cell, value)
	}

	headers := []string{
		"ID",
		"Статус",
		"Маршрут",
		"Водитель",
		"Груз",
		"Вес, кг",
		fmt.Sprintf("Оплата водителю, %s", g.currency),
		fmt.Sprintf("Цена клиента, %s", g.currency),
		fmt.Sprintf("Маржа, %s", g.currency),
		"Логист",
		"Погрузка",
		"Разгрузка",
	}
	for i, header := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		set(cell, header)
	}

	for i, req := range registry.Requests {
		row := i + 2
		values := []interface{}{
			req.ID,
			req.Status.Label(),
			formatRoute(req.Route),
			req.Driver.Name,
			req.Cargo.Name,
			req.Cargo.Weight,
			req.Payment.CostToDriver,
			req.Payment.PriceFromCustomer,
			req.Payment.TotalMargin,
			req.IssuedBy,
			formatDate(req.Dates.Loading),
			formatDate(req.Dates.Unloading),
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return err
			}
			set(cell, value)
		}
	}

	_ = file.SetColWidth(registrySheet, "A", "A", 38)
	_ = file.SetColWidth(registrySheet, "B", "E", 18)
	_ = file.SetColWidth(registrySheet, "F", "I", 16)
	_ = file.SetColWidth(registrySheet, "J", "L", 20)
	return nil
}

func formatRoute(route model.Route) string {
	points := make([]string, 0, len(route.Waypoints)+2)
	points = append(points, route.From)
	points = append(points, route.Waypoints...)
	points = append(points, route.To)
	return strings.Join(points, " → ")
}

func totalMargin(requests []model.TransportRequest) float64 {
	total := 0.0
	for _, req := range requests {
		total += req.Payment.TotalMargin
	}
	return total
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("02.01.2006")
}

func formatDateTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("02.01.2006 15:04")
}
