// Package pdf genera el reporte imprimible del dashboard de ventas con
// Maroto v2: totales, ranking de tiendas y productos, y la serie diaria.
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/tu-usuario/retail-sync/internal/application/dto"
	"github.com/tu-usuario/retail-sync/internal/application/report"
)

var _ report.SummaryPDFGenerator = (*MarotoReportGenerator)(nil)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoReportGenerator implementa report.SummaryPDFGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateSummaryPDF genera el PDF del resumen y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateSummaryPDF(_ context.Context, summary *dto.AnalyticsSummaryDTO) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de ventas", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow())
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(totalsRow(summary))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))

	m.AddRows(sectionTitleRow("Tiendas con más ventas"))
	for _, r := range rankingRows(locationPairs(summary.TopLocations)) {
		m.AddRows(r)
	}

	m.AddRows(sectionTitleRow("Productos más vendidos"))
	for _, r := range rankingRows(productPairs(summary.TopProducts)) {
		m.AddRows(r)
	}

	m.AddRows(sectionTitleRow("Unidades vendidas por día"))
	for _, r := range seriesRows(summary.SalesByDate) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("maroto generate: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow() core.Row {
	return row.New(12).Add(
		col.New(8).Add(
			text.New("Reporte de ventas e inventario", props.Text{
				Size: 14, Style: fontstyle.Bold, Color: colorPrimary,
			}),
		),
		col.New(4).Add(
			text.New("Generado: "+time.Now().UTC().Format("2006-01-02 15:04 UTC"), props.Text{
				Size: 8, Align: align.Right, Color: colorGray,
			}),
		),
	)
}

func totalsRow(summary *dto.AnalyticsSummaryDTO) core.Row {
	return row.New(10).Add(
		col.New(6).Add(
			text.New(fmt.Sprintf("Ventas registradas: %d", summary.TotalSales), props.Text{
				Size: 10, Style: fontstyle.Bold,
			}),
		),
		col.New(6).Add(
			text.New(fmt.Sprintf("Productos distintos: %d", summary.TotalProducts), props.Text{
				Size: 10, Style: fontstyle.Bold,
			}),
		),
	)
}

func sectionTitleRow(title string) core.Row {
	return row.New(9).Add(
		col.New(12).Add(
			text.New(title, props.Text{Size: 10, Style: fontstyle.Bold, Color: colorPrimary, Top: 2}),
		),
	)
}

type rankingPair struct {
	name  string
	total int
}

func locationPairs(items []dto.TopLocationDTO) []rankingPair {
	pairs := make([]rankingPair, 0, len(items))
	for _, item := range items {
		pairs = append(pairs, rankingPair{item.LocationName, item.TotalSold})
	}
	return pairs
}

func productPairs(items []dto.TopProductDTO) []rankingPair {
	pairs := make([]rankingPair, 0, len(items))
	for _, item := range items {
		pairs = append(pairs, rankingPair{item.ProductName, item.TotalSold})
	}
	return pairs
}

func rankingRows(pairs []rankingPair) []core.Row {
	if len(pairs) == 0 {
		return []core.Row{emptyRow()}
	}
	rows := make([]core.Row, 0, len(pairs))
	for i, p := range pairs {
		rows = append(rows, row.New(6).Add(
			col.New(1).Add(text.New(fmt.Sprintf("%d.", i+1), props.Text{Size: 8, Color: colorGray})),
			col.New(8).Add(text.New(p.name, props.Text{Size: 8})),
			col.New(3).Add(text.New(fmt.Sprintf("%d uds", p.total), props.Text{Size: 8, Align: align.Right})),
		))
	}
	return rows
}

func seriesRows(points []dto.SalesByDateDTO) []core.Row {
	if len(points) == 0 {
		return []core.Row{emptyRow()}
	}
	rows := make([]core.Row, 0, len(points))
	for _, p := range points {
		rows = append(rows, row.New(6).Add(
			col.New(6).Add(text.New(p.SoldAt, props.Text{Size: 8})),
			col.New(6).Add(text.New(fmt.Sprintf("%d uds", p.QuantitySold), props.Text{Size: 8, Align: align.Right})),
		))
	}
	return rows
}

func emptyRow() core.Row {
	return row.New(6).Add(
		col.New(12).Add(text.New("Sin datos", props.Text{Size: 8, Color: colorGray})),
	)
}
