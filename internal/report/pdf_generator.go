package report

import (
	"bytes"
	"fmt"
	"log"
	"strconv"

	"github.com/jung-kurt/gofpdf"

	"github.com/user/parametric_toolkit_go/internal/analysis"
	"github.com/user/parametric_toolkit_go/internal/fenestration"
)

const (
	inchToMm               = 25.4
	pdfPageWidthLandscape  = 11 * inchToMm // Letter landscape
	pdfPageHeightLandscape = 8.5 * inchToMm
	pdfMargin              = 0.5 * inchToMm
	pdfContentWidth        = pdfPageWidthLandscape - (2 * pdfMargin)
)

// FacadeParams captures the generator settings echoed on the report.
type FacadeParams struct {
	UCount, VCount int
	MinOpening     float64
	MaxOpening     float64
	NumCategories  int
	Invert         bool
	DataSource     string
}

// pdfStyler holds reusable styling and flowing-content state.
type pdfStyler struct {
	pdf         *gofpdf.Fpdf
	styles      map[string]func()
	lineHeight  float64
	currentY    float64
	pageHeight  float64
	contentTopY float64
}

func newPDFStyler(pdf *gofpdf.Fpdf) *pdfStyler {
	s := &pdfStyler{
		pdf:         pdf,
		styles:      make(map[string]func()),
		lineHeight:  6, // mm
		pageHeight:  pdfPageHeightLandscape - (2 * pdfMargin),
		contentTopY: pdfMargin,
	}
	s.currentY = s.contentTopY
	s.defineStyles()
	return s
}

func (s *pdfStyler) defineStyles() {
	s.styles["h1"] = func() {
		s.pdf.SetFont("Arial", "B", 16)
		s.pdf.SetTextColor(0, 0, 0)
	}
	s.styles["h2"] = func() {
		s.pdf.SetFont("Arial", "B", 14)
		s.pdf.SetTextColor(0, 0, 0)
	}
	s.styles["normal"] = func() {
		s.pdf.SetFont("Arial", "", 10)
		s.pdf.SetTextColor(0, 0, 0)
	}
	s.styles["tableHeader"] = func() {
		s.pdf.SetFont("Arial", "B", 9)
		s.pdf.SetFillColor(200, 200, 200)
		s.pdf.SetTextColor(0, 0, 0)
	}
	s.styles["tableCell"] = func() {
		s.pdf.SetFont("Arial", "", 9)
		s.pdf.SetTextColor(50, 50, 50)
	}
	s.styles["tableCellSolid"] = func() { // solid (uncut) panels
		s.pdf.SetFont("Arial", "B", 9)
		s.pdf.SetTextColor(120, 120, 120)
	}
}

func (s *pdfStyler) applyStyle(styleName string) {
	if fn, ok := s.styles[styleName]; ok {
		fn()
	} else {
		s.styles["normal"]()
	}
}

func (s *pdfStyler) checkAddPage(neededHeight float64) {
	if s.currentY+neededHeight > s.pageHeight {
		s.pdf.AddPage()
		s.currentY = s.contentTopY
	}
}

func (s *pdfStyler) newPage() {
	s.pdf.AddPage()
	s.currentY = s.contentTopY
}

func (s *pdfStyler) writeParagraph(text string, styleName string, align string) {
	s.applyStyle(styleName)
	s.checkAddPage(s.lineHeight)
	s.pdf.SetXY(pdfMargin, s.currentY)
	s.pdf.MultiCell(pdfContentWidth, s.lineHeight, text, "", align, false)
	s.currentY = s.pdf.GetY()
	s.currentY += 1
}

func (s *pdfStyler) addSpacer(height float64) {
	s.checkAddPage(height)
	s.currentY += height
	if s.currentY > s.pageHeight {
		s.newPage()
	}
}

// tableRow writes one bordered row, breaking the page first when needed.
func (s *pdfStyler) tableRow(cells []string, colWidths []float64, styleName string, fill bool) {
	s.checkAddPage(s.lineHeight)
	sX := pdfMargin
	s.applyStyle(styleName)
	for i, cell := range cells {
		s.pdf.SetXY(sX, s.currentY)
		s.pdf.CellFormat(colWidths[i], s.lineHeight, cell, "1", 0, "C", fill, 0, "")
		sX += colWidths[i]
	}
	s.currentY += s.lineHeight
}

func (s *pdfStyler) addImage(imageBytes []byte, imageName string, width, height float64, caption string) {
	s.pdf.RegisterImageReader(imageName, "PNG", bytes.NewReader(imageBytes))

	if width > pdfContentWidth {
		ratio := pdfContentWidth / width
		width = pdfContentWidth
		height *= ratio
	}

	captionHeight := 0.0
	if caption != "" {
		captionHeight = s.lineHeight + 1
	}
	s.checkAddPage(height + captionHeight)

	s.pdf.Image(imageName, pdfMargin, s.currentY, width, height, false, "PNG", 0, "")
	s.currentY += height

	if caption != "" {
		s.addSpacer(1)
		s.writeParagraph(caption, "normal", "C")
	}
	s.addSpacer(2)
}

func absWidths(rel []float64) []float64 {
	abs := make([]float64, len(rel))
	for i, r := range rel {
		abs[i] = r * pdfContentWidth
	}
	return abs
}

// BuildFacadeReport creates the fenestration report PDF: parameter summary,
// largest-opening ranking, the full panel schedule, and the plot pages.
func BuildFacadeReport(filepath string, result *fenestration.Result, params FacadeParams, plotImages map[string][]byte) error {
	pdf := gofpdf.New("L", "mm", "Letter", "")
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.AddPage()

	styler := newPDFStyler(pdf)

	styler.writeParagraph(fmt.Sprintf("Adaptive Fenestration Report (%dx%d Panel Grid)", params.UCount, params.VCount), "h1", "C")
	styler.addSpacer(5)
	inversion := "higher data values enlarge openings"
	if params.Invert {
		inversion = "higher data values shrink openings"
	}
	styler.writeParagraph(fmt.Sprintf("Opening scale range: %.2f - %.2f, %d categories, %s.",
		params.MinOpening, params.MaxOpening, params.NumCategories, inversion), "normal", "L")
	if params.DataSource != "" {
		styler.writeParagraph(fmt.Sprintf("Data source: %s", params.DataSource), "normal", "L")
	}
	styler.addSpacer(5)

	if result == nil || len(result.Records) == 0 {
		styler.writeParagraph("No fenestration results to display.", "normal", "L")
		return pdf.OutputFileAndClose(filepath)
	}

	stats, err := analysis.AnalyzeFacade(result.Records, params.UCount, params.VCount)
	if err != nil {
		return fmt.Errorf("facade analysis for report: %w", err)
	}

	styler.writeParagraph("Summary", "h2", "L")
	styler.writeParagraph(fmt.Sprintf(
		"%d panels (%d solid), total panel area %.2f, total opening area %.2f. Opening percent: mean %.1f, min %.1f, max %.1f.",
		stats.PanelCount, stats.SolidPanelCount, stats.TotalPanelArea, stats.TotalOpeningArea,
		stats.MeanOpening, stats.MinOpening, stats.MaxOpening), "normal", "L")
	styler.addSpacer(3)

	styler.writeParagraph("Top 10 Largest Openings", "h2", "L")
	rankHeaders := []string{"Rank", "Panel ID", "Opening Area", "Panel Area", "Opening %"}
	rankWidths := absWidths([]float64{0.1, 0.2, 0.25, 0.25, 0.2})
	styler.checkAddPage(styler.lineHeight * 11)
	styler.tableRow(rankHeaders, rankWidths, "tableHeader", true)
	for i, rec := range stats.RankedByOpening {
		if i >= 10 {
			break
		}
		styler.tableRow([]string{
			strconv.Itoa(i + 1),
			rec.ID,
			fmt.Sprintf("%.3f", rec.OpeningArea),
			fmt.Sprintf("%.3f", rec.PanelArea),
			fmt.Sprintf("%.1f", rec.OpeningPercent),
		}, rankWidths, "tableCell", false)
	}
	styler.addSpacer(5)

	// Full panel schedule.
	styler.newPage()
	styler.writeParagraph("Panel Schedule", "h2", "L")
	schedHeaders := []string{"Panel ID", "Raw", "Normalized", "Category", "Scale", "Opening Area", "Opening %"}
	schedWidths := absWidths([]float64{0.16, 0.12, 0.14, 0.12, 0.12, 0.18, 0.16})
	styler.tableRow(schedHeaders, schedWidths, "tableHeader", true)
	for _, rec := range result.Records {
		style := "tableCell"
		if rec.ScaleFactor == 0 {
			style = "tableCellSolid"
		}
		styler.tableRow([]string{
			rec.ID,
			fmt.Sprintf("%.3f", rec.RawValue),
			fmt.Sprintf("%.3f", rec.NormalizedValue),
			strconv.Itoa(rec.Category),
			fmt.Sprintf("%.3f", rec.ScaleFactor),
			fmt.Sprintf("%.3f", rec.OpeningArea),
			fmt.Sprintf("%.1f", rec.OpeningPercent),
		}, schedWidths, style, false)
	}

	// Plot pages.
	styler.newPage()
	styler.writeParagraph("Graphical Analysis", "h1", "C")
	styler.addSpacer(5)

	plotDefs := []struct {
		Key     string
		Title   string
		Caption string
	}{
		{"heatmap_opening", "Opening Percent Heatmap", "Opening area as a percentage of panel area, per grid cell"},
		{"heatmap_normalized", "Normalized Data Heatmap", "Normalized data value per grid cell"},
		{"heatmap_category", "Category Heatmap", "Discrete category per grid cell"},
		{"line_scale", "Opening Scale Profile", "Opening scale factor per panel in id order"},
		{"line_category", "Category Occupancy", "Panel count per category"},
	}

	imgWidth := pdfContentWidth * 0.85
	imgHeight := imgWidth * (5.0 / 7.0)

	for i, pDef := range plotDefs {
		styler.writeParagraph(pDef.Title, "h2", "L")
		if imgBytes, ok := plotImages[pDef.Key]; ok && len(imgBytes) > 0 {
			w, h := imgWidth, imgHeight
			if pDef.Key == "line_scale" || pDef.Key == "line_category" {
				h = imgWidth * (4.0 / 8.0)
			}
			styler.addImage(imgBytes, pDef.Key, w, h, pDef.Caption)
		} else {
			log.Printf("plot %s not available for report", pDef.Key)
			styler.writeParagraph(fmt.Sprintf("Plot for %s not available.", pDef.Title), "normal", "L")
		}
		if i+1 < len(plotDefs) {
			styler.newPage()
		}
	}

	return pdf.OutputFileAndClose(filepath)
}
