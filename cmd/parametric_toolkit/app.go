package main

import (
	"context"
	"fmt"
	"log"

	"github.com/wailsapp/wails/v2/pkg/runtime"

	"github.com/user/parametric_toolkit_go/internal/fenestration"
	"github.com/user/parametric_toolkit_go/internal/geometry"
	"github.com/user/parametric_toolkit_go/internal/panelizer"
	"github.com/user/parametric_toolkit_go/internal/parser"
	"github.com/user/parametric_toolkit_go/internal/report"
	"github.com/user/parametric_toolkit_go/internal/runner"
	"github.com/user/parametric_toolkit_go/internal/tower"
)

// App struct
type App struct {
	ctx context.Context
}

// NewApp creates a new App application struct
func NewApp() *App {
	return &App{}
}

// Startup is called when the app starts. The context is saved
// so we can call the runtime methods
func (a *App) Startup(ctx context.Context) {
	a.ctx = ctx
	runtime.WindowSetTitle(a.ctx, "Parametric Toolkit")
}

func (a *App) sendStatus(message string) {
	if a.ctx != nil {
		runtime.EventsEmit(a.ctx, "statusUpdate", message)
	}
	log.Println(message)
}

func (a *App) clearLog() {
	if a.ctx != nil {
		runtime.EventsEmit(a.ctx, "clearLog")
	}
}

func (a *App) finish(ok bool, message string) {
	a.sendStatus(message)
	if a.ctx != nil {
		runtime.EventsEmit(a.ctx, "generationComplete", ok, message)
	}
}

// HandleGenerateFacade panelizes a planar facade surface, cuts data-driven
// openings into the panels, and writes a PDF report with grid heatmaps. The
// per-panel data series is read from csvFilePath; the heavy work runs in a
// goroutine so the UI stays responsive.
func (a *App) HandleGenerateFacade(csvFilePath string, pdfFilePath string,
	surfaceWidth, surfaceHeight float64, uCount, vCount int,
	minOpening, maxOpening float64, invert bool, debugMode bool) (string, error) {

	a.clearLog()
	a.sendStatus(fmt.Sprintf("Request: CSV=[%s], PDF=[%s], Surface=%.1fx%.1f, Grid=%dx%d",
		csvFilePath, pdfFilePath, surfaceWidth, surfaceHeight, uCount, vCount))

	go func() {
		if a.ctx != nil {
			runtime.EventsEmit(a.ctx, "generationStart")
		}

		result, diagnostics := runner.Run(func() (*fenestration.Result, error) {
			a.sendStatus(fmt.Sprintf("Parsing: %s", csvFilePath))
			series, err := parser.ParsePanelData(csvFilePath)
			if err != nil {
				return nil, fmt.Errorf("error parsing CSV: %w", err)
			}
			a.sendStatus(fmt.Sprintf("Parsed %d panel values.", series.NumValues))
			for _, e := range series.ParseErrors {
				a.sendStatus(fmt.Sprintf("- %s", e))
			}

			srf, err := geometry.NewPlaneSurface(geometry.WorldXY(), surfaceWidth, surfaceHeight)
			if err != nil {
				return nil, err
			}

			a.sendStatus(fmt.Sprintf("Panelizing %dx%d grid...", uCount, vCount))
			panels, ids, err := panelizer.PanelizeSurface(srf, uCount, vCount, panelizer.DefaultPrefix)
			if err != nil {
				return nil, err
			}
			a.sendStatus(fmt.Sprintf("Created %d panels.", len(panels)))

			template, err := geometry.NewRectangleCurve(geometry.WorldXY(), 1, 1)
			if err != nil {
				return nil, err
			}

			opts := fenestration.DefaultOptions()
			opts.MinOpening = minOpening
			opts.MaxOpening = maxOpening
			opts.Invert = invert

			a.sendStatus("Cutting openings...")
			return fenestration.AdaptiveFenestration(panels, ids, series.Values, template, opts)
		}, debugMode)

		if len(diagnostics) > 0 {
			for _, d := range diagnostics {
				a.sendStatus(d)
			}
			a.finish(false, "Facade generation failed.")
			return
		}

		a.sendStatus("Generating plots...")
		plotImages := make(map[string][]byte)
		heatmaps := []struct{ Key, Column, Title string }{
			{"heatmap_opening", report.ColOpeningPercent, "Opening Percent per Panel"},
			{"heatmap_normalized", report.ColNormalized, "Normalized Data per Panel"},
			{"heatmap_category", report.ColCategory, "Category per Panel"},
		}
		for _, hm := range heatmaps {
			imgBytes, err := report.CreateGridHeatmap(result.Records, uCount, vCount, hm.Column, hm.Title)
			if err != nil {
				a.sendStatus(fmt.Sprintf("Error generating plot %s: %v", hm.Key, err))
				continue
			}
			plotImages[hm.Key] = imgBytes
		}
		if imgBytes, err := report.CreateScaleLinePlot(result.Records, minOpening, maxOpening); err == nil {
			plotImages["line_scale"] = imgBytes
		} else {
			a.sendStatus(fmt.Sprintf("Error generating scale plot: %v", err))
		}
		if imgBytes, err := report.CreateCategoryPlot(result.Records, fenestration.DefaultOptions().NumCategories); err == nil {
			plotImages["line_category"] = imgBytes
		} else {
			a.sendStatus(fmt.Sprintf("Error generating category plot: %v", err))
		}

		a.sendStatus(fmt.Sprintf("Generating PDF: %s...", pdfFilePath))
		params := report.FacadeParams{
			UCount:        uCount,
			VCount:        vCount,
			MinOpening:    minOpening,
			MaxOpening:    maxOpening,
			NumCategories: fenestration.DefaultOptions().NumCategories,
			Invert:        invert,
			DataSource:    csvFilePath,
		}
		if err := report.BuildFacadeReport(pdfFilePath, result, params, plotImages); err != nil {
			a.finish(false, fmt.Sprintf("Error generating PDF report: %v", err))
			return
		}
		a.finish(true, fmt.Sprintf("Facade report successfully generated: %s", pdfFilePath))
	}()

	return "Facade generation started in background.", nil
}

// HandleTwistTower lofts a twisted tower from a rectangular plan and reports
// the resulting floor and surface counts.
func (a *App) HandleTwistTower(planWidth, planDepth float64, floorCount int,
	floorHeight float64, rotationPerFloor int, debugMode bool) (string, error) {

	a.clearLog()
	a.sendStatus(fmt.Sprintf("Request: Plan=%.1fx%.1f, Floors=%d, Height=%.2f, Twist=%d deg/floor",
		planWidth, planDepth, floorCount, floorHeight, rotationPerFloor))

	go func() {
		if a.ctx != nil {
			runtime.EventsEmit(a.ctx, "generationStart")
		}

		type towerOutput struct {
			surfaces []geometry.Surface
			floors   []*geometry.Curve
		}
		out, diagnostics := runner.Run(func() (towerOutput, error) {
			base, err := geometry.NewRectangleCurve(geometry.WorldXY(), planWidth, planDepth)
			if err != nil {
				return towerOutput{}, err
			}
			surfaces, floors, err := tower.TwistTower(base, floorCount, floorHeight, rotationPerFloor, nil)
			if err != nil {
				return towerOutput{}, err
			}
			return towerOutput{surfaces: surfaces, floors: floors}, nil
		}, debugMode)

		if len(diagnostics) > 0 {
			for _, d := range diagnostics {
				a.sendStatus(d)
			}
			a.finish(false, "Tower generation failed.")
			return
		}

		totalArea := 0.0
		for _, s := range out.surfaces {
			totalArea += s.Area()
		}
		a.finish(true, fmt.Sprintf("Tower generated: %d floor curves, %d surfaces, %.2f envelope area.",
			len(out.floors), len(out.surfaces), totalArea))
	}()

	return "Tower generation started in background.", nil
}
