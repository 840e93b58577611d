// gprtool processes one GPR spreadsheet offline: it writes the
// boundary-profile table as CSV and can render the depth-profile
// chart to a PNG, using the same internals as the server.
package main

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"gpr-profile-service/internal/adapters/chart"
	"gpr-profile-service/internal/adapters/spreadsheet"
	"gpr-profile-service/internal/domain"
	"gpr-profile-service/internal/platform/config"
	"gpr-profile-service/internal/platform/profile"
	"gpr-profile-service/internal/services"
)

func main() {
	inPath := flag.String("in", "", "input spreadsheet (.xlsx or .csv)")
	outPath := flag.String("out", "-", "profile CSV output path (- for stdout)")
	chartPath := flag.String("chart", "", "optional chart PNG output path")
	modeFlag := flag.String("mode", "", "column mode: by_name or by_position (default from env)")
	stepFlag := flag.Float64("step", 0, "chainage step in meters (default from env)")
	flag.Parse()

	if *inPath == "" {
		log.Fatal("-in is required")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	opts := services.DefaultOptions()
	if cfg.ChainageStep > 0 {
		opts.Step = cfg.ChainageStep
	}
	if mode, err := services.ParseColumnMode(cfg.InputMode); err == nil {
		opts.Mode = mode
	}
	if cfg.ProfilePath != "" {
		p, err := profile.Load(cfg.ProfilePath)
		if err != nil {
			log.Fatal(err)
		}
		if opts, err = p.Apply(opts); err != nil {
			log.Fatal(err)
		}
	}

	// Flags win over env and profile.
	if *modeFlag != "" {
		mode, err := services.ParseColumnMode(*modeFlag)
		if err != nil {
			log.Fatal(err)
		}
		opts.Mode = mode
	}
	if *stepFlag > 0 {
		opts.Step = *stepFlag
	}

	f, err := os.Open(*inPath)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	src, err := spreadsheet.SourceFor(*inPath, f)
	if err != nil {
		log.Fatal(err)
	}

	survey, err := services.ProcessSurvey(context.Background(), src, opts)
	if err != nil {
		log.Fatal(err)
	}

	if !survey.HasPlottableData() {
		log.Println("warning: every boundary value is undefined; no chart can be drawn")
	}

	if err := writeProfileCSV(survey, *outPath); err != nil {
		log.Fatal(err)
	}

	if *chartPath != "" {
		if err := writeChartPNG(survey, *chartPath); err != nil {
			log.Fatal(err)
		}
		log.Printf("chart written path=%s", *chartPath)
	}
}

// writeProfileCSV emits the output table schema: chainage, one
// passthrough thickness column per layer, one boundary column per
// layer. Undefined values become empty cells.
func writeProfileCSV(s *domain.Survey, path string) error {
	var out io.Writer = os.Stdout
	if path != "-" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("write profile csv: %w", err)
		}
		defer f.Close()
		out = f
	}

	w := csv.NewWriter(out)

	header := append([]string{"chainage"}, s.Layers.Names...)
	header = append(header, s.Layers.BoundaryColumns()...)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("write profile csv: header: %w", err)
	}

	for _, row := range s.Rows {
		rec := make([]string, 0, 1+2*len(s.Layers.Names))
		rec = append(rec, strconv.FormatFloat(row.Chainage, 'f', -1, 64))
		for _, c := range row.Thickness {
			rec = append(rec, formatCell(c))
		}
		for _, c := range row.Boundary {
			rec = append(rec, formatCell(c))
		}
		if err := w.Write(rec); err != nil {
			return fmt.Errorf("write profile csv: record: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("write profile csv: flush: %w", err)
	}

	return nil
}

func formatCell(c domain.Cell) string {
	if !c.Valid {
		return ""
	}
	return strconv.FormatFloat(c.Value, 'f', -1, 64)
}

func writeChartPNG(s *domain.Survey, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("write chart png: %w", err)
	}
	defer f.Close()

	renderer := chart.NewProfileRenderer()
	if err := renderer.Render(context.Background(), s, f); err != nil {
		return fmt.Errorf("write chart png: %w", err)
	}

	return nil
}
