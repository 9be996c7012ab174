package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/philipparndt/gocircle/internal/construction"
	"github.com/philipparndt/gocircle/pkg/analysis"
	"github.com/philipparndt/gocircle/pkg/geometry"
	"github.com/spf13/cobra"
)

var (
	intersectCircle  geometry.Circle
	intersectSegment geometry.Segment
	intersectJSON    bool
)

var intersectCmd = &cobra.Command{
	Use:   "intersect",
	Short: "Intersect a circle with a line segment in model space",
	Long: `Compute where a line segment crosses a circle. Coordinates are in model
space: both axes run from -1 to 1 with the origin at the center and y up.
Points outside that square are not reported.`,
	Example: "  gocircle intersect --r 0.5 --ax -1 --ay 0.5 --bx 1 --by 0.5",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if intersectCircle.Radius < 0 {
			return fmt.Errorf("radius must not be negative, got %g", intersectCircle.Radius)
		}
		res := intersect(intersectCircle, intersectSegment, cfg.Tolerance)
		if intersectJSON {
			return res.writeJSON(cmd.OutOrStdout())
		}
		res.writeText(cmd.OutOrStdout())
		return nil
	},
}

func init() {
	flags := intersectCmd.Flags()
	flags.Float64Var(&intersectCircle.Center.X, "cx", 0, "circle center x")
	flags.Float64Var(&intersectCircle.Center.Y, "cy", 0, "circle center y")
	flags.Float64Var(&intersectCircle.Radius, "r", 0, "circle radius")
	flags.Float64Var(&intersectSegment.A.X, "ax", 0, "segment start x")
	flags.Float64Var(&intersectSegment.A.Y, "ay", 0, "segment start y")
	flags.Float64Var(&intersectSegment.B.X, "bx", 0, "segment end x")
	flags.Float64Var(&intersectSegment.B.Y, "by", 0, "segment end y")
	flags.BoolVar(&intersectJSON, "json", false, "print the result as JSON")
	rootCmd.AddCommand(intersectCmd)
}

type jsonPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type intersectResult struct {
	Circle        geometry.Circle
	Segment       geometry.Segment
	Tolerance     float64
	Intersections []geometry.Point2
	Analysis      *analysis.MeasurementResult
}

func intersect(c geometry.Circle, s geometry.Segment, tolerance float64) intersectResult {
	points := geometry.IntersectCircleSegment(c, s, tolerance, geometry.ModelBounds)
	return intersectResult{
		Circle:        c,
		Segment:       s,
		Tolerance:     tolerance,
		Intersections: points,
		Analysis:      analysis.AnalyzeConstruction(c, s, points),
	}
}

func (r intersectResult) writeText(w io.Writer) {
	fmt.Fprintln(w, construction.FormatCircle(r.Circle))
	fmt.Fprintln(w, construction.FormatSegment(r.Segment))
	fmt.Fprintln(w, construction.FormatIntersections(r.Intersections))

	fmt.Fprintln(w, "\nMeasurements:")
	for _, line := range r.Analysis.Lines() {
		fmt.Fprintf(w, "  %s\n", line)
	}
}

func (r intersectResult) writeJSON(w io.Writer) error {
	points := make([]jsonPoint, len(r.Intersections))
	for i, p := range r.Intersections {
		points[i] = jsonPoint{X: p.X, Y: p.Y}
	}

	out := struct {
		Center        jsonPoint   `json:"center"`
		Radius        float64     `json:"radius"`
		A             jsonPoint   `json:"a"`
		B             jsonPoint   `json:"b"`
		Tolerance     float64     `json:"tolerance"`
		Intersections []jsonPoint `json:"intersections"`
		Status        string      `json:"status"`
		Relation      string      `json:"relation"`
		ChordLength   float64     `json:"chord_length"`
		LineDistance  float64     `json:"line_distance"`
	}{
		Center:        jsonPoint{r.Circle.Center.X, r.Circle.Center.Y},
		Radius:        r.Circle.Radius,
		A:             jsonPoint{r.Segment.A.X, r.Segment.A.Y},
		B:             jsonPoint{r.Segment.B.X, r.Segment.B.Y},
		Tolerance:     r.Tolerance,
		Intersections: points,
		Status:        construction.FormatIntersections(r.Intersections),
		Relation:      string(r.Analysis.Relation),
		ChordLength:   r.Analysis.ChordLength,
		LineDistance:  r.Analysis.LineDistance,
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	return nil
}
