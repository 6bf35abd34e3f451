// Command gerona-plan runs the course planner against a JSON course
// description and prints the resulting pose sequence.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"go.viam.com/rdk/logging"

	"github.com/jfrascon/gerona/appendix"
	"github.com/jfrascon/gerona/course"
	"github.com/jfrascon/gerona/courseplan"
	"github.com/jfrascon/gerona/geometry"
	"github.com/jfrascon/gerona/occupancy"
	"github.com/jfrascon/gerona/planconfig"
)

var logger = logging.NewLogger("gerona-plan")

// zapLogger builds the CLI's logger on top of a zap production config
// instead of rdk's own logger, for operators who pipe gerona-plan's stderr
// into a JSON log aggregator that already expects zap's encoding.
func zapLogger() logging.Logger {
	return logging.FromZapCompatible(zap.Must(zap.NewProduction()).Sugar())
}

func main() {
	app := &cli.App{
		Name:  "gerona-plan",
		Usage: "plan a path across a course network between two poses",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "course", Required: true, Usage: "path to a course network JSON file"},
			&cli.StringFlag{Name: "config", Usage: "path to a planner configuration JSON file (defaults applied otherwise)"},
			&cli.Float64SliceFlag{Name: "start", Required: true, Usage: "start pose as x,y,heading"},
			&cli.Float64SliceFlag{Name: "end", Required: true, Usage: "end pose as x,y,heading"},
			&cli.BoolFlag{Name: "json-logs", Usage: "emit zap-encoded JSON logs instead of rdk's default text format"},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		logger.Errorf("gerona-plan: %v", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	if c.Bool("json-logs") {
		logger = zapLogger()
	}

	courseData, err := os.ReadFile(c.String("course"))
	if err != nil {
		return fmt.Errorf("reading course file: %w", err)
	}
	graph, err := course.LoadGraphJSON(courseData)
	if err != nil {
		return fmt.Errorf("loading course: %w", err)
	}

	cfg := planconfig.Default()
	if path := c.String("config"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading config file: %w", err)
		}
		cfg, err = planconfig.FromJSON(data)
		if err != nil {
			return fmt.Errorf("parsing config file: %w", err)
		}
	}

	start, err := poseFromFlag(c, "start")
	if err != nil {
		return err
	}
	end, err := poseFromFlag(c, "end")
	if err != nil {
		return err
	}

	resolver := appendix.NewOrderedResolver(logger, appendix.NewGraphAnchoredResolver(graph, 5))
	mapProvider := occupancy.NewStaticProvider(&occupancy.Grid{Width: 1, Height: 1, Resolution: 1, Cells: []int8{0}})

	planner := courseplan.NewPlanner(logger, graph, mapProvider, resolver, cfg)

	poses, err := planner.FindPath(context.Background(), start.ToSpatialMath(), end.ToSpatialMath())
	if err != nil {
		return fmt.Errorf("planning path: %w", err)
	}

	out := make([]geometry.Pose, len(poses))
	for i, p := range poses {
		out[i] = geometry.FromSpatialMath(p)
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func poseFromFlag(c *cli.Context, name string) (geometry.Pose, error) {
	vals := c.Float64Slice(name)
	if len(vals) != 3 {
		return geometry.Pose{}, fmt.Errorf("--%s requires exactly 3 values: x,y,heading", name)
	}
	return geometry.NewPose(geometry.NewPoint(vals[0], vals[1]), vals[2]), nil
}
