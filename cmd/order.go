package main

import (
	"strconv"
	"strings"

	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/segmentio/encoding/json"
	"github.com/smasonuk/gosiebsp"
	"github.com/spf13/cobra"
)

var (
	orderCamera string
	orderMode   string
	orderJSON   bool
)

type orderOutput struct {
	Camera   [3]float64         `json:"camera"`
	Mode     string             `json:"mode"`
	Stats    gosiebsp.TreeStats `json:"stats"`
	Polygons [][][3]float64     `json:"polygons"`
}

var orderCmd = &cobra.Command{
	Use:   "order <file>",
	Short: "Print the polygons of a file in drawing order",
	Long: `Loads a polygon file (.txt or .dxf), builds the BSP tree and prints the
polygons in back to front order for a camera position. Split polygons are
printed as their fragments.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		mode, err := gosiebsp.ParseRenderMode(orderMode)
		if err != nil {
			return err
		}

		cam := conf.NewCamera()
		if orderCamera != "" {
			if cam.Position, err = parseVector(orderCamera); err != nil {
				return err
			}
		}

		polygons, err := gosiebsp.LoadPolygonsFile(args[0])
		if err != nil {
			return err
		}

		scene := gosiebsp.NewScene(polygons)
		ordered := scene.Order(cam, mode)

		out := cmd.OutOrStdout()
		if !orderJSON {
			return gosiebsp.WritePolygons(out, ordered)
		}

		res := orderOutput{
			Camera:   [3]float64{cam.Position.X, cam.Position.Y, cam.Position.Z},
			Mode:     string(mode),
			Stats:    scene.Root.Stats(),
			Polygons: make([][][3]float64, 0, len(ordered)),
		}
		for _, p := range ordered {
			vertices := make([][3]float64, 0, p.VertexCount())
			for _, v := range p.Vertices() {
				vertices = append(vertices, [3]float64{v.X, v.Y, v.Z})
			}
			res.Polygons = append(res.Polygons, vertices)
		}

		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	},
}

func init() {
	orderCmd.Flags().StringVar(&orderCamera, "camera", "", "camera position as x,y,z (default from config)")
	orderCmd.Flags().StringVar(&orderMode, "mode", string(gosiebsp.RenderModeBSP), "ordering: bsp or naive")
	orderCmd.Flags().BoolVar(&orderJSON, "json", false, "print json instead of polygon text")
	rootCmd.AddCommand(orderCmd)
}

// parseVector reads "x,y,z".
func parseVector(s string) (gosiebsp.Vector3, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return gosiebsp.Vector3{}, errors.New("vector needs 3 comma separated numbers").
			WithType(gosiebsp.ErrTypeParse).
			WithTag("value", s)
	}

	var xyz [3]float64
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return gosiebsp.Vector3{}, errors.New("bad vector component").
				WithType(gosiebsp.ErrTypeParse).
				WithTag("value", s).
				Wrap(err)
		}
		xyz[i] = v
	}
	return gosiebsp.NewVector3(xyz[0], xyz[1], xyz[2]), nil
}
