package main

import (
	"fmt"
	"os"

	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/smasonuk/gosiebsp"
	"github.com/spf13/cobra"
)

var treeExport string

var treeCmd = &cobra.Command{
	Use:   "tree <file>",
	Short: "Build the BSP tree of a polygon file and print it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		polygons, err := gosiebsp.LoadPolygonsFile(args[0])
		if err != nil {
			return err
		}

		root := gosiebsp.NewBspTree(polygons)

		out := cmd.OutOrStdout()
		if err := root.Dump(out); err != nil {
			return err
		}

		stats := root.Stats()
		fmt.Fprintf(out, "\nnodes: %d  depth: %d  splits: %d  polygons: %d (from %d)\n",
			stats.Nodes, stats.Depth, stats.Splits, stats.Polygons, len(polygons))

		if treeExport != "" {
			return exportDXF(treeExport, root.Traverse(conf.NewCamera().Position))
		}
		return nil
	},
}

func init() {
	treeCmd.Flags().StringVar(&treeExport, "export", "", "write the split polygons to a .dxf file")
	rootCmd.AddCommand(treeCmd)
}

func exportDXF(path string, polygons []*gosiebsp.Polygon) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.New("creating dxf file failed").
			WithTag("path", path).
			Wrap(err)
	}

	if err := gosiebsp.WritePolygonsDXF(f, polygons); err != nil {
		f.Close()
		return errors.New("writing dxf file failed").
			WithTag("path", path).
			Wrap(err)
	}
	return f.Close()
}
