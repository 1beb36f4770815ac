package main

import (
	"github.com/smasonuk/gosiebsp"
	"github.com/smasonuk/gosiebsp/viewer"
	"github.com/spf13/cobra"
)

var viewCmd = &cobra.Command{
	Use:   "view [file]",
	Short: "Open a window and walk through a polygon scene",
	Long: `Opens a window showing the polygons of a file, drawn back to front.
Without a file a pair of boxes is shown.

  W/S        forward / back
  A/D        strafe left / right
  Space/Shift up / down
  arrows     pitch and yaw
  Q/E        roll
  N/M        widen / narrow the field of view
  B          switch between bsp and naive ordering
  F          fill polygons
  L          flat shading
  O          outline around filled polygons`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		polygons := gosiebsp.DemoBoxes()
		if len(args) == 1 {
			var err error
			if polygons, err = gosiebsp.LoadPolygonsFile(args[0]); err != nil {
				return err
			}
		}

		opts, err := viewer.OptionsFromConfig(conf)
		if err != nil {
			return err
		}
		return viewer.Run(gosiebsp.NewScene(polygons), opts)
	},
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
