package main

import (
	"github.com/aukilabs/go-tooling/pkg/logs"
	"github.com/smasonuk/gosiebsp"
	"github.com/smasonuk/gosiebsp/viewer"
	"github.com/spf13/cobra"
)

var (
	sphereOut      string
	sphereMaterial string
	sphereWindow   bool
)

var sphereCmd = &cobra.Command{
	Use:   "sphere",
	Short: "Render a Phong-lit sphere to an image or a window",
	Long: `Renders a sphere lit by a point light with the Phong reflection model.
The image is written to --out (.png or .qoi). With --window an interactive
window is opened instead: arrows move the light, T changes the material,
O toggles quality and N/M lower or raise the attenuation.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		name := conf.Sphere.Material
		if cmd.Flags().Changed("material") {
			name = sphereMaterial
		}
		material, err := gosiebsp.MaterialByName(name)
		if err != nil {
			return err
		}

		vp := conf.Viewport()
		quality := conf.SphereQuality()
		light := conf.NewLight()

		if sphereWindow {
			return viewer.RunSphere(conf.Window.Title, viewer.NewSphereGame(vp, quality, material, light))
		}

		img, err := gosiebsp.RenderSphere(vp.Width, vp.Height, quality, material, light)
		if err != nil {
			return err
		}
		if err := gosiebsp.SaveImage(sphereOut, img); err != nil {
			return err
		}

		logs.WithTag("path", sphereOut).
			WithTag("material", material.Name).
			Info("sphere written")
		return nil
	},
}

func init() {
	sphereCmd.Flags().StringVar(&sphereOut, "out", "sphere.png", "output image, .png or .qoi")
	sphereCmd.Flags().StringVar(&sphereMaterial, "material", "silver", "silver, paint, wood or plastic")
	sphereCmd.Flags().BoolVar(&sphereWindow, "window", false, "open an interactive window")
	rootCmd.AddCommand(sphereCmd)
}
