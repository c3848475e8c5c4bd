/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"math"

	"github.com/notargets/gosimplex/manifold"
	"github.com/spf13/cobra"
)

// ManifoldCmd represents the manifold command
var ManifoldCmd = &cobra.Command{
	Use:   "manifold",
	Short: "Minimize the distance to a target point over two curved 2-manifolds",
	Long: `
Demonstrates constrained minimization by mapping: each manifold is a map from the unit square, which
is pulled back onto R^2 where the search is unconstrained. The best point over both manifolds wins.

gosimplex manifold --x 4 --y 3`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var x0, y0 float64
		if x0, err = cmd.Flags().GetFloat64("x"); err != nil {
			return
		}
		if y0, err = cmd.Flags().GetFloat64("y"); err != nil {
			return
		}
		f := func(x []float64) float64 {
			return (x[0]-x0)*(x[0]-x0) + (x[1]-y0)*(x[1]-y0)
		}
		var (
			x  []float64
			fx float64
		)
		if x, fx, err = manifold.Minimize(f, demoManifolds(), 2); err != nil {
			return
		}
		fmt.Printf("minimum %8.5f at [%8.5f %8.5f]\n", fx, x[0], x[1])
		return
	},
}

func demoManifolds() []manifold.Map {
	return []manifold.Map{
		func(u []float64) []float64 {
			return []float64{1 + 2*u[0] - math.Sin(2*u[1]), 2*math.Sin(u[0]) + 2*u[1]}
		},
		func(u []float64) []float64 {
			return []float64{1 + 2*u[0] - math.Cos(2*u[1]), 1 + 2*math.Cos(u[0]) + 2*u[1]}
		},
	}
}

func init() {
	rootCmd.AddCommand(ManifoldCmd)
	ManifoldCmd.Flags().Float64("x", 4, "x coordinate of the target point")
	ManifoldCmd.Flags().Float64("y", 3, "y coordinate of the target point")
}
