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
	"strconv"

	"github.com/notargets/gosimplex/polynomial"
	"github.com/spf13/cobra"
)

// RootsCmd represents the roots command
var RootsCmd = &cobra.Command{
	Use:   "roots c0 c1 ... cn",
	Short: "Real roots of the polynomial c0 + c1·x + ... + cn·x^n",
	Long: `
Prints each real root with the residual of the polynomial there. Coefficients are given in
ascending order of power, separate them from the flags with -- when any is negative.

gosimplex roots -- -2 0 1`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		p := make(polynomial.Polynomial, len(args))
		for i, arg := range args {
			if p[i], err = strconv.ParseFloat(arg, 64); err != nil {
				return fmt.Errorf("coefficient %d: %w", i, err)
			}
		}
		roots := p.Roots()
		if len(roots) == 0 {
			fmt.Println("no real roots")
			return
		}
		for _, r := range roots {
			fmt.Printf("%18.12f\t%12.4e\n", r, p.Eval(r))
		}
		return
	},
}

func init() {
	rootCmd.AddCommand(RootsCmd)
}
