// Copyright © 2020 AMIS Technologies
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package main

import (
	"fmt"
	"math/big"
	"os"
	"runtime"

	"github.com/getamis/sirius/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/getamis/alice/crypto/ecm"
	alicelogger "github.com/getamis/alice/logger"
)

var configFile string

var cmd = &cobra.Command{
	Use:   "ecm",
	Short: "Factor an integer with the elliptic curve method",
	Long:  `ecm searches for a nontrivial factor of N using Lenstra's elliptic curve method.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return viper.BindPFlags(cmd.Flags())
	},
	RunE: run,
}

func init() {
	cmd.Flags().StringP("number", "n", "", "the number to factor")
	cmd.Flags().IntP("num_curves", "c", 0, "curve budget per thread, 0 means unbounded")
	cmd.Flags().Uint64("b1", 10000, "stage 1 bound")
	cmd.Flags().Uint64("b2", 0, "stage 2 bound, defaults to 100x b1")
	cmd.Flags().StringP("sigma", "s", "", "pin the curve parameter and run a single curve")
	cmd.Flags().Bool("single_threaded", false, "disable multi-threaded search")
	cmd.Flags().BoolP("verbose", "v", false, "log progress")
	cmd.Flags().BoolP("debug", "d", false, "log curve-by-curve detail")
	cmd.Flags().String("config", "", "config file path, replaces the number, num_curves, b1, b2 and sigma flags")
}

func run(cmd *cobra.Command, args []string) error {
	if viper.GetBool("verbose") || viper.GetBool("debug") {
		alicelogger.SetLogger(log.New())
	}

	c, err := loadConfig()
	if err != nil {
		log.Crit("Failed to read config file", "configFile", configFile, "err", err)
	}

	n, ok := new(big.Int).SetString(c.Number, 10)
	if !ok || n.Sign() <= 0 {
		fmt.Println("Wrong input")
		return nil
	}

	var maxCurves *int
	if c.NumCurves > 0 {
		maxCurves = &c.NumCurves
	}

	var sigma *big.Int
	if c.Sigma != "" {
		sigma, ok = new(big.Int).SetString(c.Sigma, 10)
		if !ok {
			fmt.Println("Wrong input")
			return nil
		}
	}

	threads := c.Threads
	if viper.GetBool("single_threaded") {
		threads = 1
	}
	if threads <= 0 {
		threads = runtime.NumCPU()
	}

	factor, found := ecm.Find(n, maxCurves, c.B1, c.B2, sigma, threads)
	if !found {
		fmt.Println("No factor found.")
		return nil
	}
	fmt.Printf("Found factor %s.\n", factor.String())
	return nil
}

func loadConfig() (*Config, error) {
	configFile = viper.GetString("config")
	if configFile != "" {
		return readConfigFile(configFile)
	}

	b1 := viper.GetUint64("b1")
	b2 := viper.GetUint64("b2")
	if b2 == 0 {
		b2 = 100 * b1
	}

	return &Config{
		Number:    viper.GetString("number"),
		NumCurves: viper.GetInt("num_curves"),
		B1:        b1,
		B2:        b2,
		Sigma:     viper.GetString("sigma"),
		Threads:   runtime.NumCPU(),
	}, nil
}

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(-1)
	}
}
