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

package ecm

import (
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/getamis/alice/logger"
)

// reportStats logs the mean and standard deviation of per-curve timing
// for a run, at debug level, so a caller tuning B1/B2 for a given n can
// see the actual cost per curve without instrumenting anything.
func reportStats(mode string, durations []time.Duration) {
	if len(durations) == 0 {
		return
	}
	samples := make([]float64, len(durations))
	for i, d := range durations {
		samples[i] = d.Seconds()
	}

	mean := stat.Mean(samples, nil)
	var stddev float64
	if len(samples) > 1 {
		stddev = stat.StdDev(samples, nil)
	}

	logger.Logger().Debug("Curve timing",
		"mode", mode,
		"curves", len(durations),
		"meanSeconds", mean,
		"stddevSeconds", stddev,
	)
}
