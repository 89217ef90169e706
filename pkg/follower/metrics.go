// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package follower

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const resultOK = "ok"

var (
	// Assembly metrics
	constructDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "path_follower_construct_duration_seconds",
			Help:    "Duration of driving configuration assembly in seconds",
			Buckets: []float64{.0001, .0005, .001, .005, .01, .05, .1},
		},
	)

	constructTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "path_follower_construct_total",
			Help: "Total number of driving configuration assemblies by result code",
		},
		[]string{"result"},
	)

	avoiderDefaultedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "path_follower_avoider_defaulted_total",
			Help: "Total number of assemblies that used the controller's default collision avoider",
		},
	)
)
