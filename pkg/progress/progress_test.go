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

package progress

import (
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestCounter_Fraction(t *testing.T) {
	tests := []struct {
		name      string
		total     int64
		completed int64
		want      float64
	}{
		{"no total", 0, 5, 0},
		{"none done", 8, 0, 0},
		{"half", 8, 4, 0.5},
		{"done", 8, 8, 1},
		{"overshoot", 8, 12, 1},
		{"negative", 8, -3, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCounter()
			c.SetTotal(tt.total)
			c.SetCompleted(tt.completed)
			assert.InDelta(t, tt.want, c.Fraction(), 1e-12)
		})
	}
}

func TestCounter_ConcurrentAdds(t *testing.T) {
	c := NewCounter()
	c.SetTotal(1000)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				c.AddCompleted(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(1000), c.Completed())
	assert.InDelta(t, 1.0, c.Fraction(), 1e-12)
}

func TestCounter_Observe(t *testing.T) {
	const name = "progress-test"
	t.Cleanup(func() { Forget(name) })

	c := NewCounter()
	c.SetTotal(24)
	c.AddCompleted(10)
	c.Observe(name)

	assert.InDelta(t, 24.0, testutil.ToFloat64(statesTotal.WithLabelValues(name)), 0)
	assert.InDelta(t, 10.0, testutil.ToFloat64(statesCompleted.WithLabelValues(name)), 0)

	c.AddCompleted(2)
	c.Observe(name)
	assert.InDelta(t, 12.0, testutil.ToFloat64(statesCompleted.WithLabelValues(name)), 0)
}
