/*
 * Copyright (c) 2018 XLAB d.o.o
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package chain

import (
	"io"

	"github.com/charmbracelet/log"
)

// Option configures a (co)homology computation.
type Option func(*options)

type options struct {
	logger      *log.Logger
	concurrency int
	check       bool
}

func newOptions(opts []Option) *options {
	o := &options{
		logger:      log.NewWithOptions(io.Discard, log.Options{Prefix: "chain"}),
		concurrency: 1,
	}
	for _, opt := range opts {
		opt(o)
	}

	return o
}

// WithLogger makes the computation report every term it computes to
// logger at debug level. By default nothing is logged.
func WithLogger(logger *log.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithConcurrency computes up to n terms at the same time. Values
// below 1 are treated as 1. The result does not depend on n.
func WithConcurrency(n int) Option {
	return func(o *options) {
		if n < 1 {
			n = 1
		}
		o.concurrency = n
	}
}

// WithComplexCheck verifies that consecutive maps compose to zero
// before computing, failing with ErrNotComplex otherwise.
func WithComplexCheck() Option {
	return func(o *options) {
		o.check = true
	}
}
