// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package stepvm provides a plain byte-code interpreter executing one frame
// at a time. Nested calls and creations suspend the running frame and are
// handed back to the caller as actions; every executed instruction is
// reported to the hooks passed to Run.
package stepvm

import (
	"fmt"

	"github.com/Fantom-foundation/Vigil/go/tosca"
)

// Registers the step VM as a possible interpreter implementation.
func init() {
	tosca.MustRegisterInterpreterFactory("stepvm", func(config any) (tosca.Interpreter, error) {
		if config == nil {
			return NewInterpreter(Config{})
		}
		c, ok := config.(Config)
		if !ok {
			return nil, fmt.Errorf("invalid configuration for stepvm: %T", config)
		}
		return NewInterpreter(c)
	})
}

// Config summarizes the options of the step VM.
type Config struct {
	// AnalysisCacheSize is the number of jump destination tables retained
	// between runs. Zero selects the default size, negative values disable
	// caching.
	AnalysisCacheSize int
}

const defaultAnalysisCacheSize = 1 << 12

// Interpreter is the step VM implementation of tosca.Interpreter.
type Interpreter struct {
	analyzer *analyzer
}

func NewInterpreter(config Config) (*Interpreter, error) {
	size := config.AnalysisCacheSize
	if size == 0 {
		size = defaultAnalysisCacheSize
	}
	analyzer, err := newAnalyzer(size)
	if err != nil {
		return nil, fmt.Errorf("failed to create code analyzer: %w", err)
	}
	return &Interpreter{analyzer: analyzer}, nil
}

func (i *Interpreter) NewRunner(params tosca.Parameters) (tosca.Runner, error) {
	if params.Revision > newestSupportedRevision {
		return nil, &tosca.ErrUnsupportedRevision{Revision: params.Revision}
	}
	return newRunner(params, i.analyzer.analyze(params.Code, params.CodeHash)), nil
}

const newestSupportedRevision = tosca.R13_Cancun
