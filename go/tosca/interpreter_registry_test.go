// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package tosca

import (
	"testing"

	"go.uber.org/mock/gomock"
	"golang.org/x/exp/slices"
)

func TestInterpreterRegistry_NameCollisionsAreDetected(t *testing.T) {
	const name = "something-just-for-this-test"
	factory := func(any) (Interpreter, error) {
		return nil, nil
	}
	if err := RegisterInterpreterFactory(name, factory); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := RegisterInterpreterFactory(name, factory); err == nil {
		t.Fatalf("expected error, got nil")
	}
}

func TestInterpreterRegistry_NilFactoriesAreRejected(t *testing.T) {
	if err := RegisterInterpreterFactory("something", nil); err == nil {
		t.Fatalf("expected error, got nil")
	}
}

func TestInterpreterRegistry_LookupIsCaseInsensitive(t *testing.T) {
	ctrl := gomock.NewController(t)
	interpreter := NewMockInterpreter(ctrl)

	var seen any
	MustRegisterInterpreterFactory("Case-Test", func(config any) (Interpreter, error) {
		seen = config
		return interpreter, nil
	})

	got, err := NewInterpreter("CASE-test", "config")
	if err != nil {
		t.Fatalf("failed to create interpreter: %v", err)
	}
	if got != interpreter {
		t.Errorf("unexpected interpreter instance")
	}
	if seen != "config" {
		t.Errorf("configuration was not forwarded, got %v", seen)
	}
	if !slices.Contains(GetAllRegisteredInterpreters(), "case-test") {
		t.Errorf("registered interpreter is not listed: %v", GetAllRegisteredInterpreters())
	}
}

func TestInterpreterRegistry_UnknownNamesAndExtraConfigsAreRejected(t *testing.T) {
	if _, err := NewInterpreter("not-registered"); err == nil {
		t.Errorf("expected lookup of unknown interpreter to fail")
	}
	MustRegisterInterpreterFactory("config-test", func(any) (Interpreter, error) {
		return nil, nil
	})
	if _, err := NewInterpreter("config-test", 1, 2); err == nil {
		t.Errorf("expected too many configurations to be rejected")
	}
}
