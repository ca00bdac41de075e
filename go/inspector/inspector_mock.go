// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package inspector is a generated GoMock package.
package inspector

import (
	reflect "reflect"

	tosca "github.com/Fantom-foundation/Vigil/go/tosca"
	gomock "go.uber.org/mock/gomock"
)

// MockInspector is a mock of Inspector interface.
type MockInspector struct {
	ctrl     *gomock.Controller
	recorder *MockInspectorMockRecorder
}

// MockInspectorMockRecorder is the mock recorder for MockInspector.
type MockInspectorMockRecorder struct {
	mock *MockInspector
}

// NewMockInspector creates a new mock instance.
func NewMockInspector(ctrl *gomock.Controller) *MockInspector {
	mock := &MockInspector{ctrl: ctrl}
	mock.recorder = &MockInspectorMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockInspector) EXPECT() *MockInspectorMockRecorder {
	return m.recorder
}

// Call mocks base method.
func (m *MockInspector) Call(arg0 *tosca.EvmContext, arg1 *tosca.CallInputs) *tosca.ExecutionResult {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Call", arg0, arg1)
	ret0, _ := ret[0].(*tosca.ExecutionResult)
	return ret0
}

// Call indicates an expected call of Call.
func (mr *MockInspectorMockRecorder) Call(arg0, arg1 any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Call", reflect.TypeOf((*MockInspector)(nil).Call), arg0, arg1)
}

// CallEnd mocks base method.
func (m *MockInspector) CallEnd(arg0 *tosca.EvmContext, arg1 tosca.ExecutionResult) tosca.ExecutionResult {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CallEnd", arg0, arg1)
	ret0, _ := ret[0].(tosca.ExecutionResult)
	return ret0
}

// CallEnd indicates an expected call of CallEnd.
func (mr *MockInspectorMockRecorder) CallEnd(arg0, arg1 any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CallEnd", reflect.TypeOf((*MockInspector)(nil).CallEnd), arg0, arg1)
}

// Create mocks base method.
func (m *MockInspector) Create(arg0 *tosca.EvmContext, arg1 *tosca.CreateInputs) *tosca.CreateOutcome {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", arg0, arg1)
	ret0, _ := ret[0].(*tosca.CreateOutcome)
	return ret0
}

// Create indicates an expected call of Create.
func (mr *MockInspectorMockRecorder) Create(arg0, arg1 any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockInspector)(nil).Create), arg0, arg1)
}

// CreateEnd mocks base method.
func (m *MockInspector) CreateEnd(arg0 *tosca.EvmContext, arg1 tosca.ExecutionResult, arg2 *tosca.Address) (tosca.ExecutionResult, *tosca.Address) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateEnd", arg0, arg1, arg2)
	ret0, _ := ret[0].(tosca.ExecutionResult)
	ret1, _ := ret[1].(*tosca.Address)
	return ret0, ret1
}

// CreateEnd indicates an expected call of CreateEnd.
func (mr *MockInspectorMockRecorder) CreateEnd(arg0, arg1, arg2 any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateEnd", reflect.TypeOf((*MockInspector)(nil).CreateEnd), arg0, arg1, arg2)
}

// InitializeInterp mocks base method.
func (m *MockInspector) InitializeInterp(arg0 *tosca.EvmContext, arg1 tosca.InterpreterState) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "InitializeInterp", arg0, arg1)
}

// InitializeInterp indicates an expected call of InitializeInterp.
func (mr *MockInspectorMockRecorder) InitializeInterp(arg0, arg1 any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "InitializeInterp", reflect.TypeOf((*MockInspector)(nil).InitializeInterp), arg0, arg1)
}

// Log mocks base method.
func (m *MockInspector) Log(arg0 *tosca.EvmContext, arg1 tosca.Address, arg2 []tosca.Hash, arg3 tosca.Data) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "Log", arg0, arg1, arg2, arg3)
}

// Log indicates an expected call of Log.
func (mr *MockInspectorMockRecorder) Log(arg0, arg1, arg2, arg3 any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Log", reflect.TypeOf((*MockInspector)(nil).Log), arg0, arg1, arg2, arg3)
}

// Step mocks base method.
func (m *MockInspector) Step(arg0 *tosca.EvmContext, arg1 tosca.InterpreterState) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "Step", arg0, arg1)
}

// Step indicates an expected call of Step.
func (mr *MockInspectorMockRecorder) Step(arg0, arg1 any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Step", reflect.TypeOf((*MockInspector)(nil).Step), arg0, arg1)
}

// StepEnd mocks base method.
func (m *MockInspector) StepEnd(arg0 *tosca.EvmContext, arg1 tosca.InterpreterState) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "StepEnd", arg0, arg1)
}

// StepEnd indicates an expected call of StepEnd.
func (mr *MockInspectorMockRecorder) StepEnd(arg0, arg1 any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "StepEnd", reflect.TypeOf((*MockInspector)(nil).StepEnd), arg0, arg1)
}
