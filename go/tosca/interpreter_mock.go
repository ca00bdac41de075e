// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package tosca is a generated GoMock package.
package tosca

import (
	reflect "reflect"

	vm "github.com/Fantom-foundation/Vigil/go/tosca/vm"
	uint256 "github.com/holiman/uint256"
	gomock "go.uber.org/mock/gomock"
)

// MockInterpreter is a mock of Interpreter interface.
type MockInterpreter struct {
	ctrl     *gomock.Controller
	recorder *MockInterpreterMockRecorder
}

// MockInterpreterMockRecorder is the mock recorder for MockInterpreter.
type MockInterpreterMockRecorder struct {
	mock *MockInterpreter
}

// NewMockInterpreter creates a new mock instance.
func NewMockInterpreter(ctrl *gomock.Controller) *MockInterpreter {
	mock := &MockInterpreter{ctrl: ctrl}
	mock.recorder = &MockInterpreterMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockInterpreter) EXPECT() *MockInterpreterMockRecorder {
	return m.recorder
}

// NewRunner mocks base method.
func (m *MockInterpreter) NewRunner(arg0 Parameters) (Runner, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "NewRunner", arg0)
	ret0, _ := ret[0].(Runner)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// NewRunner indicates an expected call of NewRunner.
func (mr *MockInterpreterMockRecorder) NewRunner(arg0 any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "NewRunner", reflect.TypeOf((*MockInterpreter)(nil).NewRunner), arg0)
}

// MockRunner is a mock of Runner interface.
type MockRunner struct {
	ctrl     *gomock.Controller
	recorder *MockRunnerMockRecorder
}

// MockRunnerMockRecorder is the mock recorder for MockRunner.
type MockRunnerMockRecorder struct {
	mock *MockRunner
}

// NewMockRunner creates a new mock instance.
func NewMockRunner(ctrl *gomock.Controller) *MockRunner {
	mock := &MockRunner{ctrl: ctrl}
	mock.recorder = &MockRunnerMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockRunner) EXPECT() *MockRunnerMockRecorder {
	return m.recorder
}

// Caller mocks base method.
func (m *MockRunner) Caller() Address {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Caller")
	ret0, _ := ret[0].(Address)
	return ret0
}

// Caller indicates an expected call of Caller.
func (mr *MockRunnerMockRecorder) Caller() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Caller", reflect.TypeOf((*MockRunner)(nil).Caller))
}

// Contract mocks base method.
func (m *MockRunner) Contract() Address {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Contract")
	ret0, _ := ret[0].(Address)
	return ret0
}

// Contract indicates an expected call of Contract.
func (mr *MockRunnerMockRecorder) Contract() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Contract", reflect.TypeOf((*MockRunner)(nil).Contract))
}

// CurrentOpCode mocks base method.
func (m *MockRunner) CurrentOpCode() vm.OpCode {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CurrentOpCode")
	ret0, _ := ret[0].(vm.OpCode)
	return ret0
}

// CurrentOpCode indicates an expected call of CurrentOpCode.
func (mr *MockRunnerMockRecorder) CurrentOpCode() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CurrentOpCode", reflect.TypeOf((*MockRunner)(nil).CurrentOpCode))
}

// Depth mocks base method.
func (m *MockRunner) Depth() int {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Depth")
	ret0, _ := ret[0].(int)
	return ret0
}

// Depth indicates an expected call of Depth.
func (mr *MockRunnerMockRecorder) Depth() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Depth", reflect.TypeOf((*MockRunner)(nil).Depth))
}

// Gas mocks base method.
func (m *MockRunner) Gas() *GasCounter {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Gas")
	ret0, _ := ret[0].(*GasCounter)
	return ret0
}

// Gas indicates an expected call of Gas.
func (mr *MockRunnerMockRecorder) Gas() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Gas", reflect.TypeOf((*MockRunner)(nil).Gas))
}

// InsertCallResult mocks base method.
func (m *MockRunner) InsertCallResult(arg0 ExecutionResult) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "InsertCallResult", arg0)
}

// InsertCallResult indicates an expected call of InsertCallResult.
func (mr *MockRunnerMockRecorder) InsertCallResult(arg0 any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "InsertCallResult", reflect.TypeOf((*MockRunner)(nil).InsertCallResult), arg0)
}

// InsertCreateResult mocks base method.
func (m *MockRunner) InsertCreateResult(arg0 ExecutionResult, arg1 *Address) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "InsertCreateResult", arg0, arg1)
}

// InsertCreateResult indicates an expected call of InsertCreateResult.
func (mr *MockRunnerMockRecorder) InsertCreateResult(arg0, arg1 any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "InsertCreateResult", reflect.TypeOf((*MockRunner)(nil).InsertCreateResult), arg0, arg1)
}

// IsStatic mocks base method.
func (m *MockRunner) IsStatic() bool {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "IsStatic")
	ret0, _ := ret[0].(bool)
	return ret0
}

// IsStatic indicates an expected call of IsStatic.
func (mr *MockRunnerMockRecorder) IsStatic() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "IsStatic", reflect.TypeOf((*MockRunner)(nil).IsStatic))
}

// Memory mocks base method.
func (m *MockRunner) Memory() []byte {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Memory")
	ret0, _ := ret[0].([]byte)
	return ret0
}

// Memory indicates an expected call of Memory.
func (mr *MockRunnerMockRecorder) Memory() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Memory", reflect.TypeOf((*MockRunner)(nil).Memory))
}

// ProgramCounter mocks base method.
func (m *MockRunner) ProgramCounter() uint64 {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ProgramCounter")
	ret0, _ := ret[0].(uint64)
	return ret0
}

// ProgramCounter indicates an expected call of ProgramCounter.
func (mr *MockRunnerMockRecorder) ProgramCounter() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ProgramCounter", reflect.TypeOf((*MockRunner)(nil).ProgramCounter))
}

// Run mocks base method.
func (m *MockRunner) Run(arg0 *EvmContext, arg1 Hooks) Action {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Run", arg0, arg1)
	ret0, _ := ret[0].(Action)
	return ret0
}

// Run indicates an expected call of Run.
func (mr *MockRunnerMockRecorder) Run(arg0, arg1 any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Run", reflect.TypeOf((*MockRunner)(nil).Run), arg0, arg1)
}

// Stack mocks base method.
func (m *MockRunner) Stack() []uint256.Int {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Stack")
	ret0, _ := ret[0].([]uint256.Int)
	return ret0
}

// Stack indicates an expected call of Stack.
func (mr *MockRunnerMockRecorder) Stack() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Stack", reflect.TypeOf((*MockRunner)(nil).Stack))
}

// MockHooks is a mock of Hooks interface.
type MockHooks struct {
	ctrl     *gomock.Controller
	recorder *MockHooksMockRecorder
}

// MockHooksMockRecorder is the mock recorder for MockHooks.
type MockHooksMockRecorder struct {
	mock *MockHooks
}

// NewMockHooks creates a new mock instance.
func NewMockHooks(ctrl *gomock.Controller) *MockHooks {
	mock := &MockHooks{ctrl: ctrl}
	mock.recorder = &MockHooksMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockHooks) EXPECT() *MockHooksMockRecorder {
	return m.recorder
}

// OnLog mocks base method.
func (m *MockHooks) OnLog(arg0 *EvmContext, arg1 Log) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "OnLog", arg0, arg1)
}

// OnLog indicates an expected call of OnLog.
func (mr *MockHooksMockRecorder) OnLog(arg0, arg1 any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "OnLog", reflect.TypeOf((*MockHooks)(nil).OnLog), arg0, arg1)
}

// OnStep mocks base method.
func (m *MockHooks) OnStep(arg0 *EvmContext, arg1 InterpreterState) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "OnStep", arg0, arg1)
}

// OnStep indicates an expected call of OnStep.
func (mr *MockHooksMockRecorder) OnStep(arg0, arg1 any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "OnStep", reflect.TypeOf((*MockHooks)(nil).OnStep), arg0, arg1)
}

// OnStepEnd mocks base method.
func (m *MockHooks) OnStepEnd(arg0 *EvmContext, arg1 InterpreterState) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "OnStepEnd", arg0, arg1)
}

// OnStepEnd indicates an expected call of OnStepEnd.
func (mr *MockHooksMockRecorder) OnStepEnd(arg0, arg1 any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "OnStepEnd", reflect.TypeOf((*MockHooks)(nil).OnStepEnd), arg0, arg1)
}

// MockInterpreterState is a mock of InterpreterState interface.
type MockInterpreterState struct {
	ctrl     *gomock.Controller
	recorder *MockInterpreterStateMockRecorder
}

// MockInterpreterStateMockRecorder is the mock recorder for MockInterpreterState.
type MockInterpreterStateMockRecorder struct {
	mock *MockInterpreterState
}

// NewMockInterpreterState creates a new mock instance.
func NewMockInterpreterState(ctrl *gomock.Controller) *MockInterpreterState {
	mock := &MockInterpreterState{ctrl: ctrl}
	mock.recorder = &MockInterpreterStateMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockInterpreterState) EXPECT() *MockInterpreterStateMockRecorder {
	return m.recorder
}

// Caller mocks base method.
func (m *MockInterpreterState) Caller() Address {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Caller")
	ret0, _ := ret[0].(Address)
	return ret0
}

// Caller indicates an expected call of Caller.
func (mr *MockInterpreterStateMockRecorder) Caller() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Caller", reflect.TypeOf((*MockInterpreterState)(nil).Caller))
}

// Contract mocks base method.
func (m *MockInterpreterState) Contract() Address {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Contract")
	ret0, _ := ret[0].(Address)
	return ret0
}

// Contract indicates an expected call of Contract.
func (mr *MockInterpreterStateMockRecorder) Contract() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Contract", reflect.TypeOf((*MockInterpreterState)(nil).Contract))
}

// CurrentOpCode mocks base method.
func (m *MockInterpreterState) CurrentOpCode() vm.OpCode {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CurrentOpCode")
	ret0, _ := ret[0].(vm.OpCode)
	return ret0
}

// CurrentOpCode indicates an expected call of CurrentOpCode.
func (mr *MockInterpreterStateMockRecorder) CurrentOpCode() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CurrentOpCode", reflect.TypeOf((*MockInterpreterState)(nil).CurrentOpCode))
}

// Depth mocks base method.
func (m *MockInterpreterState) Depth() int {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Depth")
	ret0, _ := ret[0].(int)
	return ret0
}

// Depth indicates an expected call of Depth.
func (mr *MockInterpreterStateMockRecorder) Depth() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Depth", reflect.TypeOf((*MockInterpreterState)(nil).Depth))
}

// Gas mocks base method.
func (m *MockInterpreterState) Gas() *GasCounter {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Gas")
	ret0, _ := ret[0].(*GasCounter)
	return ret0
}

// Gas indicates an expected call of Gas.
func (mr *MockInterpreterStateMockRecorder) Gas() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Gas", reflect.TypeOf((*MockInterpreterState)(nil).Gas))
}

// IsStatic mocks base method.
func (m *MockInterpreterState) IsStatic() bool {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "IsStatic")
	ret0, _ := ret[0].(bool)
	return ret0
}

// IsStatic indicates an expected call of IsStatic.
func (mr *MockInterpreterStateMockRecorder) IsStatic() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "IsStatic", reflect.TypeOf((*MockInterpreterState)(nil).IsStatic))
}

// Memory mocks base method.
func (m *MockInterpreterState) Memory() []byte {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Memory")
	ret0, _ := ret[0].([]byte)
	return ret0
}

// Memory indicates an expected call of Memory.
func (mr *MockInterpreterStateMockRecorder) Memory() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Memory", reflect.TypeOf((*MockInterpreterState)(nil).Memory))
}

// ProgramCounter mocks base method.
func (m *MockInterpreterState) ProgramCounter() uint64 {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ProgramCounter")
	ret0, _ := ret[0].(uint64)
	return ret0
}

// ProgramCounter indicates an expected call of ProgramCounter.
func (mr *MockInterpreterStateMockRecorder) ProgramCounter() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ProgramCounter", reflect.TypeOf((*MockInterpreterState)(nil).ProgramCounter))
}

// Stack mocks base method.
func (m *MockInterpreterState) Stack() []uint256.Int {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Stack")
	ret0, _ := ret[0].([]uint256.Int)
	return ret0
}

// Stack indicates an expected call of Stack.
func (mr *MockInterpreterStateMockRecorder) Stack() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Stack", reflect.TypeOf((*MockInterpreterState)(nil).Stack))
}

// MockTransactionContext is a mock of TransactionContext interface.
type MockTransactionContext struct {
	ctrl     *gomock.Controller
	recorder *MockTransactionContextMockRecorder
}

// MockTransactionContextMockRecorder is the mock recorder for MockTransactionContext.
type MockTransactionContextMockRecorder struct {
	mock *MockTransactionContext
}

// NewMockTransactionContext creates a new mock instance.
func NewMockTransactionContext(ctrl *gomock.Controller) *MockTransactionContext {
	mock := &MockTransactionContext{ctrl: ctrl}
	mock.recorder = &MockTransactionContextMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockTransactionContext) EXPECT() *MockTransactionContextMockRecorder {
	return m.recorder
}

// AccountExists mocks base method.
func (m *MockTransactionContext) AccountExists(arg0 Address) bool {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "AccountExists", arg0)
	ret0, _ := ret[0].(bool)
	return ret0
}

// AccountExists indicates an expected call of AccountExists.
func (mr *MockTransactionContextMockRecorder) AccountExists(arg0 any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "AccountExists", reflect.TypeOf((*MockTransactionContext)(nil).AccountExists), arg0)
}

// CreateSnapshot mocks base method.
func (m *MockTransactionContext) CreateSnapshot() Snapshot {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateSnapshot")
	ret0, _ := ret[0].(Snapshot)
	return ret0
}

// CreateSnapshot indicates an expected call of CreateSnapshot.
func (mr *MockTransactionContextMockRecorder) CreateSnapshot() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateSnapshot", reflect.TypeOf((*MockTransactionContext)(nil).CreateSnapshot))
}

// EmitLog mocks base method.
func (m *MockTransactionContext) EmitLog(arg0 Log) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "EmitLog", arg0)
}

// EmitLog indicates an expected call of EmitLog.
func (mr *MockTransactionContextMockRecorder) EmitLog(arg0 any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "EmitLog", reflect.TypeOf((*MockTransactionContext)(nil).EmitLog), arg0)
}

// GetBalance mocks base method.
func (m *MockTransactionContext) GetBalance(arg0 Address) Value {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetBalance", arg0)
	ret0, _ := ret[0].(Value)
	return ret0
}

// GetBalance indicates an expected call of GetBalance.
func (mr *MockTransactionContextMockRecorder) GetBalance(arg0 any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetBalance", reflect.TypeOf((*MockTransactionContext)(nil).GetBalance), arg0)
}

// GetBlockHash mocks base method.
func (m *MockTransactionContext) GetBlockHash(arg0 int64) Hash {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetBlockHash", arg0)
	ret0, _ := ret[0].(Hash)
	return ret0
}

// GetBlockHash indicates an expected call of GetBlockHash.
func (mr *MockTransactionContextMockRecorder) GetBlockHash(arg0 any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetBlockHash", reflect.TypeOf((*MockTransactionContext)(nil).GetBlockHash), arg0)
}

// GetCode mocks base method.
func (m *MockTransactionContext) GetCode(arg0 Address) Code {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetCode", arg0)
	ret0, _ := ret[0].(Code)
	return ret0
}

// GetCode indicates an expected call of GetCode.
func (mr *MockTransactionContextMockRecorder) GetCode(arg0 any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetCode", reflect.TypeOf((*MockTransactionContext)(nil).GetCode), arg0)
}

// GetCodeHash mocks base method.
func (m *MockTransactionContext) GetCodeHash(arg0 Address) Hash {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetCodeHash", arg0)
	ret0, _ := ret[0].(Hash)
	return ret0
}

// GetCodeHash indicates an expected call of GetCodeHash.
func (mr *MockTransactionContextMockRecorder) GetCodeHash(arg0 any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetCodeHash", reflect.TypeOf((*MockTransactionContext)(nil).GetCodeHash), arg0)
}

// GetCodeSize mocks base method.
func (m *MockTransactionContext) GetCodeSize(arg0 Address) int {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetCodeSize", arg0)
	ret0, _ := ret[0].(int)
	return ret0
}

// GetCodeSize indicates an expected call of GetCodeSize.
func (mr *MockTransactionContextMockRecorder) GetCodeSize(arg0 any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetCodeSize", reflect.TypeOf((*MockTransactionContext)(nil).GetCodeSize), arg0)
}

// GetLogs mocks base method.
func (m *MockTransactionContext) GetLogs() []Log {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetLogs")
	ret0, _ := ret[0].([]Log)
	return ret0
}

// GetLogs indicates an expected call of GetLogs.
func (mr *MockTransactionContextMockRecorder) GetLogs() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetLogs", reflect.TypeOf((*MockTransactionContext)(nil).GetLogs))
}

// GetNonce mocks base method.
func (m *MockTransactionContext) GetNonce(arg0 Address) uint64 {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetNonce", arg0)
	ret0, _ := ret[0].(uint64)
	return ret0
}

// GetNonce indicates an expected call of GetNonce.
func (mr *MockTransactionContextMockRecorder) GetNonce(arg0 any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetNonce", reflect.TypeOf((*MockTransactionContext)(nil).GetNonce), arg0)
}

// GetStorage mocks base method.
func (m *MockTransactionContext) GetStorage(arg0 Address, arg1 Key) Word {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetStorage", arg0, arg1)
	ret0, _ := ret[0].(Word)
	return ret0
}

// GetStorage indicates an expected call of GetStorage.
func (mr *MockTransactionContextMockRecorder) GetStorage(arg0, arg1 any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetStorage", reflect.TypeOf((*MockTransactionContext)(nil).GetStorage), arg0, arg1)
}

// RestoreSnapshot mocks base method.
func (m *MockTransactionContext) RestoreSnapshot(arg0 Snapshot) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "RestoreSnapshot", arg0)
}

// RestoreSnapshot indicates an expected call of RestoreSnapshot.
func (mr *MockTransactionContextMockRecorder) RestoreSnapshot(arg0 any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RestoreSnapshot", reflect.TypeOf((*MockTransactionContext)(nil).RestoreSnapshot), arg0)
}

// SetBalance mocks base method.
func (m *MockTransactionContext) SetBalance(arg0 Address, arg1 Value) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "SetBalance", arg0, arg1)
}

// SetBalance indicates an expected call of SetBalance.
func (mr *MockTransactionContextMockRecorder) SetBalance(arg0, arg1 any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SetBalance", reflect.TypeOf((*MockTransactionContext)(nil).SetBalance), arg0, arg1)
}

// SetCode mocks base method.
func (m *MockTransactionContext) SetCode(arg0 Address, arg1 Code) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "SetCode", arg0, arg1)
}

// SetCode indicates an expected call of SetCode.
func (mr *MockTransactionContextMockRecorder) SetCode(arg0, arg1 any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SetCode", reflect.TypeOf((*MockTransactionContext)(nil).SetCode), arg0, arg1)
}

// SetNonce mocks base method.
func (m *MockTransactionContext) SetNonce(arg0 Address, arg1 uint64) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "SetNonce", arg0, arg1)
}

// SetNonce indicates an expected call of SetNonce.
func (mr *MockTransactionContextMockRecorder) SetNonce(arg0, arg1 any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SetNonce", reflect.TypeOf((*MockTransactionContext)(nil).SetNonce), arg0, arg1)
}

// SetStorage mocks base method.
func (m *MockTransactionContext) SetStorage(arg0 Address, arg1 Key, arg2 Word) StorageStatus {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SetStorage", arg0, arg1, arg2)
	ret0, _ := ret[0].(StorageStatus)
	return ret0
}

// SetStorage indicates an expected call of SetStorage.
func (mr *MockTransactionContextMockRecorder) SetStorage(arg0, arg1, arg2 any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SetStorage", reflect.TypeOf((*MockTransactionContext)(nil).SetStorage), arg0, arg1, arg2)
}
