// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package store

import (
	reflect "reflect"

	common "github.com/symexec/memstore/go/common"
	gomock "go.uber.org/mock/gomock"
)

// MockStore is a mock of Store interface.
type MockStore[I common.Identifier, V any] struct {
	ctrl     *gomock.Controller
	recorder *MockStoreMockRecorder[I, V]
}

// MockStoreMockRecorder is the mock recorder for MockStore.
type MockStoreMockRecorder[I common.Identifier, V any] struct {
	mock *MockStore[I, V]
}

// NewMockStore creates a new mock instance.
func NewMockStore[I common.Identifier, V any](ctrl *gomock.Controller) *MockStore[I, V] {
	mock := &MockStore[I, V]{ctrl: ctrl}
	mock.recorder = &MockStoreMockRecorder[I, V]{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockStore[I, V]) EXPECT() *MockStoreMockRecorder[I, V] {
	return m.recorder
}

// At mocks base method.
func (m *MockStore[I, V]) At(key I) V {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "At", key)
	ret0, _ := ret[0].(V)
	return ret0
}

// At indicates an expected call of At.
func (mr *MockStoreMockRecorder[I, V]) At(key any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "At", reflect.TypeOf((*MockStore[I, V])(nil).At), key)
}

// Begin mocks base method.
func (m *MockStore[I, V]) Begin() Iterator[I, V] {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Begin")
	ret0, _ := ret[0].(Iterator[I, V])
	return ret0
}

// Begin indicates an expected call of Begin.
func (mr *MockStoreMockRecorder[I, V]) Begin() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Begin", reflect.TypeOf((*MockStore[I, V])(nil).Begin))
}

// Clear mocks base method.
func (m *MockStore[I, V]) Clear() {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "Clear")
}

// Clear indicates an expected call of Clear.
func (mr *MockStoreMockRecorder[I, V]) Clear() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Clear", reflect.TypeOf((*MockStore[I, V])(nil).Clear))
}

// Clone mocks base method.
func (m *MockStore[I, V]) Clone() Store[I, V] {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Clone")
	ret0, _ := ret[0].(Store[I, V])
	return ret0
}

// Clone indicates an expected call of Clone.
func (mr *MockStoreMockRecorder[I, V]) Clone() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Clone", reflect.TypeOf((*MockStore[I, V])(nil).Clone))
}

// Contains mocks base method.
func (m *MockStore[I, V]) Contains(key I) bool {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Contains", key)
	ret0, _ := ret[0].(bool)
	return ret0
}

// Contains indicates an expected call of Contains.
func (mr *MockStoreMockRecorder[I, V]) Contains(key any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Contains", reflect.TypeOf((*MockStore[I, V])(nil).Contains), key)
}

// Empty mocks base method.
func (m *MockStore[I, V]) Empty() bool {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Empty")
	ret0, _ := ret[0].(bool)
	return ret0
}

// Empty indicates an expected call of Empty.
func (mr *MockStoreMockRecorder[I, V]) Empty() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Empty", reflect.TypeOf((*MockStore[I, V])(nil).Empty))
}

// End mocks base method.
func (m *MockStore[I, V]) End() Iterator[I, V] {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "End")
	ret0, _ := ret[0].(Iterator[I, V])
	return ret0
}

// End indicates an expected call of End.
func (mr *MockStoreMockRecorder[I, V]) End() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "End", reflect.TypeOf((*MockStore[I, V])(nil).End))
}

// GetMemoryFootprint mocks base method.
func (m *MockStore[I, V]) GetMemoryFootprint() *common.MemoryFootprint {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetMemoryFootprint")
	ret0, _ := ret[0].(*common.MemoryFootprint)
	return ret0
}

// GetMemoryFootprint indicates an expected call of GetMemoryFootprint.
func (mr *MockStoreMockRecorder[I, V]) GetMemoryFootprint() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetMemoryFootprint", reflect.TypeOf((*MockStore[I, V])(nil).GetMemoryFootprint))
}

// Lookup mocks base method.
func (m *MockStore[I, V]) Lookup(key I) (V, bool) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Lookup", key)
	ret0, _ := ret[0].(V)
	ret1, _ := ret[1].(bool)
	return ret0, ret1
}

// Lookup indicates an expected call of Lookup.
func (mr *MockStoreMockRecorder[I, V]) Lookup(key any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Lookup", reflect.TypeOf((*MockStore[I, V])(nil).Lookup), key)
}

// Remove mocks base method.
func (m *MockStore[I, V]) Remove(key I) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "Remove", key)
}

// Remove indicates an expected call of Remove.
func (mr *MockStoreMockRecorder[I, V]) Remove(key any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Remove", reflect.TypeOf((*MockStore[I, V])(nil).Remove), key)
}

// Set mocks base method.
func (m *MockStore[I, V]) Set(key I, value V) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "Set", key, value)
}

// Set indicates an expected call of Set.
func (mr *MockStoreMockRecorder[I, V]) Set(key, value any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Set", reflect.TypeOf((*MockStore[I, V])(nil).Set), key, value)
}

// Size mocks base method.
func (m *MockStore[I, V]) Size() int {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Size")
	ret0, _ := ret[0].(int)
	return ret0
}

// Size indicates an expected call of Size.
func (mr *MockStoreMockRecorder[I, V]) Size() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Size", reflect.TypeOf((*MockStore[I, V])(nil).Size))
}

// MockFactory is a mock of Factory interface.
type MockFactory[I common.Identifier, V any] struct {
	ctrl     *gomock.Controller
	recorder *MockFactoryMockRecorder[I, V]
}

// MockFactoryMockRecorder is the mock recorder for MockFactory.
type MockFactoryMockRecorder[I common.Identifier, V any] struct {
	mock *MockFactory[I, V]
}

// NewMockFactory creates a new mock instance.
func NewMockFactory[I common.Identifier, V any](ctrl *gomock.Controller) *MockFactory[I, V] {
	mock := &MockFactory[I, V]{ctrl: ctrl}
	mock.recorder = &MockFactoryMockRecorder[I, V]{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockFactory[I, V]) EXPECT() *MockFactoryMockRecorder[I, V] {
	return m.recorder
}

// Create mocks base method.
func (m *MockFactory[I, V]) Create(defaultValue V) Store[I, V] {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", defaultValue)
	ret0, _ := ret[0].(Store[I, V])
	return ret0
}

// Create indicates an expected call of Create.
func (mr *MockFactoryMockRecorder[I, V]) Create(defaultValue any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockFactory[I, V])(nil).Create), defaultValue)
}
