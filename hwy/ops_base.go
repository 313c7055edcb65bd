// Copyright 2025 go-highway Authors
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

package hwy

import (
	"math"
	"unsafe"
)

// This file provides the pure Go (scalar) vector primitives the bit
// partitioner actually composes: Load/Set/Zero to build vectors, And/
// NotEqual to test a bit across a whole lane at once.

// MaxLanes returns the number of T-sized lanes in one vector register.
// Every build this module targets represents a 64-byte (512-bit)
// register regardless of the running CPU; capability_*.go is what
// decides whether the caller may use the vector path at all.
func MaxLanes[T Lanes]() int {
	var dummy T
	elementSize := int(unsafe.Sizeof(dummy))
	if elementSize == 0 {
		return 0
	}
	return 64 / elementSize
}

// Load creates a vector by loading data from a slice.
func Load[T Lanes](src []T) Vec[T] {
	n := min(len(src), MaxLanes[T]())
	data := make([]T, n)
	copy(data, src[:n])
	return Vec[T]{data: data}
}

// Set creates a vector with all lanes set to the same value.
func Set[T Lanes](value T) Vec[T] {
	n := MaxLanes[T]()
	data := make([]T, n)
	for i := range data {
		data[i] = value
	}
	return Vec[T]{data: data}
}

// Zero creates a vector with all lanes set to zero.
func Zero[T Lanes]() Vec[T] {
	n := MaxLanes[T]()
	data := make([]T, n)
	return Vec[T]{data: data}
}

// And performs element-wise bitwise AND.
func And[T Lanes](a, b Vec[T]) Vec[T] {
	n := min(len(b.data), len(a.data))
	result := make([]T, n)
	for i := range n {
		result[i] = bitwiseAnd(a.data[i], b.data[i])
	}
	return Vec[T]{data: result}
}

func bitwiseAnd[T Lanes](a, b T) T {
	switch any(a).(type) {
	case float32:
		aU := math.Float32bits(any(a).(float32))
		bU := math.Float32bits(any(b).(float32))
		return T(any(math.Float32frombits(aU & bU)).(float32))
	case float64:
		aU := math.Float64bits(any(a).(float64))
		bU := math.Float64bits(any(b).(float64))
		return T(any(math.Float64frombits(aU & bU)).(float64))
	case int8:
		return T(any(int8(any(a).(int8)) & int8(any(b).(int8))).(int8))
	case int16:
		return T(any(int16(any(a).(int16)) & int16(any(b).(int16))).(int16))
	case int32:
		return T(any(int32(any(a).(int32)) & int32(any(b).(int32))).(int32))
	case int64:
		return T(any(int64(any(a).(int64)) & int64(any(b).(int64))).(int64))
	case uint8:
		return T(any(uint8(any(a).(uint8)) & uint8(any(b).(uint8))).(uint8))
	case uint16:
		return T(any(uint16(any(a).(uint16)) & uint16(any(b).(uint16))).(uint16))
	case uint32:
		return T(any(uint32(any(a).(uint32)) & uint32(any(b).(uint32))).(uint32))
	case uint64:
		return T(any(uint64(any(a).(uint64)) & uint64(any(b).(uint64))).(uint64))
	default:
		return a // Should never happen
	}
}

// NotEqual performs element-wise inequality comparison.
func NotEqual[T Lanes](a, b Vec[T]) Mask[T] {
	n := min(len(b.data), len(a.data))
	bits := make([]bool, n)
	for i := range n {
		bits[i] = a.data[i] != b.data[i]
	}
	return Mask[T]{bits: bits}
}
