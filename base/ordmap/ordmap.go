// Copyright (c) 2024, The Psychos Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ordmap implements a generic map that remembers the order
// in which keys were first added. Iteration always follows that order,
// which makes it suitable for registries where first-come precedence
// and deterministic traversal matter.
package ordmap

import (
	"fmt"
	"iter"
)

// KeyValue represents a key-value pair.
type KeyValue[K comparable, V any] struct {
	Key   K
	Value V
}

// Map is an ordered map: Order holds the entries in insertion order
// and Index maps each key to its position in Order.
type Map[K comparable, V any] struct {

	// Order is the list of entries in the order they were first added.
	Order []KeyValue[K, V]

	// Index maps a key to its index in Order.
	Index map[K]int
}

// New returns a new, empty ordered map.
func New[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{Index: make(map[K]int)}
}

// Make returns an ordered map containing the given entries in order.
// Later duplicates of a key replace the value of the earlier entry
// without changing its position.
func Make[K comparable, V any](kvs []KeyValue[K, V]) *Map[K, V] {
	om := New[K, V]()
	for _, kv := range kvs {
		om.Add(kv.Key, kv.Value)
	}
	return om
}

// Add sets the value for the given key. A new key is appended at the
// end; an existing key keeps its position and gets the new value.
func (om *Map[K, V]) Add(key K, val V) {
	if om.Index == nil {
		om.Index = make(map[K]int)
	}
	if idx, has := om.Index[key]; has {
		om.Order[idx].Value = val
		return
	}
	om.Index[key] = len(om.Order)
	om.Order = append(om.Order, KeyValue[K, V]{Key: key, Value: val})
}

// Has returns whether the given key is in the map.
func (om *Map[K, V]) Has(key K) bool {
	_, has := om.Index[key]
	return has
}

// ValueByKey returns the value for the given key, or the zero value
// if the key is missing.
func (om *Map[K, V]) ValueByKey(key K) V {
	v, _ := om.ValueByKeyTry(key)
	return v
}

// ValueByKeyTry returns the value for the given key and whether it was found.
func (om *Map[K, V]) ValueByKeyTry(key K) (V, bool) {
	if idx, ok := om.Index[key]; ok {
		return om.Order[idx].Value, true
	}
	var zv V
	return zv, false
}

// IndexByKey returns the position of the given key, or -1 if it is missing.
func (om *Map[K, V]) IndexByKey(key K) int {
	if idx, ok := om.Index[key]; ok {
		return idx
	}
	return -1
}

// Len returns the number of entries in the map.
func (om *Map[K, V]) Len() int {
	if om == nil {
		return 0
	}
	return len(om.Order)
}

// Keys returns the keys in order.
func (om *Map[K, V]) Keys() []K {
	kl := make([]K, om.Len())
	for i, kv := range om.Order {
		kl[i] = kv.Key
	}
	return kl
}

// Values returns the values in order.
func (om *Map[K, V]) Values() []V {
	vl := make([]V, om.Len())
	for i, kv := range om.Order {
		vl[i] = kv.Value
	}
	return vl
}

// All returns an iterator over the entries in order.
func (om *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if om == nil {
			return
		}
		for _, kv := range om.Order {
			if !yield(kv.Key, kv.Value) {
				return
			}
		}
	}
}

// Clone returns a shallow copy of the map that shares no
// storage with the original.
func (om *Map[K, V]) Clone() *Map[K, V] {
	cp := &Map[K, V]{
		Order: make([]KeyValue[K, V], om.Len()),
		Index: make(map[K]int, om.Len()),
	}
	if om == nil {
		return cp
	}
	copy(cp.Order, om.Order)
	for k, i := range om.Index {
		cp.Index[k] = i
	}
	return cp
}

// String returns a string representation of the map.
func (om *Map[K, V]) String() string {
	return fmt.Sprintf("%v", om.Order)
}
