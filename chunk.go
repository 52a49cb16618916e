package ecs

import (
	"reflect"
	"unsafe"

	"github.com/TheBitDrifter/bark"
)

// column is one Structure-of-Arrays lane: a contiguous byte buffer holding
// `capacity` elements of a single ComponentType, plus enough of the type's
// reflect.Type to support the reflection hooks in world.go. Zero-sized
// components share an empty buffer (spec §4.4 edge case).
type column struct {
	ctype ComponentType
	data  []byte
}

func newColumn(ctype ComponentType, capacity int) column {
	if ctype.isZeroSized {
		return column{ctype: ctype}
	}
	return column{ctype: ctype, data: make([]byte, int(ctype.size)*capacity)}
}

func (c *column) elemPtr(row int) unsafe.Pointer {
	if c.ctype.isZeroSized || len(c.data) == 0 {
		return nil
	}
	return unsafe.Pointer(&c.data[uintptr(row)*c.ctype.size])
}

func (c *column) copyElem(dstRow int, src *column, srcRow int) {
	if c.ctype.isZeroSized {
		return
	}
	size := c.ctype.size
	dst := c.data[uintptr(dstRow)*size : uintptr(dstRow+1)*size]
	source := src.data[uintptr(srcRow)*size : uintptr(srcRow+1)*size]
	copy(dst, source)
}

// Chunk is a fixed-capacity Structure-of-Arrays block: one parallel
// component column per type in the owning Archetype's Signature, plus an
// entity back-reference array. Rows [0, size) hold valid data; rows
// [size, capacity) are unspecified, per spec §4.4.
type Chunk struct {
	capacity   int
	size       int
	entities   []Entity
	columns    []column
	idToColumn []int32 // component id -> column index, or -1 if absent
}

func newChunk(types []ComponentType, capacity int) Chunk {
	maxID := -1
	for _, t := range types {
		if int(t.id) > maxID {
			maxID = int(t.id)
		}
	}
	idToColumn := make([]int32, maxID+1)
	for i := range idToColumn {
		idToColumn[i] = -1
	}
	columns := make([]column, len(types))
	for i, t := range types {
		columns[i] = newColumn(t, capacity)
		idToColumn[t.id] = int32(i)
	}
	return Chunk{
		capacity:   capacity,
		entities:   make([]Entity, capacity),
		columns:    columns,
		idToColumn: idToColumn,
	}
}

// Size returns the number of live rows in the chunk.
func (c *Chunk) Size() int { return c.size }

// Capacity returns the fixed row capacity of the chunk.
func (c *Chunk) Capacity() int { return c.capacity }

// EntityAt returns the entity back-reference stored at row.
func (c *Chunk) EntityAt(row int) Entity { return c.entities[row] }

// full reports whether the chunk has no remaining row capacity.
func (c *Chunk) full() bool { return c.size >= c.capacity }

// add appends entity as a new row and returns its row index, zeroing the
// row's component data (a row vacated by an earlier removal still holds
// the old bytes). The caller (Archetype.add) guarantees size < capacity
// before calling.
func (c *Chunk) add(entity Entity) int {
	row := c.size
	c.entities[row] = entity
	for i := range c.columns {
		col := &c.columns[i]
		if col.ctype.isZeroSized {
			continue
		}
		clear(col.data[uintptr(row)*col.ctype.size : uintptr(row+1)*col.ctype.size])
	}
	c.size++
	return row
}

// removeLocal removes row via same-chunk swap-with-last: the entity
// previously at the last row is moved into row, and size shrinks by one.
// It reports the moved entity and whether a swap actually happened (false
// when row was already the last row).
func (c *Chunk) removeLocal(row int) (moved Entity, didMove bool) {
	last := c.size - 1
	if row == last {
		c.size--
		return Entity{}, false
	}
	moved = c.entities[last]
	c.entities[row] = moved
	for i := range c.columns {
		c.columns[i].copyElem(row, &c.columns[i], last)
	}
	c.size--
	return moved, true
}

// transfer moves the last row of src into dstRow of c, for every column c
// owns, and shrinks src.size. c and src must share identical column
// layout (same Archetype); it is used by Archetype.remove to implement a
// cross-chunk swap-with-last when the vacated row is not in the last
// chunk. It returns the entity that was moved.
func (c *Chunk) transfer(dstRow int, src *Chunk) Entity {
	lastRow := src.size - 1
	moved := src.entities[lastRow]
	c.entities[dstRow] = moved
	for i := range c.columns {
		c.columns[i].copyElem(dstRow, &src.columns[i], lastRow)
	}
	src.size--
	return moved
}

// columnIndex returns the column index for a component id, or -1 if the
// chunk's archetype does not carry that component.
func (c *Chunk) columnIndex(id ComponentID) int {
	if int(id) >= len(c.idToColumn) {
		return -1
	}
	return int(c.idToColumn[id])
}

// has reports whether this chunk's archetype carries component t.
func (c *Chunk) has(t ComponentType) bool {
	return c.columnIndex(t.id) >= 0
}

// copyRowFrom copies, for every column c owns, the element at srcRow in
// src into dstRow in c — provided src carries that same component.
// Columns present only in c are left at their freshly-allocated zero
// value; columns present only in src are dropped. This implements the
// shared-column carry-over on a structural change (spec §4.4 "copy").
func (c *Chunk) copyRowFrom(src *Chunk, srcRow, dstRow int) {
	for i := range c.columns {
		dstCol := &c.columns[i]
		srcIdx := src.columnIndex(dstCol.ctype.id)
		if srcIdx < 0 {
			continue
		}
		dstCol.copyElem(dstRow, &src.columns[srcIdx], srcRow)
	}
}

// getTyped returns a direct, interior pointer to the component of type T
// (registered under id) at row. It panics if the component is absent —
// callers must check has() first in non-debug code paths that can't
// guarantee presence, per spec §4.4 ("undefined if component absent").
func getTyped[T any](c *Chunk, row int, id ComponentID) *T {
	idx := c.columnIndex(id)
	if idx < 0 {
		panic(bark.AddTrace(UnknownComponentError{Component: componentTypeByID(id)}))
	}
	col := &c.columns[idx]
	if col.ctype.isZeroSized {
		var zero T
		return &zero
	}
	return (*T)(col.elemPtr(row))
}

// getReflect returns the component value at row for component type t as
// a boxed any, for use by serialization-style external collaborators
// (spec §6 "reflection hooks").
func (c *Chunk) getReflect(row int, t ComponentType) any {
	idx := c.columnIndex(t.id)
	if idx < 0 {
		return nil
	}
	if t.isZeroSized {
		return reflect.New(t.goType).Elem().Interface()
	}
	col := &c.columns[idx]
	return reflect.NewAt(t.goType, col.elemPtr(row)).Elem().Interface()
}

// setReflect assigns value into the component of type t at row.
func (c *Chunk) setReflect(row int, t ComponentType, value any) {
	idx := c.columnIndex(t.id)
	if idx < 0 || t.isZeroSized {
		return
	}
	col := &c.columns[idx]
	reflect.NewAt(t.goType, col.elemPtr(row)).Elem().Set(reflect.ValueOf(value))
}
