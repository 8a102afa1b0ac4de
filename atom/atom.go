/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

// Package atom implements an interned string table ("name context" in
// the classic lisp-atom sense): repeated strings — script tags,
// hyphenation language codes, font family names — are mapped to small
// integer IDs so downstream code can compare identity with an integer
// equality check instead of a string comparison.
//
// The hash function and growth policy below are a contractual, not
// incidental, part of this package's behavior. IDs themselves are
// assigned in first-intern order (0, 1, 2, ...), independent of the
// hash, so the same sequence of Intern calls yields the same IDs. This is
// deliberately hand-rolled rather than built on a general-purpose
// hashmap library — no third-party container package freezes its
// internal hash function as part of its API, which is exactly the
// guarantee this table exists to provide.
package atom

// ID uniquely identifies an interned string within one Table.
type ID int

const initialTableSize = 16

type entry struct {
	name string
	id   ID
	used bool
}

// Table interns strings to small integer IDs. The zero value is not
// usable; construct one with New.
type Table struct {
	table   []entry
	entries int
}

// New creates an empty Table.
func New() *Table {
	t := &Table{table: make([]entry, initialTableSize)}
	return t
}

// hash reproduces the "multiply by 9, add character" mixing function:
// each byte's bits linger in the low-order bits and spread upward, which
// behaves well for both decimal-looking and arbitrary byte strings.
func hash(s string) uint32 {
	var result uint32
	for i := 0; i < len(s); i++ {
		result += (result << 3) + uint32(s[i])
	}
	return result
}

// Intern returns the ID for name, allocating a new one if name has not
// been seen by this table before. The empty string is a valid name.
func (t *Table) Intern(name string) ID {
	mask := uint32(len(t.table) - 1)
	i := hash(name)
	for t.table[i&mask].used {
		if t.table[i&mask].name == name {
			return t.table[i&mask].id
		}
		i++
	}
	if t.entries >= len(t.table)>>1 {
		t.grow()
		mask = uint32(len(t.table) - 1)
		for i = hash(name); t.table[i&mask].used; i++ {
		}
	}
	i &= mask
	id := ID(t.entries)
	t.table[i] = entry{name: name, id: id, used: true}
	t.entries++
	return id
}

// hashBytes is hash's sibling for a byte slice that is not necessarily
// a null-terminated Go string, so callers don't have to allocate one
// just to probe the table.
func hashBytes(b []byte) uint32 {
	var result uint32
	for i := 0; i < len(b); i++ {
		result += (result << 3) + uint32(b[i])
	}
	return result
}

// equalStringBytes compares s and b without allocating, so a lookup hit
// in InternSized never has to materialize a string from buf.
func equalStringBytes(s string, b []byte) bool {
	if len(s) != len(b) {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] != b[i] {
			return false
		}
	}
	return true
}

// InternSized returns the ID for the name held in buf, allocating a new
// one if it has not been seen before. Unlike Intern, buf need not be a
// whole, null-terminated string — it is only copied into a new string
// the first time name is actually seen, matching
// name_context_intern_size's "avoid the strdup on a hit" behavior.
func (t *Table) InternSized(buf []byte) ID {
	mask := uint32(len(t.table) - 1)
	i := hashBytes(buf)
	for t.table[i&mask].used {
		if equalStringBytes(t.table[i&mask].name, buf) {
			return t.table[i&mask].id
		}
		i++
	}
	if t.entries >= len(t.table)>>1 {
		t.grow()
		mask = uint32(len(t.table) - 1)
		for i = hashBytes(buf); t.table[i&mask].used; i++ {
		}
	}
	i &= mask
	id := ID(t.entries)
	t.table[i] = entry{name: string(buf), id: id, used: true}
	t.entries++
	return id
}

// Lookup returns the ID already assigned to name and true, or false if
// name has never been interned.
func (t *Table) Lookup(name string) (ID, bool) {
	mask := uint32(len(t.table) - 1)
	for i := hash(name); t.table[i&mask].used; i++ {
		if t.table[i&mask].name == name {
			return t.table[i&mask].id, true
		}
	}
	return 0, false
}

// String performs the reverse lookup of an ID to its interned string.
// This is O(table size) and intended for diagnostics, not hot paths.
func (t *Table) String(id ID) (string, bool) {
	for i := range t.table {
		if t.table[i].used && t.table[i].id == id {
			return t.table[i].name, true
		}
	}
	return "", false
}

// Len returns the number of distinct strings interned so far.
func (t *Table) Len() int {
	return t.entries
}

func (t *Table) grow() {
	old := t.table
	t.table = make([]entry, len(old)<<1)
	mask := uint32(len(t.table) - 1)
	for _, e := range old {
		if !e.used {
			continue
		}
		j := hash(e.name)
		for t.table[j&mask].used {
			j++
		}
		t.table[j&mask] = e
	}
}
