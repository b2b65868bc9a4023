// Package order provides the Order aggregate of the order desk.
//
// An order is identified publicly by a kernel.UID, carries a free-text description
// and references zero or more products. Reads and writes always treat the order and
// its product references as one consistency unit: the reference set is replaced as a
// whole on every update, never edited incrementally.
package order
