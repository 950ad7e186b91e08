// Package value defines the universal element type shared by every
// container in this module, along with the two sentinel errors every
// public operation returns.
//
// Value is an untagged union over three interpretations — signed 32-bit
// integer, single-precision float, and pointer. There is no runtime tag:
// callers are responsible for tracking which interpretation of a given
// Value is meaningful.
//
// Comparator orders two Values by whatever interpretation the caller
// chooses; heap.Heap uses it to decide priority. Four standard
// comparators are provided for the common integer/float, ascending/
// descending cases.
package value
