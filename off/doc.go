// Package off reads and writes the OFF (Object File Format) triangle mesh
// format used to persist a hull's boundary: a header line "OFF", a counts
// line "<nv> <nf> <ne>" (ne is always ignored on read and written as 0),
// nv vertex lines, then nf face lines of the form "3 <i0> <i1> <i2>".
//
// Load builds a fresh dcel.DCEL from a file, resolving half-edge twins
// with a per-vertex pending-outgoing-edge table as each triangle is read;
// Save walks an existing DCEL's in-hull faces and writes them back out,
// renumbering vertices so only hull vertices appear in the file.
//
// Grounded on create_from_file/save_file in the original C++ engine: this
// package is kept separate from the hull core so the core never depends on
// file I/O.
package off
