// Package section defines the fixed wire-level structures of the utfdump
// container: the header, group table entries, character table entries and
// string table indices.
//
// The container layout is:
//
//	offset 0:  8 bytes  magic "UTFDUMP!"
//	offset 8:  4 bytes  group table length  (LE u32)
//	offset 12: 4 bytes  char table length   (LE u32)
//	offset 16: 4 bytes  string table length (LE u32)
//	offset 20: group table  (13-byte entries)
//	           char table   (28-byte entries)
//	           string table (length-prefixed UTF-8 strings)
//
// All multi-byte integers are little-endian.
package section
