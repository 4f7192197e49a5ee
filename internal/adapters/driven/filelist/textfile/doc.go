// Package textfile writes sample file lists as plain text, one access URL
// per line, into a single output directory.
//
// Files are named <short name>.txt and are truncated on every write.
// Truncate-then-write is not atomic: an interrupted write leaves a partial
// file for that sample only.
//
// By default the output directory must already exist. A writer created
// with createDir set makes the directory (and parents) first.
package textfile
