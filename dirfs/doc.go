// Package dirfs exposes a reconstructed directory tree as a read-only FUSE
// filesystem.
//
// Directories report their cumulative size from a dirtree.Usage, files report
// the size recorded in the transcript and read back as zero bytes. Inode
// numbers are assigned once, in walk order, when the filesystem is created.
//
// The main entry point is New, whose result can be mounted with Mount or
// served by any bazil.org/fuse connection.
package dirfs
