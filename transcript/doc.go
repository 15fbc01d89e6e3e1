// Package transcript parses and generates shell-session transcripts that
// describe a directory tree through navigation and listing commands.
//
// A transcript is a sequence of lines in one of four forms:
//
//	$ cd <name> | $ cd .. | $ cd /
//	$ ls
//	dir <name>
//	<size> <name>
//
// Parse classifies a single line and ParseAll numbers and parses a whole
// transcript. Generator writes synthetic transcripts that always describe a
// valid tree, which is useful for seeding tests and benchmarks.
package transcript
