// Package editor implements the course's line-oriented text editor: a
// buffer of lines stored in a doubly linked list, addressed 1-based the
// way line editors always have been.
//
// The buffer supports insertion, deletion and replacement of whole
// lines, reading from and writing to streams, and substring search
// across lines via KMP (package strmatch).
//
// Out-of-range line numbers return ErrLineRange; a failed search returns
// ErrNotFound. Nothing here touches the filesystem directly - callers
// pass io.Reader/io.Writer, and the demo CLI wires files to them.
package editor
