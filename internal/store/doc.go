// Package store persists the card database, global statistics and scan
// index as single local JSON files. Loads are tolerant: a missing, empty or
// unparsable file degrades to an empty data set with a logged warning. Saves
// rewrite the whole file atomically via a temp-file-and-rename.
package store
