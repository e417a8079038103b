// Package pipeline orchestrates one batch run: discover EPUB files, read
// their metadata, build the normalized rename plan, and apply (or just
// print) it with summary reporting. Items are processed strictly in
// discovery order because collision resolution depends on first-seen
// order to decide which item keeps the clean name.
package pipeline
