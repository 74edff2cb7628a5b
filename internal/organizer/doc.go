// Package organizer drives a full photosift run: scan the tree, remove
// content duplicates, move survivors into date-derived folders, and prune
// the directories left empty.
//
// The engine owns phase ordering and statistics; all filesystem mutation is
// delegated to the fileops collaborators so dry-run can swap them out for
// no-ops without touching phase logic.
package organizer
