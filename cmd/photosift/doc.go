// Command photosift deduplicates a photo and video library and organizes it
// into date-derived folders.
package main
