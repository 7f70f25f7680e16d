// Package organizer moves the direct file children of a directory into
// category or date-based subfolders and aggregates the outcome into a Report.
//
// A failed file is recorded and never aborts the batch; only a missing or
// unreadable target directory fails the whole run.
package organizer
