// Package filesystem reads syllabus documents from local disk and watches
// a folder for changes using fsnotify. Hidden files and directories are
// ignored.
package filesystem
