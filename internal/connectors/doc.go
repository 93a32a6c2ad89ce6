// Package connectors holds the sources syllabus documents are read from.
//
// The filesystem connector reads single files and watches a syllabus
// folder so new or edited documents can be re-extracted as they change.
package connectors
