// Package pdf provides a Normaliser for PDF syllabi backed by poppler's
// pdftotext. The tool is optional: when it is missing, PDF extraction fails
// with ErrPDFToolNotFound and InstallInstructions tells the user what to do.
package pdf
