// Package document wraps a rendered chart image in a single-page PDF.
//
// [ParseOptions] turns the request's pdfOptions object into validated
// [Options] (page size, orientation, file name, metadata). An [Assembler]
// then lays the page out with fpdf: an optional centered title, followed by
// the image centered horizontally and scaled down only when it would not fit
// inside the page margins. Output is fully buffered.
package document
