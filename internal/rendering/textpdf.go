package rendering

import (
	"github.com/go-pdf/fpdf"
)

// TextToPDF writes plain text (a cover letter) to a simple PDF. Core
// PDF fonts only cover cp1252, so the text is translated first.
func TextToPDF(text, path string) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "", 11)

	translate := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.MultiCell(0, 5, translate(text), "", "", false)

	if err := pdf.OutputFileAndClose(path); err != nil {
		return &RenderError{
			Message: "failed to write text PDF",
			Cause:   err,
		}
	}
	return nil
}
