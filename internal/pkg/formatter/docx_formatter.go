package formatter

import (
	"bytes"
	"fmt"

	"github.com/futig/querysphere-backend/internal/entity"
	"github.com/unidoc/unioffice/common/license"
	"github.com/unidoc/unioffice/document"
)

const (
	docxContentType   = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	docxFileExtension = ".docx"
)

// SetDOCXLicense installs a metered UniOffice key. Without one DOCX export
// fails with ErrFormatUnavailable.
func SetDOCXLicense(apiKey string) error {
	if err := license.SetMeteredKey(apiKey); err != nil {
		return fmt.Errorf("set unioffice license: %w", err)
	}
	return nil
}

type DOCXFormatter struct {
	licensed func() bool
}

func NewDOCXFormatter() *DOCXFormatter {
	return &DOCXFormatter{
		licensed: func() bool { return license.GetLicenseKey().IsLicensed() },
	}
}

func (df *DOCXFormatter) Format(doc *entity.AnswerDocument) ([]byte, error) {
	// unioffice refuses to save without a license
	if df.licensed == nil || !df.licensed() {
		return nil, fmt.Errorf("%w: docx needs a UniOffice license key", entity.ErrFormatUnavailable)
	}

	d := document.New()
	defer d.Close()

	titlePar := d.AddParagraph()
	titlePar.SetStyle("Heading1")
	titlePar.AddRun().AddText(titleOf(doc))

	for _, p := range paragraphs(doc.Body) {
		d.AddParagraph().AddRun().AddText(p)
	}

	if len(doc.Sources) > 0 {
		heading := d.AddParagraph()
		heading.SetStyle("Heading2")
		heading.AddRun().AddText(sourcesHeading)

		for i, src := range doc.Sources {
			d.AddParagraph().AddRun().AddText(sourceLine(i, src))
		}
	}

	var buf bytes.Buffer
	if err := d.Save(&buf); err != nil {
		return nil, fmt.Errorf("save docx: %w", err)
	}
	return buf.Bytes(), nil
}

func (df *DOCXFormatter) ContentType() string {
	return docxContentType
}

func (df *DOCXFormatter) FileExtension() string {
	return docxFileExtension
}
