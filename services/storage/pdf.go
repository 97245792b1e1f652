package storage

import (
	"bytes"

	"github.com/ledongthuc/pdf"
)

var pdfMagic = []byte("%PDF-")

// CheckCVContent verifies the uploaded bytes are a readable PDF, not just a
// spoofed Content-Type header: the file must carry the PDF magic, parse, and
// contain at least one page.
func CheckCVContent(content []byte) error {
	if !bytes.HasPrefix(content, pdfMagic) {
		return ErrNotAPDF
	}

	pages, err := pdfPageCount(content)
	if err != nil || pages == 0 {
		return ErrNotAPDF
	}

	return nil
}

// trimAfterEOF drops bytes after the final %%EOF marker. Scanners and mail
// gateways sometimes append trailing junk the parser chokes on.
func trimAfterEOF(content []byte) []byte {
	lastEOF := bytes.LastIndex(content, []byte("%%EOF"))
	if lastEOF == -1 {
		return content
	}

	end := lastEOF + len("%%EOF")
	for end < len(content) && (content[end] == '\n' || content[end] == '\r') {
		end++
	}
	return content[:end]
}

func pdfPageCount(content []byte) (int, error) {
	content = trimAfterEOF(content)

	reader, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return 0, err
	}
	return reader.NumPage(), nil
}
