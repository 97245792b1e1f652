package storage

import (
	"bytes"
	"fmt"
	"testing"
)

// onePagePDF builds a minimal valid single-page PDF with a correct xref
// table, so the parser accepts it.
func onePagePDF() []byte {
	var buf bytes.Buffer
	offsets := make([]int, 4)

	buf.WriteString("%PDF-1.4\n")
	offsets[1] = buf.Len()
	buf.WriteString("1 0 obj\n<< /Type /Catalog /Pages 2 0 R >>\nendobj\n")
	offsets[2] = buf.Len()
	buf.WriteString("2 0 obj\n<< /Type /Pages /Kids [3 0 R] /Count 1 >>\nendobj\n")
	offsets[3] = buf.Len()
	buf.WriteString("3 0 obj\n<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] >>\nendobj\n")

	xref := buf.Len()
	buf.WriteString("xref\n0 4\n")
	buf.WriteString("0000000000 65535 f \n")
	for i := 1; i <= 3; i++ {
		fmt.Fprintf(&buf, "%010d 00000 n \n", offsets[i])
	}
	buf.WriteString("trailer\n<< /Size 4 /Root 1 0 R >>\nstartxref\n")
	fmt.Fprintf(&buf, "%d\n%%%%EOF\n", xref)

	return buf.Bytes()
}

func TestCheckCVContentAcceptsRealPDF(t *testing.T) {
	if err := CheckCVContent(onePagePDF()); err != nil {
		t.Errorf("CheckCVContent(valid PDF) = %v, want nil", err)
	}
}

func TestCheckCVContentRejectsSpoofedContentType(t *testing.T) {
	// Executable-style bytes that would arrive with a forged
	// application/pdf header; the content check must catch them
	payload := []byte("MZ\x90\x00\x03\x00\x00\x00\x04\x00\x00\x00\xff\xff\x00\x00fake exe")
	if err := CheckCVContent(payload); err != ErrNotAPDF {
		t.Errorf("CheckCVContent(executable bytes) = %v, want ErrNotAPDF", err)
	}
}

func TestCheckCVContentRejectsHeaderOnlyGarbage(t *testing.T) {
	// Right magic, unparseable body
	payload := []byte("%PDF-1.4\nthis is not actually a pdf body")
	if err := CheckCVContent(payload); err != ErrNotAPDF {
		t.Errorf("CheckCVContent(garbage body) = %v, want ErrNotAPDF", err)
	}
}

func TestCheckCVContentRejectsEmpty(t *testing.T) {
	if err := CheckCVContent(nil); err != ErrNotAPDF {
		t.Errorf("CheckCVContent(nil) = %v, want ErrNotAPDF", err)
	}
}

func TestCheckCVContentToleratesTrailingJunk(t *testing.T) {
	padded := append(onePagePDF(), []byte("\n--gateway-appended-noise--")...)
	if err := CheckCVContent(padded); err != nil {
		t.Errorf("CheckCVContent(PDF with trailing junk) = %v, want nil", err)
	}
}
