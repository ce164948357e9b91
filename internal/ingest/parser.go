package ingest

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
	"golang.org/x/text/unicode/norm"
)

const bom = "\ufeff"

// Extensions lists every input type ParseFile understands.
var Extensions = []string{".md", ".txt", ".docx", ".pdf"}

type Parsed struct {
	Title      string
	SourcePath string
	Size       int64
	Text       string
	// Extracted is true when Text was pulled out of a container format
	// (docx, pdf) rather than read verbatim.
	Extracted bool
}

// Supported reports whether path has an extension ParseFile can read.
func Supported(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range Extensions {
		if ext == e {
			return true
		}
	}
	return false
}

func ParseFile(path string) (*Parsed, error) {
	if !Supported(path) {
		return nil, fmt.Errorf("unsupported file type: %q", strings.ToLower(filepath.Ext(path)))
	}
	return parse(path)
}

// ParseAny is ParseFile for a file the user named directly: an unknown
// extension is read as plain UTF-8 text instead of being rejected.
func ParseAny(path string) (*Parsed, error) {
	return parse(path)
}

func parse(path string) (*Parsed, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	var text string
	extracted := true
	switch strings.ToLower(filepath.Ext(path)) {
	case ".docx":
		text, err = parseDOCX(raw)
	case ".pdf":
		text, err = parsePDF(path)
	default:
		text, err = parsePlain(raw)
		extracted = false
	}
	if err != nil {
		return nil, err
	}
	// Plain text passes through byte for byte; only extracted text is
	// cleaned up.
	if extracted {
		text = norm.NFC.String(normalizeWhitespace(text))
	}

	title := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return &Parsed{
		Title:      title,
		SourcePath: path,
		Size:       int64(len(raw)),
		Text:       text,
		Extracted:  extracted,
	}, nil
}

// ParseText wraps text read from stdin. Like plain files it is kept
// verbatim apart from a leading BOM.
func ParseText(title string, raw []byte) (*Parsed, error) {
	text, err := parsePlain(raw)
	if err != nil {
		return nil, err
	}
	return &Parsed{
		Title: title,
		Size:  int64(len(raw)),
		Text:  text,
	}, nil
}

func parsePlain(raw []byte) (string, error) {
	if !utf8.Valid(raw) {
		return "", fmt.Errorf("text file is not valid UTF-8")
	}
	return strings.TrimPrefix(string(raw), bom), nil
}

func parseDOCX(raw []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(raw), int64(len(raw)))
	if err != nil {
		return "", fmt.Errorf("open docx zip: %w", err)
	}

	var xmlData []byte
	for _, f := range zr.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, openErr := f.Open()
		if openErr != nil {
			return "", fmt.Errorf("open document.xml: %w", openErr)
		}
		xmlData, err = io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return "", fmt.Errorf("read document.xml: %w", err)
		}
		break
	}
	if len(xmlData) == 0 {
		return "", fmt.Errorf("word/document.xml not found")
	}

	decoder := xml.NewDecoder(bytes.NewReader(xmlData))
	var b strings.Builder
	inText := false
	for {
		tok, tokenErr := decoder.Token()
		if tokenErr == io.EOF {
			break
		}
		if tokenErr != nil {
			return "", fmt.Errorf("decode document.xml: %w", tokenErr)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "t" {
				inText = true
			}
			if t.Name.Local == "p" && b.Len() > 0 {
				b.WriteString("\n")
			}
		case xml.EndElement:
			if t.Name.Local == "t" {
				inText = false
			}
		case xml.CharData:
			if inText {
				b.Write(t)
			}
		}
	}
	return b.String(), nil
}

func parsePDF(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	var b strings.Builder
	total := r.NumPage()
	for i := 1; i <= total; i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}
		content, pageErr := p.GetPlainText(nil)
		if pageErr != nil {
			continue
		}
		b.WriteString(content)
		b.WriteString("\n")
	}
	if b.Len() == 0 {
		return "", fmt.Errorf("no extractable text found in pdf")
	}
	return b.String(), nil
}

func normalizeWhitespace(text string) string {
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		line = strings.Join(strings.Fields(line), " ")
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}
