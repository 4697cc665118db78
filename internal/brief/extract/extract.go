package extract

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/skillsfirst/briefapi/internal/domain/commonModels"
	"github.com/skillsfirst/briefapi/pkg/logger_i"
)

type rawPage struct {
	Number  int    `json:"number"`
	Content string `json:"content"`
}

var logger = logger_i.NewLogger("Text Extraction")

// Text reads the uploaded file and returns its raw text. A page that fails
// to extract contributes an empty string for that page rather than aborting
// the whole document.
func Text(path string) (string, error) {
	docType := DocTypeOf(path)
	if docType == commonModels.ERR {
		return "", fmt.Errorf("unsupported document type: %s", filepath.Ext(path))
	}

	pages, err := extractPages(path, docType)
	if err != nil {
		return "", err
	}

	parts := make([]string, 0, len(pages))
	for _, page := range pages {
		parts = append(parts, page.Content)
	}
	return strings.Join(parts, "\n"), nil
}

// DocTypeOf sniffs the document type from the file extension.
func DocTypeOf(path string) commonModels.DocType {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return commonModels.PDF
	case ".docx", ".rtf", ".odt":
		return commonModels.DOCX
	case ".txt":
		return commonModels.TXT
	default:
		return commonModels.ERR
	}
}

func extractPages(path string, contentType commonModels.DocType) ([]rawPage, error) {
	switch contentType {
	case commonModels.PDF:
		return extractPDF(path)
	case commonModels.DOCX, commonModels.TXT:
		return extractDocxTxtRtf(path)
	default:
		return nil, fmt.Errorf("unsupported content type: %s", contentType)
	}
}
