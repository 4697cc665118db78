package receipt

import (
	"archive/zip"
	"bytes"
	"fmt"
	"path"

	"github.com/skillsfirst/briefapi/internal/domain/briefModel"
)

// Bundle packages the receipt as a downloadable zip: the CSV, the Markdown,
// and - when proof bytes are supplied - the attachment under proof/ named
// after the original upload. 2 entries without proof, 3 with.
func Bundle(row briefModel.ReceiptRow, proofName string, proof []byte) ([]byte, error) {
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)

	entries := map[string][]byte{
		"receipt.csv": []byte(RenderCSV(row)),
		"receipt.md":  []byte(RenderMarkdown(row)),
	}
	for _, name := range []string{"receipt.csv", "receipt.md"} {
		f, err := w.Create(name)
		if err != nil {
			return nil, fmt.Errorf("creating %s entry: %w", name, err)
		}
		if _, err := f.Write(entries[name]); err != nil {
			return nil, fmt.Errorf("writing %s entry: %w", name, err)
		}
	}

	if len(proof) > 0 {
		name := path.Base(proofName)
		if name == "." || name == "/" || name == "" {
			name = "attachment"
		}
		f, err := w.Create("proof/" + name)
		if err != nil {
			return nil, fmt.Errorf("creating proof entry: %w", err)
		}
		if _, err := f.Write(proof); err != nil {
			return nil, fmt.Errorf("writing proof entry: %w", err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("closing bundle: %w", err)
	}
	return buf.Bytes(), nil
}
