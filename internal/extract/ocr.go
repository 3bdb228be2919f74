package extract

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// ocrLanguages covers the contracts this service sees in practice.
const ocrLanguages = "rus+eng"

// ocrImage recognizes text in an image by piping it through the tesseract
// binary configured on the Extractor.
func (e *Extractor) ocrImage(ctx context.Context, data []byte) (string, error) {
	binary := e.tesseractPath
	if binary == "" {
		binary = "tesseract"
	}
	if _, err := exec.LookPath(binary); err != nil {
		return "", fmt.Errorf("ocr unavailable: %w", err)
	}

	cmd := exec.CommandContext(ctx, binary, "stdin", "stdout", "-l", ocrLanguages, "--psm", "6")
	cmd.Stdin = bytes.NewReader(data)

	var out bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("ocr: %w: %s", err, strings.TrimSpace(stderr.String()))
	}
	return out.String(), nil
}
