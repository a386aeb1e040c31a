package qr

import (
	"fmt"
	"image"
	"io"
	"strings"

	qrcode "github.com/skip2/go-qrcode"

	"toolbox/internal/apperrors"
)

const (
	DefaultSize = 290
	DefaultExt  = ".png"
)

var (
	ErrEmptyText  = apperrors.Validation("Please enter text or URL for QR Code.")
	ErrNoArtifact = apperrors.Validation("No QR Code generated to save.")
)

// Artifact is one generated code, kept until the next generation.
type Artifact struct {
	Source string
	Image  image.Image
	PNG    []byte
}

// Generate encodes text with medium error correction. The symbol version
// is picked by the encoder from the text length.
func Generate(text string, size int) (*Artifact, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyText
	}
	if size <= 0 {
		size = DefaultSize
	}
	code, err := qrcode.New(text, qrcode.Medium)
	if err != nil {
		return nil, apperrors.New(apperrors.KindValidation, "Error generating QR Code.", fmt.Errorf("encode: %w", err))
	}
	png, err := code.PNG(size)
	if err != nil {
		return nil, apperrors.New(apperrors.KindValidation, "Error generating QR Code.", fmt.Errorf("render png: %w", err))
	}
	return &Artifact{Source: text, Image: code.Image(size), PNG: png}, nil
}

// Write copies the PNG bytes of artifact to w.
func Write(artifact *Artifact, w io.Writer) error {
	if artifact == nil || len(artifact.PNG) == 0 {
		return ErrNoArtifact
	}
	if _, err := w.Write(artifact.PNG); err != nil {
		return apperrors.IO("Error saving QR Code.", fmt.Errorf("write png: %w", err))
	}
	return nil
}
