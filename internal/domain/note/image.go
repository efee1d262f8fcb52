package note

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
)

// MaxImageSize — ограничение на размер исходного файла картинки.
const MaxImageSize int64 = 5 * 1024 * 1024

const (
	dataURIPrefix = "data:"
	svgMIME       = "image/svg+xml"
)

// EncodeImage упаковывает содержимое файла в base64 data URI.
func EncodeImage(data []byte, maxSize int64) (string, error) {
	return EncodeImageFile("", data, maxSize)
}

// EncodeImageFile как EncodeImage, но учитывает имя файла: SVG по содержимому
// определяется как text/xml, поэтому его тип берётся из расширения.
func EncodeImageFile(name string, data []byte, maxSize int64) (string, error) {
	if maxSize <= 0 {
		maxSize = MaxImageSize
	}
	if int64(len(data)) > maxSize {
		return "", fmt.Errorf("%w: %d bytes, limit %d", ErrImageTooLarge, len(data), maxSize)
	}

	mime := http.DetectContentType(data)
	if isSVG(name, mime) {
		mime = svgMIME
	}
	if !strings.HasPrefix(mime, "image/") {
		return "", fmt.Errorf("%w: detected %s", ErrNotImage, mime)
	}

	return dataURIPrefix + mime + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}

// DecodeImage разбирает data URI обратно в MIME-тип и байты.
func DecodeImage(uri string) (string, []byte, error) {
	if !strings.HasPrefix(uri, dataURIPrefix) {
		return "", nil, ErrInvalidDataURI
	}

	meta, payload, ok := strings.Cut(uri[len(dataURIPrefix):], ",")
	if !ok {
		return "", nil, ErrInvalidDataURI
	}

	mime, isBase64 := strings.CutSuffix(meta, ";base64")
	if !isBase64 {
		return "", nil, fmt.Errorf("%w: only base64 payloads are supported", ErrInvalidDataURI)
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrInvalidDataURI, err)
	}

	return mime, data, nil
}

func isSVG(name, sniffed string) bool {
	if !strings.EqualFold(filepath.Ext(name), ".svg") {
		return false
	}
	return strings.HasPrefix(sniffed, "text/xml") || strings.HasPrefix(sniffed, "text/plain")
}

// ImageExtension подбирает расширение файла по MIME-типу.
func ImageExtension(mime string) string {
	switch mime {
	case "image/png":
		return ".png"
	case "image/jpeg":
		return ".jpg"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	case "image/bmp":
		return ".bmp"
	case svgMIME:
		return ".svg"
	default:
		return ".img"
	}
}
