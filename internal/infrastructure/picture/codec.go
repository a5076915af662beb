// Package picture converts uploaded image bytes into the embeddable
// data-URI representation stored on the identity record.
package picture

import (
	"encoding/base64"
	"errors"
	"net/http"
)

var ErrEmptyImage = errors.New("empty image payload")

// EncodeDataURI renders the image bytes as a data: URI. The media type is
// sniffed from the payload itself, not taken from the upload's filename.
func EncodeDataURI(data []byte) (string, error) {
	if len(data) == 0 {
		return "", ErrEmptyImage
	}
	mediaType := http.DetectContentType(data)
	return "data:" + mediaType + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}
