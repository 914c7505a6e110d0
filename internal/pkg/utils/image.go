package utils

import (
	"encoding/base64"
	"errors"
	"mime"
	"strings"
)

var allowedImageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

// DecodeBase64Image decodes a data-URI image ("data:image/png;base64,....")
// and returns the raw bytes, content type and file extension.
func DecodeBase64Image(encodedImage string) ([]byte, string, string, error) {
	parts := strings.SplitN(encodedImage, ",", 2)
	if len(parts) != 2 || !strings.HasPrefix(parts[0], "data:") {
		return nil, "", "", errors.New("invalid base64 image")
	}

	semicolon := strings.Index(parts[0], ";")
	if semicolon < 0 {
		return nil, "", "", errors.New("invalid base64 image header")
	}
	contentType, _, err := mime.ParseMediaType(parts[0][5:semicolon])
	if err != nil {
		return nil, "", "", err
	}

	extension, ok := allowedImageTypes[contentType]
	if !ok {
		return nil, "", "", errors.New("unsupported image type: " + contentType)
	}

	data, err := base64.StdEncoding.DecodeString(parts[1])
	if err != nil {
		return nil, "", "", err
	}

	return data, contentType, extension, nil
}
