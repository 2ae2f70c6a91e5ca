package imagemeta

import (
	exif "github.com/dsoprea/go-exif/v3"

	"github.com/nao1215/apodex/internal/model"
)

// Extract parses EXIF metadata out of raw image bytes.
// It returns nil when the image carries no EXIF block or the block
// cannot be parsed; absent metadata is expected, not an error.
func Extract(imageData []byte) *model.ImageMetadata {
	rawExif, err := exif.SearchAndExtractExif(imageData)
	if err != nil || rawExif == nil {
		return nil
	}

	entries, _, err := exif.GetFlatExifData(rawExif, nil)
	if err != nil {
		return nil
	}

	meta := &model.ImageMetadata{}
	for _, entry := range entries {
		value := entry.Formatted

		switch entry.TagName {
		case "Make":
			meta.CameraMake = value
		case "Model":
			meta.CameraModel = value
		case "Software", "ProcessingSoftware":
			if meta.Software == "" {
				meta.Software = value
			}
		case "DateTimeOriginal":
			meta.CaptureTime = value
		case "DateTime":
			// DateTimeOriginal is the capture time; DateTime is often
			// the edit time. Use it only as a fallback.
			if meta.CaptureTime == "" {
				meta.CaptureTime = value
			}
		case "Artist", "XPAuthor":
			if meta.Artist == "" {
				meta.Artist = value
			}
		case "Copyright":
			meta.Copyright = value
		}
	}

	if meta.IsEmpty() {
		return nil
	}
	return meta
}
