package imagemeta

import (
	exif "github.com/dsoprea/go-exif/v3"

	"github.com/pagelint/pagelint/internal/model"
)

// Tag is a single EXIF entry in name/value form.
type Tag struct {
	// Name is the EXIF tag name (e.g. "GPSLatitude", "Make").
	Name string

	// Value is the formatted tag value.
	Value string
}

// Inspect extracts EXIF metadata from raw image bytes and reports
// privacy-sensitive tags as findings. Images without EXIF data return
// no findings and no error; the source name is used in finding details
// so reports can point at the offending file.
func Inspect(imageData []byte, source string) []model.Finding {
	rawExif, err := exif.SearchAndExtractExif(imageData)
	if err != nil || rawExif == nil {
		return nil
	}

	entries, _, err := exif.GetFlatExifData(rawExif, nil)
	if err != nil {
		return nil
	}

	tags := make([]Tag, 0, len(entries))
	for _, entry := range entries {
		tags = append(tags, Tag{Name: entry.TagName, Value: entry.Formatted})
	}

	return ClassifyTags(tags, source)
}

// ClassifyTags maps EXIF tags to findings according to what each tag
// can disclose about the author or the device used.
func ClassifyTags(tags []Tag, source string) []model.Finding {
	findings := make([]model.Finding, 0)

	for _, tag := range tags {
		detail := tag.Name + ": " + tag.Value
		if source != "" {
			detail = source + " -> " + detail
		}

		switch tag.Name {
		// Location disclosure
		case "GPSLatitude", "GPSLongitude", "GPSLatitudeRef", "GPSLongitudeRef":
			findings = append(findings, model.NewFinding("exif_gps", "imagemeta",
				"GPS coordinates in image EXIF", detail))

		// Device identification
		case "Make", "Model":
			findings = append(findings, model.NewFinding("exif_camera", "imagemeta",
				"Camera information in image EXIF", detail))

		// Unique device identifiers
		case "SerialNumber", "CameraSerialNumber", "BodySerialNumber", "LensSerialNumber":
			findings = append(findings, model.NewFinding("exif_serial", "imagemeta",
				"Device serial number in image EXIF", detail))

		// Editing tools / OS
		case "Software", "ProcessingSoftware":
			findings = append(findings, model.NewFinding("exif_software", "imagemeta",
				"Software information in image EXIF", detail))

		// Identity disclosure
		case "Artist", "Author", "Copyright", "XPAuthor":
			findings = append(findings, model.NewFinding("exif_author", "imagemeta",
				"Author information in image EXIF", detail))

		// Timezone and activity patterns
		case "DateTimeOriginal", "DateTimeDigitized", "DateTime":
			findings = append(findings, model.NewFinding("exif_datetime", "imagemeta",
				"Timestamp in image EXIF", detail))

		case "HostComputer":
			findings = append(findings, model.NewFinding("exif_computer", "imagemeta",
				"Host computer name in image EXIF", detail))
		}
	}

	return findings
}
