package config

const (
	// MaxDocumentNameLength is the maximum length for document names.
	// Names should be short and descriptive.
	MaxDocumentNameLength = 255

	// MaxDescriptionLength is the maximum length for document descriptions.
	MaxDescriptionLength = 1000

	// MaxUploadBatch caps how many files one upload request may carry.
	MaxUploadBatch = 50

	// MaxLogFiles is how many rotated log files to keep.
	MaxLogFiles = 10
)
