package scan

import (
	"path/filepath"
	"strings"

	"github.com/danielshue/notebook-automation/pkg/models"
)

var videoExtensions = map[string]bool{
	".mp4":  true,
	".mov":  true,
	".avi":  true,
	".mkv":  true,
	".webm": true,
}

var documentExtensions = map[string]bool{
	".pdf":  true,
	".epub": true,
}

// Classify maps a file to its content category. The rules run in a fixed
// order and the first match wins, so every file gets exactly one answer.
func Classify(dirName, fileName string) models.ContentCategory {
	stem := strings.TrimSuffix(fileName, filepath.Ext(fileName))
	lower := strings.ToLower(stem)
	ext := strings.ToLower(filepath.Ext(fileName))

	// A directory's own index document is not content.
	if strings.EqualFold(stem, dirName) {
		return models.CategoryExcluded
	}

	if videoExtensions[ext] {
		return models.CategoryVideo
	}

	if ext == ".md" {
		switch {
		case strings.Contains(lower, "transcript"):
			return models.CategoryTranscript
		case strings.Contains(lower, "note"):
			return models.CategoryNote
		case strings.Contains(lower, "quiz"):
			return models.CategoryQuiz
		case strings.Contains(lower, "assignment"):
			return models.CategoryAssignment
		default:
			return models.CategoryReading
		}
	}

	if documentExtensions[ext] {
		return models.CategoryReading
	}

	return models.CategoryExcluded
}
