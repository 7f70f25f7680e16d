// Package classify maps file extensions to organization categories.
package classify

import "strings"

// DefaultCategory is assigned to files whose extension is unknown or missing.
const DefaultCategory = "others"

// categoriesByExtension is the fixed classification table. Keys are lowercase
// extensions with the leading dot; values are the category folder names.
var categoriesByExtension = map[string]string{
	// images
	".jpg": "images", ".jpeg": "images", ".png": "images", ".gif": "images",
	".bmp": "images", ".svg": "images", ".webp": "images", ".tiff": "images",
	".ico": "images", ".heic": "images",
	// videos
	".mp4": "videos", ".mkv": "videos", ".avi": "videos", ".mov": "videos",
	".wmv": "videos", ".flv": "videos", ".webm": "videos", ".m4v": "videos",
	".mpg": "videos", ".mpeg": "videos",
	// audio
	".mp3": "audio", ".wav": "audio", ".flac": "audio", ".aac": "audio",
	".ogg": "audio", ".m4a": "audio", ".wma": "audio", ".opus": "audio",
	// documents
	".pdf": "documents", ".doc": "documents", ".docx": "documents",
	".txt": "documents", ".rtf": "documents", ".odt": "documents",
	".md": "documents", ".epub": "documents",
	// spreadsheets
	".xls": "spreadsheets", ".xlsx": "spreadsheets", ".csv": "spreadsheets",
	".ods": "spreadsheets", ".tsv": "spreadsheets",
	// presentations
	".ppt": "presentations", ".pptx": "presentations", ".odp": "presentations",
	".key": "presentations",
	// archives
	".zip": "archives", ".tar": "archives", ".gz": "archives", ".bz2": "archives",
	".xz": "archives", ".rar": "archives", ".7z": "archives", ".tgz": "archives",
	// code
	".go": "code", ".py": "code", ".js": "code", ".ts": "code", ".java": "code",
	".c": "code", ".cpp": "code", ".h": "code", ".rs": "code", ".rb": "code",
	".sh": "code", ".html": "code", ".css": "code", ".json": "code",
	".xml": "code", ".yaml": "code", ".yml": "code", ".sql": "code",
	// executables
	".exe": "executables", ".msi": "executables", ".deb": "executables",
	".rpm": "executables", ".dmg": "executables", ".apk": "executables",
	".appimage": "executables", ".bin": "executables",
}

// Classify returns the category for the given extension. Comparison is
// case-insensitive; unknown and empty extensions map to DefaultCategory.
func Classify(extension string) string {
	if category, ok := categoriesByExtension[strings.ToLower(extension)]; ok {
		return category
	}
	return DefaultCategory
}

// Known reports whether the extension appears in the classification table.
func Known(extension string) bool {
	_, ok := categoriesByExtension[strings.ToLower(extension)]
	return ok
}
