package valueobjects

import (
	"path/filepath"
	"strings"
)

// FileType is the coarse format classification of an uploaded file, used for
// icons and download content types.
type FileType string

const (
	FilePDF        FileType = "pdf"
	FileWord       FileType = "word"
	FileExcel      FileType = "excel"
	FilePowerPoint FileType = "powerpoint"
	FileText       FileType = "text"
	FileMarkdown   FileType = "markdown"
	FileOther      FileType = "other"
)

var extensionFileTypes = map[string]FileType{
	".pdf":  FilePDF,
	".doc":  FileWord,
	".docx": FileWord,
	".xls":  FileExcel,
	".xlsx": FileExcel,
	".ppt":  FilePowerPoint,
	".pptx": FilePowerPoint,
	".txt":  FileText,
	".md":   FileMarkdown,
}

var fileTypeContentTypes = map[FileType]string{
	FilePDF:        "application/pdf",
	FileWord:       "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	FileExcel:      "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	FilePowerPoint: "application/vnd.openxmlformats-officedocument.presentationml.presentation",
	FileText:       "text/plain",
	FileMarkdown:   "text/markdown",
	FileOther:      "application/octet-stream",
}

// DetectFileType classifies an uploaded file by its filename extension.
func DetectFileType(filename string) FileType {
	ext := strings.ToLower(filepath.Ext(filename))
	if ft, ok := extensionFileTypes[ext]; ok {
		return ft
	}
	return FileOther
}

func (t FileType) String() string {
	return string(t)
}

// MIMEType returns the content type to serve downloads with.
func (t FileType) MIMEType() string {
	if mime, ok := fileTypeContentTypes[t]; ok {
		return mime
	}
	return fileTypeContentTypes[FileOther]
}
