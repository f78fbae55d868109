package entities

import "fmt"

// SourceFile is a path of the fixed file set and the bytes read for it.
type SourceFile struct {
	Path    string
	Content []byte
}

// CommitMessage returns the message used when the file is uploaded.
func (f SourceFile) CommitMessage() string {
	return fmt.Sprintf("Uploaded %s", f.Path)
}

// DefaultSourcePaths returns the file set uploaded on every run.
func DefaultSourcePaths() []string {
	return []string{
		"index.html",
		"js/main.js",
		"LICENSE",
		"README.md",
	}
}

// SourceListing is the fixed file set as read from one source location.
type SourceListing struct {
	Location string
	Files    []SourceFile
	Failures []FileFailure
}
