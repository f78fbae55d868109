package entities

// Repository describes a repository created on the hosting provider.
// Owner is only known after creation, it depends on the account owning the token.
type Repository struct {
	Owner   string
	Name    string
	HTMLURL string
}

// FullName returns the "owner/name" form used in log lines.
func (r Repository) FullName() string {
	return r.Owner + "/" + r.Name
}

// RepositoryInput is the body of the repository creation call.
type RepositoryInput struct {
	Name        string
	Description string
	Homepage    string
	Private     bool
	HasIssues   bool
	HasProjects bool
	HasWiki     bool
}

// FileInput describes one file to be committed through the contents API.
type FileInput struct {
	Path    string
	Content []byte
	Message string
	Branch  string
}

// Site is the static site published from a repository.
type Site struct {
	URL string
}
