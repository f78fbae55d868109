package github

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	gh "github.com/google/go-github/v66/github"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/selfreplicator/internal/domain/entities"
	"github.com/rios0rios0/selfreplicator/internal/domain/repositories"
)

const (
	providerName = "github"

	// pagesPreviewMediaType is the Accept header the pages endpoint was released under.
	pagesPreviewMediaType = "application/vnd.github.switcheroo-preview+json; " +
		"application/vnd.github.mister-fantastic-preview+json"
)

// GitHubProviderRepository implements repositories.ProviderRepository for GitHub.
type GitHubProviderRepository struct {
	client *gh.Client
}

// NewGitHubProviderRepository creates a new GitHub provider with the given token.
// A non-empty baseURL points the client at GitHub Enterprise or a test server.
func NewGitHubProviderRepository(token, baseURL string) repositories.ProviderRepository {
	httpClient := &http.Client{Transport: &previewTransport{base: http.DefaultTransport}}
	client := gh.NewClient(httpClient).WithAuthToken(token)

	if baseURL != "" {
		parsed, err := url.Parse(strings.TrimSuffix(baseURL, "/") + "/")
		if err != nil {
			logger.Warnf("Ignoring invalid GitHub API URL %q: %v", baseURL, err)
		} else {
			client.BaseURL = parsed
		}
	}

	return &GitHubProviderRepository{client: client}
}

func (p *GitHubProviderRepository) Name() string { return providerName }

// CreateRepository creates a repository for the authenticated user (POST /user/repos).
func (p *GitHubProviderRepository) CreateRepository(
	ctx context.Context,
	input entities.RepositoryInput,
) (*entities.Repository, error) {
	created, resp, err := p.client.Repositories.Create(ctx, "", &gh.Repository{
		Name:        gh.String(input.Name),
		Description: gh.String(input.Description),
		Homepage:    gh.String(input.Homepage),
		Private:     gh.Bool(input.Private),
		HasIssues:   gh.Bool(input.HasIssues),
		HasProjects: gh.Bool(input.HasProjects),
		HasWiki:     gh.Bool(input.HasWiki),
	})
	if respErr := toResponseError("create repository", resp, err); respErr != nil {
		return nil, respErr
	}

	login := created.GetOwner().GetLogin()
	if login == "" {
		return nil, &entities.ResponseError{
			Operation:  "create repository",
			StatusCode: resp.StatusCode,
			Err:        entities.ErrMissingOwner,
		}
	}

	return &entities.Repository{
		Owner:   login,
		Name:    created.GetName(),
		HTMLURL: created.GetHTMLURL(),
	}, nil
}

// PublishFile creates a new file (PUT /repos/{owner}/{repo}/contents/{path}).
// The client encodes the content as base64.
func (p *GitHubProviderRepository) PublishFile(
	ctx context.Context,
	repo entities.Repository,
	input entities.FileInput,
) error {
	path := strings.TrimPrefix(input.Path, "/")
	_, resp, err := p.client.Repositories.CreateFile(
		ctx, repo.Owner, repo.Name, path,
		&gh.RepositoryContentFileOptions{
			Message: gh.String(input.Message),
			Content: input.Content,
			Branch:  gh.String(input.Branch),
		},
	)
	if respErr := toResponseError(fmt.Sprintf("upload %s", path), resp, err); respErr != nil {
		return respErr
	}
	return nil
}

// EnablePages turns on GitHub Pages (POST /repos/{owner}/{repo}/pages).
func (p *GitHubProviderRepository) EnablePages(
	ctx context.Context,
	repo entities.Repository,
	branch string,
) (*entities.Site, error) {
	pages, resp, err := p.client.Repositories.EnablePages(
		ctx, repo.Owner, repo.Name,
		&gh.Pages{Source: &gh.PagesSource{Branch: gh.String(branch)}},
	)
	if respErr := toResponseError("enable pages", resp, err); respErr != nil {
		return nil, respErr
	}

	return &entities.Site{URL: pages.GetHTMLURL()}, nil
}

// toResponseError turns a go-github result into a *entities.ResponseError unless the
// call was answered with 201 Created.
func toResponseError(operation string, resp *gh.Response, err error) error {
	if err != nil {
		respErr := &entities.ResponseError{Operation: operation, Err: err}

		var ghErr *gh.ErrorResponse
		if errors.As(err, &ghErr) {
			respErr.Body = rawBody(ghErr)
			if respErr.Body == "" {
				respErr.Body = errorBody(ghErr)
			}
			if ghErr.Response != nil {
				respErr.StatusCode = ghErr.Response.StatusCode
			}
			return respErr
		}
		if resp != nil && resp.Response != nil {
			respErr.StatusCode = resp.StatusCode
		}
		return respErr
	}

	if resp == nil || resp.Response == nil {
		return &entities.ResponseError{Operation: operation, Err: errors.New("no response received")}
	}
	if resp.StatusCode != http.StatusCreated {
		return &entities.ResponseError{Operation: operation, StatusCode: resp.StatusCode}
	}
	return nil
}

// rawBody returns the response body exactly as the server sent it. go-github
// restores the body after decoding it into the ErrorResponse.
func rawBody(ghErr *gh.ErrorResponse) string {
	if ghErr.Response == nil || ghErr.Response.Body == nil {
		return ""
	}
	data, err := io.ReadAll(ghErr.Response.Body)
	if err != nil {
		logger.Debugf("Failed to read error body: %v", err)
		return ""
	}
	return string(data)
}

// errorBody rebuilds a message from the decoded error when no raw body is left.
func errorBody(ghErr *gh.ErrorResponse) string {
	parts := []string{ghErr.Message}
	for _, e := range ghErr.Errors {
		detail := e.Message
		if detail == "" {
			detail = strings.TrimSpace(fmt.Sprintf("%s %s %s", e.Resource, e.Field, e.Code))
		}
		if detail != "" {
			parts = append(parts, detail)
		}
	}
	return strings.TrimSpace(strings.Join(parts, ": "))
}

// previewTransport sets the preview Accept header on the pages endpoint.
type previewTransport struct {
	base http.RoundTripper
}

func (t *previewTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Method == http.MethodPost && strings.HasSuffix(req.URL.Path, "/pages") {
		req = req.Clone(req.Context())
		req.Header.Set("Accept", pagesPreviewMediaType)
	}
	return t.base.RoundTrip(req)
}
