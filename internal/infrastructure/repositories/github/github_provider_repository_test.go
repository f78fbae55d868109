//go:build unit

package github_test

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/selfreplicator/internal/domain/entities"
	"github.com/rios0rios0/selfreplicator/internal/infrastructure/repositories/github"
)

// recordedRequest is what the fake API saw for one call.
type recordedRequest struct {
	Method        string
	Path          string
	Authorization string
	Accept        string
	Body          map[string]interface{}
}

func newFakeAPI(t *testing.T, status int, reply string) (*httptest.Server, *[]recordedRequest) {
	t.Helper()

	var requests []recordedRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := recordedRequest{
			Method:        r.Method,
			Path:          r.URL.Path,
			Authorization: r.Header.Get("Authorization"),
			Accept:        r.Header.Get("Accept"),
		}
		_ = json.NewDecoder(r.Body).Decode(&rec.Body)
		requests = append(requests, rec)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(reply))
	}))
	t.Cleanup(server.Close)
	return server, &requests
}

func TestGitHubProviderRepository(t *testing.T) {
	t.Parallel()

	t.Run("Name", func(t *testing.T) {
		t.Parallel()

		t.Run("should return github", func(t *testing.T) {
			t.Parallel()

			// given
			p := github.NewGitHubProviderRepository("token", "")

			// when
			name := p.Name()

			// then
			assert.Equal(t, "github", name)
		})
	})

	t.Run("CreateRepository", func(t *testing.T) {
		t.Parallel()

		t.Run("should post the repository body and return the owner login", func(t *testing.T) {
			t.Parallel()

			// given
			server, requests := newFakeAPI(t, http.StatusCreated, `{
				"name": "self-replicator",
				"html_url": "https://github.com/alice/self-replicator",
				"owner": {"login": "alice"}
			}`)
			p := github.NewGitHubProviderRepository("ghp_secret", server.URL)

			// when
			repo, err := p.CreateRepository(context.Background(), entities.RepositoryInput{
				Name:        "self-replicator",
				Description: "This repository is self-replicated",
				Homepage:    "https://github.com",
			})

			// then
			require.NoError(t, err)
			assert.Equal(t, &entities.Repository{
				Owner:   "alice",
				Name:    "self-replicator",
				HTMLURL: "https://github.com/alice/self-replicator",
			}, repo)

			require.Len(t, *requests, 1)
			req := (*requests)[0]
			assert.Equal(t, http.MethodPost, req.Method)
			assert.Equal(t, "/user/repos", req.Path)
			assert.Equal(t, "Bearer ghp_secret", req.Authorization)
			assert.Equal(t, "self-replicator", req.Body["name"])
			assert.Equal(t, "This repository is self-replicated", req.Body["description"])
			assert.Equal(t, "https://github.com", req.Body["homepage"])
			assert.Equal(t, false, req.Body["private"])
			assert.Equal(t, false, req.Body["has_issues"])
			assert.Equal(t, false, req.Body["has_projects"])
			assert.Equal(t, false, req.Body["has_wiki"])
		})

		t.Run("should carry the status of a rejected creation", func(t *testing.T) {
			t.Parallel()

			// given
			server, _ := newFakeAPI(t, http.StatusUnprocessableEntity, `{
				"message": "Repository creation failed.",
				"errors": [{"resource": "Repository", "code": "custom", "field": "name",
					"message": "name already exists on this account"}]
			}`)
			p := github.NewGitHubProviderRepository("ghp_secret", server.URL)

			// when
			repo, err := p.CreateRepository(context.Background(), entities.RepositoryInput{Name: "self-replicator"})

			// then
			require.Error(t, err)
			assert.Nil(t, repo)
			assert.Equal(t, http.StatusUnprocessableEntity, entities.StatusCodeOf(err))
			assert.Contains(t, entities.BodyOf(err), "name already exists on this account")
			assert.Equal(t, "Repository already exists", entities.CreationErrorMessage(entities.StatusCodeOf(err)))
		})

		t.Run("should map bad credentials to 401", func(t *testing.T) {
			t.Parallel()

			// given
			server, _ := newFakeAPI(t, http.StatusUnauthorized, `{"message": "Bad credentials"}`)
			p := github.NewGitHubProviderRepository("ghp_wrong", server.URL)

			// when
			_, err := p.CreateRepository(context.Background(), entities.RepositoryInput{Name: "self-replicator"})

			// then
			require.Error(t, err)
			assert.Equal(t, http.StatusUnauthorized, entities.StatusCodeOf(err))
		})

		t.Run("should fail when the response has no owner", func(t *testing.T) {
			t.Parallel()

			// given
			server, _ := newFakeAPI(t, http.StatusCreated, `{"name": "self-replicator"}`)
			p := github.NewGitHubProviderRepository("ghp_secret", server.URL)

			// when
			_, err := p.CreateRepository(context.Background(), entities.RepositoryInput{Name: "self-replicator"})

			// then
			require.ErrorIs(t, err, entities.ErrMissingOwner)
			assert.Equal(t, "Unknown error", entities.CreationErrorMessage(0))
		})

		t.Run("should treat a non-created success as a failure", func(t *testing.T) {
			t.Parallel()

			// given
			server, _ := newFakeAPI(t, http.StatusOK, `{"name": "self-replicator", "owner": {"login": "alice"}}`)
			p := github.NewGitHubProviderRepository("ghp_secret", server.URL)

			// when
			_, err := p.CreateRepository(context.Background(), entities.RepositoryInput{Name: "self-replicator"})

			// then
			require.Error(t, err)
			assert.Equal(t, http.StatusOK, entities.StatusCodeOf(err))
		})
	})

	t.Run("PublishFile", func(t *testing.T) {
		t.Parallel()

		t.Run("should put base64 content on the owner's repository", func(t *testing.T) {
			t.Parallel()

			// given
			server, requests := newFakeAPI(t, http.StatusCreated, `{"content": {"path": "js/main.js"}}`)
			p := github.NewGitHubProviderRepository("ghp_secret", server.URL)
			content := []byte("document.title = 'self-replicator';\n")

			// when
			err := p.PublishFile(context.Background(),
				entities.Repository{Owner: "alice", Name: "self-replicator"},
				entities.FileInput{
					Path:    "js/main.js",
					Content: content,
					Message: "Uploaded js/main.js",
					Branch:  "master",
				},
			)

			// then
			require.NoError(t, err)
			require.Len(t, *requests, 1)
			req := (*requests)[0]
			assert.Equal(t, http.MethodPut, req.Method)
			assert.Equal(t, "/repos/alice/self-replicator/contents/js/main.js", req.Path)
			assert.Equal(t, "Bearer ghp_secret", req.Authorization)
			assert.Equal(t, "Uploaded js/main.js", req.Body["message"])
			assert.Equal(t, "master", req.Body["branch"])
			assert.Equal(t, base64.StdEncoding.EncodeToString(content), req.Body["content"])
		})

		t.Run("should pass the server body of a rejected upload through unchanged", func(t *testing.T) {
			t.Parallel()

			tests := []struct {
				name        string
				status      int
				contentType string
				reply       string
			}{
				{
					name:        "json body",
					status:      http.StatusUnprocessableEntity,
					contentType: "application/json",
					reply: `{"message":"Invalid request.\n\n\"sha\" wasn't supplied.",` +
						`"documentation_url":"https://docs.github.com/rest/repos/contents#create-or-update-file-contents"}`,
				},
				{
					name:        "plain text body",
					status:      http.StatusBadGateway,
					contentType: "text/plain",
					reply:       "upstream connect error",
				},
				{
					name:        "html body",
					status:      http.StatusServiceUnavailable,
					contentType: "text/html",
					reply:       "<html><body><h1>Unicorn!</h1></body></html>",
				},
			}

			for _, tt := range tests {
				t.Run(tt.name, func(t *testing.T) {
					t.Parallel()

					// given
					server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
						w.Header().Set("Content-Type", tt.contentType)
						w.WriteHeader(tt.status)
						_, _ = w.Write([]byte(tt.reply))
					}))
					t.Cleanup(server.Close)
					p := github.NewGitHubProviderRepository("ghp_secret", server.URL)

					// when
					err := p.PublishFile(context.Background(),
						entities.Repository{Owner: "alice", Name: "self-replicator"},
						entities.FileInput{Path: "README.md", Content: []byte("# hi"), Message: "Uploaded README.md", Branch: "master"},
					)

					// then
					require.Error(t, err)
					assert.Equal(t, tt.status, entities.StatusCodeOf(err))
					assert.Equal(t, tt.reply, entities.BodyOf(err))
				})
			}
		})
	})

	t.Run("EnablePages", func(t *testing.T) {
		t.Parallel()

		t.Run("should send the preview media type and return html_url", func(t *testing.T) {
			t.Parallel()

			// given
			server, requests := newFakeAPI(t, http.StatusCreated, `{
				"url": "https://api.github.com/repos/alice/self-replicator/pages",
				"html_url": "https://alice.github.io/self-replicator"
			}`)
			p := github.NewGitHubProviderRepository("ghp_secret", server.URL)

			// when
			site, err := p.EnablePages(context.Background(),
				entities.Repository{Owner: "alice", Name: "self-replicator"}, "master")

			// then
			require.NoError(t, err)
			assert.Equal(t, "https://alice.github.io/self-replicator", site.URL)

			require.Len(t, *requests, 1)
			req := (*requests)[0]
			assert.Equal(t, http.MethodPost, req.Method)
			assert.Equal(t, "/repos/alice/self-replicator/pages", req.Path)
			assert.Equal(t,
				"application/vnd.github.switcheroo-preview+json; application/vnd.github.mister-fantastic-preview+json",
				req.Accept,
			)
			source, ok := req.Body["source"].(map[string]interface{})
			require.True(t, ok)
			assert.Equal(t, "master", source["branch"])
		})

		t.Run("should fail when pages are rejected", func(t *testing.T) {
			t.Parallel()

			// given
			server, _ := newFakeAPI(t, http.StatusConflict, `{"message": "GitHub Pages is already enabled."}`)
			p := github.NewGitHubProviderRepository("ghp_secret", server.URL)

			// when
			site, err := p.EnablePages(context.Background(),
				entities.Repository{Owner: "alice", Name: "self-replicator"}, "master")

			// then
			require.Error(t, err)
			assert.Nil(t, site)
			assert.Equal(t, http.StatusConflict, entities.StatusCodeOf(err))
		})
	})
}
