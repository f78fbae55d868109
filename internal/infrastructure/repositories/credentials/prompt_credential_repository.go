package credentials

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	logger "github.com/sirupsen/logrus"
	"golang.org/x/term"

	"github.com/rios0rios0/selfreplicator/internal/domain/repositories"
)

const promptTitle = "GitHub personal access token"

// tokenEnvVars are checked in order before prompting.
var tokenEnvVars = []string{"GITHUB_TOKEN", "GH_TOKEN"} //nolint:gochecknoglobals // fixed lookup order

// PromptOptions overrides the process-level inputs of a PromptCredentialRepository.
// Zero fields fall back to the real environment, stdin and terminal.
type PromptOptions struct {
	LookupEnv  func(key string) (string, bool)
	Stdin      io.Reader
	IsTerminal func() bool
	Prompt     func(title string) (string, error)
}

// PromptCredentialRepository resolves a token from the environment, then asks for it:
// a masked form when stdin is a terminal, a single line of stdin when it is piped.
type PromptCredentialRepository struct {
	lookupEnv  func(key string) (string, bool)
	stdin      io.Reader
	isTerminal func() bool
	prompt     func(title string) (string, error)
}

// NewPromptCredentialRepository creates a credential repository bound to the process.
func NewPromptCredentialRepository() repositories.CredentialRepository {
	return NewPromptCredentialRepositoryWith(PromptOptions{})
}

// NewPromptCredentialRepositoryWith creates a credential repository with the given overrides.
func NewPromptCredentialRepositoryWith(opts PromptOptions) *PromptCredentialRepository {
	repo := &PromptCredentialRepository{
		lookupEnv:  opts.LookupEnv,
		stdin:      opts.Stdin,
		isTerminal: opts.IsTerminal,
		prompt:     opts.Prompt,
	}
	if repo.lookupEnv == nil {
		repo.lookupEnv = os.LookupEnv
	}
	if repo.stdin == nil {
		repo.stdin = os.Stdin
	}
	if repo.isTerminal == nil {
		repo.isTerminal = func() bool { return term.IsTerminal(int(os.Stdin.Fd())) }
	}
	if repo.prompt == nil {
		repo.prompt = passwordInput
	}
	return repo
}

// Credential returns the first token found. An empty string with a nil error means
// the user supplied nothing.
func (r *PromptCredentialRepository) Credential(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	for _, key := range tokenEnvVars {
		if val, ok := r.lookupEnv(key); ok && strings.TrimSpace(val) != "" {
			logger.Debugf("Using token from %s", key)
			return strings.TrimSpace(val), nil
		}
	}

	if r.isTerminal() {
		token, err := r.prompt(promptTitle)
		if err != nil {
			return "", fmt.Errorf("failed to read token: %w", err)
		}
		return strings.TrimSpace(token), nil
	}

	scanner := bufio.NewScanner(r.stdin)
	if scanner.Scan() {
		return strings.TrimSpace(scanner.Text()), nil
	}
	if err := scanner.Err(); err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read token from stdin: %w", err)
	}
	return "", nil
}

// passwordInput shows a masked input form.
func passwordInput(title string) (string, error) {
	var token string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(title).
				Placeholder("ghp_...").
				EchoMode(huh.EchoModePassword).
				Value(&token),
		),
	)

	if err := form.Run(); err != nil {
		return "", err
	}
	return token, nil
}
