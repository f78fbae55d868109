package repositories

import "context"

// CredentialRepository supplies the access token when none was given explicitly.
type CredentialRepository interface {
	Credential(ctx context.Context) (string, error)
}
