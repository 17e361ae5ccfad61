package gitrepo

import (
	"strings"

	"github.com/go-git/go-git/v5/config"
)

// AuthorIdentity carries the git author configuration used for commit filtering.
// Resolved once per run and shared read-only across concurrent collectors.
type AuthorIdentity struct {
	Email string
	Name  string
}

// IsEmpty reports whether neither email nor name is configured.
func (identity AuthorIdentity) IsEmpty() bool {
	return len(strings.TrimSpace(identity.Email)) == 0 && len(strings.TrimSpace(identity.Name)) == 0
}

// Matches reports whether the commit author fields belong to this identity.
// Email comparison ignores case, name comparison is exact. An empty identity
// matches every author so a missing configuration never filters everything out.
func (identity AuthorIdentity) Matches(authorEmail string, authorName string) bool {
	if identity.IsEmpty() {
		return true
	}

	if len(identity.Email) > 0 && len(authorEmail) > 0 && strings.EqualFold(identity.Email, authorEmail) {
		return true
	}

	if len(identity.Name) > 0 && len(authorName) > 0 && identity.Name == authorName {
		return true
	}

	return false
}

// ConfiguredIdentityResolver reads the effective git user configuration.
type ConfiguredIdentityResolver struct{}

// NewConfiguredIdentityResolver constructs a resolver backed by the global git configuration.
func NewConfiguredIdentityResolver() *ConfiguredIdentityResolver {
	return &ConfiguredIdentityResolver{}
}

// ResolveIdentity returns the configured user.email and user.name. A missing
// or unreadable configuration yields an empty identity rather than an error;
// callers decide whether an empty identity is fatal.
func (resolver *ConfiguredIdentityResolver) ResolveIdentity() (AuthorIdentity, error) {
	globalConfiguration, loadError := config.LoadConfig(config.GlobalScope)
	if loadError != nil {
		return AuthorIdentity{}, nil
	}

	return AuthorIdentity{
		Email: strings.TrimSpace(globalConfiguration.User.Email),
		Name:  strings.TrimSpace(globalConfiguration.User.Name),
	}, nil
}
