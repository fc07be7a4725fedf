// Package source turns the free-form source strings stored with each
// userchrome into typed descriptors and retrieves them into a directory.
//
// A source is one of:
//
//	github:owner/name[#ref]
//	codeberg:owner/name[#ref]
//	gitlab:group/sub/name[#ref]
//	url:https://example.com/theme.zip    (or a bare http(s) URL)
//	path:/some/dir                       (or a bare existing directory)
package source

import (
	"fmt"
	"net/url"
)

// DefaultRef is used when a hosted repo shorthand has no #ref suffix
const DefaultRef = "main"

// Source is a parsed source specification. Implementations are HostedRepo,
// RemoteArchive and LocalPath.
type Source interface {
	fmt.Stringer

	// ShouldCanonicalize reports whether the stored source string should be
	// replaced by String() when the userchrome is added.
	ShouldCanonicalize() bool

	isSource()
}

// Host is a code hosting provider with a known archive URL layout
type Host string

const (
	GitHub   Host = "github"
	Codeberg Host = "codeberg"
	GitLab   Host = "gitlab"
)

// HostedRepo is a repository on a code hosting provider
type HostedRepo struct {
	Host Host
	Repo string // owner/name, or a nested group path on GitLab
	Ref  string
}

func (HostedRepo) isSource() {}

func (h HostedRepo) String() string {
	return fmt.Sprintf("%s:%s#%s", h.Host, h.Repo, h.Ref)
}

// ShouldCanonicalize is false: the shorthand is already durable
func (HostedRepo) ShouldCanonicalize() bool { return false }

// ArchiveURL returns the tarball download URL for the repo at Ref
func (h HostedRepo) ArchiveURL() string {
	switch h.Host {
	case GitHub:
		return fmt.Sprintf("https://github.com/%s/archive/refs/heads/%s.tar.gz", h.Repo, h.Ref)
	case Codeberg:
		return fmt.Sprintf("https://codeberg.org/%s/archive/%s.tar.gz", h.Repo, h.Ref)
	case GitLab:
		return fmt.Sprintf("https://gitlab.com/%s/-/archive/%s/source-%s.tar.gz", h.Repo, h.Ref, h.Ref)
	}
	return ""
}

// RemoteArchive is an archive downloaded over HTTP(S)
type RemoteArchive struct {
	URL *url.URL

	// Implicit is set when the input had no url: prefix
	Implicit bool
}

func (RemoteArchive) isSource() {}

func (r RemoteArchive) String() string {
	if r.Implicit {
		return r.URL.String()
	}
	return "url:" + r.URL.String()
}

func (RemoteArchive) ShouldCanonicalize() bool { return true }

// LocalPath is a directory on the local filesystem
type LocalPath struct {
	Path string // absolute, symlinks resolved

	// Implicit is set when the input had no path: prefix
	Implicit bool
}

func (LocalPath) isSource() {}

func (l LocalPath) String() string {
	if l.Implicit {
		return l.Path
	}
	return "path:" + l.Path
}

func (LocalPath) ShouldCanonicalize() bool { return true }
