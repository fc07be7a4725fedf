package source

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/mitchellh/go-homedir"
)

var (
	githubPattern   = regexp.MustCompile(`^github:(?P<repo>[\w-]+/[\w-]+)(?:#(?P<ref>[\w-]+))?$`)
	codebergPattern = regexp.MustCompile(`^codeberg:(?P<repo>[\w-]+/[\w-]+)(?:#(?P<ref>[\w-]+))?$`)
	gitlabPattern   = regexp.MustCompile(`^gitlab:(?P<repo>[\w-]+(?:/[\w-]+)+)(?:#(?P<ref>[\w-]+))?$`)
)

var hostPatterns = []struct {
	host    Host
	pattern *regexp.Regexp
}{
	{GitHub, githubPattern},
	{Codeberg, codebergPattern},
	{GitLab, gitlabPattern},
}

// Parse parses a source specification. Hosted repo shorthands are tried
// first, then the url: and path: prefixes, then bare URLs and finally bare
// directories.
func Parse(input string) (Source, error) {
	for _, hp := range hostPatterns {
		if m := hp.pattern.FindStringSubmatch(input); m != nil {
			ref := m[hp.pattern.SubexpIndex("ref")]
			if ref == "" {
				ref = DefaultRef
			}
			return HostedRepo{
				Host: hp.host,
				Repo: m[hp.pattern.SubexpIndex("repo")],
				Ref:  ref,
			}, nil
		}
	}

	if rest, ok := strings.CutPrefix(input, "url:"); ok {
		u, err := parseURL(rest)
		if err != nil {
			return nil, &SourceError{Op: "parse", Source: input, Err: err}
		}
		return RemoteArchive{URL: u}, nil
	}

	if rest, ok := strings.CutPrefix(input, "path:"); ok {
		path, err := canonicalDir(rest)
		if err != nil {
			return nil, &SourceError{Op: "parse", Source: input, Err: err}
		}
		return LocalPath{Path: path}, nil
	}

	if strings.HasPrefix(input, "https://") || strings.HasPrefix(input, "http://") {
		u, err := parseURL(input)
		if err != nil {
			return nil, &SourceError{Op: "parse", Source: input, Err: err}
		}
		return RemoteArchive{URL: u, Implicit: true}, nil
	}

	if input != "" {
		if expanded, err := homedir.Expand(input); err == nil {
			if info, err := os.Stat(expanded); err == nil && info.IsDir() {
				path, err := canonicalDir(input)
				if err != nil {
					return nil, &SourceError{Op: "parse", Source: input, Err: err}
				}
				return LocalPath{Path: path, Implicit: true}, nil
			}
		}
	}

	return nil, &SourceError{Op: "parse", Source: input, Err: ErrInvalidSource}
}

// ShouldCanonicalize reports whether src is stored in its canonical form
// rather than as typed by the user
func ShouldCanonicalize(src Source) bool {
	return src.ShouldCanonicalize()
}

// Canonical returns the string to store for a source the user typed as input
func Canonical(input string, src Source) string {
	if src.ShouldCanonicalize() {
		return src.String()
	}
	return input
}

func parseURL(raw string) (*url.URL, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, err
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidURL, raw)
	}
	return u, nil
}

// canonicalDir expands ~, then returns the absolute, symlink-free form of
// path. It fails when path is not an existing directory.
func canonicalDir(path string) (string, error) {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return "", err
	}

	info, err := os.Stat(expanded)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s", ErrNotDirectory, path)
		}
		return "", err
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%w: %s", ErrNotDirectory, path)
	}

	abs, err := filepath.Abs(expanded)
	if err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(abs)
}
