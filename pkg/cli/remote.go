package cli

import (
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/m-mizutani/goerr/v2"
	"github.com/sujeethshingade/docster/pkg/domain/types"
)

// DetectRepoName reads owner/repo from the origin remote of the git work
// tree containing dir.
func DetectRepoName(dir string) (types.RepoName, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", goerr.Wrap(err, "failed to open git repository", goerr.V("dir", dir))
	}

	remote, err := repo.Remote("origin")
	if err != nil {
		return "", goerr.Wrap(err, "failed to get remote origin")
	}

	if len(remote.Config().URLs) == 0 {
		return "", goerr.New("no remote URL found")
	}

	return ParseRemoteURL(remote.Config().URLs[0])
}

// ParseRemoteURL accepts git@github.com:owner/repo.git and
// https://github.com/owner/repo(.git) forms.
func ParseRemoteURL(url string) (types.RepoName, error) {
	var path string
	switch {
	case strings.HasPrefix(url, "git@github.com:"):
		path = strings.TrimPrefix(url, "git@github.com:")

	case strings.Contains(url, "github.com/"):
		_, path, _ = strings.Cut(url, "github.com/")
	}

	name := types.RepoName(strings.TrimSuffix(strings.TrimSuffix(path, "/"), ".git"))
	if err := name.Validate(); err != nil {
		return "", goerr.Wrap(err, "failed to parse GitHub owner/repo from git remote URL", goerr.V("url", url))
	}

	return name, nil
}
