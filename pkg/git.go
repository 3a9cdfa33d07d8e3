package cargobump

import (
	"fmt"
	"path/filepath"
	"sort"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing/object"
	"golang.org/x/mod/semver"
)

// GitResult describes the commit (and tag) created for a release.
type GitResult struct {
	Commit string
	Tag    string
}

// openWorktree opens the repository containing root and returns its
// worktree together with the resolved worktree directory.
func openWorktree(root string) (*git.Repository, *git.Worktree, string, error) {
	repo, err := git.PlainOpenWithOptions(root, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, nil, "", fmt.Errorf("opening git repository at %s: %w", root, err)
	}
	wt, err := repo.Worktree()
	if err != nil {
		return nil, nil, "", fmt.Errorf("opening worktree: %w", err)
	}
	top, err := filepath.Abs(wt.Filesystem.Root())
	if err == nil {
		top, err = filepath.EvalSymlinks(top)
	}
	if err != nil {
		return nil, nil, "", fmt.Errorf("resolving worktree root: %w", err)
	}
	return repo, wt, top, nil
}

// worktreePaths converts file paths to the slash-separated form used by
// the worktree index.
func worktreePaths(top string, paths []string) ([]string, error) {
	rels := make([]string, 0, len(paths))
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve path %q: %w", p, err)
		}
		if resolved, err := filepath.EvalSymlinks(abs); err == nil {
			abs = resolved
		}
		rel, err := filepath.Rel(top, abs)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve path %q: %w", p, err)
		}
		rels = append(rels, filepath.ToSlash(rel))
	}
	return rels, nil
}

// CheckClean ensures that only the allowed files have changes in the
// worktree containing root. Untracked files count as changes.
func CheckClean(root string, allowed []string) error {
	_, wt, top, err := openWorktree(root)
	if err != nil {
		return err
	}
	rels, err := worktreePaths(top, allowed)
	if err != nil {
		return err
	}
	allowedSet := make(map[string]struct{}, len(rels))
	for _, rel := range rels {
		allowedSet[rel] = struct{}{}
	}

	status, err := wt.Status()
	if err != nil {
		return fmt.Errorf("failed to check git status: %w", err)
	}

	var disallowed []string
	for path, st := range status {
		if st.Staging == git.Unmodified && st.Worktree == git.Unmodified {
			continue
		}
		if _, ok := allowedSet[path]; !ok {
			disallowed = append(disallowed, path)
		}
	}
	if len(disallowed) > 0 {
		sort.Strings(disallowed)
		return fmt.Errorf("%w; uncommitted files not included in commit: %v", ErrDirtyWorktree, disallowed)
	}
	return nil
}

// signature returns the committer identity from git config, or a fixed
// fallback when none is configured.
func signature(repo *git.Repository) *object.Signature {
	sig := &object.Signature{Name: "cargobump", Email: "cargobump@localhost", When: time.Now()}
	cfg, err := repo.ConfigScoped(config.GlobalScope)
	if err != nil {
		return sig
	}
	if cfg.User.Name != "" {
		sig.Name = cfg.User.Name
	}
	if cfg.User.Email != "" {
		sig.Email = cfg.User.Email
	}
	return sig
}

// CommitRelease stages paths, commits them with version as the message
// and, when tag is set, tags the commit "v<version>".
func CommitRelease(root string, paths []string, version string, tag bool) (GitResult, error) {
	var res GitResult

	tagName := "v" + version
	if tag && !semver.IsValid(tagName) {
		return res, fmt.Errorf("tag %q is not valid semver", tagName)
	}

	repo, wt, top, err := openWorktree(root)
	if err != nil {
		return res, err
	}
	rels, err := worktreePaths(top, paths)
	if err != nil {
		return res, err
	}
	for _, rel := range rels {
		if _, err := wt.Add(rel); err != nil {
			return res, fmt.Errorf("git add %s failed: %w", rel, err)
		}
	}

	hash, err := wt.Commit(version, &git.CommitOptions{Author: signature(repo)})
	if err != nil {
		return res, fmt.Errorf("git commit failed: %w", err)
	}
	res.Commit = hash.String()

	if tag {
		if _, err := repo.CreateTag(tagName, hash, nil); err != nil {
			return res, fmt.Errorf("git tag failed: %w", err)
		}
		res.Tag = tagName
	}
	return res, nil
}
