// Package git produces unified diffs from a local repository so changes can
// be gated before they are pushed.
package git

import (
	"context"
	"errors"
	"fmt"

	goGit "github.com/go-git/go-git/v5"
	goGitPlumbing "github.com/go-git/go-git/v5/plumbing"
	goGitObject "github.com/go-git/go-git/v5/plumbing/object"
)

var ErrEmptyRepoPath = errors.New("repository path cannot be empty")

// Diff returns the unified diff between the base and head revisions of the
// repository at repoPath. An empty head means HEAD. An empty base means the
// first parent of head, or the empty tree when head is a root commit.
func Diff(ctx context.Context, repoPath, base, head string) (string, error) {
	if repoPath == "" {
		return "", ErrEmptyRepoPath
	}

	repo, err := goGit.PlainOpen(repoPath)
	if err != nil {
		return "", fmt.Errorf("failed to open repository at %s: %w", repoPath, err)
	}

	if head == "" {
		head = "HEAD"
	}

	headCommit, err := resolveCommit(repo, head)
	if err != nil {
		return "", err
	}

	headTree, err := headCommit.Tree()
	if err != nil {
		return "", fmt.Errorf("failed to get tree of %s: %w", head, err)
	}

	baseTree, err := baseTree(repo, headCommit, base)
	if err != nil {
		return "", err
	}

	patch, err := baseTree.PatchContext(ctx, headTree)
	if err != nil {
		return "", fmt.Errorf("failed to diff %s..%s: %w", base, head, err)
	}

	return patch.String(), nil
}

func baseTree(repo *goGit.Repository, head *goGitObject.Commit, base string) (*goGitObject.Tree, error) {
	if base != "" {
		commit, err := resolveCommit(repo, base)
		if err != nil {
			return nil, err
		}
		tree, err := commit.Tree()
		if err != nil {
			return nil, fmt.Errorf("failed to get tree of %s: %w", base, err)
		}
		return tree, nil
	}

	if head.NumParents() == 0 {
		return nil, nil
	}

	parent, err := head.Parent(0)
	if err != nil {
		return nil, fmt.Errorf("failed to get parent of %s: %w", head.Hash, err)
	}

	tree, err := parent.Tree()
	if err != nil {
		return nil, fmt.Errorf("failed to get tree of %s: %w", parent.Hash, err)
	}
	return tree, nil
}

func resolveCommit(repo *goGit.Repository, rev string) (*goGitObject.Commit, error) {
	hash, err := repo.ResolveRevision(goGitPlumbing.Revision(rev))
	if err != nil {
		return nil, fmt.Errorf("failed to resolve revision %s: %w", rev, err)
	}

	commit, err := repo.CommitObject(*hash)
	if err != nil {
		return nil, fmt.Errorf("failed to get commit object %s: %w", rev, err)
	}
	return commit, nil
}
