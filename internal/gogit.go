package internal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/cache"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/storage/filesystem"
)

const (
	defaultBranch  = "main"
	snapshotAuthor = "devlog"
	snapshotEmail  = "devlog@local"
)

// Revision is one recorded snapshot of the journal.
type Revision struct {
	Hash      string
	Message   string
	Timestamp time.Time
}

// ShortHash returns the abbreviated revision hash used in command output.
func (r *Revision) ShortHash() string {
	if len(r.Hash) < 7 {
		return r.Hash
	}
	return r.Hash[:7]
}

// SnapshotRepository versions the journal files with git. Object storage
// lives under .snapshots inside the devlog root; the root itself is the
// worktree, so the store and config files are committed in place.
type SnapshotRepository struct {
	repo     *git.Repository
	worktree *git.Worktree
	root     string
}

// OpenSnapshots opens the snapshot repository, initializing it on first use.
func OpenSnapshots(paths Paths) (*SnapshotRepository, error) {
	if err := paths.EnsureRoot(); err != nil {
		return nil, fmt.Errorf("create devlog directory: %w", err)
	}

	fresh := false
	if _, err := os.Stat(paths.SnapshotPath()); os.IsNotExist(err) {
		fresh = true
	}

	fs := osfs.New(paths.SnapshotPath())
	storage := filesystem.NewStorage(fs, cache.NewObjectLRUDefault())
	wt := osfs.New(paths.Root)

	var repo *git.Repository
	var err error
	if fresh {
		repo, err = git.Init(storage, wt)
		if err != nil {
			return nil, fmt.Errorf("init snapshot repository: %w", err)
		}
		cfg, err := repo.Config()
		if err != nil {
			return nil, fmt.Errorf("get repository config: %w", err)
		}
		cfg.Init.DefaultBranch = defaultBranch
		if err := repo.SetConfig(cfg); err != nil {
			return nil, fmt.Errorf("set repository config: %w", err)
		}
	} else {
		repo, err = git.Open(storage, wt)
		if err != nil {
			return nil, fmt.Errorf("open snapshot repository: %w", err)
		}
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("get worktree: %w", err)
	}

	return &SnapshotRepository{repo: repo, worktree: worktree, root: paths.Root}, nil
}

// Snapshot stages the journal files and commits them. Returns ErrNoChanges
// when nothing changed since the last snapshot.
func (r *SnapshotRepository) Snapshot(ctx context.Context, message string) (*Revision, error) {
	for _, name := range []string{storeFile, configFile} {
		if _, err := os.Stat(filepath.Join(r.root, name)); os.IsNotExist(err) {
			continue
		}
		if _, err := r.worktree.Add(name); err != nil {
			return nil, fmt.Errorf("stage %s: %w", name, err)
		}
	}

	status, err := r.worktree.Status()
	if err != nil {
		return nil, fmt.Errorf("get status: %w", err)
	}
	if stagedClean(status) {
		return nil, ErrNoChanges
	}

	hash, err := r.worktree.Commit(message, &git.CommitOptions{
		Author: &object.Signature{
			Name:  snapshotAuthor,
			Email: snapshotEmail,
			When:  time.Now(),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("commit snapshot: %w", err)
	}

	commit, err := r.repo.CommitObject(hash)
	if err != nil {
		return nil, fmt.Errorf("get commit: %w", err)
	}

	return toRevision(commit), nil
}

// History lists snapshots, newest first. A limit of zero means all.
func (r *SnapshotRepository) History(ctx context.Context, limit int) ([]*Revision, error) {
	iter, err := r.repo.Log(&git.LogOptions{})
	if err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get log: %w", err)
	}
	defer iter.Close()

	var revisions []*Revision
	count := 0

	err = iter.ForEach(func(c *object.Commit) error {
		if limit > 0 && count >= limit {
			return io.EOF
		}
		revisions = append(revisions, toRevision(c))
		count++
		return nil
	})
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	return revisions, nil
}

// StoreAt returns the content of the store file as of the given revision.
// Ref may be a full or abbreviated hash, or anything else go-git resolves.
func (r *SnapshotRepository) StoreAt(ctx context.Context, ref string) (string, error) {
	hash, err := r.repo.ResolveRevision(plumbing.Revision(ref))
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrUnknownRevision, ref)
	}

	commit, err := r.repo.CommitObject(*hash)
	if err != nil {
		return "", fmt.Errorf("get commit %s: %w", ref, err)
	}

	tree, err := commit.Tree()
	if err != nil {
		return "", fmt.Errorf("get tree: %w", err)
	}

	file, err := tree.File(storeFile)
	if err != nil {
		if errors.Is(err, object.ErrFileNotFound) {
			return "", nil
		}
		return "", fmt.Errorf("get %s at %s: %w", storeFile, ref, err)
	}

	content, err := file.Contents()
	if err != nil {
		return "", fmt.Errorf("read %s at %s: %w", storeFile, ref, err)
	}
	return content, nil
}

// CurrentStore reads the working copy of the store file.
func (r *SnapshotRepository) CurrentStore() (string, error) {
	data, err := os.ReadFile(filepath.Join(r.root, storeFile))
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read store: %w", err)
	}
	return string(data), nil
}

func stagedClean(status git.Status) bool {
	for _, s := range status {
		if s.Staging != git.Unmodified && s.Staging != git.Untracked {
			return false
		}
	}
	return true
}

func toRevision(c *object.Commit) *Revision {
	return &Revision{
		Hash:      c.Hash.String(),
		Message:   strings.TrimSpace(c.Message),
		Timestamp: c.Author.When,
	}
}
