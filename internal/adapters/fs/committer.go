package fs

import (
	"errors"
	"fmt"
	"io"
	iofs "io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/xid"
	"go.trai.ch/limbus/internal/core/domain"
	"go.trai.ch/limbus/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Committer = (*Committer)(nil)

// Committer replaces localization directories under the game's Lang directory.
//
// New content is copied into a hidden sibling of the target and swapped in
// with renames, so the target holds either the old or the new tree.
type Committer struct {
	logger ports.Logger
}

// NewCommitter creates a new Committer.
func NewCommitter(logger ports.Logger) *Committer {
	return &Committer{logger: logger}
}

// Commit replaces <root>/LimbusCompany_Data/Lang/<id> with the contents of payloadDir.
func (c *Committer) Commit(root, id, payloadDir string) error {
	if err := validateID(id); err != nil {
		return err
	}

	langDir := domain.LangPath(root)
	target := filepath.Join(langDir, id)

	if err := os.MkdirAll(langDir, domain.DirPerm); err != nil {
		return commitErr(err, target)
	}

	staging, err := os.MkdirTemp(langDir, "."+id+".staging-*")
	if err != nil {
		return commitErr(err, target)
	}
	defer func() {
		if _, statErr := os.Lstat(staging); statErr == nil {
			_ = os.RemoveAll(staging)
		}
	}()

	if err := copyTree(payloadDir, staging); err != nil {
		return commitErr(err, target)
	}

	if err := c.swap(staging, target); err != nil {
		return commitErr(err, target)
	}

	return nil
}

// Remove deletes the installed directory of id. A missing directory is a no-op.
func (c *Committer) Remove(root, id string) error {
	if err := validateID(id); err != nil {
		return err
	}

	target := domain.LocalizationPath(root, id)
	if _, err := os.Lstat(target); errors.Is(err, iofs.ErrNotExist) {
		return nil
	}

	if err := os.RemoveAll(target); err != nil {
		return domain.Classify(domain.ErrFilesystem,
			zerr.With(zerr.Wrap(err, domain.ErrUninstallFailed.Error()), "path", target))
	}
	return nil
}

// Exists reports whether the installed directory of id is present.
func (c *Committer) Exists(root, id string) bool {
	if validateID(id) != nil {
		return false
	}
	info, err := os.Stat(domain.LocalizationPath(root, id))
	return err == nil && info.IsDir()
}

// swap moves staging to target. An existing target is first renamed aside
// and only deleted after the new tree is in place. When the old tree cannot
// be renamed it is removed instead.
func (c *Committer) swap(staging, target string) error {
	if _, err := os.Lstat(target); errors.Is(err, iofs.ErrNotExist) {
		return os.Rename(staging, target)
	}

	backup := filepath.Join(filepath.Dir(target), "."+filepath.Base(target)+".old-"+xid.New().String())
	if err := os.Rename(target, backup); err != nil {
		c.logger.Warn(fmt.Sprintf("falling back to remove and rename for %s: %v", target, err))
		if err := os.RemoveAll(target); err != nil {
			return err
		}
		return os.Rename(staging, target)
	}

	if err := os.Rename(staging, target); err != nil {
		if restoreErr := os.Rename(backup, target); restoreErr != nil {
			return errors.Join(err, restoreErr)
		}
		return err
	}

	if err := os.RemoveAll(backup); err != nil {
		c.logger.Warn(fmt.Sprintf("failed to remove previous version at %s: %v", backup, err))
	}
	return nil
}

// copyTree copies the contents of src into dst with an explicit work stack.
// Archive files named localization.zip are never copied.
func copyTree(src, dst string) error {
	stack := []string{"."}

	for len(stack) > 0 {
		rel := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		entries, err := os.ReadDir(filepath.Join(src, rel))
		if err != nil {
			return err
		}

		for _, entry := range entries {
			if entry.Name() == domain.ArchiveFileName {
				continue
			}

			entryRel := filepath.Join(rel, entry.Name())
			switch {
			case entry.IsDir():
				if err := os.MkdirAll(filepath.Join(dst, entryRel), domain.DirPerm); err != nil {
					return err
				}
				stack = append(stack, entryRel)
			case entry.Type().IsRegular():
				if err := copyFile(filepath.Join(src, entryRel), filepath.Join(dst, entryRel)); err != nil {
					return err
				}
			}
		}
	}

	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src) //nolint:gosec // Path is produced by copyTree
	if err != nil {
		return err
	}
	defer in.Close() //nolint:errcheck // read side

	info, err := in.Stat()
	if err != nil {
		return err
	}

	//nolint:gosec // dst is confined to the staging directory
	out, err := os.OpenFile(dst, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, info.Mode().Perm())
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}

func validateID(id string) error {
	if id == "" || id == "." || id == ".." || strings.ContainsAny(id, `/\`) {
		return domain.Classify(domain.ErrConfiguration, domain.With(domain.ErrInvalidLocalizationID, "id", id))
	}
	return nil
}

func commitErr(err error, target string) error {
	return domain.Classify(domain.ErrFilesystem,
		zerr.With(zerr.Wrap(err, domain.ErrCommitFailed.Error()), "path", target))
}
