package file

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bnema/layerstats/internal/ports"
)

const (
	outputDirMode  = 0o755
	outputFileMode = 0o644
	tempFilePrefix = ".layerstats-"
)

var ErrOutsideRoot = errors.New("output name must stay inside the output directory")

// Store writes named outputs under a root directory. Writes land in a temp
// file that replaces the target only after the callback and close succeed.
type Store struct {
	root string
}

var _ ports.OutputStore = (*Store)(nil)

func NewStore(root string) (*Store, error) {
	if strings.TrimSpace(root) == "" {
		root = "."
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve output directory: %w", err)
	}

	return &Store{root: filepath.Clean(absRoot)}, nil
}

func (s *Store) Root() string {
	return s.root
}

// Path reports where name lives under the root. It does not validate name;
// Write and Read reject names that leave the root.
func (s *Store) Path(name string) string {
	return filepath.Join(s.root, strings.TrimSpace(name))
}

func (s *Store) Write(ctx context.Context, name string, fn func(io.Writer) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	path, err := s.pathForName(name)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), outputDirMode); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(path), tempFilePrefix+filepath.Base(path)+"-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file for %s: %w", name, err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	buffered := bufio.NewWriter(tempFile)
	if err := fn(buffered); err != nil {
		_ = tempFile.Close()
		return err
	}

	if err := buffered.Flush(); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("flush %s: %w", name, err)
	}

	if err := tempFile.Chmod(outputFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp file for %s: %w", name, err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp file for %s: %w", name, err)
	}

	if err := os.Rename(tempName, path); err != nil {
		return fmt.Errorf("replace %s: %w", name, err)
	}

	cleanup = false

	return nil
}

func (s *Store) Read(ctx context.Context, name string, fn func(io.Reader) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	path, err := s.pathForName(name)
	if err != nil {
		return err
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("open %s: file not found: %w", name, err)
		}
		return fmt.Errorf("open %s: %w", name, err)
	}
	defer f.Close()

	return fn(bufio.NewReader(f))
}

func (s *Store) pathForName(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", errors.New("output name is empty")
	}

	cleaned := filepath.Clean(trimmed)
	if cleaned == "." || !filepath.IsLocal(cleaned) {
		return "", fmt.Errorf("invalid output name %q: %w", name, ErrOutsideRoot)
	}

	return filepath.Join(s.root, cleaned), nil
}
