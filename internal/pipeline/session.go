package pipeline

import (
	"io"
	"os"
	"path/filepath"
)

// session owns one render's intermediate artifacts: a private temp directory
// released deterministically on success and on every failure path.
type session struct {
	dir  string
	keep bool
}

func newSession(baseDir string, keep bool) (*session, error) {
	if baseDir == "" {
		baseDir = ".cache"
	}
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, err
	}
	dir, err := os.MkdirTemp(baseDir, "render-")
	if err != nil {
		return nil, err
	}
	return &session{dir: dir, keep: keep}, nil
}

func (s *session) Dir() string { return s.dir }

func (s *session) Path(name string) string {
	return filepath.Join(s.dir, name)
}

func (s *session) Close() error {
	if s.keep {
		return nil
	}
	return os.RemoveAll(s.dir)
}

// moveFile publishes the finished render: plain rename when possible, copy
// plus rename within the destination directory across filesystems. Either
// way the destination path only ever appears complete.
func moveFile(src, dst string) error {
	if err := os.Rename(src, dst); err == nil {
		return nil
	}
	tmp := dst + ".part"
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()
	out, err := os.Create(tmp)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(tmp)
		return err
	}
	if err := out.Close(); err != nil {
		os.Remove(tmp)
		return err
	}
	if err := os.Rename(tmp, dst); err != nil {
		os.Remove(tmp)
		return err
	}
	return os.Remove(src)
}
