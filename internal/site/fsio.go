package site

import (
	"io"
	"os"

	ferrors "git.home.luguber.info/inful/blogbuilder/internal/foundation/errors"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// ensureDir creates dir and any missing parents. An existing directory is not an error.
func ensureDir(dir string) error {
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return ferrors.WrapError(err, ferrors.CategoryFileSystem, "create directory").
			WithContext("path", dir).
			Build()
	}
	return nil
}

// writeFile replaces path with data.
func writeFile(path string, data string) error {
	if err := os.WriteFile(path, []byte(data), filePerm); err != nil {
		return ferrors.WrapError(err, ferrors.CategoryFileSystem, "write file").
			WithContext("path", path).
			Build()
	}
	return nil
}

// readFile returns the full content of path.
func readFile(path string) ([]byte, error) {
	// #nosec G304 -- path comes from listing the source tree.
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryFileSystem, "read file").
			WithContext("path", path).
			Build()
	}
	return data, nil
}

// copyFile copies src to dst byte for byte and preserves the permission bits.
func copyFile(src, dst string) (err error) {
	wrap := func(err error, op string) error {
		return ferrors.WrapError(err, ferrors.CategoryFileSystem, op).
			WithContext("source", src).
			WithContext("dest", dst).
			Build()
	}

	// #nosec G304 -- path comes from listing the source tree.
	in, err := os.Open(src)
	if err != nil {
		return wrap(err, "open source file")
	}
	defer func() {
		_ = in.Close()
	}()

	info, err := in.Stat()
	if err != nil {
		return wrap(err, "stat source file")
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return wrap(err, "create destination file")
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = wrap(cerr, "close destination file")
		}
	}()

	if _, err := io.Copy(out, in); err != nil {
		return wrap(err, "copy file")
	}
	if err := os.Chmod(dst, info.Mode().Perm()); err != nil {
		return wrap(err, "preserve file mode")
	}
	return nil
}
