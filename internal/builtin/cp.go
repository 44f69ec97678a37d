package builtin

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// Cp copies each source into the destination. Directory sources are
// copied recursively. With multiple sources the destination must
// already be a directory; that check runs before any file is touched.
func Cp(env *Env, args []string) (int, error) {
	if len(args) < 2 {
		return 0, errors.New("missing file operand")
	}

	vfs := env.Session.FS()
	sources := args[:len(args)-1]
	dest := env.Session.Resolve(args[len(args)-1])

	destInfo, err := vfs.Stat(dest)
	destIsDir := err == nil && destInfo.IsDir()
	if len(sources) > 1 && !destIsDir {
		fmt.Fprint(env.Out, "cp: target directory does not exist")
		return 1, nil
	}

	var lines []string
	anyFailed := false
	for _, src := range sources {
		resolved := env.Session.Resolve(src)

		info, err := vfs.Stat(resolved)
		if err != nil {
			lines = append(lines, fmt.Sprintf("cp: %v", err))
			anyFailed = true
			continue
		}

		final := dest
		if destIsDir {
			final = filepath.Join(dest, filepath.Base(resolved))
		}

		if info.IsDir() {
			err = copyTree(vfs, resolved, final)
		} else {
			err = copyFile(vfs, resolved, final, info.Mode().Perm())
		}
		if err != nil {
			lines = append(lines, fmt.Sprintf("cp: %v", err))
			anyFailed = true
		}
	}

	fmt.Fprint(env.Out, strings.Join(lines, "\n"))
	if anyFailed {
		return 1, nil
	}
	return 0, nil
}

func copyFile(vfs afero.Fs, src, dst string, perm os.FileMode) error {
	in, err := vfs.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := vfs.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

func copyTree(vfs afero.Fs, src, dst string) error {
	return afero.Walk(vfs, src, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)

		if info.IsDir() {
			return vfs.MkdirAll(target, info.Mode().Perm())
		}
		return copyFile(vfs, path, target, info.Mode().Perm())
	})
}
