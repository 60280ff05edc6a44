// This code is available on the terms of the project LICENSE.md file,
// also available online at https://blueoakcouncil.org/license/1.0.0.

package dex

import (
	"os"
	"os/user"
	"path/filepath"
	"runtime"
	"strings"
)

// FileExists reports whether the named file or directory exists.
func FileExists(name string) bool {
	_, err := os.Stat(name)
	return err == nil || !os.IsNotExist(err)
}

// CleanAndExpandPath expands environment variables and a leading ~ or ~user in
// the passed path, cleans the result, and returns it. If the home directory
// cannot be determined, the current directory is used in its place.
func CleanAndExpandPath(path string) string {
	if path == "" {
		return path
	}

	// os.ExpandEnv does not handle Windows cmd.exe-style %VARIABLE%, but the
	// POSIX-style $VARIABLE works on every platform.
	path = os.ExpandEnv(path)
	if !strings.HasPrefix(path, "~") {
		return filepath.Clean(path)
	}

	seps := string(os.PathSeparator)
	if runtime.GOOS == "windows" {
		seps += "/"
	}
	userName, rest := path[1:], ""
	if i := strings.IndexAny(userName, seps); i != -1 {
		userName, rest = userName[:i], userName[i:]
	}

	return filepath.Join(homeDir(userName), rest)
}

func homeDir(userName string) string {
	var u *user.User
	var err error
	if userName == "" {
		u, err = user.Current()
	} else {
		u, err = user.Lookup(userName)
	}
	if err != nil || u.HomeDir == "" {
		return "."
	}
	return u.HomeDir
}
