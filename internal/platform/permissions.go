package platform

import (
	"os"
	"runtime"
)

// Requested modes for generated directories and files. The process umask
// filters both, as with mkdir(2) and open(2).
const (
	DirPerm  os.FileMode = 0777
	FilePerm os.FileMode = 0666
)

// Chmod sets file permissions. On Windows this is a no-op because Windows
// does not support Unix-style permission bits.
func Chmod(path string, mode os.FileMode) error {
	if runtime.GOOS == "windows" {
		return nil
	}
	return os.Chmod(path, mode)
}

// FileModeIn returns the mode a new regular file would get inside dir when
// dir was itself created with DirPerm: the umask-filtered directory bits
// restricted to FilePerm.
func FileModeIn(dir string) (os.FileMode, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return 0, err
	}
	return info.Mode().Perm() & FilePerm, nil
}
