package currency

import (
	"io/fs"
	"path"
)

// IconPath returns the path of the flag image for code within fsys, which is
// dir/<code>.png. A missing image is not an error; the flag is just absent.
func IconPath(fsys fs.FS, dir, code string) (string, bool) {
	p := path.Join(dir, code+".png")
	fi, err := fs.Stat(fsys, p)
	if err != nil || fi.IsDir() {
		return "", false
	}
	return p, true
}
