package filesystem

import "path/filepath"

func Abs(p string) string {
	p, err := filepath.Abs(p)
	if err != nil {
		panic(err)
	}

	return p
}
