package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/otiai10/copy"
)

// exportSite copies the built site under conf.Root into dest, leaving out
// Markdown sources, dotfiles, leftover temporary files and the configuration
// file.
func exportSite(conf *SiteConf, confFile, dest string) error {
	root, err := filepath.Abs(conf.Root)
	if err != nil {
		return err
	}
	dest, err = filepath.Abs(dest)
	if err != nil {
		return err
	}
	if rel, err := filepath.Rel(root, dest); err == nil && !strings.HasPrefix(rel, "..") {
		return fmt.Errorf("export directory %v is inside the site root", dest)
	}
	confPath, err := filepath.Abs(normalizePath(confFile, root))
	if err != nil {
		return err
	}

	return copy.Copy(root, dest, copy.Options{
		Skip: func(info os.FileInfo, src, _ string) (bool, error) {
			if src == root {
				return false, nil
			}
			name := info.Name()
			switch {
			case strings.HasPrefix(name, "."):
				return true, nil
			case !info.IsDir() && name == sourceFileName:
				return true, nil
			case strings.HasSuffix(name, ".tmp"):
				return true, nil
			}
			return src == confPath, nil
		},
	})
}
