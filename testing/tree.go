package testing

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// WriteTree materialises files (slash path -> content) under root.
func WriteTree(root string, files map[string]string) error {
	for name, content := range files {
		target := filepath.Join(root, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return fmt.Errorf("failed to create directory for %s: %w", name, err)
		}
		if err := os.WriteFile(target, []byte(content), 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", name, err)
		}
	}
	return nil
}

// ReadTree snapshots every regular file under root as slash path -> content.
// Directories show up with a trailing slash and empty content so empty
// directories are visible in comparisons.
func ReadTree(root string) (map[string]string, error) {
	tree := make(map[string]string)

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		if rel == "." {
			return nil
		}
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			tree[rel+"/"] = ""
			return nil
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		tree[rel] = string(content)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to snapshot %s: %w", root, err)
	}

	return tree, nil
}
