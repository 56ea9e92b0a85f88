package ports

// ProjectFinder locates project directories and files on disk.
//
//go:generate go run go.uber.org/mock/mockgen -source=finder.go -destination=mocks/mock_finder.go -package=mocks
type ProjectFinder interface {
	// FindDir returns the first directory directly under root whose name
	// matches pattern, in lexical order.
	FindDir(root, pattern string) (string, bool, error)

	// IsDir reports whether path exists and is a directory.
	IsDir(path string) bool

	// ProjectFiles returns the files in dir matching pattern, in lexical order.
	ProjectFiles(dir, pattern string) ([]string, error)

	// ChildDirs returns the immediate child directories of root, in lexical order.
	ChildDirs(root string) ([]string, error)

	// NestedProjectFiles returns files matching pattern in the children and
	// grandchildren of root, in lexical order.
	NestedProjectFiles(root, pattern string) ([]string, error)
}

// Remover deletes directory trees.
type Remover interface {
	// RemoveAll removes path and everything below it. A missing path is not an error.
	RemoveAll(path string) error
}
