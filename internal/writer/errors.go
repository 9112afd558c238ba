package writer

import "fmt"

// UnbalancedBlockError is raised when a Writer is finalized with open blocks
// still pending. A close with no open block is not reported. It indicates a
// generator bug (spec §7), never a model problem.
type UnbalancedBlockError struct {
	FilePath string
	Pending  []string
}

func (e *UnbalancedBlockError) Error() string {
	return fmt.Sprintf("unbalanced block in %s: %d block(s) never closed: %v", e.FilePath, len(e.Pending), e.Pending)
}

// ManifestConflictError is raised when two distinct writes target the same
// manifest path with different content (spec §5: "conflicting writes fail
// with ManifestConflictError").
type ManifestConflictError struct {
	Path string
}

func (e *ManifestConflictError) Error() string {
	return fmt.Sprintf("manifest conflict: %s was written twice with different content", e.Path)
}
