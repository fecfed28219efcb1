package catalog

import "strconv"

// DefaultOpenDepth is the number of levels expanded before the user toggles anything
const DefaultOpenDepth = 2

// Row is one visible line of a rendered folder tree
type Row struct {
	ID          string
	Name        string
	Kind        NodeKind
	Depth       int
	HasChildren bool
	Open        bool
}

// TreeView is the view-model of a folder tree preview. Expand state lives
// here, keyed by node path, and never touches the catalog data. A TreeView is
// owned by the UI goroutine and is not safe for concurrent use.
type TreeView struct {
	rootID   string
	nodes    map[string]*Node
	children map[string][]string
	depth    map[string]int
	open     map[string]bool
}

// NewTreeView indexes a tree for rendering
func NewTreeView(root *Node) *TreeView {
	v := &TreeView{
		nodes:    make(map[string]*Node),
		children: make(map[string][]string),
		depth:    make(map[string]int),
		open:     make(map[string]bool),
	}
	if root == nil {
		return v
	}
	v.rootID = root.Name
	v.index(v.rootID, root, 0)
	return v
}

func (v *TreeView) index(id string, n *Node, depth int) {
	v.nodes[id] = n
	v.depth[id] = depth
	if !n.IsFolder() {
		return
	}

	seen := make(map[string]int, len(n.Children))
	ids := make([]string, 0, len(n.Children))
	for _, child := range n.Children {
		childID := id + "/" + child.Name
		if count := seen[child.Name]; count > 0 {
			childID += "#" + strconv.Itoa(count)
		}
		seen[child.Name]++
		ids = append(ids, childID)
		v.index(childID, child, depth+1)
	}
	v.children[id] = ids
}

// RootID returns the path of the root node, or "" for an empty tree
func (v *TreeView) RootID() string {
	return v.rootID
}

// Node returns the node at a path
func (v *TreeView) Node(id string) (*Node, bool) {
	n, ok := v.nodes[id]
	return n, ok
}

// ChildIDs returns the child paths of a node. The empty id addresses the
// virtual parent of the root.
func (v *TreeView) ChildIDs(id string) []string {
	if id == "" {
		if v.rootID == "" {
			return nil
		}
		return []string{v.rootID}
	}
	return v.children[id]
}

// IsBranch reports whether the node at id is a folder
func (v *TreeView) IsBranch(id string) bool {
	if id == "" {
		return true
	}
	n, ok := v.nodes[id]
	return ok && n.IsFolder()
}

// Depth returns the depth of a node, the root being 0
func (v *TreeView) Depth(id string) int {
	return v.depth[id]
}

// IsOpen reports whether a folder shows its children
func (v *TreeView) IsOpen(id string) bool {
	if open, ok := v.open[id]; ok {
		return open
	}
	return v.IsBranch(id) && v.depth[id] < DefaultOpenDepth
}

// SetOpen records the expand state of a folder. Files are ignored.
func (v *TreeView) SetOpen(id string, open bool) {
	if !v.IsBranch(id) || id == "" {
		return
	}
	v.open[id] = open
}

// Toggle flips a folder and returns its new state
func (v *TreeView) Toggle(id string) bool {
	if !v.IsBranch(id) || id == "" {
		return false
	}
	open := !v.IsOpen(id)
	v.open[id] = open
	return open
}

// OpenIDs returns the paths of all folders currently expanded, in tree order
func (v *TreeView) OpenIDs() []string {
	var out []string
	var walk func(id string)
	walk = func(id string) {
		if !v.IsBranch(id) {
			return
		}
		if v.IsOpen(id) {
			out = append(out, id)
		}
		for _, child := range v.children[id] {
			walk(child)
		}
	}
	if v.rootID != "" {
		walk(v.rootID)
	}
	return out
}

// Rows flattens the visible part of the tree in display order
func (v *TreeView) Rows() []Row {
	var rows []Row
	var walk func(id string)
	walk = func(id string) {
		n := v.nodes[id]
		open := n.HasChildren() && v.IsOpen(id)
		rows = append(rows, Row{
			ID:          id,
			Name:        n.Name,
			Kind:        n.Kind,
			Depth:       v.depth[id],
			HasChildren: n.HasChildren(),
			Open:        open,
		})
		if !open {
			return
		}
		for _, child := range v.children[id] {
			walk(child)
		}
	}
	if v.rootID != "" {
		walk(v.rootID)
	}
	return rows
}
