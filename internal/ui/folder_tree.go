package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/android-template-generator/internal/catalog"
)

// FolderTree renders a template structure with expandable folders. Expand
// state is kept in the catalog.TreeView, so rebuilding the widget for another
// tier starts from the default expansion.
type FolderTree struct {
	view *catalog.TreeView
	tree *widget.Tree
}

// NewFolderTree builds a tree widget for root
func NewFolderTree(root *catalog.Node) *FolderTree {
	ft := &FolderTree{view: catalog.NewTreeView(root)}

	ft.tree = widget.NewTree(
		ft.view.ChildIDs,
		ft.view.IsBranch,
		func(branch bool) fyne.CanvasObject {
			return container.NewHBox(widget.NewIcon(NodeIcon(branch, false)), widget.NewLabel(""))
		},
		ft.updateNode,
	)
	for _, id := range ft.view.OpenIDs() {
		ft.tree.OpenBranch(id)
	}

	ft.tree.OnBranchOpened = func(id widget.TreeNodeID) {
		ft.view.SetOpen(id, true)
		ft.tree.RefreshItem(id)
	}
	ft.tree.OnBranchClosed = func(id widget.TreeNodeID) {
		ft.view.SetOpen(id, false)
		ft.tree.RefreshItem(id)
	}
	return ft
}

// Widget returns the tree widget
func (ft *FolderTree) Widget() *widget.Tree {
	return ft.tree
}

// View returns the expand state model
func (ft *FolderTree) View() *catalog.TreeView {
	return ft.view
}

func (ft *FolderTree) updateNode(id widget.TreeNodeID, branch bool, obj fyne.CanvasObject) {
	row, ok := obj.(*fyne.Container)
	if !ok || len(row.Objects) < 2 {
		return
	}
	node, found := ft.view.Node(id)
	if !found {
		return
	}

	if icon, ok := row.Objects[0].(*widget.Icon); ok {
		icon.SetResource(NodeIcon(branch, ft.view.IsOpen(id)))
	}
	if label, ok := row.Objects[1].(*widget.Label); ok {
		label.SetText(node.Name)
		label.TextStyle = fyne.TextStyle{Bold: branch}
		label.Refresh()
	}
}
