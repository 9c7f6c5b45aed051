package scenegraph

// Find locates a node by name. With recursive true the whole subtree rooted
// at root (including root itself) is searched depth-first; otherwise only
// root's direct children are checked.
//
// Parameters:
//   - root: the subtree root to search
//   - name: the node name to match
//   - recursive: whether to descend beyond direct children
//
// Returns:
//   - Node: the first matching node, or nil
//   - bool: true if a match was found
func Find(root Node, name string, recursive bool) (Node, bool) {
	if root == nil {
		return nil, false
	}
	if !recursive {
		for _, c := range root.Children() {
			if c.Name() == name {
				return c, true
			}
		}
		return nil, false
	}
	if root.Name() == name {
		return root, true
	}
	for _, c := range root.Children() {
		if found, ok := Find(c, name, true); ok {
			return found, true
		}
	}
	return nil, false
}

// Enumerate collects every node in the subtree rooted at root (including
// root) for which predicate returns true, in depth-first preorder. A nil
// predicate matches every node.
//
// Parameters:
//   - root: the subtree root to walk
//   - predicate: the filter to apply
//
// Returns:
//   - []Node: the matching nodes in visit order
func Enumerate(root Node, predicate func(Node) bool) []Node {
	if root == nil {
		return nil
	}
	var out []Node
	var walk func(n Node)
	walk = func(n Node) {
		if predicate == nil || predicate(n) {
			out = append(out, n)
		}
		for _, c := range n.Children() {
			walk(c)
		}
	}
	walk(root)
	return out
}
