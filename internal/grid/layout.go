package grid

// Columns are counted from west to east and rows from south to north, whatever the layout.

type traversal struct {
	fromEast, fromNorth bool
	// lonFirst: the longitude varies fastest
	lonFirst bool
}

var traversals = [...]traversal{
	NodeLayoutSWNORTHEAST: {},
	NodeLayoutSWEASTNORTH: {lonFirst: true},
	NodeLayoutSENORTHWEST: {fromEast: true},
	NodeLayoutSEWESTNORTH: {fromEast: true, lonFirst: true},
	NodeLayoutNWSOUTHEAST: {fromNorth: true},
	NodeLayoutNWEASTSOUTH: {fromNorth: true, lonFirst: true},
	NodeLayoutNESOUTHWEST: {fromEast: true, fromNorth: true},
	NodeLayoutNEWESTSOUTH: {fromEast: true, fromNorth: true, lonFirst: true},
}

// NodePosition returns the index in the file of the node (col, row) of a grid of cols x rows nodes
func (l NodeLayout) NodePosition(cols, rows, col, row int) int {
	t := traversals[l]
	if t.fromEast {
		col = cols - 1 - col
	}
	if t.fromNorth {
		row = rows - 1 - row
	}
	if t.lonFirst {
		return row*cols + col
	}
	return col*rows + row
}

// NodeCoord returns the node (col, row) stored at the index of a grid of cols x rows nodes
func (l NodeLayout) NodeCoord(cols, rows, index int) (col, row int) {
	t := traversals[l]
	if t.lonFirst {
		col, row = index%cols, index/cols
	} else {
		col, row = index/rows, index%rows
	}
	if t.fromEast {
		col = cols - 1 - col
	}
	if t.fromNorth {
		row = rows - 1 - row
	}
	return col, row
}
