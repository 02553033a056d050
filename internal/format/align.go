package format

// NodeAlignment is the boundary every node starts on. Dictionaries and string
// tables written by the usual tools are 4-byte aligned; readers here do not
// require it, but writers should honour it.
const NodeAlignment = 4

// Align4 returns n aligned up to the next NodeAlignment boundary.
//
// Example:
//
//	Align4(1) = 4
//	Align4(4) = 4
//	Align4(5) = 8
func Align4(n int) int {
	return (n + NodeAlignment - 1) &^ (NodeAlignment - 1)
}
