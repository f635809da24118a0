// Corvid is the front-end toolchain for the Corvid language.
//
// Usage:
//
//	# Dump the syntax tree of a source file
//	corvid parse main.cv
//
//	# Reprint a source file from its syntax tree
//	corvid fmt main.cv
//
//	# Replace every subtree matching an expression pattern
//	corvid rewrite main.cv --match "2" --with "99"
package main

func main() {
	Execute()
}
