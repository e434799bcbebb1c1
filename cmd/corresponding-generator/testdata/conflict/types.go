// Package conflict declares a field named like the method generated for it.
package conflict

type A struct {
	MoveFromB int
}

type B struct {
	X int
}
