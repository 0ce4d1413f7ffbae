package models

import "github.com/google/go-cmp/cmp"

// Equal is the structural equality check shared by every domain type.
// Officer is the one exception handled by its own Equals: its identity is
// id and officer_number, not the embedded user blob.
func Equal(a, b interface{}) bool {
	return cmp.Equal(a, b)
}
