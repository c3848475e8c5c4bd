package types

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

/*
FaceKey identifies a face of a simplicial complex by its vertex indices, independent of the order in which they
are listed. The face [4 0 2] is stored as "0:2:4", in the ascending order of the index values, so that faces shared
between neighboring simplices compare equal.
*/
type FaceKey string

func NewFaceKey(verts []int) (fk FaceKey) {
	var (
		sorted = make([]int, len(verts))
		sb     strings.Builder
	)
	copy(sorted, verts)
	sort.Ints(sorted)
	for i, v := range sorted {
		if v < 0 {
			panic(fmt.Errorf("unable to key a face with negative vertex index %d", v))
		}
		if i != 0 {
			sb.WriteByte(':')
		}
		sb.WriteString(strconv.Itoa(v))
	}
	return FaceKey(sb.String())
}

// FaceSet records which faces have been seen
type FaceSet map[FaceKey]struct{}

// Add reports whether verts was newly added
func (fs FaceSet) Add(verts []int) (added bool) {
	key := NewFaceKey(verts)
	if _, ok := fs[key]; ok {
		return false
	}
	fs[key] = struct{}{}
	return true
}
