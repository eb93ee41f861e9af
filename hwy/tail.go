// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package hwy

// ProcessWithTail walks [0, size) in lane groups of type G.
//
// It calls:
//   - fullFn(offset) for each full group (offset is the starting index)
//   - tailFn(offset, count) once for the tail if size is not a multiple of
//     the group width; tailFn may be nil, in which case the tail is skipped
//
// Example:
//
//	hwy.ProcessWithTail[hwy.F32x8](width,
//	    func(offset int) {
//	        kernel.EvalGroup(offset, y, t, row)
//	    },
//	    nil, // leave the remainder untouched
//	)
func ProcessWithTail[G Group](size int, fullFn func(offset int), tailFn func(offset, count int)) {
	lanes := NumLanes[G]()

	fullGroups := size / lanes
	for i := 0; i < fullGroups; i++ {
		fullFn(i * lanes)
	}

	if remaining := size % lanes; remaining > 0 && tailFn != nil {
		tailFn(fullGroups*lanes, remaining)
	}
}

// GroupCount returns the number of full lane groups of width lanes in size
// elements and the number of elements left over.
func GroupCount(size, lanes int) (groups, remainder int) {
	if lanes <= 0 || size <= 0 {
		return 0, max(size, 0)
	}
	return size / lanes, size % lanes
}

// AlignedSize rounds up size to the next multiple of the width of G.
// This is useful for allocating scratch buffers that hold a whole group.
func AlignedSize[G Group](size int) int {
	lanes := NumLanes[G]()
	return ((size + lanes - 1) / lanes) * lanes
}

// IsAligned returns true if size is a multiple of the width of G.
func IsAligned[G Group](size int) bool {
	return size%NumLanes[G]() == 0
}
