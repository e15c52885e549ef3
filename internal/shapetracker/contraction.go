package shapetracker

// GetContraction groups the axes of oldShape into consecutive runs whose
// sizes multiply to each entry of newShape. It reports false when the
// reshape does not split along axis boundaries.
func GetContraction(oldShape, newShape []int) ([][]int, bool) {
	groups := make([][]int, len(newShape))
	for i := range groups {
		groups[i] = []int{}
	}
	if len(newShape) == 0 {
		return groups, len(oldShape) == 0
	}
	last := len(newShape) - 1
	i := 0
	for j := 0; j < len(oldShape); {
		if newShape[i] == 1 && oldShape[j] != 1 {
			if i == last {
				return nil, false
			}
			i++
			continue
		}
		groups[i] = append(groups[i], j)
		size := 1
		for _, ax := range groups[i] {
			size *= oldShape[ax]
		}
		switch {
		case size == newShape[i]:
			if i < last {
				i++
			}
		case size > newShape[i]:
			return nil, false
		}
		j++
	}
	return groups, true
}
