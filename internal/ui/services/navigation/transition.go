package navigation

// Clamp keeps index inside [-1, listLen-1]
func Clamp(index, listLen int) int {
	if index < Idle {
		return Idle
	}
	if index > listLen-1 {
		return listLen - 1
	}
	return index
}

// Transition applies one arrow key to a highlight over a list of listLen
// entries. Movement clamps at both ends and never wraps; Up from Idle stays
// Idle.
func Transition(index int, dir Direction, listLen int) int {
	index = Clamp(index, listLen)

	switch dir {
	case DirectionDown:
		if listLen == 0 {
			return Idle
		}
		if index == Idle {
			return 0
		}
		return min(index+1, listLen-1)
	case DirectionUp:
		if index == Idle {
			return Idle
		}
		return max(index-1, 0)
	}
	return index
}
