package handlers

import "strconv"

func parseUintParam(s string) (uint, bool) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(v), true
}
