package templates

import (
	"strconv"
	"strings"
)

func typeParams(count int) string {
	var sb strings.Builder
	for i := 0; i < count; i++ {
		sb.WriteString("T")
		sb.WriteString(strconv.Itoa(i))
		if i < count-1 {
			sb.WriteString(", ")
		}
	}
	return sb.String()
}

func getParams(count int) string {
	var sb strings.Builder
	for i := 0; i < count; i++ {
		sb.WriteString("arg")
		sb.WriteString(strconv.Itoa(i))
		sb.WriteString(" T")
		sb.WriteString(strconv.Itoa(i))
		if i < count-1 {
			sb.WriteString(", ")
		}
	}
	return sb.String()
}
