package vocab

import (
	"strconv"
	"strings"

	"github.com/kittclouds/engraf/pkg/vector"
)

// ParseQuoted recognizes a quoted string literal ("..." or '...') starting
// at text[start]. It returns the byte length consumed and a vector with
// quoted=1 and Word set to the literal content (without quotes).
func ParseQuoted(text string, start int) (length int, vec vector.Vector, ok bool) {
	if start >= len(text) {
		return 0, vector.Vector{}, false
	}
	quote := text[start]
	if quote != '"' && quote != '\'' {
		return 0, vector.Vector{}, false
	}
	end := -1
	for i := start + 1; i < len(text); i++ {
		if text[i] == quote {
			end = i
			break
		}
	}
	if end == -1 {
		return 0, vector.Vector{}, false
	}

	content := text[start+1 : end]
	v := vector.New()
	v.Set(vector.DimQuoted, 1)
	v.Word = content
	return end - start + 1, v, true
}

// ParseVectorLiteral recognizes a bracketed numeric literal "[x,y,z]"
// starting at text[start]. It returns the byte length consumed and a
// vector with vector=1, locX/Y/Z set to the parsed components.
func ParseVectorLiteral(text string, start int) (length int, vec vector.Vector, ok bool) {
	if start >= len(text) || text[start] != '[' {
		return 0, vector.Vector{}, false
	}
	end := strings.IndexByte(text[start:], ']')
	if end == -1 {
		return 0, vector.Vector{}, false
	}
	end += start

	inner := text[start+1 : end]
	parts := strings.Split(inner, ",")
	if len(parts) != 3 {
		return 0, vector.Vector{}, false
	}

	var nums [3]float64
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return 0, vector.Vector{}, false
		}
		nums[i] = f
	}

	v := vector.New()
	v.Set(vector.DimVectorLiteral, 1)
	v.Set(vector.DimLocX, nums[0])
	v.Set(vector.DimLocY, nums[1])
	v.Set(vector.DimLocZ, nums[2])
	v.Word = text[start : end+1]
	return end - start + 1, v, true
}
