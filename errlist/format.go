/*
   Copyright 2025 The FormVal Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package errlist

import (
	"fmt"
	"strconv"
	"strings"
)

// formatTemplate substitutes positional "{i}" placeholders in format with the
// string form (fmt.Sprint) of args[i].
//
// Placeholders that name an index with no corresponding argument are left in
// the output verbatim, so a mismatched template stays visible instead of
// silently losing text. Anything that is not "{<digits>}" is copied as-is.
func formatTemplate(format string, args []any) string {
	if len(args) == 0 || !strings.ContainsRune(format, '{') {
		return format
	}

	var b strings.Builder
	b.Grow(len(format))
	for i := 0; i < len(format); {
		c := format[i]
		if c != '{' {
			b.WriteByte(c)
			i++
			continue
		}

		// Scan "{<digits>}".
		j := i + 1
		for j < len(format) && format[j] >= '0' && format[j] <= '9' {
			j++
		}
		if j == i+1 || j == len(format) || format[j] != '}' {
			b.WriteByte(c)
			i++
			continue
		}
		idx, err := strconv.Atoi(format[i+1 : j])
		if err != nil || idx >= len(args) {
			// No such argument: keep the placeholder visible.
			b.WriteString(format[i : j+1])
			i = j + 1
			continue
		}
		b.WriteString(fmt.Sprint(args[idx]))
		i = j + 1
	}
	return b.String()
}
