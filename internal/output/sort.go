// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"sort"
	"strconv"
	"strings"
)

// SortDataset orders the result set in place per the comma-separated sort
// spec. Each field sorts ascending unless prefixed with -, and compares
// case-insensitively unless prefixed with !.
func SortDataset(resultSet []map[string]interface{}, spec string) {
	fields := strings.Split(spec, ",")

	sort.SliceStable(resultSet, func(one, two int) bool {

		for _, field := range fields {
			ascending := true
			if strings.HasPrefix(field, "-") {
				field = strings.TrimPrefix(field, "-")
				ascending = false
			}

			caseSensitive := false
			if strings.HasPrefix(field, "!") {
				field = strings.TrimPrefix(field, "!")
				caseSensitive = true
			}

			oneStr := InterfaceToString(resultSet[one][field])
			twoStr := InterfaceToString(resultSet[two][field])

			// Frame values are all strings, so numeric columns like acres
			// only order sensibly after a parse attempt on both sides.
			oneNum, oneErr := strconv.ParseFloat(oneStr, 64)
			twoNum, twoErr := strconv.ParseFloat(twoStr, 64)

			if oneErr == nil && twoErr == nil {
				if oneNum != twoNum {
					if ascending {
						return oneNum < twoNum
					}
					return oneNum > twoNum
				}
				continue
			}

			compareOneStr := oneStr
			compareTwoStr := twoStr
			if !caseSensitive {
				compareOneStr = strings.ToLower(oneStr)
				compareTwoStr = strings.ToLower(twoStr)
			}

			if compareOneStr != compareTwoStr {
				if ascending {
					return compareOneStr < compareTwoStr
				}
				return compareOneStr > compareTwoStr
			}

		}
		return false
	})
}
