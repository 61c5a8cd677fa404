package record

import (
	"encoding/json"
	"strconv"
	"strings"
)

// legacySeparator splits list cells typed by hand as "p1,p2"
const legacySeparator = ","

// FormatFloat writes the shortest decimal that reads back as v
func FormatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatInt writes v in base 10
func FormatInt(v int) string {
	return strconv.Itoa(v)
}

// JoinList stores an ordered list in a single cell as a JSON array, so
// values containing commas or spaces survive a round trip
func JoinList(values []string) string {
	if values == nil {
		values = []string{}
	}
	b, _ := json.Marshal(values)
	return string(b)
}

func JoinIntList(values []int) string {
	if values == nil {
		values = []int{}
	}
	b, _ := json.Marshal(values)
	return string(b)
}

// SplitList is the inverse of JoinList. An empty cell is an empty list.
// A cell that is not a JSON array is read as comma separated.
func SplitList(cell string) ([]string, error) {
	trimmed := strings.TrimSpace(cell)
	if trimmed == "" {
		return []string{}, nil
	}
	if strings.HasPrefix(trimmed, "[") {
		var out []string
		if err := json.Unmarshal([]byte(trimmed), &out); err != nil {
			return nil, err
		}
		if out == nil {
			out = []string{}
		}
		return out, nil
	}
	parts := strings.Split(trimmed, legacySeparator)
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts, nil
}

func splitNumberList(cell string) ([]string, error) {
	trimmed := strings.TrimSpace(cell)
	if !strings.HasPrefix(trimmed, "[") {
		return SplitList(trimmed)
	}
	var nums []json.Number
	if err := json.Unmarshal([]byte(trimmed), &nums); err != nil {
		return nil, err
	}
	out := make([]string, len(nums))
	for i, n := range nums {
		out[i] = n.String()
	}
	return out, nil
}

// ColumnLetter converts a 1-based column number into A1 notation (1 -> A, 27 -> AA)
func ColumnLetter(n int) string {
	var b []byte
	for n > 0 {
		n--
		b = append([]byte{byte('A' + n%26)}, b...)
		n /= 26
	}
	return string(b)
}
