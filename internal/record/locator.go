package record

// FindRow returns the 1-based sheet row number of the first data row whose
// id column (column A) equals id exactly. Row 1 is the header and is never compared.
func FindRow(rows [][]string, id string) (int, bool) {
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		if len(row) == 0 || IsBlank(row) {
			continue
		}
		if row[0] == id {
			return i + 1, true
		}
	}
	return 0, false
}
