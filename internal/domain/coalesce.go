package domain

// CoalesceStr returns the first non-empty string from vals.
func CoalesceStr(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

// JoinOr joins vals with sep, or returns fallback when vals is empty.
func JoinOr[T ~string](vals []T, sep, fallback string) string {
	if len(vals) == 0 {
		return fallback
	}
	out := string(vals[0])
	for _, v := range vals[1:] {
		out += sep + string(v)
	}
	return out
}
