package byteop

// Clone копирование данного слайса байтов.
func Clone(data []byte) []byte {
	res := make([]byte, len(data))
	copy(res, data)

	return res
}

// Reuse переиспользование существующего слайса байтов под новую задачу с требуемой длиной.
// Если вместимость источника меньше запрошенной, то он заменяется на новый.
func Reuse(src *[]byte, n int) []byte {
	if cap(*src) < n {
		s := make([]byte, n)
		*src = s

		return s
	}

	return (*src)[:n]
}
