package syncer

// Chunk splits items into consecutive sub-slices of length n. The last chunk
// holds whatever remains, so its length is in [1, n]. Order is preserved and
// no element is dropped or duplicated. Chunks alias the input slice.
func Chunk[T any](items []T, n int) ([][]T, error) {
	if n <= 0 {
		return nil, ErrInvalidChunkSize
	}
	chunks := make([][]T, 0, (len(items)+n-1)/n)
	for start := 0; start < len(items); start += n {
		end := start + n
		if end > len(items) {
			end = len(items)
		}
		chunks = append(chunks, items[start:end])
	}
	return chunks, nil
}
