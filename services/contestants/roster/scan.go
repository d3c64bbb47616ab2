package roster

// scan maps `in` to a slice of the same length, handing `step` the output it
// produced for the previous element (nil for the first element).
func scan[In, Out any](in []In, step func(prev *Out, i int, item In) Out) []Out {
	out := make([]Out, len(in))
	for i, item := range in {
		var prev *Out
		if i > 0 {
			prev = &out[i-1]
		}
		out[i] = step(prev, i, item)
	}
	return out
}
