package engine

// splitSource is a xorshift64* stream implementing rand.Source64. Its
// whole state is one word, so copying the struct forks the stream:
// the copy produces the same draws as the original without consuming
// them. Simulation uses that to preview the next random outcome.
type splitSource struct {
	state uint64
}

func (s *splitSource) Seed(seed int64) {
	s.state = uint64(seed)
	if s.state == 0 {
		s.state = 0x9e3779b97f4a7c15
	}
}

func (s *splitSource) Uint64() uint64 {
	s.state ^= s.state >> 12
	s.state ^= s.state << 25
	s.state ^= s.state >> 27
	return s.state * 0x2545f4914f6cdd1d
}

func (s *splitSource) Int63() int64 {
	return int64(s.Uint64() >> 1)
}
