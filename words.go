package automaton

// GenerateWords returns every accepted word of length at most maxLength
// (length counted in symbols), as concatenated symbol strings. The
// search is a breadth-first traversal of (word, state) configurations
// from the initial states; epsilon transitions are followed without
// consuming a symbol or growing the word. Words come out in BFS
// discovery order; callers wanting a canonical order must sort.
func GenerateWords(a *Automaton, maxLength int) []string {
	type config struct {
		word   string
		length int
		state  string
	}

	var queue []config
	visited := make(map[config]struct{})
	push := func(c config) {
		if _, ok := visited[c]; ok {
			return
		}
		visited[c] = struct{}{}
		queue = append(queue, c)
	}

	for _, s := range a.InitialStates() {
		push(config{state: s.Name})
	}

	var words []string
	emitted := make(map[string]struct{})

	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]

		if a.states[c.state].Final {
			if _, ok := emitted[c.word]; !ok {
				emitted[c.word] = struct{}{}
				words = append(words, c.word)
			}
		}

		// Epsilon moves keep the word as is.
		for to := range a.destinations(c.state, Epsilon) {
			push(config{word: c.word, length: c.length, state: to})
		}

		if c.length >= maxLength {
			continue
		}
		for _, symbol := range a.alphabet.Symbols() {
			for to := range a.destinations(c.state, symbol) {
				push(config{word: c.word + symbol, length: c.length + 1, state: to})
			}
		}
	}

	return words
}
