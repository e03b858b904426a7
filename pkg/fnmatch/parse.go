package fnmatch

// Parse splits pattern into its segments. Runs of '*' are squashed into a
// single AnyRun. With globstar, a run of exactly two stars that fills a whole
// path component becomes a Recursive segment instead.
//
// Parse never fails: an unterminated character class leaves its '[' as a
// literal character.
func Parse(pattern string, globstar bool) []Segment {
	p := []rune(pattern)

	var (
		segments []Segment
		literal  []rune
	)

	add := func(seg Segment) {
		if len(literal) > 0 {
			segments = append(segments, Literal{Text: string(literal)})
			literal = literal[:0]
		}

		segments = append(segments, seg)
	}

	for i := 0; i < len(p); {
		switch p[i] {
		case '*':
			j := i
			for j < len(p) && p[j] == '*' {
				j++
			}

			if globstar && j-i == 2 && (i == 0 || p[i-1] == '/') && (j == len(p) || p[j] == '/') {
				if j < len(p) {
					add(Recursive{Dir: true})

					j++
				} else {
					add(Recursive{})
				}
			} else {
				add(AnyRun{})
			}

			i = j

		case '?':
			add(AnyChar{})

			i++

		case '[':
			cls, end, ok := parseClass(p, i)
			if !ok {
				literal = append(literal, '[')

				i++

				break
			}

			add(cls)

			i = end

		default:
			literal = append(literal, p[i])

			i++
		}
	}

	if len(literal) > 0 {
		segments = append(segments, Literal{Text: string(literal)})
	}

	return segments
}
