package morse

// ParseRaw normalizes Morse typed by a human into a sequence.
//
// '.' and '-' become tones and reset the space counter. The first space of
// a run emits a LetterGap, the second does nothing, and the third replaces
// that LetterGap with a WordGap. Further spaces are absorbed. Every other
// character is ignored and leaves the counter untouched. Separators at
// either end of the result are dropped.
func ParseRaw(text string) Sequence {
	seq := make(Sequence, 0, len(text))
	spaces := 0
	for _, r := range text {
		switch r {
		case '.':
			seq = append(seq, Dot)
			spaces = 0
		case '-':
			seq = append(seq, Dash)
			spaces = 0
		case ' ':
			spaces++
			switch spaces {
			case 1:
				seq = append(seq, LetterGap)
			case 3:
				if n := len(seq); n > 0 && seq[n-1] == LetterGap {
					seq = seq[:n-1]
				}
				seq = append(seq, WordGap)
			}
		}
	}
	return trimSeparators(seq)
}

func trimSeparators(seq Sequence) Sequence {
	start, end := 0, len(seq)
	for start < end && !seq[start].IsTone() {
		start++
	}
	for end > start && !seq[end-1].IsTone() {
		end--
	}
	return seq[start:end]
}
