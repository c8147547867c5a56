package quiz

// SkillResult tracks per-skill performance within the current sample.
type SkillResult struct {
	Skill     string
	Questions int
	Answered  int
	Correct   int
}

// Summary holds the data displayed on the summary screen and persisted
// when a session ends.
type Summary struct {
	Filter    Filter
	Questions int
	Answered  int
	Correct   int
	Accuracy  float64 // Correct / Answered, 0 when nothing was answered
	Skills    []SkillResult
}

// Summary builds a Summary from the current sample and answers. Skills are
// listed in order of first appearance in the sample.
func (s *Session) Summary() Summary {
	s.mu.Lock()
	defer s.mu.Unlock()

	sum := Summary{
		Filter:    s.filter,
		Questions: len(s.sampled),
	}

	bySkill := make(map[string]int)
	for i, q := range s.sampled {
		pos, ok := bySkill[q.Skill]
		if !ok {
			pos = len(sum.Skills)
			bySkill[q.Skill] = pos
			sum.Skills = append(sum.Skills, SkillResult{Skill: q.Skill})
		}
		sr := &sum.Skills[pos]
		sr.Questions++

		a, answered := s.answers[i]
		if !answered {
			continue
		}
		sr.Answered++
		sum.Answered++
		if a.Correct {
			sr.Correct++
			sum.Correct++
		}
	}

	if sum.Answered > 0 {
		sum.Accuracy = float64(sum.Correct) / float64(sum.Answered)
	}
	return sum
}
