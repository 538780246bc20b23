package seeding

import (
	"fmt"
	"slices"
	"strings"
)

// ParseSteps converte nomes de etapas na ordem de AllSteps. Lista vazia devolve todas.
func ParseSteps(names []string) ([]Step, error) {
	if len(names) == 0 {
		return AllSteps, nil
	}

	requested := make(map[Step]bool, len(names))
	for _, name := range names {
		step := Step(strings.ToLower(strings.TrimSpace(name)))
		if step == "" {
			continue
		}
		if !slices.Contains(AllSteps, step) {
			return nil, fmt.Errorf("etapa de seed desconhecida: %s", name)
		}
		requested[step] = true
	}

	steps := make([]Step, 0, len(requested))
	for _, step := range AllSteps {
		if requested[step] {
			steps = append(steps, step)
		}
	}

	if len(steps) == 0 {
		return AllSteps, nil
	}

	return steps, nil
}
