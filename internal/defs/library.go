package defs

import "fmt"

// Library — плоский список шаблонов врагов с индексом по ID.
// Порядок шаблонов сохраняется: первый шаблон служит запасным вариантом.
type Library struct {
	defs []EnemyDefinition
	byID map[string]int
}

// NewLibrary builds a library from the given templates.
func NewLibrary(enemyDefs []EnemyDefinition) (*Library, error) {
	if len(enemyDefs) == 0 {
		return nil, ErrEmptyLibrary
	}
	lib := &Library{
		defs: make([]EnemyDefinition, len(enemyDefs)),
		byID: make(map[string]int, len(enemyDefs)),
	}
	copy(lib.defs, enemyDefs)
	for i, def := range lib.defs {
		if _, dup := lib.byID[def.ID]; dup {
			return nil, fmt.Errorf("duplicate enemy definition %q", def.ID)
		}
		lib.byID[def.ID] = i
	}
	return lib, nil
}

// Get returns the template with the given ID.
func (l *Library) Get(id string) (EnemyDefinition, bool) {
	i, ok := l.byID[id]
	if !ok {
		return EnemyDefinition{}, false
	}
	return l.defs[i], true
}

// All returns every template in load order.
func (l *Library) All() []EnemyDefinition {
	return l.defs
}

// Fallback returns the first template.
func (l *Library) Fallback() EnemyDefinition {
	return l.defs[0]
}

// Unlocked возвращает шаблоны, доступные после elapsed секунд игры.
func (l *Library) Unlocked(elapsed float64) []EnemyDefinition {
	var out []EnemyDefinition
	for _, def := range l.defs {
		if def.UnlockAt <= elapsed {
			out = append(out, def)
		}
	}
	return out
}

// Len returns the number of templates.
func (l *Library) Len() int {
	return len(l.defs)
}
