package models

import "strings"

// CriterionKind tells which lookup branch a search criterion selects.
type CriterionKind string

const (
	// CriterionGroup matches asignacion-nivel-numero exactly, e.g. "5-11-02".
	CriterionGroup CriterionKind = "group"
	// CriterionLevel matches nivel-numero exactly, e.g. "11-02".
	CriterionLevel CriterionKind = "level"
	// CriterionText is a substring match against code, identifier and name.
	CriterionText CriterionKind = "text"
)

// SearchCriterion is the parsed form of the free-form search input.
type SearchCriterion struct {
	Kind       CriterionKind
	Asignacion string
	Nivel      string
	Numero     string
	Term       string
}

// ParseCriterion splits raw on '-' and picks the lookup branch from the part count.
// Parts keep their leading zeros.
func ParseCriterion(raw string) SearchCriterion {
	raw = strings.TrimSpace(raw)
	parts := strings.Split(raw, "-")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	switch len(parts) {
	case 3:
		return SearchCriterion{Kind: CriterionGroup, Asignacion: parts[0], Nivel: parts[1], Numero: parts[2]}
	case 2:
		return SearchCriterion{Kind: CriterionLevel, Nivel: parts[0], Numero: parts[1]}
	default:
		return SearchCriterion{Kind: CriterionText, Term: raw}
	}
}

// String renders the criterion for logs.
func (c SearchCriterion) String() string {
	switch c.Kind {
	case CriterionGroup:
		return "group:" + c.Asignacion + "-" + c.Nivel + "-" + c.Numero
	case CriterionLevel:
		return "level:" + c.Nivel + "-" + c.Numero
	default:
		return "text:" + c.Term
	}
}
