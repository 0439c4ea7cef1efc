package domain

type SkillLevel string

const (
	LevelBeginner     SkillLevel = "beginner"
	LevelIntermediate SkillLevel = "intermediate"
	LevelAdvanced     SkillLevel = "advanced"
	LevelExpert       SkillLevel = "expert"
)

type SkillCategory string

const (
	CategoryFrontend SkillCategory = "frontend"
	CategoryBackend  SkillCategory = "backend"
	CategoryDevOps   SkillCategory = "devops"
	CategoryDesign   SkillCategory = "design"
)

// SkillCategories lists categories in display order.
var SkillCategories = []SkillCategory{CategoryFrontend, CategoryBackend, CategoryDevOps, CategoryDesign}

type Skill struct {
	Name     string        `json:"name"`
	Level    SkillLevel    `json:"level"`
	Category SkillCategory `json:"category"`
}

// Percent maps a level onto the width of a proficiency bar.
func (l SkillLevel) Percent() int {
	switch l {
	case LevelBeginner:
		return 25
	case LevelIntermediate:
		return 50
	case LevelAdvanced:
		return 75
	case LevelExpert:
		return 100
	}
	return 0
}

// SkillGroup is one category with its skills.
type SkillGroup struct {
	Category SkillCategory `json:"category"`
	Skills   []Skill       `json:"skills"`
}

// GroupSkills groups skills in SkillCategories order, skipping empty
// categories. Order within a group follows the input.
func GroupSkills(skills []Skill) []SkillGroup {
	var groups []SkillGroup
	for _, c := range SkillCategories {
		g := SkillGroup{Category: c}
		for _, s := range skills {
			if s.Category == c {
				g.Skills = append(g.Skills, s)
			}
		}
		if len(g.Skills) > 0 {
			groups = append(groups, g)
		}
	}
	return groups
}
