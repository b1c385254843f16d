package domain

import "context"

// Skill is a named competency with a 0-100 proficiency level.
type Skill struct {
	ID      int64  `json:"id"`
	Skill   string `json:"skill" validate:"not_blank"`
	Level   int    `json:"level" validate:"level"`
	ThemeID int64  `json:"theme_id" validate:"gt=0"`
}

// CreateSkillInput uses pointers so that an explicit zero (level 0) is
// distinguishable from an absent field.
type CreateSkillInput struct {
	Skill   *string `json:"skill"`
	Level   *int    `json:"level"`
	ThemeID *int64  `json:"theme_id"`
}

// SkillPatch carries the fields of a partial update. Nil fields are left
// unchanged in the store. theme_id is not updatable.
type SkillPatch struct {
	Skill *string `json:"skill"`
	Level *int    `json:"level"`
}

func (p SkillPatch) IsEmpty() bool {
	return p.Skill == nil && p.Level == nil
}

type SkillRepository interface {
	Fetch(ctx context.Context) ([]Skill, error)
	GetByID(ctx context.Context, id int64) (*Skill, error)
	Create(ctx context.Context, skill *Skill) error
	// Update writes only the non-nil fields of patch and returns the stored row.
	Update(ctx context.Context, id int64, patch SkillPatch) (*Skill, error)
	Delete(ctx context.Context, id int64) (*Skill, error)
}

type SkillUsecase interface {
	ListSkills(ctx context.Context) ([]Skill, error)
	GetSkill(ctx context.Context, id int64) (*Skill, error)
	CreateSkill(ctx context.Context, in CreateSkillInput) (*Skill, error)
	UpdateSkill(ctx context.Context, id int64, patch SkillPatch) (*Skill, error)
	DeleteSkill(ctx context.Context, id int64) (*Skill, error)
}
