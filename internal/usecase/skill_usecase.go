package usecase

import (
	"context"

	"skills-api/internal/domain"
	"skills-api/pkg/apperror"
	"skills-api/pkg/validation"

	"github.com/go-playground/validator/v10"
)

const skillNotFound = "Skill not found"

type skillUsecase struct {
	repo     domain.SkillRepository
	validate *validator.Validate
}

func NewSkillUsecase(repo domain.SkillRepository, validate *validator.Validate) domain.SkillUsecase {
	return &skillUsecase{
		repo:     repo,
		validate: validate,
	}
}

func (u *skillUsecase) ListSkills(ctx context.Context) ([]domain.Skill, error) {
	skills, err := u.repo.Fetch(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return skills, nil
}

func (u *skillUsecase) GetSkill(ctx context.Context, id int64) (*domain.Skill, error) {
	skill, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, storeError(err, skillNotFound)
	}
	return skill, nil
}

// CreateSkill requires skill, level and theme_id. Presence is decided by
// nil-ness: a level of 0 is present. theme_id is not checked against Themes;
// the store's foreign key decides.
func (u *skillUsecase) CreateSkill(ctx context.Context, in domain.CreateSkillInput) (*domain.Skill, error) {
	if in.Skill == nil || *in.Skill == "" || in.Level == nil || in.ThemeID == nil {
		return nil, apperror.BadRequest(validation.RequiredFields("skill", "level", "theme_id"))
	}

	skill := &domain.Skill{
		Skill:   *in.Skill,
		Level:   *in.Level,
		ThemeID: *in.ThemeID,
	}
	if err := u.validate.Struct(skill); err != nil {
		return nil, apperror.BadRequest(validation.Message(err))
	}

	if err := u.repo.Create(ctx, skill); err != nil {
		return nil, apperror.Internal(err)
	}
	return skill, nil
}

// UpdateSkill applies a partial update of skill and/or level.
func (u *skillUsecase) UpdateSkill(ctx context.Context, id int64, patch domain.SkillPatch) (*domain.Skill, error) {
	if patch.IsEmpty() {
		return nil, apperror.BadRequest(`You must provide at least "skill" or "level"`)
	}
	if patch.Level != nil {
		if err := u.validate.Var(*patch.Level, "level"); err != nil {
			return nil, apperror.BadRequest(validation.FormatFieldError("level", "level", ""))
		}
	}
	if patch.Skill != nil {
		if err := u.validate.Var(*patch.Skill, "not_blank"); err != nil {
			return nil, apperror.BadRequest(validation.FormatFieldError("skill", "not_blank", ""))
		}
	}

	updated, err := u.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, storeError(err, skillNotFound)
	}
	return updated, nil
}

func (u *skillUsecase) DeleteSkill(ctx context.Context, id int64) (*domain.Skill, error) {
	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		return nil, storeError(err, skillNotFound)
	}
	return deleted, nil
}
