package handler

import (
	"academy/internal/academy/models"
	"academy/pkg/domain"
	dErrors "academy/pkg/domain-errors"
)

// Request and response shapes for the relay endpoints. The relay shape-checks
// and converts; every rule beyond that belongs to the engine.

type createCourseRequest struct {
	CourseID                string `json:"course_id"`
	Creator                 string `json:"creator"`
	ContentRef              string `json:"content_ref,omitempty"`
	LessonCount             uint8  `json:"lesson_count"`
	Difficulty              uint8  `json:"difficulty"`
	XPPerLesson             uint32 `json:"xp_per_lesson"`
	TrackID                 uint16 `json:"track_id"`
	TrackLevel              uint8  `json:"track_level"`
	Prerequisite            string `json:"prerequisite,omitempty"`
	CompletionBonusXP       uint32 `json:"completion_bonus_xp"`
	CreatorRewardXP         uint32 `json:"creator_reward_xp"`
	MinCompletionsForReward uint16 `json:"min_completions_for_reward"`
}

func (r *createCourseRequest) toParams() (models.CreateCourseParams, error) {
	creator, err := domain.ParseIdentity(r.Creator)
	if err != nil {
		return models.CreateCourseParams{}, err
	}
	ref, err := domain.ParseContentRef(r.ContentRef)
	if err != nil {
		return models.CreateCourseParams{}, err
	}
	prereq := domain.ZeroAddress
	if r.Prerequisite != "" {
		if prereq, err = domain.ParseAddress(r.Prerequisite); err != nil {
			return models.CreateCourseParams{}, err
		}
	}
	return models.CreateCourseParams{
		CourseID:                r.CourseID,
		Creator:                 creator,
		ContentRef:              ref,
		LessonCount:             r.LessonCount,
		Difficulty:              models.Difficulty(r.Difficulty),
		XPPerLesson:             r.XPPerLesson,
		TrackID:                 r.TrackID,
		TrackLevel:              r.TrackLevel,
		Prerequisite:            prereq,
		CompletionBonusXP:       r.CompletionBonusXP,
		CreatorRewardXP:         r.CreatorRewardXP,
		MinCompletionsForReward: r.MinCompletionsForReward,
	}, nil
}

type updateCourseRequest struct {
	ContentRef              *string `json:"content_ref,omitempty"`
	IsActive                *bool   `json:"is_active,omitempty"`
	XPPerLesson             *uint32 `json:"xp_per_lesson,omitempty"`
	CompletionBonusXP       *uint32 `json:"completion_bonus_xp,omitempty"`
	CreatorRewardXP         *uint32 `json:"creator_reward_xp,omitempty"`
	MinCompletionsForReward *uint16 `json:"min_completions_for_reward,omitempty"`
}

func (r *updateCourseRequest) toParams(courseID string) (models.UpdateCourseParams, error) {
	params := models.UpdateCourseParams{CourseID: courseID}
	if r.ContentRef != nil {
		ref, err := domain.ParseContentRef(*r.ContentRef)
		if err != nil {
			return params, err
		}
		params.ContentRef = models.SetContentRef(ref)
	}
	if r.IsActive != nil {
		params.IsActive = models.SetBool(*r.IsActive)
	}
	if r.XPPerLesson != nil {
		params.XPPerLesson = models.SetU32(*r.XPPerLesson)
	}
	if r.CompletionBonusXP != nil {
		params.CompletionBonusXP = models.SetU32(*r.CompletionBonusXP)
	}
	if r.CreatorRewardXP != nil {
		params.CreatorRewardXP = models.SetU32(*r.CreatorRewardXP)
	}
	if r.MinCompletionsForReward != nil {
		params.MinCompletionsForReward = models.SetU16(*r.MinCompletionsForReward)
	}
	return params, nil
}

type updateConfigRequest struct {
	BackendSigner *string `json:"backend_signer,omitempty"`
}

type enrollRequest struct {
	CourseID               string `json:"course_id"`
	PrerequisiteEnrollment string `json:"prerequisite_enrollment,omitempty"`
}

type completeLessonRequest struct {
	CourseID    string `json:"course_id"`
	Learner     string `json:"learner"`
	LessonIndex uint8  `json:"lesson_index"`
	Enrollment  string `json:"enrollment,omitempty"`
}

type finalizeCourseRequest struct {
	CourseID   string `json:"course_id"`
	Learner    string `json:"learner"`
	Enrollment string `json:"enrollment,omitempty"`
}

type issueCredentialRequest struct {
	CourseID       string `json:"course_id"`
	Learner        string `json:"learner"`
	CredentialName string `json:"credential_name"`
	MetadataURI    string `json:"metadata_uri"`
}

type registerMinterRequest struct {
	Minter       string `json:"minter"`
	Label        string `json:"label"`
	MaxXPPerCall uint64 `json:"max_xp_per_call"`
}

type rewardXPRequest struct {
	Recipient string `json:"recipient"`
	Amount    uint64 `json:"amount"`
}

type createAchievementRequest struct {
	AchievementID string `json:"achievement_id"`
	Name          string `json:"name"`
	MetadataRef   string `json:"metadata_ref,omitempty"`
	MaxSupply     uint32 `json:"max_supply"`
	XPReward      uint32 `json:"xp_reward"`
}

type awardAchievementRequest struct {
	AchievementID string `json:"achievement_id"`
	Recipient     string `json:"recipient"`
}

// transactionResponse is the success envelope for transition endpoints.
type transactionResponse struct {
	TransactionID string `json:"transaction_id"`
	Result        any    `json:"result,omitempty"`
}

type configResponse struct {
	Authority     string `json:"authority"`
	BackendSigner string `json:"backend_signer"`
	XPMint        string `json:"xp_mint"`
}

func newConfigResponse(cfg *models.Config) configResponse {
	return configResponse{
		Authority:     cfg.Authority.String(),
		BackendSigner: cfg.BackendSigner.String(),
		XPMint:        cfg.XPMint.String(),
	}
}

type courseResponse struct {
	CourseID                string `json:"course_id"`
	Creator                 string `json:"creator"`
	ContentRef              string `json:"content_ref"`
	Version                 uint16 `json:"version"`
	LessonCount             uint8  `json:"lesson_count"`
	Difficulty              uint8  `json:"difficulty"`
	XPPerLesson             uint32 `json:"xp_per_lesson"`
	TrackID                 uint16 `json:"track_id"`
	TrackLevel              uint8  `json:"track_level"`
	Prerequisite            string `json:"prerequisite,omitempty"`
	CompletionBonusXP       uint32 `json:"completion_bonus_xp"`
	CreatorRewardXP         uint32 `json:"creator_reward_xp"`
	MinCompletionsForReward uint16 `json:"min_completions_for_reward"`
	TotalCompletions        uint32 `json:"total_completions"`
	TotalEnrollments        uint32 `json:"total_enrollments"`
	IsActive                bool   `json:"is_active"`
	CreatedAt               int64  `json:"created_at"`
	UpdatedAt               int64  `json:"updated_at"`
}

func newCourseResponse(course *models.Course) courseResponse {
	resp := courseResponse{
		CourseID:                course.CourseID.String(),
		Creator:                 course.Creator.String(),
		ContentRef:              course.ContentRef.String(),
		Version:                 course.Version,
		LessonCount:             course.LessonCount,
		Difficulty:              uint8(course.Difficulty),
		XPPerLesson:             course.XPPerLesson,
		TrackID:                 course.TrackID,
		TrackLevel:              course.TrackLevel,
		CompletionBonusXP:       course.CompletionBonusXP,
		CreatorRewardXP:         course.CreatorRewardXP,
		MinCompletionsForReward: course.MinCompletionsForReward,
		TotalCompletions:        course.TotalCompletions,
		TotalEnrollments:        course.TotalEnrollments,
		IsActive:                course.IsActive,
		CreatedAt:               course.CreatedAt,
		UpdatedAt:               course.UpdatedAt,
	}
	if course.HasPrerequisite() {
		resp.Prerequisite = course.Prerequisite.String()
	}
	return resp
}

type enrollmentResponse struct {
	Course           string `json:"course"`
	Learner          string `json:"learner"`
	EnrolledAt       int64  `json:"enrolled_at"`
	LessonsCompleted int    `json:"lessons_completed"`
	Completed        bool   `json:"completed"`
	CompletedAt      int64  `json:"completed_at,omitempty"`
	CredentialAsset  string `json:"credential_asset,omitempty"`
}

func newEnrollmentResponse(enr *models.Enrollment) enrollmentResponse {
	resp := enrollmentResponse{
		Course:           enr.Course.String(),
		Learner:          enr.Learner.String(),
		EnrolledAt:       enr.EnrolledAt,
		LessonsCompleted: enr.LessonFlags.Count(),
		Completed:        enr.Completed(),
	}
	if enr.Completed() {
		resp.CompletedAt = enr.CompletedAt.Unix
	}
	if !enr.CredentialAsset.IsZero() {
		resp.CredentialAsset = enr.CredentialAsset.String()
	}
	return resp
}

type balanceResponse struct {
	Owner   string `json:"owner"`
	Balance uint64 `json:"balance"`
}

var errInvalidBody = dErrors.New(dErrors.CodeBadRequest, "invalid JSON in request body")
