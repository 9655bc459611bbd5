// Package handler is the relay's thin HTTP layer: it authenticates callers,
// shape-checks JSON, forwards transitions to the engine, and maps typed
// failures onto a fixed HTTP table. It performs no business logic.
package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"academy/internal/academy/models"
	"academy/internal/platform/middleware"
	jsonResponse "academy/internal/transport/http/json"
	"academy/internal/transport/http/shared"
	"academy/pkg/domain"
)

// Engine defines the transition and lookup operations the relay forwards to.
type Engine interface {
	Initialize(ctx context.Context, authority domain.Identity) (*models.Config, error)
	UpdateConfig(ctx context.Context, signer domain.Identity, params models.UpdateConfigParams) error
	CreateCourse(ctx context.Context, signer domain.Identity, params models.CreateCourseParams) (*models.Course, error)
	UpdateCourse(ctx context.Context, signer domain.Identity, params models.UpdateCourseParams) (*models.Course, error)
	Enroll(ctx context.Context, params models.EnrollParams) (*models.Enrollment, error)
	CompleteLesson(ctx context.Context, signer domain.Identity, params models.CompleteLessonParams) (*models.Enrollment, error)
	FinalizeCourse(ctx context.Context, signer domain.Identity, params models.FinalizeCourseParams) (*models.Enrollment, error)
	CloseEnrollment(ctx context.Context, courseID string, learner domain.Identity) error
	IssueCredential(ctx context.Context, signer domain.Identity, params models.IssueCredentialParams) (domain.Address, error)
	RegisterMinter(ctx context.Context, signer domain.Identity, params models.RegisterMinterParams) (*models.MinterRole, error)
	RevokeMinter(ctx context.Context, signer, minter domain.Identity) error
	RewardXP(ctx context.Context, minter, recipient domain.Identity, amount uint64) error
	CreateAchievementType(ctx context.Context, signer domain.Identity, params models.CreateAchievementTypeParams) (*models.AchievementType, error)
	DeactivateAchievementType(ctx context.Context, signer domain.Identity, achievementID string) error
	AwardAchievement(ctx context.Context, signer domain.Identity, achievementID string, recipient domain.Identity) (*models.AchievementReceipt, error)

	GetConfig(ctx context.Context) (*models.Config, error)
	GetCourse(ctx context.Context, courseID domain.CourseID) (*models.Course, error)
	ListCourses(ctx context.Context) ([]*models.Course, error)
	GetEnrollment(ctx context.Context, courseID domain.CourseID, learner domain.Identity) (*models.Enrollment, error)
	XPBalance(owner domain.Identity) uint64
}

// Handler handles the relay endpoints.
type Handler struct {
	engine Engine
	logger *slog.Logger
}

func New(engine Engine, logger *slog.Logger) *Handler {
	return &Handler{engine: engine, logger: logger}
}

// Register wires the transition endpoints. The parent router applies the
// bearer-token middleware; every handler reads the authenticated caller from
// the context and passes it to the engine as the signing identity.
func (h *Handler) Register(r chi.Router) {
	r.Post("/config", h.HandleInitialize)
	r.Patch("/config", h.HandleUpdateConfig)

	r.Post("/courses", h.HandleCreateCourse)
	r.Patch("/courses/{course_id}", h.HandleUpdateCourse)

	r.Post("/enrollments", h.HandleEnroll)
	r.Delete("/enrollments/{course_id}", h.HandleCloseEnrollment)
	r.Post("/lessons/complete", h.HandleCompleteLesson)
	r.Post("/enrollments/finalize", h.HandleFinalizeCourse)
	r.Post("/credentials", h.HandleIssueCredential)

	r.Post("/minters", h.HandleRegisterMinter)
	r.Delete("/minters/{minter}", h.HandleRevokeMinter)
	r.Post("/xp/rewards", h.HandleRewardXP)

	r.Post("/achievements", h.HandleCreateAchievementType)
	r.Delete("/achievements/{achievement_id}", h.HandleDeactivateAchievementType)
	r.Post("/achievements/award", h.HandleAwardAchievement)
}

// RegisterQueries wires the read-only lookups, which need no bearer token.
func (h *Handler) RegisterQueries(r chi.Router) {
	r.Get("/config", h.HandleGetConfig)
	r.Get("/courses", h.HandleListCourses)
	r.Get("/courses/{course_id}", h.HandleGetCourse)
	r.Get("/courses/{course_id}/enrollments/{learner}", h.HandleGetEnrollment)
	r.Get("/xp/{owner}", h.HandleXPBalance)
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, into any) bool {
	if err := json.NewDecoder(r.Body).Decode(into); err != nil {
		h.logger.WarnContext(r.Context(), "failed to decode request",
			"error", err,
			"path", r.URL.Path,
			"request_id", middleware.GetRequestID(r.Context()),
		)
		shared.WriteError(w, errInvalidBody)
		return false
	}
	return true
}

// submitted writes the success envelope with a fresh relay transaction id.
func (h *Handler) submitted(w http.ResponseWriter, result any) {
	jsonResponse.WriteJSON(w, http.StatusOK, transactionResponse{
		TransactionID: uuid.New().String(),
		Result:        result,
	})
}

func (h *Handler) HandleInitialize(w http.ResponseWriter, r *http.Request) {
	caller := middleware.GetCaller(r.Context())
	cfg, err := h.engine.Initialize(r.Context(), caller)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	h.submitted(w, newConfigResponse(cfg))
}

func (h *Handler) HandleUpdateConfig(w http.ResponseWriter, r *http.Request) {
	var req updateConfigRequest
	if !h.decode(w, r, &req) {
		return
	}
	var params models.UpdateConfigParams
	if req.BackendSigner != nil {
		signer, err := domain.ParseIdentity(*req.BackendSigner)
		if err != nil {
			shared.WriteError(w, err)
			return
		}
		params.BackendSigner = models.SetIdentity(signer)
	}

	caller := middleware.GetCaller(r.Context())
	if err := h.engine.UpdateConfig(r.Context(), caller, params); err != nil {
		shared.WriteError(w, err)
		return
	}
	h.submitted(w, nil)
}

func (h *Handler) HandleCreateCourse(w http.ResponseWriter, r *http.Request) {
	var req createCourseRequest
	if !h.decode(w, r, &req) {
		return
	}
	params, err := req.toParams()
	if err != nil {
		shared.WriteError(w, err)
		return
	}

	caller := middleware.GetCaller(r.Context())
	course, err := h.engine.CreateCourse(r.Context(), caller, params)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	h.submitted(w, newCourseResponse(course))
}

func (h *Handler) HandleUpdateCourse(w http.ResponseWriter, r *http.Request) {
	var req updateCourseRequest
	if !h.decode(w, r, &req) {
		return
	}
	params, err := req.toParams(chi.URLParam(r, "course_id"))
	if err != nil {
		shared.WriteError(w, err)
		return
	}

	caller := middleware.GetCaller(r.Context())
	course, err := h.engine.UpdateCourse(r.Context(), caller, params)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	h.submitted(w, newCourseResponse(course))
}

// HandleEnroll enrolls the authenticated caller. The learner is always the
// token's identity: nobody enrolls somebody else.
func (h *Handler) HandleEnroll(w http.ResponseWriter, r *http.Request) {
	var req enrollRequest
	if !h.decode(w, r, &req) {
		return
	}
	params := models.EnrollParams{
		CourseID: req.CourseID,
		Learner:  middleware.GetCaller(r.Context()),
	}
	if req.PrerequisiteEnrollment != "" {
		addr, err := domain.ParseAddress(req.PrerequisiteEnrollment)
		if err != nil {
			shared.WriteError(w, err)
			return
		}
		params.PrerequisiteEnrollment = addr
	}

	enr, err := h.engine.Enroll(r.Context(), params)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	h.submitted(w, newEnrollmentResponse(enr))
}

func (h *Handler) HandleCloseEnrollment(w http.ResponseWriter, r *http.Request) {
	caller := middleware.GetCaller(r.Context())
	if err := h.engine.CloseEnrollment(r.Context(), chi.URLParam(r, "course_id"), caller); err != nil {
		shared.WriteError(w, err)
		return
	}
	h.submitted(w, nil)
}

func (h *Handler) HandleCompleteLesson(w http.ResponseWriter, r *http.Request) {
	var req completeLessonRequest
	if !h.decode(w, r, &req) {
		return
	}
	learner, err := domain.ParseIdentity(req.Learner)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	params := models.CompleteLessonParams{
		CourseID:    req.CourseID,
		Learner:     learner,
		LessonIndex: req.LessonIndex,
	}
	if req.Enrollment != "" {
		if params.Enrollment, err = domain.ParseAddress(req.Enrollment); err != nil {
			shared.WriteError(w, err)
			return
		}
	}

	caller := middleware.GetCaller(r.Context())
	enr, err := h.engine.CompleteLesson(r.Context(), caller, params)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	h.submitted(w, newEnrollmentResponse(enr))
}

func (h *Handler) HandleFinalizeCourse(w http.ResponseWriter, r *http.Request) {
	var req finalizeCourseRequest
	if !h.decode(w, r, &req) {
		return
	}
	learner, err := domain.ParseIdentity(req.Learner)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	params := models.FinalizeCourseParams{
		CourseID: req.CourseID,
		Learner:  learner,
	}
	if req.Enrollment != "" {
		if params.Enrollment, err = domain.ParseAddress(req.Enrollment); err != nil {
			shared.WriteError(w, err)
			return
		}
	}

	caller := middleware.GetCaller(r.Context())
	enr, err := h.engine.FinalizeCourse(r.Context(), caller, params)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	h.submitted(w, newEnrollmentResponse(enr))
}

func (h *Handler) HandleIssueCredential(w http.ResponseWriter, r *http.Request) {
	var req issueCredentialRequest
	if !h.decode(w, r, &req) {
		return
	}
	learner, err := domain.ParseIdentity(req.Learner)
	if err != nil {
		shared.WriteError(w, err)
		return
	}

	caller := middleware.GetCaller(r.Context())
	asset, err := h.engine.IssueCredential(r.Context(), caller, models.IssueCredentialParams{
		CourseID:       req.CourseID,
		Learner:        learner,
		CredentialName: req.CredentialName,
		MetadataURI:    req.MetadataURI,
	})
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	h.submitted(w, map[string]string{"asset": asset.String()})
}

func (h *Handler) HandleRegisterMinter(w http.ResponseWriter, r *http.Request) {
	var req registerMinterRequest
	if !h.decode(w, r, &req) {
		return
	}
	minter, err := domain.ParseIdentity(req.Minter)
	if err != nil {
		shared.WriteError(w, err)
		return
	}

	caller := middleware.GetCaller(r.Context())
	role, err := h.engine.RegisterMinter(r.Context(), caller, models.RegisterMinterParams{
		Minter:       minter,
		Label:        req.Label,
		MaxXPPerCall: req.MaxXPPerCall,
	})
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	h.submitted(w, map[string]any{
		"minter":          role.Minter.String(),
		"label":           role.Label,
		"max_xp_per_call": role.MaxXPPerCall,
	})
}

func (h *Handler) HandleRevokeMinter(w http.ResponseWriter, r *http.Request) {
	minter, err := domain.ParseIdentity(chi.URLParam(r, "minter"))
	if err != nil {
		shared.WriteError(w, err)
		return
	}

	caller := middleware.GetCaller(r.Context())
	if err := h.engine.RevokeMinter(r.Context(), caller, minter); err != nil {
		shared.WriteError(w, err)
		return
	}
	h.submitted(w, nil)
}

// HandleRewardXP mints on behalf of the authenticated caller, whose minter
// role the engine checks.
func (h *Handler) HandleRewardXP(w http.ResponseWriter, r *http.Request) {
	var req rewardXPRequest
	if !h.decode(w, r, &req) {
		return
	}
	recipient, err := domain.ParseIdentity(req.Recipient)
	if err != nil {
		shared.WriteError(w, err)
		return
	}

	caller := middleware.GetCaller(r.Context())
	if err := h.engine.RewardXP(r.Context(), caller, recipient, req.Amount); err != nil {
		shared.WriteError(w, err)
		return
	}
	h.submitted(w, nil)
}

func (h *Handler) HandleCreateAchievementType(w http.ResponseWriter, r *http.Request) {
	var req createAchievementRequest
	if !h.decode(w, r, &req) {
		return
	}
	ref, err := domain.ParseContentRef(req.MetadataRef)
	if err != nil {
		shared.WriteError(w, err)
		return
	}

	caller := middleware.GetCaller(r.Context())
	typ, err := h.engine.CreateAchievementType(r.Context(), caller, models.CreateAchievementTypeParams{
		AchievementID: req.AchievementID,
		Name:          req.Name,
		MetadataRef:   ref,
		MaxSupply:     req.MaxSupply,
		XPReward:      req.XPReward,
	})
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	h.submitted(w, map[string]any{
		"achievement_id": typ.AchievementID,
		"max_supply":     typ.MaxSupply,
		"xp_reward":      typ.XPReward,
	})
}

func (h *Handler) HandleDeactivateAchievementType(w http.ResponseWriter, r *http.Request) {
	caller := middleware.GetCaller(r.Context())
	if err := h.engine.DeactivateAchievementType(r.Context(), caller, chi.URLParam(r, "achievement_id")); err != nil {
		shared.WriteError(w, err)
		return
	}
	h.submitted(w, nil)
}

func (h *Handler) HandleAwardAchievement(w http.ResponseWriter, r *http.Request) {
	var req awardAchievementRequest
	if !h.decode(w, r, &req) {
		return
	}
	recipient, err := domain.ParseIdentity(req.Recipient)
	if err != nil {
		shared.WriteError(w, err)
		return
	}

	caller := middleware.GetCaller(r.Context())
	receipt, err := h.engine.AwardAchievement(r.Context(), caller, req.AchievementID, recipient)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	h.submitted(w, map[string]any{
		"asset":      receipt.Asset.String(),
		"recipient":  receipt.Recipient.String(),
		"awarded_at": receipt.AwardedAt,
	})
}

func (h *Handler) HandleGetConfig(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.engine.GetConfig(r.Context())
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	jsonResponse.WriteJSON(w, http.StatusOK, newConfigResponse(cfg))
}

func (h *Handler) HandleListCourses(w http.ResponseWriter, r *http.Request) {
	courses, err := h.engine.ListCourses(r.Context())
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	resp := make([]courseResponse, 0, len(courses))
	for _, course := range courses {
		resp = append(resp, newCourseResponse(course))
	}
	jsonResponse.WriteJSON(w, http.StatusOK, resp)
}

func (h *Handler) HandleGetCourse(w http.ResponseWriter, r *http.Request) {
	courseID, err := domain.ParseCourseID(chi.URLParam(r, "course_id"))
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	course, err := h.engine.GetCourse(r.Context(), courseID)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	jsonResponse.WriteJSON(w, http.StatusOK, newCourseResponse(course))
}

func (h *Handler) HandleGetEnrollment(w http.ResponseWriter, r *http.Request) {
	courseID, err := domain.ParseCourseID(chi.URLParam(r, "course_id"))
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	learner, err := domain.ParseIdentity(chi.URLParam(r, "learner"))
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	enr, err := h.engine.GetEnrollment(r.Context(), courseID, learner)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	jsonResponse.WriteJSON(w, http.StatusOK, newEnrollmentResponse(enr))
}

func (h *Handler) HandleXPBalance(w http.ResponseWriter, r *http.Request) {
	owner, err := domain.ParseIdentity(chi.URLParam(r, "owner"))
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	jsonResponse.WriteJSON(w, http.StatusOK, balanceResponse{
		Owner:   owner.String(),
		Balance: h.engine.XPBalance(owner),
	})
}
