package handlers

import (
	"net/http"

	"muzac-backend/application/services"
	"muzac-backend/domain/family"
	"muzac-backend/pkg/common"
	apperrors "muzac-backend/pkg/errors"
	"muzac-backend/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const maxFamilyBodyBytes = 1 << 20

// FamilyHandler handles the family tree endpoints.
type FamilyHandler struct {
	familyService *services.FamilyService
	logger        *zap.Logger
}

// NewFamilyHandler creates a new family handler
func NewFamilyHandler(familyService *services.FamilyService, logger *zap.Logger) *FamilyHandler {
	return &FamilyHandler{
		familyService: familyService,
		logger:        logger,
	}
}

// CreateMemberRequest represents the request body for adding a family member
type CreateMemberRequest struct {
	ID        string   `json:"id"`
	Name      string   `json:"name" validate:"required"`
	Surname   string   `json:"surname" validate:"required"`
	Nickname  string   `json:"nickname"`
	Birthday  string   `json:"birthday" validate:"required"`
	Gender    string   `json:"gender" validate:"required,oneof=Male Female"`
	Mom       string   `json:"mom"`
	Dad       string   `json:"dad"`
	MarriedTo string   `json:"marriedTo"`
	Photo     []string `json:"photo"`
}

// MembersResponse wraps a list of family members.
type MembersResponse struct {
	Members []family.Member `json:"members"`
}

// List handles GET /familyTree
func (h *FamilyHandler) List(w http.ResponseWriter, r *http.Request) {
	members, err := h.familyService.GetAllMembers(r.Context())
	if err != nil {
		h.logger.Error("Failed to list family members", zap.Error(err))
		common.RespondError(w, http.StatusInternalServerError, "Failed to load family tree")
		return
	}
	if members == nil {
		members = []family.Member{}
	}
	common.RespondJSON(w, http.StatusOK, MembersResponse{Members: members})
}

// Create handles POST /familyTree
func (h *FamilyHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateMemberRequest
	if err := common.ParseJSONBody(r, &req, maxFamilyBodyBytes); err != nil {
		common.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		common.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	member, err := h.familyService.CreateMember(r.Context(), family.Member{
		ID:        req.ID,
		Name:      req.Name,
		Surname:   req.Surname,
		Nickname:  req.Nickname,
		Birthday:  req.Birthday,
		Gender:    family.Gender(req.Gender),
		Mom:       req.Mom,
		Dad:       req.Dad,
		MarriedTo: req.MarriedTo,
		Photo:     req.Photo,
	})
	if err != nil {
		h.logger.Error("Failed to create family member", zap.Error(err))
		common.RespondError(w, http.StatusInternalServerError, "Failed to create family member")
		return
	}

	common.RespondJSON(w, http.StatusCreated, member)
}

// Get handles GET /familyTree/{id}
func (h *FamilyHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	member, err := h.familyService.GetMember(r.Context(), id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			common.RespondError(w, http.StatusNotFound, "Family member not found")
			return
		}
		h.logger.Error("Failed to load family member",
			zap.String("memberID", id),
			zap.Error(err),
		)
		common.RespondError(w, http.StatusInternalServerError, "Failed to load family member")
		return
	}
	common.RespondJSON(w, http.StatusOK, member)
}

// Children handles GET /familyTree/children/{id}
func (h *FamilyHandler) Children(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	children, err := h.familyService.GetChildren(r.Context(), id)
	if err != nil {
		h.logger.Error("Failed to load children",
			zap.String("parentID", id),
			zap.Error(err),
		)
		common.RespondError(w, http.StatusInternalServerError, "Failed to load children")
		return
	}
	common.RespondJSON(w, http.StatusOK, MembersResponse{Members: children})
}

// Parents handles GET /familyTree/parents/{id}
func (h *FamilyHandler) Parents(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	parents, err := h.familyService.GetParents(r.Context(), id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			common.RespondError(w, http.StatusNotFound, "Family member not found")
			return
		}
		h.logger.Error("Failed to load parents",
			zap.String("childID", id),
			zap.Error(err),
		)
		common.RespondError(w, http.StatusInternalServerError, "Failed to load parents")
		return
	}
	common.RespondJSON(w, http.StatusOK, MembersResponse{Members: parents})
}
