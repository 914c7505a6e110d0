package controllers

import (
	"chaipoint-service/internal/app/contracts"
	"chaipoint-service/internal/pkg/constvars"
	"chaipoint-service/internal/pkg/dto/requests"
	"chaipoint-service/internal/pkg/exceptions"
	"chaipoint-service/internal/pkg/utils"
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type MenuController struct {
	Log         *zap.Logger
	MenuUsecase contracts.MenuUsecase
}

func NewMenuController(logger *zap.Logger, menuUsecase contracts.MenuUsecase) *MenuController {
	return &MenuController{
		Log:         logger,
		MenuUsecase: menuUsecase,
	}
}

// ListMenu serves the storefront catalog. Students only see available items;
// admins pass include_unavailable=true to manage the full list.
func (ctrl *MenuController) ListMenu(w http.ResponseWriter, r *http.Request) {
	request := &requests.ListMenu{
		OnlyAvailable: r.URL.Query().Get("include_unavailable") != "true",
		Category:      r.URL.Query().Get("category"),
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.MenuUsecase.ListMenu(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.MenuListSuccess, result)
}

func (ctrl *MenuController) GetMenuItemByID(w http.ResponseWriter, r *http.Request) {
	menuItemID := chi.URLParam(r, "menuItemID")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.MenuUsecase.GetMenuItemByID(ctx, menuItemID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.MenuListSuccess, result)
}

func (ctrl *MenuController) CreateMenuItem(w http.ResponseWriter, r *http.Request) {
	session, err := sessionFromRequest(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.CreateMenuItem)
	err = json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	utils.SanitizeCreateMenuItemRequest(request)

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	result, err := ctrl.MenuUsecase.CreateMenuItem(ctx, session, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.MenuItemCreatedSuccess, result)
}

func (ctrl *MenuController) UpdateMenuItem(w http.ResponseWriter, r *http.Request) {
	session, err := sessionFromRequest(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	menuItemID := chi.URLParam(r, "menuItemID")

	request := new(requests.UpdateMenuItem)
	err = json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	result, err := ctrl.MenuUsecase.UpdateMenuItem(ctx, session, menuItemID, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.MenuItemUpdatedSuccess, result)
}

func (ctrl *MenuController) DeleteMenuItem(w http.ResponseWriter, r *http.Request) {
	session, err := sessionFromRequest(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	menuItemID := chi.URLParam(r, "menuItemID")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	err = ctrl.MenuUsecase.DeleteMenuItem(ctx, session, menuItemID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.MenuItemDeletedSuccess, nil)
}
