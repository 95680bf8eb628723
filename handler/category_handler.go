package handler

import (
	"net/http"
	"wedding-api/common"
	"wedding-api/model"
	"wedding-api/service"
)

// CategoryHandler serves the venue's services and the photo gallery.
type CategoryHandler struct {
	service *service.CategoryService
}

func NewCategoryHandler(service *service.CategoryService) *CategoryHandler {
	return &CategoryHandler{service: service}
}

// PublicCategories godoc
// @Summary      List services
// @Tags         web
// @Produce      json
// @Success      200  {array}  model.Category
// @Router       /api/v1/web/services [get]
func (h *CategoryHandler) PublicCategories(w http.ResponseWriter, r *http.Request) *common.AppError {
	items, err := h.service.PublicCategories(r.Context())
	return respond(w, http.StatusOK, items, err, "Could not list services")
}

func (h *CategoryHandler) CategoryFooter(w http.ResponseWriter, r *http.Request) *common.AppError {
	items, err := h.service.CategoryFooter(r.Context())
	return respond(w, http.StatusOK, items, err, "Could not list services")
}

func (h *CategoryHandler) PublicGallery(w http.ResponseWriter, r *http.Request) *common.AppError {
	items, err := h.service.PublicGallery(r.Context())
	return respond(w, http.StatusOK, items, err, "Could not list gallery")
}

func (h *CategoryHandler) PublicGalleryByCategory(w http.ResponseWriter, r *http.Request) *common.AppError {
	id, appErr := pathID(r, "category_id")
	if appErr != nil {
		return appErr
	}
	items, err := h.service.PublicGalleryByCategory(r.Context(), id)
	return respond(w, http.StatusOK, items, err, "Could not list gallery")
}

func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) *common.AppError {
	items, err := h.service.ListCategories(r.Context())
	return respond(w, http.StatusOK, items, err, "Could not list categories")
}

func (h *CategoryHandler) Get(w http.ResponseWriter, r *http.Request) *common.AppError {
	id, appErr := pathID(r, "id")
	if appErr != nil {
		return appErr
	}
	c, err := h.service.GetCategory(r.Context(), id)
	return respond(w, http.StatusOK, c, err, "Could not load category")
}

// Create godoc
// @Summary      Create a service category
// @Tags         dashboard
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        category  body      model.CategoryRequest  true  "Category"
// @Success      201  {object}  model.Category
// @Failure      400  {object}  common.AppError
// @Failure      401  {object}  common.AppError
// @Failure      403  {object}  common.AppError
// @Router       /api/v1/dashboard/categories [post]
func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.CategoryRequest
	if appErr := common.ValidateAndDecode(r, &req); appErr != nil {
		return appErr
	}
	c, err := h.service.CreateCategory(r.Context(), req)
	return respond(w, http.StatusCreated, c, err, "Could not create category")
}

func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) *common.AppError {
	id, appErr := pathID(r, "id")
	if appErr != nil {
		return appErr
	}
	var patch model.CategoryPatch
	if appErr := common.ValidateAndDecode(r, &patch); appErr != nil {
		return appErr
	}
	c, err := h.service.UpdateCategory(r.Context(), id, patch)
	return respond(w, http.StatusOK, c, err, "Could not update category")
}

func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) *common.AppError {
	id, appErr := pathID(r, "id")
	if appErr != nil {
		return appErr
	}
	return noContent(w, h.service.DeleteCategory(r.Context(), id), "Could not delete category")
}

func (h *CategoryHandler) ListGallery(w http.ResponseWriter, r *http.Request) *common.AppError {
	items, err := h.service.ListGallery(r.Context())
	return respond(w, http.StatusOK, items, err, "Could not list gallery")
}

func (h *CategoryHandler) AddGalleryItem(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.GalleryRequest
	if appErr := common.ValidateAndDecode(r, &req); appErr != nil {
		return appErr
	}
	item, err := h.service.AddGalleryItem(r.Context(), req)
	return respond(w, http.StatusCreated, item, err, "Could not add gallery image")
}

func (h *CategoryHandler) DeleteGalleryItem(w http.ResponseWriter, r *http.Request) *common.AppError {
	id, appErr := pathID(r, "id")
	if appErr != nil {
		return appErr
	}
	return noContent(w, h.service.DeleteGalleryItem(r.Context(), id), "Could not delete gallery image")
}
