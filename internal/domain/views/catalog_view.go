package views

import (
	"context"

	"github.com/Vovarama1992/cloudio/internal/domain"
	"github.com/Vovarama1992/cloudio/internal/models"
	"github.com/Vovarama1992/cloudio/internal/ports"
	"github.com/Vovarama1992/go-utils/logger"
	"golang.org/x/sync/errgroup"
)

// FileForm backs the admin "add file" form.
type FileForm struct {
	Title       string
	Description string
	SourceURL   string
	CategoryID  int
	MediaType   models.MediaType
}

// CatalogView never patches its collections in place: every successful
// mutation is followed by a full reload.
type CatalogView struct {
	api     ports.CatalogAPI
	alert   Alerter
	confirm Confirmer
	log     *logger.ZapLogger

	Admin           bool
	Files           []models.File
	Categories      []models.Category
	Form            FileForm
	NewCategoryName string

	loaded bool
}

func NewCatalogView(
	api ports.CatalogAPI,
	path string,
	alert Alerter,
	confirm Confirmer,
	log *logger.ZapLogger,
) *CatalogView {
	return &CatalogView{
		api:     api,
		alert:   alert,
		confirm: confirm,
		log:     log,
		Admin:   domain.IsAdminPath(path),
		Form:    FileForm{MediaType: models.MediaVideo},
	}
}

// Load fetches files and categories in parallel and stores both once both
// succeeded. Failures are logged only.
func (v *CatalogView) Load(ctx context.Context) error {
	var (
		files      []models.File
		categories []models.Category
		g          errgroup.Group
	)

	g.Go(func() error {
		var err error
		files, err = v.api.ListFiles(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		categories, err = v.api.ListCategories(ctx)
		return err
	})

	if err := g.Wait(); err != nil {
		v.log.Log(logger.LogEntry{
			Level:   "error",
			Message: "error loading data",
			Error:   err,
		})
		return err
	}

	v.Files = files
	v.Categories = categories
	v.loaded = true

	if v.Form.CategoryID == 0 && len(categories) > 0 {
		v.Form.CategoryID = categories[0].ID
	}
	return nil
}

// Loaded reports whether a Load has succeeded on this view.
func (v *CatalogView) Loaded() bool { return v.loaded }

func (v *CatalogView) AddFile(ctx context.Context) error {
	if !v.Admin {
		return ErrAdminOnly
	}
	if v.Form.Title == "" || v.Form.SourceURL == "" {
		return ErrRequiredFields
	}

	_, err := v.api.CreateFile(ctx, models.NewFile{
		Title:       v.Form.Title,
		Description: v.Form.Description,
		SourceURL:   v.Form.SourceURL,
		CategoryID:  v.Form.CategoryID,
		MediaType:   v.Form.MediaType,
	})
	if err != nil {
		return v.fail("add file failed", MsgAddFileFailed, err)
	}

	_ = v.Load(ctx)
	v.Form.Title = ""
	v.Form.Description = ""
	v.Form.SourceURL = ""
	return nil
}

// DeleteFile asks for confirmation first; a refusal issues no request.
func (v *CatalogView) DeleteFile(ctx context.Context, id int) error {
	if !v.Admin {
		return ErrAdminOnly
	}
	if !v.confirm.Confirm(ConfirmDeleteFile) {
		return nil
	}

	if err := v.api.DeleteFile(ctx, id); err != nil {
		return v.fail("delete file failed", MsgDeleteFileFailed, err)
	}

	_ = v.Load(ctx)
	return nil
}

func (v *CatalogView) AddCategory(ctx context.Context) error {
	if !v.Admin {
		return ErrAdminOnly
	}
	if v.NewCategoryName == "" {
		return nil
	}

	if _, err := v.api.CreateCategory(ctx, v.NewCategoryName); err != nil {
		return v.fail("add category failed", MsgAddCategoryFailed, err)
	}

	v.NewCategoryName = ""
	_ = v.Load(ctx)
	return nil
}

// DeleteCategory leaves the category's files to the backend, which marks them uncategorized.
func (v *CatalogView) DeleteCategory(ctx context.Context, id int) error {
	if !v.Admin {
		return ErrAdminOnly
	}
	if !v.confirm.Confirm(ConfirmDeleteCategory) {
		return nil
	}

	if err := v.api.DeleteCategory(ctx, id); err != nil {
		return v.fail("delete category failed", MsgDeleteCategoryFailed, err)
	}

	_ = v.Load(ctx)
	return nil
}

func (v *CatalogView) fail(msg, alert string, err error) error {
	v.log.Log(logger.LogEntry{
		Level:   "error",
		Message: msg,
		Error:   err,
	})
	v.alert.Alert(alert)
	return err
}
