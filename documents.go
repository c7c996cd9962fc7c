package main

import (
	"context"
	"errors"
	"io"
	"mime/multipart"

	"docvault/models"
	"docvault/pkg/preview"
	"docvault/pkg/upload"
	"docvault/pkg/vault"
)

// uploadDocument runs the full upload sequence for an authenticated user:
// validate, write the blob, then record metadata. Each step's failure aborts
// the rest.
func (a *app) uploadDocument(ctx context.Context, user *models.User, fh *multipart.FileHeader, category models.Category) (*models.Document, error) {
	if !category.Valid() {
		return nil, validationError("Invalid category")
	}
	if err := a.validator.Validate(fh.Filename, fh.Size); err != nil {
		return nil, validationError(err.Error())
	}

	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}

	safeName := upload.SanitizeFilename(fh.Filename)
	key := vault.StorageKey(user.ID)
	contentType := fh.Header.Get("Content-Type")

	locator, err := a.storage.Put(ctx, key, data, contentType)
	if err != nil {
		return nil, err
	}

	doc := &models.Document{
		FileName:     safeName,
		OriginalName: fh.Filename,
		FileSize:     fh.Size,
		MimeType:     contentType,
		Category:     category,
		FileURL:      locator,
		StorageKey:   key,
		ThumbURL:     a.renderThumbnail(ctx, key, safeName, data),
		UserID:       user.ID,
	}
	if err := a.documents.Create(ctx, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// renderThumbnail stores a preview next to the blob for image uploads.
// Best-effort: a document without a thumbnail is still a valid document.
func (a *app) renderThumbnail(ctx context.Context, key, name string, data []byte) string {
	if !preview.Supported(upload.Extension(name)) {
		return ""
	}
	thumb, err := preview.Thumbnail(data, preview.DefaultSize)
	if err != nil {
		a.logger.Warn("thumbnail render failed", "file", name, "err", err)
		return ""
	}
	url, err := a.storage.Put(ctx, key+"-thumb", thumb, "image/jpeg")
	if err != nil {
		a.logger.Warn("thumbnail upload failed", "key", key, "err", err)
		return ""
	}
	return url
}

func (a *app) listDocuments(ctx context.Context, user *models.User, category string) ([]models.Document, error) {
	filter := DocumentFilter{}
	if category != "" {
		c := models.Category(category)
		if !c.Valid() {
			return nil, validationError("Invalid category")
		}
		filter.Category = c
	}
	docs, err := a.documents.ListByUser(ctx, user.ID, filter)
	if err != nil {
		return nil, err
	}
	if docs == nil {
		docs = []models.Document{}
	}
	return docs, nil
}

// deleteDocument removes the blob first, best-effort, then the metadata
// record. A storage failure is logged and skipped: an orphaned blob is a
// lesser problem than an undeletable record. The database delete is fatal.
func (a *app) deleteDocument(ctx context.Context, user *models.User, id string) error {
	doc, err := a.documents.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := vault.Authorize(doc.UserID, user.ID); err != nil {
		return ErrNotFound
	}

	key := doc.StorageKey
	if key == "" {
		if key, err = vault.KeyFromLocator(doc.FileURL); err != nil {
			a.logger.Warn("cannot derive storage key", "document", doc.ID, "err", err)
		}
	}
	if key != "" {
		if err := a.storage.Delete(ctx, key); err != nil {
			a.logger.Warn("storage delete failed", "document", doc.ID, "key", key, "err", err)
		}
		if doc.ThumbURL != "" {
			if err := a.storage.Delete(ctx, key+"-thumb"); err != nil {
				a.logger.Warn("thumbnail delete failed", "document", doc.ID, "key", key, "err", err)
			}
		}
	}
	return a.documents.Delete(ctx, doc.ID)
}

func isNotFound(err error) bool {
	return errors.Is(err, ErrNotFound) || errors.Is(err, vault.ErrNotFound)
}
