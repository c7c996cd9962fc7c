// Package vault holds the document access policy: per-user storage key
// derivation and owner checks for read/delete.
package vault

import (
	"errors"
	"net/url"
	"strings"

	"github.com/google/uuid"
)

// ErrNotFound is returned for both a missing document and a document owned by
// somebody else. Non-owners must not learn that the document exists.
var ErrNotFound = errors.New("document not found")

// StorageKey derives the blob key for a new upload: the owner's id followed
// by a fresh random id. Keys never collide across users or repeated uploads,
// and per-user bulk deletion reduces to a prefix scan.
func StorageKey(userID string) string {
	return userID + "/" + uuid.NewString()
}

// Authorize checks a read/delete action on a document owned by ownerID,
// requested by requesterID. An owner mismatch is reported as ErrNotFound.
func Authorize(ownerID, requesterID string) error {
	if ownerID != requesterID {
		return ErrNotFound
	}
	return nil
}

// KeyFromLocator recovers the storage key (ownerId/fileId) from a public
// locator URL whose path ends with those two segments. Kept for document rows
// created before the key was stored alongside the URL.
func KeyFromLocator(locator string) (string, error) {
	u, err := url.Parse(locator)
	if err != nil {
		return "", err
	}
	segments := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(segments) < 2 {
		return "", errors.New("locator path too short")
	}
	return strings.Join(segments[len(segments)-2:], "/"), nil
}
