package storage

import (
	"context"
	"log"
	"mime/multipart"
	"net/url"
	"path"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
)

// Logical buckets for avatar files. Each maps to a Cloudinary folder.
const (
	StudentsBucket = "students-avatars"
	TeachersBucket = "teachers-avatars"
)

type AvatarStorage struct {
	cld *cloudinary.Cloudinary
}

func NewAvatarStorage(cloudinaryURL string) (*AvatarStorage, error) {
	cld, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return nil, err
	}
	return &AvatarStorage{cld: cld}, nil
}

// Upload stores the file under a random name in the given bucket and returns
// its public URL.
func (s *AvatarStorage) Upload(ctx context.Context, file *multipart.FileHeader, bucket string) (string, error) {
	result, err := s.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:   bucket,
		PublicID: uuid.NewString(),
	})
	if err != nil {
		return "", err
	}
	return result.SecureURL, nil
}

// Delete removes a previously uploaded avatar by its public URL. Best-effort:
// failures are logged and never surfaced, a stale object is not worth failing
// the caller's operation for.
func (s *AvatarStorage) Delete(ctx context.Context, rawURL, bucket string) {
	publicID, ok := publicIDFromURL(rawURL, bucket)
	if !ok {
		log.Printf("avatar storage: cannot parse URL for deletion: %s", rawURL)
		return
	}
	_, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		log.Printf("avatar storage: failed to delete %s: %v", publicID, err)
	}
}

func publicIDFromURL(rawURL, bucket string) (string, bool) {
	u, err := url.Parse(rawURL)
	if err != nil || u.Path == "" {
		return "", false
	}
	name := path.Base(u.Path)
	name = strings.TrimSuffix(name, path.Ext(name))
	if name == "" || name == "/" || name == "." {
		return "", false
	}
	return bucket + "/" + name, true
}
