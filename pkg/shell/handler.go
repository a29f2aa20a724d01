// Command handlers for the object-storage shell. Each handler validates its
// inputs, checks backend pre-conditions, issues one storage call and returns
// a formatted response string. Anticipated failures come back as Issue
// messages in the response; only unrecognized backend faults are returned as
// errors, for the caller to surface.

package shell

import (
	"fmt"
	"os"
	"strings"

	"github.com/objectstores/s3shell/pkg/objstore"
)

type Handler struct {
	store objstore.ObjectStore
	log   objstore.Logger
}

func NewHandler(store objstore.ObjectStore, logger objstore.Logger) *Handler {
	return &Handler{store: store, log: logger}
}

func (self *Handler) CreateDir(bucket string) (string, error) {
	if bucket == "" {
		return IssueDirNameEmpty.Message(), nil
	}
	exists, err := self.store.BucketExists(bucket)
	if err != nil {
		return "", err
	}
	if exists {
		return IssueDirExists.Message(), nil
	}
	if err := self.store.CreateBucket(bucket); err != nil {
		return "", err
	}
	return fmt.Sprintf("Directory %s created.", bucket), nil
}

// ListDir lists all buckets, or the objects of one bucket when given its
// name. Bucket existence is checked against the bucket listing rather than
// with a probe, so a single round-trip covers both answers.
func (self *Handler) ListDir(bucket string) (string, error) {
	buckets, err := self.store.ListBuckets()
	if err != nil {
		return "", err
	}
	if bucket == "" {
		return strings.Join(buckets, "\n"), nil
	}
	if !contains(buckets, bucket) {
		return IssueNoSuchDir.Message(), nil
	}
	keys, err := self.store.ListObjects(bucket)
	if err != nil {
		return "", err
	}
	return strings.Join(keys, "\n"), nil
}

func (self *Handler) Upload(src string, bucket string, key string) (string, error) {
	if _, err := os.Stat(src); err != nil {
		return IssueMissingSourceFile.Message(), nil
	}
	exists, err := self.store.BucketExists(bucket)
	if err != nil {
		return "", err
	}
	if !exists {
		return IssueNoSuchDir.Message(), nil
	}

	// The object is named after the source file unless told otherwise
	if key == "" {
		key = src
	}
	if err := self.store.Upload(src, bucket, key); err != nil {
		return "", err
	}
	return fmt.Sprintf("File %s uploaded to directory %s.", src, bucket), nil
}

func (self *Handler) Download(key string, bucket string, dst string) (string, error) {
	exists, err := self.store.BucketExists(bucket)
	if err != nil {
		return "", err
	}
	if !exists {
		return IssueNoSuchDir.Message(), nil
	}
	keys, err := self.store.ListObjects(bucket)
	if err != nil {
		return "", err
	}
	if !contains(keys, key) {
		return IssueNoSuchObject.Message(), nil
	}

	if dst == "" {
		dst = key
	}
	// Keep one backup generation of a pre-existing local file. A second
	// download in a row overwrites the earlier .bak.
	if _, err := os.Stat(dst); err == nil {
		if err := os.Rename(dst, dst+".bak"); err != nil {
			return "", err
		}
	}
	if err := self.store.Download(bucket, key, dst); err != nil {
		return "", err
	}
	return fmt.Sprintf("File %s downloaded from directory %s.", key, bucket), nil
}

func (self *Handler) Delete(key string, bucket string) (string, error) {
	exists, err := self.store.BucketExists(bucket)
	if err != nil {
		return "", err
	}
	if !exists {
		return IssueNoSuchDir.Message(), nil
	}
	keys, err := self.store.ListObjects(bucket)
	if err != nil {
		return "", err
	}
	if !contains(keys, key) {
		return IssueNoSuchObject.Message(), nil
	}

	if err := self.store.DeleteObject(bucket, key); err != nil {
		return "", err
	}
	return fmt.Sprintf("File %s deleted from directory %s.", key, bucket), nil
}

func (self *Handler) DeleteDir(bucket string) (string, error) {
	exists, err := self.store.BucketExists(bucket)
	if err != nil {
		return "", err
	}
	if !exists {
		return IssueNoSuchDir.Message(), nil
	}
	keys, err := self.store.ListObjects(bucket)
	if err != nil {
		return "", err
	}
	if len(keys) > 0 {
		return IssueDirNotEmpty.Message(), nil
	}

	if err := self.store.DeleteBucket(bucket); err != nil {
		return "", err
	}
	return fmt.Sprintf("Directory %s deleted.", bucket), nil
}

// Find reports the bucket's object keys containing pattern as a plain
// substring, in the backend's listing order.
func (self *Handler) Find(pattern string, bucket string) (string, error) {
	exists, err := self.store.BucketExists(bucket)
	if err != nil {
		return "", err
	}
	if !exists {
		return IssueNoSuchDir.Message(), nil
	}
	keys, err := self.store.ListObjects(bucket)
	if err != nil {
		return "", err
	}

	matches := []string{}
	for _, key := range keys {
		if strings.Contains(key, pattern) {
			matches = append(matches, key)
		}
	}
	return strings.Join(matches, "\n"), nil
}

func contains(names []string, name string) bool {
	for _, candidate := range names {
		if candidate == name {
			return true
		}
	}
	return false
}
