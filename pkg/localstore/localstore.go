// Directory-backed object storage. Implements the objstore.ObjectStore
// interface with buckets as directories and objects as plain files under a
// configured root. Mostly useful for development and tests, where a real S3
// endpoint is unavailable or unwanted.

package localstore

import (
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/objectstores/s3shell/pkg/objstore"
)

type localStore struct {
	storageDir string
	log        objstore.Logger
}

func NewObjectStore(logger objstore.Logger, config *viper.Viper) (objstore.ObjectStore, error) {
	root := config.GetString("root")
	if root == "" {
		return nil, errors.New("No root directory in local store configuration")
	}
	if err := os.MkdirAll(root, 0775); err != nil {
		return nil, errors.Wrap(err, "Failed to create storage directory at "+root)
	}
	return &localStore{storageDir: root, log: logger}, nil
}

func (self *localStore) BucketExists(name string) (bool, error) {
	info, err := os.Stat(filepath.Join(self.storageDir, name))
	if os.IsNotExist(err) || os.IsPermission(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return info.IsDir(), nil
}

func (self *localStore) CreateBucket(name string) error {
	if err := os.Mkdir(filepath.Join(self.storageDir, name), 0775); err != nil {
		return errors.Wrap(err, "Failed to create bucket "+name)
	}
	self.log.Info("Created bucket: " + name)
	return nil
}

func (self *localStore) ListBuckets() ([]string, error) {
	entries, err := ioutil.ReadDir(self.storageDir)
	if err != nil {
		return nil, errors.Wrap(err, "Failed to read storage directory")
	}
	names := []string{}
	for _, entry := range entries {
		if entry.IsDir() {
			names = append(names, entry.Name())
		}
	}
	return names, nil
}

// Object keys may contain slashes, so a flat ReadDir isn't enough; walk the
// bucket and report keys relative to it, using forward slashes on every
// platform to match what a remote backend would return.
func (self *localStore) ListObjects(bucket string) ([]string, error) {
	bucketDir := filepath.Join(self.storageDir, bucket)
	keys := []string{}
	err := filepath.Walk(bucketDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		relPath, err := filepath.Rel(bucketDir, path)
		if err != nil {
			return err
		}
		keys = append(keys, filepath.ToSlash(relPath))
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "Failed to list objects in bucket "+bucket)
	}
	return keys, nil
}

func (self *localStore) Upload(src string, bucket string, key string) error {
	dst := filepath.Join(self.storageDir, bucket, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(dst), 0775); err != nil {
		return errors.Wrap(err, "Failed to create object directory for "+key)
	}
	if err := copyFile(src, dst); err != nil {
		return errors.Wrapf(err, "Failed to upload %s to bucket %s", src, bucket)
	}
	return nil
}

func (self *localStore) Download(bucket string, key string, dst string) error {
	src := filepath.Join(self.storageDir, bucket, filepath.FromSlash(key))
	if err := copyFile(src, dst); err != nil {
		return errors.Wrapf(err, "Failed to download %s from bucket %s", key, bucket)
	}
	return nil
}

func (self *localStore) DeleteObject(bucket string, key string) error {
	path := filepath.Join(self.storageDir, bucket, filepath.FromSlash(key))
	if err := os.Remove(path); err != nil {
		return errors.Wrapf(err, "Failed to delete %s from bucket %s", key, bucket)
	}
	return nil
}

func (self *localStore) DeleteBucket(bucket string) error {
	// os.Remove refuses to delete a non-empty directory, which matches the
	// backend contract (callers check emptiness first).
	if err := os.Remove(filepath.Join(self.storageDir, bucket)); err != nil {
		return errors.Wrap(err, "Failed to delete bucket "+bucket)
	}
	self.log.Info("Deleted bucket: " + bucket)
	return nil
}

func (self *localStore) Destroy() {
	// The storage directory outlives the client.
}

// Copy a file from src to dst (basically the posix 'cp' command).
// Src and dst represent paths to regular files (not directories).
func copyFile(src, dst string) error {
	sourceFileStat, err := os.Stat(src)
	if err != nil {
		return err
	}

	if !sourceFileStat.Mode().IsRegular() {
		return fmt.Errorf("%s is not a regular file", src)
	}

	from, err := os.Open(src)
	if err != nil {
		return err
	}
	defer from.Close()

	to, err := os.OpenFile(dst, os.O_RDWR|os.O_CREATE|os.O_TRUNC, sourceFileStat.Mode().Perm())
	if err != nil {
		return err
	}
	defer to.Close()

	_, err = io.Copy(to, from)
	if err != nil {
		return err
	}

	return nil
}
