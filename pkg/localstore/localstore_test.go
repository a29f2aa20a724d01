package localstore_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/objectstores/s3shell/pkg/localstore"
	"github.com/objectstores/s3shell/pkg/objstore"
)

func newTestStore(t *testing.T) (objstore.ObjectStore, string) {
	dir, err := ioutil.TempDir("", "localstore")
	require.Nil(t, err)
	t.Cleanup(func() { os.RemoveAll(dir) })

	cfg := viper.New()
	cfg.Set("root", filepath.Join(dir, "store"))

	logger := logrus.New()
	logger.SetOutput(ioutil.Discard)

	store, err := localstore.NewObjectStore(logger, cfg)
	require.Nil(t, err)
	return store, dir
}

func TestBucketLifecycle(t *testing.T) {
	store, _ := newTestStore(t)

	exists, err := store.BucketExists("bucket1")
	assert.Nil(t, err)
	assert.False(t, exists)

	require.Nil(t, store.CreateBucket("bucket1"))

	exists, err = store.BucketExists("bucket1")
	assert.Nil(t, err)
	assert.True(t, exists)

	buckets, err := store.ListBuckets()
	assert.Nil(t, err)
	assert.Equal(t, []string{"bucket1"}, buckets)

	require.Nil(t, store.DeleteBucket("bucket1"))

	exists, err = store.BucketExists("bucket1")
	assert.Nil(t, err)
	assert.False(t, exists)
}

func TestDeleteBucketRefusesNonEmpty(t *testing.T) {
	store, dir := newTestStore(t)
	require.Nil(t, store.CreateBucket("bucket1"))

	src := filepath.Join(dir, "hello.txt")
	require.Nil(t, ioutil.WriteFile(src, []byte("hello"), 0644))
	require.Nil(t, store.Upload(src, "bucket1", "hello.txt"))

	assert.NotNil(t, store.DeleteBucket("bucket1"))
}

func TestObjectRoundTrip(t *testing.T) {
	store, dir := newTestStore(t)
	require.Nil(t, store.CreateBucket("bucket1"))

	src := filepath.Join(dir, "hello.txt")
	require.Nil(t, ioutil.WriteFile(src, []byte("hello, world"), 0644))

	require.Nil(t, store.Upload(src, "bucket1", "greetings/hello.txt"))

	keys, err := store.ListObjects("bucket1")
	assert.Nil(t, err)
	assert.Equal(t, []string{"greetings/hello.txt"}, keys)

	dst := filepath.Join(dir, "fetched.txt")
	require.Nil(t, store.Download("bucket1", "greetings/hello.txt", dst))

	data, err := ioutil.ReadFile(dst)
	assert.Nil(t, err)
	assert.Equal(t, "hello, world", string(data))

	require.Nil(t, store.DeleteObject("bucket1", "greetings/hello.txt"))

	keys, err = store.ListObjects("bucket1")
	assert.Nil(t, err)
	assert.Empty(t, keys)
}
