package shellmgr

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(ioutil.Discard)
	return logger
}

func TestNewManagerLocalProvider(t *testing.T) {
	dir, err := ioutil.TempDir("", "shellmgr")
	require.Nil(t, err)
	defer os.RemoveAll(dir)

	cfgPath := filepath.Join(dir, "s3shell.yaml")
	cfg := "default-provider: local\n" +
		"service:\n" +
		"  objstore:\n" +
		"    localDir:\n" +
		"      root: " + filepath.Join(dir, "store") + "\n"
	require.Nil(t, ioutil.WriteFile(cfgPath, []byte(cfg), 0644))

	mgr, err := NewManager(map[string]interface{}{
		"config-file": cfgPath,
		"logger":      discardLogger(),
	})
	require.Nil(t, err)
	defer mgr.Destroy()

	require.NotNil(t, mgr.Store)
	require.Nil(t, mgr.Store.CreateBucket("bucket1"))
	exists, err := mgr.Store.BucketExists("bucket1")
	assert.Nil(t, err)
	assert.True(t, exists)
}

func TestNewManagerBadOptions(t *testing.T) {
	_, err := NewManager(map[string]interface{}{"config-file": 42})
	assert.NotNil(t, err)

	_, err = NewManager(map[string]interface{}{
		"config-file": "/nonexistent/path/s3shell.yaml",
		"logger":      discardLogger(),
	})
	assert.NotNil(t, err)
}

func TestUnknownService(t *testing.T) {
	dir, err := ioutil.TempDir("", "shellmgr")
	require.Nil(t, err)
	defer os.RemoveAll(dir)

	cfgPath := filepath.Join(dir, "s3shell.yaml")
	cfg := "default-provider: weird\n" +
		"providers:\n" +
		"  weird:\n" +
		"    objstore: carrierPigeon\n"
	require.Nil(t, ioutil.WriteFile(cfgPath, []byte(cfg), 0644))

	_, err = NewManager(map[string]interface{}{
		"config-file": cfgPath,
		"logger":      discardLogger(),
	})
	require.NotNil(t, err)
	assert.Contains(t, err.Error(), "carrierPigeon")
}
