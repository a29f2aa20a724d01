// Standard interfaces and datatypes for the s3shell project.
// Terms:
//   "bucket" : A named, flat namespace of objects owned by the backend
//   "object" : A named blob stored within a bucket
//   "service" : A specific implementation of the object storage API (e.g. AWS S3, local directory)
package objstore

import "github.com/sirupsen/logrus"

// Loggers are handed down from the manager to services, usually narrowed
// with WithField("module", ...).
type Logger = logrus.FieldLogger

// ObjectStore is the backend boundary: one method per storage verb, all
// synchronous. Implementations never cache; every probe and listing
// round-trips to the backend.
type ObjectStore interface {
	// Lightweight presence probe. Must report (false, nil) when the backend
	// classifies the failure as bad-request/forbidden/not-found, and re-raise
	// any other fault unchanged.
	BucketExists(name string) (bool, error)

	// Create a new bucket. The backend's location constraint (if any) comes
	// from service configuration, not from the caller.
	CreateBucket(name string) error

	// Names of all buckets visible to the client.
	ListBuckets() ([]string, error)

	// Keys of all objects in bucket, in whatever order the backend reports
	// them. Callers rely on that order being stable within one call.
	ListObjects(bucket string) ([]string, error)

	// Store the local file at src under (bucket, key), overwriting any
	// existing object.
	Upload(src string, bucket string, key string) error

	// Fetch (bucket, key) into the local file at dst, creating or truncating
	// it. Callers are responsible for any backup of a pre-existing dst.
	Download(bucket string, key string, dst string) error

	DeleteObject(bucket string, key string) error

	// Delete an empty bucket. Callers must verify emptiness first; backends
	// may or may not enforce it themselves.
	DeleteBucket(bucket string) error

	// Users must call Destroy on any created services to perform cleanup.
	Destroy()
}
